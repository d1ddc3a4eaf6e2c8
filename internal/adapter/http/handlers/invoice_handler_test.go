package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"research_hub/internal/adapter/http/handlers/mocks"
	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices",
			bytes.NewBufferString(`{"submission_id":"sub-1","due_date":"2026-10-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submission not payable maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		uc.EXPECT().CreateInvoice(gomock.Any(), "sub-1", 1.99, 2500.0, gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrSubmissionNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices",
			bytes.NewBufferString(`{"submission_id":"sub-1","amount_usd":1.99,"amount_mwk":2500,"due_date":"2026-10-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		now := time.Now().UTC()
		uc.EXPECT().CreateInvoice(gomock.Any(), "sub-1", 0.0, 0.0, gomock.Any()).Return(entities.Invoice{
			ID:           "inv-1",
			SubmissionID: "sub-1",
			Status:       entities.InvoiceStatusOpen,
			CreatedAt:    now,
			UpdatedAt:    now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices",
			bytes.NewBufferString(`{"submission_id":"sub-1","amount_usd":0,"amount_mwk":0,"due_date":"2026-10-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.GetInvoice)

		uc.EXPECT().GetInvoice(gomock.Any(), "inv-404").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.GetInvoice)

		uc.EXPECT().GetInvoice(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID:        "inv-1",
			AmountUSD: 1.99,
			AmountMWK: 2500,
			Status:    entities.InvoiceStatusOpen,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "open" {
			t.Fatalf("expected open, got %v", body["status"])
		}
	})
}

func TestInvoiceHandler_CreatePaymentAttempt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/attempts", h.CreatePaymentAttempt)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/attempts", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invoice not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/attempts", h.CreatePaymentAttempt)

		uc.EXPECT().RecordPaymentAttempt(gomock.Any(), "inv-1", entities.PaymentMethodAirtel).
			Return(entities.PaymentAttempt{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/attempts",
			bytes.NewBufferString(`{"method":"airtel"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success normalizes method casing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/attempts", h.CreatePaymentAttempt)

		uc.EXPECT().RecordPaymentAttempt(gomock.Any(), "inv-1", entities.PaymentMethodCard).
			Return(entities.PaymentAttempt{
				ID:        "att-1",
				InvoiceID: "inv-1",
				Method:    entities.PaymentMethodCard,
				Outcome:   entities.PaymentOutcomePending,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/attempts",
			bytes.NewBufferString(`{"method":" Card "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["outcome"] != "pending" {
			t.Fatalf("expected pending outcome, got %v", body["outcome"])
		}
	})
}

func TestInvoiceHandler_SettlePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflicting settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/attempts/:attempt_id/settle", h.SettlePayment)

		uc.EXPECT().SettlePayment(gomock.Any(), "att-1", entities.PaymentOutcomeFailed).
			Return(entities.PaymentAttempt{}, usecase.ErrSettlementConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/attempts/att-1/settle",
			bytes.NewBufferString(`{"outcome":"failed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("non-terminal outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/attempts/:attempt_id/settle", h.SettlePayment)

		uc.EXPECT().SettlePayment(gomock.Any(), "att-1", entities.PaymentOutcomePending).
			Return(entities.PaymentAttempt{}, usecase.ErrInvalidPaymentOutcome)

		req := httptest.NewRequest(http.MethodPost, "/v1/attempts/att-1/settle",
			bytes.NewBufferString(`{"outcome":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/attempts/:attempt_id/settle", h.SettlePayment)

		uc.EXPECT().SettlePayment(gomock.Any(), "att-1", entities.PaymentOutcomeSucceeded).
			Return(entities.PaymentAttempt{
				ID:        "att-1",
				InvoiceID: "inv-1",
				Outcome:   entities.PaymentOutcomeSucceeded,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/attempts/att-1/settle",
			bytes.NewBufferString(`{"outcome":"succeeded"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["outcome"] != "succeeded" {
			t.Fatalf("expected succeeded, got %v", body["outcome"])
		}
	})
}

func TestInvoiceHandler_ExpireOverdueInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reports expired count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/expire-overdue", h.ExpireOverdueInvoices)

		uc.EXPECT().ExpireOverdueInvoices(gomock.Any(), gomock.Any()).Return(3, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/expire-overdue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["expired"] != 3 {
			t.Fatalf("expected 3, got %d", body["expired"])
		}
	})
}

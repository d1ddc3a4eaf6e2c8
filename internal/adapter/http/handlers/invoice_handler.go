package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "research_hub/internal/adapter/http/dto/request"
	response "research_hub/internal/adapter/http/dto/response"
	"research_hub/internal/usecase"
	"research_hub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles HTTP requests for the invoice & payment ledger:
// invoice creation, payment attempts, the gateway settle callback and the
// manual expiry sweep.

type InvoiceHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewInvoiceHandler(uc usecase.ILedgerUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice cuts an invoice for an accepted/published submission.
// Creation is idempotent: an existing open invoice is returned as-is.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	usd, mwk, ok := payload.ResolveAmounts()
	if !ok {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}
	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.CreateInvoice(c.Request.Context(), payload.ResolveSubmissionID(), usd, mwk, dueDate)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// GetInvoice returns one invoice by id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CreatePaymentAttempt records a pending attempt and dispatches the gateway.
// The returned attempt id is the correlation key for the settle callback.
func (h *InvoiceHandler) CreatePaymentAttempt(c *gin.Context) {
	invoiceID := c.Param("id")

	var payload request.PaymentAttemptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	attempt, err := h.usecase.RecordPaymentAttempt(c.Request.Context(), invoiceID, payload.ResolveMethod())
	if err != nil {
		log.Printf("[ledger][handler] record attempt failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentAttempt(attempt))
}

// SettlePayment is the gateway callback reporting a terminal outcome.
func (h *InvoiceHandler) SettlePayment(c *gin.Context) {
	attemptID := c.Param("attempt_id")

	var payload request.SettlementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	settled, err := h.usecase.SettlePayment(c.Request.Context(), attemptID, payload.ResolveOutcome())
	if err != nil {
		log.Printf("[ledger][handler] settle failed attempt_id=%s err=%v", attemptID, err)
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentAttempt(settled))
}

// ExpireOverdueInvoices triggers the sweep manually; it also runs on a cron.
func (h *InvoiceHandler) ExpireOverdueInvoices(c *gin.Context) {
	n, err := h.usecase.ExpireOverdueInvoices(c.Request.Context(), time.Now().UTC())
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": n})
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubmissionID), errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidAttemptID), errors.Is(err, usecase.ErrInvalidInvoiceAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidPaymentOutcome):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found or not open", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttemptNotFound):
		return pkg.NewDomainErrorSimple("ATTEMPT_NOT_FOUND", "Payment attempt not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionNotPayable):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_PAYABLE", "Submission is not accepted or published", http.StatusConflict)
	case errors.Is(err, usecase.ErrSettlementConflict):
		return pkg.NewDomainErrorSimple("SETTLEMENT_CONFLICT", "Attempt already settled with a different outcome", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceConflict):
		return pkg.NewDomainErrorSimple("INVOICE_CONFLICT", "Invoice creation conflicted with a concurrent change", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

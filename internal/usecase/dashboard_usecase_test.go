package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"research_hub/internal/domain/entities"
	mock_interfaces "research_hub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_ListByStatus(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil)
		_, err := uc.ListByStatus(context.Background(), "archived")
		if !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})

	t.Run("orders by creation time ascending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewDashboardUseCase(subRepo, nil)

		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		subRepo.EXPECT().ListByStatus(gomock.Any(), entities.SubmissionStatusSubmitted).Return([]entities.Submission{
			{ID: "sub-3", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "sub-1", CreatedAt: base},
			{ID: "sub-2", CreatedAt: base.Add(time.Hour)},
		}, nil)

		subs, err := uc.ListByStatus(context.Background(), entities.SubmissionStatusSubmitted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"sub-1", "sub-2", "sub-3"}
		for i, id := range want {
			if subs[i].ID != id {
				t.Fatalf("position %d: expected %s, got %s", i, id, subs[i].ID)
			}
		}
	})
}

func TestDashboardUseCase_ListPayable(t *testing.T) {
	t.Run("empty author email", func(t *testing.T) {
		uc := NewDashboardUseCase(nil, nil)
		_, err := uc.ListPayable(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidAuthorEmail) {
			t.Fatalf("expected ErrInvalidAuthorEmail, got %v", err)
		}
	})

	t.Run("pairs pending submissions with open invoices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewDashboardUseCase(subRepo, invRepo)

		author := "chikondi.banda@unima.mw"
		subRepo.EXPECT().ListByAuthorEmail(gomock.Any(), author).Return([]entities.Submission{
			{ID: "sub-1", Status: entities.SubmissionStatusAccepted, PaymentStatus: entities.PaymentStatusPending},
			{ID: "sub-2", Status: entities.SubmissionStatusSubmitted, PaymentStatus: entities.PaymentStatusNotApplicable},
			{ID: "sub-3", Status: entities.SubmissionStatusPublished, PaymentStatus: entities.PaymentStatusPaid},
			{ID: "sub-4", Status: entities.SubmissionStatusAccepted, PaymentStatus: entities.PaymentStatusPending},
		}, nil)
		invRepo.EXPECT().GetOpenBySubmissionID(gomock.Any(), "sub-1").
			Return(entities.Invoice{ID: "inv-1", SubmissionID: "sub-1", Status: entities.InvoiceStatusOpen}, nil)
		// sub-4's invoice expired and no new one was cut yet.
		invRepo.EXPECT().GetOpenBySubmissionID(gomock.Any(), "sub-4").Return(entities.Invoice{}, nil)

		items, err := uc.ListPayable(context.Background(), author)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 payable item, got %d", len(items))
		}
		if items[0].Submission.ID != "sub-1" || items[0].Invoice.ID != "inv-1" {
			t.Fatalf("unexpected item: %+v", items[0])
		}
	})
}

func TestDashboardUseCase_ListResubmittable(t *testing.T) {
	t.Run("only rejected without a resubmission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewDashboardUseCase(subRepo, nil)

		author := "chikondi.banda@unima.mw"
		subRepo.EXPECT().ListByAuthorEmail(gomock.Any(), author).Return([]entities.Submission{
			{ID: "sub-1", Status: entities.SubmissionStatusRejected},
			{ID: "sub-2", Status: entities.SubmissionStatusAccepted},
			{ID: "sub-3", Status: entities.SubmissionStatusRejected},
		}, nil)
		subRepo.EXPECT().HasResubmission(gomock.Any(), "sub-1").Return(false, nil)
		subRepo.EXPECT().HasResubmission(gomock.Any(), "sub-3").Return(true, nil)

		subs, err := uc.ListResubmittable(context.Background(), author)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(subs) != 1 || subs[0].ID != "sub-1" {
			t.Fatalf("unexpected result: %+v", subs)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewDashboardUseCase(subRepo, nil)

		subRepo.EXPECT().ListByAuthorEmail(gomock.Any(), "a@b.mw").Return(nil, errors.New("db"))

		if _, err := uc.ListResubmittable(context.Background(), "a@b.mw"); err == nil {
			t.Fatal("expected error")
		}
	})
}

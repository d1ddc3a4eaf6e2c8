package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"research_hub/internal/domain/entities"
	mock_interfaces "research_hub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validDraft() SubmissionDraft {
	return SubmissionDraft{
		FullName:     "Chikondi Banda",
		Email:        "chikondi.banda@unima.mw",
		Country:      "Malawi",
		Institution:  "University of Malawi",
		Field:        entities.FieldPublicHealth,
		Year:         2026,
		Title:        "Cholera outbreak modelling in the Lower Shire",
		Keywords:     []string{"cholera", "epidemiology"},
		AbstractText: "We model cholera transmission in the Lower Shire valley.",
	}
}

func TestSubmissionUseCase_Submit(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		_, err := uc.Submit(context.Background(), SubmissionDraft{})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		for _, f := range []string{"full_name", "email", "field", "title", "abstract_text|document_ref"} {
			found := false
			for _, got := range verr.Fields {
				if got == f {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected field %q in %v", f, verr.Fields)
			}
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		draft := validDraft()
		draft.Email = "not-an-email"
		_, err := uc.Submit(context.Background(), draft)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Fields) != 1 || verr.Fields[0] != "email" {
			t.Fatalf("expected [email], got %v", verr.Fields)
		}
	})

	t.Run("both abstract text and document ref", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		draft := validDraft()
		draft.DocumentRef = "doc-123"
		_, err := uc.Submit(context.Background(), draft)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if !strings.Contains(verr.Error(), "abstract_text|document_ref") {
			t.Fatalf("expected content violation, got %v", verr)
		}
	})

	t.Run("document ref only is valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		draft := validDraft()
		draft.AbstractText = ""
		draft.DocumentRef = "doc-123"

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				return s, nil
			})

		created, err := uc.Submit(context.Background(), draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.DocumentRef != "doc-123" || created.AbstractText != "" {
			t.Fatalf("unexpected content fields: %+v", created)
		}
	})

	t.Run("success persists submitted state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		var persisted entities.Submission
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				persisted = s
				return s, nil
			})

		created, err := uc.Submit(context.Background(), validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected generated id")
		}
		if persisted.Status != entities.SubmissionStatusSubmitted {
			t.Fatalf("expected submitted, got %s", persisted.Status)
		}
		if persisted.PaymentStatus != entities.PaymentStatusNotApplicable {
			t.Fatalf("expected not_applicable, got %s", persisted.PaymentStatus)
		}
		if persisted.ResubmissionOf != "" {
			t.Fatalf("expected no resubmission link, got %q", persisted.ResubmissionOf)
		}
	})

	t.Run("deduplicates keywords", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		draft := validDraft()
		draft.Keywords = []string{"cholera", " Cholera ", "", "water"}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				return s, nil
			})

		created, err := uc.Submit(context.Background(), draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created.Keywords) != 2 {
			t.Fatalf("expected 2 keywords, got %v", created.Keywords)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Submission{}, errors.New("db"))

		if _, err := uc.Submit(context.Background(), validDraft()); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestSubmissionUseCase_Transition(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		_, err := uc.Transition(context.Background(), "   ", entities.SubmissionStatusUnderReview)
		if !errors.Is(err, ErrInvalidSubmissionID) {
			t.Fatalf("expected ErrInvalidSubmissionID, got %v", err)
		}
	})

	t.Run("invalid target status", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		_, err := uc.Transition(context.Background(), "sub-1", "archived")
		if !errors.Is(err, ErrInvalidTargetStatus) {
			t.Fatalf("expected ErrInvalidTargetStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{}, nil)

		_, err := uc.Transition(context.Background(), "sub-1", entities.SubmissionStatusUnderReview)
		if !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("illegal transitions", func(t *testing.T) {
		cases := []struct {
			from entities.SubmissionStatus
			to   entities.SubmissionStatus
		}{
			{entities.SubmissionStatusSubmitted, entities.SubmissionStatusAccepted},
			{entities.SubmissionStatusSubmitted, entities.SubmissionStatusPublished},
			{entities.SubmissionStatusUnderReview, entities.SubmissionStatusPublished},
			{entities.SubmissionStatusRejected, entities.SubmissionStatusSubmitted},
			{entities.SubmissionStatusRejected, entities.SubmissionStatusAccepted},
			{entities.SubmissionStatusPublished, entities.SubmissionStatusAccepted},
			{entities.SubmissionStatusAccepted, entities.SubmissionStatusRejected},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
			uc := NewSubmissionUseCase(repo, nil, nil)

			repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: tc.from}, nil)

			_, err := uc.Transition(context.Background(), "sub-1", tc.to)
			if !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("%s -> %s: expected ErrIllegalTransition, got %v", tc.from, tc.to, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("submitted to under review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusSubmitted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatusSubmitted, entities.SubmissionStatusUnderReview).
			Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusUnderReview}, nil)

		updated, err := uc.Transition(context.Background(), "sub-1", entities.SubmissionStatusUnderReview)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.SubmissionStatusUnderReview {
			t.Fatalf("expected under_review, got %s", updated.Status)
		}
	})

	t.Run("accept triggers invoice and reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		issuer := mock_interfaces.NewMockIInvoiceIssuer(ctrl)
		uc := NewSubmissionUseCase(repo, issuer, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusUnderReview}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatusUnderReview, entities.SubmissionStatusAccepted).
			Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusAccepted}, nil)
		issuer.EXPECT().EnsureInvoice(gomock.Any(), "sub-1").Return(entities.Invoice{ID: "inv-1", SubmissionID: "sub-1"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{
			ID:            "sub-1",
			Status:        entities.SubmissionStatusAccepted,
			PaymentStatus: entities.PaymentStatusPending,
		}, nil)

		updated, err := uc.Transition(context.Background(), "sub-1", entities.SubmissionStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("expected pending payment status after reload, got %s", updated.PaymentStatus)
		}
	})

	t.Run("invoice issuer error rolls the accept back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		issuer := mock_interfaces.NewMockIInvoiceIssuer(ctrl)
		uc := NewSubmissionUseCase(repo, issuer, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusUnderReview}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatusUnderReview, entities.SubmissionStatusAccepted).
			Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusAccepted}, nil)
		issuer.EXPECT().EnsureInvoice(gomock.Any(), "sub-1").Return(entities.Invoice{}, errors.New("ledger down"))
		// The flip is undone so the accept can be re-applied once the
		// ledger recovers.
		repo.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatusAccepted, entities.SubmissionStatusUnderReview).
			Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusUnderReview}, nil)

		if _, err := uc.Transition(context.Background(), "sub-1", entities.SubmissionStatusAccepted); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("rollback failure after issuer error still surfaces the issuer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		issuer := mock_interfaces.NewMockIInvoiceIssuer(ctrl)
		uc := NewSubmissionUseCase(repo, issuer, nil)

		ledgerDown := errors.New("ledger down")
		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusUnderReview}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatusUnderReview, entities.SubmissionStatusAccepted).
			Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusAccepted}, nil)
		issuer.EXPECT().EnsureInvoice(gomock.Any(), "sub-1").Return(entities.Invoice{}, ledgerDown)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatusAccepted, entities.SubmissionStatusUnderReview).
			Return(entities.Submission{}, errors.New("db"))

		_, err := uc.Transition(context.Background(), "sub-1", entities.SubmissionStatusAccepted)
		if !errors.Is(err, ledgerDown) {
			t.Fatalf("expected the issuer error, got %v", err)
		}
	})

	t.Run("lost conditional write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusSubmitted}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatusSubmitted, entities.SubmissionStatusUnderReview).
			Return(entities.Submission{}, nil)

		_, err := uc.Transition(context.Background(), "sub-1", entities.SubmissionStatusUnderReview)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestSubmissionUseCase_Resubmit(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		_, err := uc.Resubmit(context.Background(), "", validDraft())
		if !errors.Is(err, ErrInvalidSubmissionID) {
			t.Fatalf("expected ErrInvalidSubmissionID, got %v", err)
		}
	})

	t.Run("original not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{}, nil)

		_, err := uc.Resubmit(context.Background(), "sub-1", validDraft())
		if !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("original not rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusUnderReview}, nil)

		_, err := uc.Resubmit(context.Background(), "sub-1", validDraft())
		if !errors.Is(err, ErrNotResubmittable) {
			t.Fatalf("expected ErrNotResubmittable, got %v", err)
		}
	})

	t.Run("resubmission already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusRejected}, nil)
		repo.EXPECT().HasResubmission(gomock.Any(), "sub-1").Return(true, nil)

		_, err := uc.Resubmit(context.Background(), "sub-1", validDraft())
		if !errors.Is(err, ErrResubmissionExists) {
			t.Fatalf("expected ErrResubmissionExists, got %v", err)
		}
	})

	t.Run("success links new record to original", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusRejected}, nil)
		repo.EXPECT().HasResubmission(gomock.Any(), "sub-1").Return(false, nil)

		var persisted entities.Submission
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				persisted = s
				return s, nil
			})

		created, err := uc.Resubmit(context.Background(), "sub-1", validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "sub-1" {
			t.Fatal("expected a new record, not the original")
		}
		if persisted.ResubmissionOf != "sub-1" {
			t.Fatalf("expected resubmission link, got %q", persisted.ResubmissionOf)
		}
		if persisted.Status != entities.SubmissionStatusSubmitted {
			t.Fatalf("expected submitted, got %s", persisted.Status)
		}
	})
}

func TestSubmissionUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSubmissionID) {
			t.Fatalf("expected ErrInvalidSubmissionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{}, nil)

		_, err := uc.GetByID(context.Background(), "sub-1")
		if !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil, nil)

		want := entities.Submission{ID: "sub-1", Status: entities.SubmissionStatusSubmitted, CreatedAt: time.Now().UTC()}
		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(want, nil)

		got, err := uc.GetByID(context.Background(), "sub-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID {
			t.Fatalf("expected %s, got %s", want.ID, got.ID)
		}
	})
}

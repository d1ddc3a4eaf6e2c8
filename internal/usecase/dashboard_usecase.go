package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase/interfaces"
)

var (
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidAuthorEmail  = errors.New("invalid author email")
)

// PayableItem pairs a submission awaiting payment with its open invoice.
type PayableItem struct {
	Submission entities.Submission `json:"submission"`
	Invoice    entities.Invoice    `json:"invoice"`
}

// IDashboardUseCase exposes the read-only dashboard projections. No mutation
// happens here; every call reflects the latest committed repository state.

type IDashboardUseCase interface {
	ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]entities.Submission, error)
	ListPayable(ctx context.Context, authorEmail string) ([]PayableItem, error)
	ListResubmittable(ctx context.Context, authorEmail string) ([]entities.Submission, error)
}

type DashboardUseCase struct {
	submissions interfaces.ISubmissionRepository
	invoices    interfaces.IInvoiceRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(submissions interfaces.ISubmissionRepository, invoices interfaces.IInvoiceRepository) *DashboardUseCase {
	return &DashboardUseCase{submissions: submissions, invoices: invoices}
}

func (u *DashboardUseCase) ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]entities.Submission, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatusFilter
	}

	subs, err := u.submissions.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sortByCreationAsc(subs)
	return subs, nil
}

func (u *DashboardUseCase) ListPayable(ctx context.Context, authorEmail string) ([]PayableItem, error) {
	subs, err := u.listByAuthor(ctx, authorEmail)
	if err != nil {
		return nil, err
	}

	items := make([]PayableItem, 0, len(subs))
	for _, s := range subs {
		if s.PaymentStatus != entities.PaymentStatusPending {
			continue
		}
		inv, err := u.invoices.GetOpenBySubmissionID(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		if inv.ID == "" {
			// Pending payment with no open invoice (expired); nothing to pay
			// until a new invoice is cut.
			continue
		}
		items = append(items, PayableItem{Submission: s, Invoice: inv})
	}
	return items, nil
}

func (u *DashboardUseCase) ListResubmittable(ctx context.Context, authorEmail string) ([]entities.Submission, error) {
	subs, err := u.listByAuthor(ctx, authorEmail)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Submission, 0, len(subs))
	for _, s := range subs {
		if s.Status != entities.SubmissionStatusRejected {
			continue
		}
		taken, err := u.submissions.HasResubmission(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (u *DashboardUseCase) listByAuthor(ctx context.Context, authorEmail string) ([]entities.Submission, error) {
	authorEmail = strings.TrimSpace(authorEmail)
	if authorEmail == "" {
		return nil, ErrInvalidAuthorEmail
	}

	subs, err := u.submissions.ListByAuthorEmail(ctx, authorEmail)
	if err != nil {
		return nil, err
	}
	sortByCreationAsc(subs)
	return subs, nil
}

func sortByCreationAsc(subs []entities.Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.Before(subs[j].CreatedAt)
	})
}

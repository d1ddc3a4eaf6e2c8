package interfaces

import (
	"context"

	"research_hub/internal/domain/entities"
)

// ISubmissionRepository abstracts DynamoDB persistence for Submission.
//
// Contract notes:
//   - Getters return a zero-value Submission when nothing matches.
//   - UpdateStatus and UpdatePaymentStatus are conditional writes: the update
//     applies only when the stored record still matches the expected current
//     state, and a zero-value Submission is returned when the condition fails.
//     This is the per-entity serialization point for lifecycle mutations.

type ISubmissionRepository interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.SubmissionStatus) (entities.Submission, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Submission, error)
	ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]entities.Submission, error)
	ListByAuthorEmail(ctx context.Context, email string) ([]entities.Submission, error)
	HasResubmission(ctx context.Context, id string) (bool, error)
}

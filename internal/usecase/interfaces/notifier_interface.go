package interfaces

import (
	"context"

	"research_hub/internal/domain/entities"
)

// INotifier sends author-facing notifications. Delivery is best-effort and
// must never decide the outcome of a core operation.
type INotifier interface {
	SubmissionReceived(ctx context.Context, s entities.Submission) error
	ReviewDecision(ctx context.Context, s entities.Submission) error
	PaymentConfirmed(ctx context.Context, s entities.Submission, inv entities.Invoice) error
}

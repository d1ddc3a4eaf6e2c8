package interfaces

import (
	"context"
	"time"

	"research_hub/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Create enforces at most one open invoice per submission at the store; a
// zero-value Invoice return means another open invoice already exists and
// nothing was written. UpdateStatus is a conditional write on the expected
// current status with the same zero-value convention. Two concurrent
// creations, or two concurrent open->paid flips, cannot both succeed.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetOpenBySubmissionID(ctx context.Context, submissionID string) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.InvoiceStatus) (entities.Invoice, error)
	ListOpenDueBefore(ctx context.Context, cutoff time.Time) ([]entities.Invoice, error)
}

package interfaces

import (
	"context"

	"research_hub/internal/domain/entities"
)

// IInvoiceIssuer is the slice of the ledger the lifecycle engine needs: cut
// the publication invoice (idempotently) once a submission becomes payable.
type IInvoiceIssuer interface {
	EnsureInvoice(ctx context.Context, submissionID string) (entities.Invoice, error)
}

package interfaces

import (
	"context"

	"research_hub/internal/domain/entities"
)

// IPaymentAttemptRepository abstracts DynamoDB persistence for PaymentAttempt.
//
// UpdateOutcome is conditional on the expected current outcome (zero-value
// return on a lost race), so attempts settle exactly once.

type IPaymentAttemptRepository interface {
	Create(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentAttempt, error)
	UpdateOutcome(ctx context.Context, id string, from, to entities.PaymentOutcome) (entities.PaymentAttempt, error)
	UpdateProviderRef(ctx context.Context, id, providerRef string) (entities.PaymentAttempt, error)
}

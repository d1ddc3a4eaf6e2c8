package interfaces

import (
	"context"

	"research_hub/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (card processor,
// mobile money, bank transfer, aggregator).
//
// Dispatch is fire-and-forget: it hands (invoice, amount, method) to the
// provider and returns a provider-side correlation reference. Settlement
// truth arrives later through the settle callback; a dispatch error never
// settles the attempt.
type IPaymentGateway interface {
	Dispatch(ctx context.Context, attempt entities.PaymentAttempt, invoice entities.Invoice) (providerRef string, err error)
}

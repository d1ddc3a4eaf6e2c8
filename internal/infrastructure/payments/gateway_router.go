package payments

import (
	"context"
	"log"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// GatewayRouter fans payment dispatches out by method: card goes to the
// Mercado Pago adapter, everything else (mobile money, bank, aggregator) to
// the offline acknowledger. Providers without a live integration still settle
// through the callback endpoint, driven by out-of-band reconciliation.

type GatewayRouter struct {
	card    interfaces.IPaymentGateway
	offline interfaces.IPaymentGateway
}

var _ interfaces.IPaymentGateway = (*GatewayRouter)(nil)

func NewGatewayRouter(card interfaces.IPaymentGateway) *GatewayRouter {
	return &GatewayRouter{card: card, offline: &OfflineGateway{}}
}

func (r *GatewayRouter) Dispatch(ctx context.Context, attempt entities.PaymentAttempt, invoice entities.Invoice) (string, error) {
	if attempt.Method == entities.PaymentMethodCard && r.card != nil {
		return r.card.Dispatch(ctx, attempt, invoice)
	}
	return r.offline.Dispatch(ctx, attempt, invoice)
}

// OfflineGateway acknowledges a dispatch without contacting any provider.
// Used for channels whose settlement is reported back manually or by an
// external reconciliation job.
type OfflineGateway struct{}

var _ interfaces.IPaymentGateway = (*OfflineGateway)(nil)

func (g *OfflineGateway) Dispatch(_ context.Context, attempt entities.PaymentAttempt, invoice entities.Invoice) (string, error) {
	ref := "offline-" + uuid.NewString()
	log.Printf("[payment][gateway] offline dispatch attempt_id=%s invoice_id=%s method=%s provider_ref=%s",
		attempt.ID, invoice.ID, attempt.Method, ref)
	return ref, nil
}

package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"research_hub/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway is the card-channel provider adapter.
//
// It only starts the charge; the provider reports the terminal outcome
// through the settle callback, correlated by the attempt id carried in
// external_reference.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Dispatch(ctx context.Context, attempt entities.PaymentAttempt, invoice entities.Invoice) (string, error) {
	if g != nil && g.mockMode {
		ref := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock dispatch attempt_id=%s invoice_id=%s provider_ref=%s", attempt.ID, invoice.ID, ref)
		return ref, nil
	}
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] dispatch start attempt_id=%s invoice_id=%s amount_usd=%.2f", attempt.ID, invoice.ID, invoice.AmountUSD)
	req := payment.Request{
		TransactionAmount: invoice.AmountUSD,
		Description:       fmt.Sprintf("Publication fee for submission %s", invoice.SubmissionID),
		ExternalReference: attempt.ID,
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed attempt_id=%s err=%v", attempt.ID, err)
		return "", err
	}
	log.Printf("[payment][gateway] dispatch accepted attempt_id=%s provider_payment_id=%d provider_status=%s", attempt.ID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

package entities

import "time"

// PaymentMethod enumerates the gateway channels offered on the payment page.

type PaymentMethod string

const (
	PaymentMethodPayPal     PaymentMethod = "paypal"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodAirtel     PaymentMethod = "airtel"
	PaymentMethodMTN        PaymentMethod = "mtn"
	PaymentMethodBank       PaymentMethod = "bank"
	PaymentMethodAggregator PaymentMethod = "aggregator"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPayPal, PaymentMethodCard, PaymentMethodAirtel,
		PaymentMethodMTN, PaymentMethodBank, PaymentMethodAggregator:
		return true
	}
	return false
}

// PaymentOutcome represents the settlement state of one gateway interaction.
//
// Attempts start pending and settle asynchronously through the gateway
// callback; a succeeded attempt closes its invoice and supersedes any sibling
// pending attempts.

type PaymentOutcome string

const (
	PaymentOutcomePending   PaymentOutcome = "pending"
	PaymentOutcomeSucceeded PaymentOutcome = "succeeded"
	PaymentOutcomeFailed    PaymentOutcome = "failed"
)

// Terminal reports whether an outcome is a settled end state.
func (o PaymentOutcome) Terminal() bool {
	return o == PaymentOutcomeSucceeded || o == PaymentOutcomeFailed
}

// PaymentAttempt is one gateway interaction against an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// ProviderRef keeps the provider-side correlation id for reconciliation with
// gateway callbacks and support tooling.

type PaymentAttempt struct {
	ID          string         `json:"id"`
	InvoiceID   string         `json:"invoice_id"`
	Method      PaymentMethod  `json:"method"`
	Outcome     PaymentOutcome `json:"outcome"`
	ProviderRef string         `json:"provider_ref,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

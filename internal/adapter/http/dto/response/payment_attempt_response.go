package response

import (
	"time"

	"research_hub/internal/domain/entities"
)

type PaymentAttemptResponse struct {
	ID          string    `json:"id"`
	InvoiceID   string    `json:"invoice_id"`
	Method      string    `json:"method"`
	Outcome     string    `json:"outcome"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromPaymentAttempt(a entities.PaymentAttempt) PaymentAttemptResponse {
	return PaymentAttemptResponse{
		ID:          a.ID,
		InvoiceID:   a.InvoiceID,
		Method:      string(a.Method),
		Outcome:     string(a.Outcome),
		ProviderRef: a.ProviderRef,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

package response

import (
	"time"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase"
)

type InvoiceResponse struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	AmountUSD    float64   `json:"amount_usd"`
	AmountMWK    float64   `json:"amount_mwk"`
	DueDate      time.Time `json:"due_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:           inv.ID,
		SubmissionID: inv.SubmissionID,
		AmountUSD:    inv.AmountUSD,
		AmountMWK:    inv.AmountMWK,
		DueDate:      inv.DueDate,
		Status:       string(inv.Status),
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

// PayableResponse is one dashboard row pairing a pending submission with its
// open invoice.
type PayableResponse struct {
	Submission SubmissionResponse `json:"submission"`
	Invoice    InvoiceResponse    `json:"invoice"`
}

func FromPayableItems(items []usecase.PayableItem) []PayableResponse {
	out := make([]PayableResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PayableResponse{
			Submission: FromSubmission(it.Submission),
			Invoice:    FromInvoice(it.Invoice),
		})
	}
	return out
}

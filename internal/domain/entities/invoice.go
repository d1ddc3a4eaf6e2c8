package entities

import "time"

// InvoiceStatus represents the settlement state of a publication invoice.

type InvoiceStatus string

const (
	InvoiceStatusOpen    InvoiceStatus = "open"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusExpired InvoiceStatus = "expired"
)

// Invoice is the payable obligation tied to one accepted/published submission.
//
// Storage model (DynamoDB):
//   - PK: id
//   - per-submission open-invoice marker rows share the table
//
// Monetary representation:
//   - Amounts are carried in two independent denominations (USD and MWK) as
//     published on the fee schedule; no conversion happens in this service.
//   - Zero-amount invoices are legal (fee waivers) but still require explicit
//     settlement before the submission is considered paid.
//
// At most one open invoice exists per submission at a time.

type Invoice struct {
	ID           string        `json:"id"`
	SubmissionID string        `json:"submission_id"`
	AmountUSD    float64       `json:"amount_usd"`
	AmountMWK    float64       `json:"amount_mwk"`
	DueDate      time.Time     `json:"due_date"`
	Status       InvoiceStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDueDate = errors.New("invalid due_date")

// InvoiceRequest creates an invoice explicitly (operator path). Amounts use
// pointers so an absent field is distinguishable from a legal zero amount.
type InvoiceRequest struct {
	SubmissionID string   `json:"submission_id" binding:"required"`
	AmountUSD    *float64 `json:"amount_usd"`
	AmountMWK    *float64 `json:"amount_mwk"`
	DueDate      string   `json:"due_date"`
}

func (r InvoiceRequest) ResolveSubmissionID() string {
	return strings.TrimSpace(r.SubmissionID)
}

func (r InvoiceRequest) ResolveAmounts() (usd, mwk float64, ok bool) {
	if r.AmountUSD == nil || r.AmountMWK == nil {
		return 0, 0, false
	}
	return *r.AmountUSD, *r.AmountMWK, true
}

// ResolveDueDate accepts RFC3339 or a bare calendar date.
func (r InvoiceRequest) ResolveDueDate() (time.Time, error) {
	raw := strings.TrimSpace(r.DueDate)
	if raw == "" {
		return time.Time{}, ErrInvalidDueDate
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDueDate
}

package response

import (
	"testing"
	"time"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase"
)

func TestFromInvoice(t *testing.T) {
	due := time.Now().UTC().Add(30 * 24 * time.Hour)
	inv := entities.Invoice{
		ID:           "inv-1",
		SubmissionID: "sub-1",
		AmountUSD:    1.99,
		AmountMWK:    2500,
		DueDate:      due,
		Status:       entities.InvoiceStatusOpen,
	}

	r := FromInvoice(inv)
	if r.ID != "inv-1" || r.SubmissionID != "sub-1" {
		t.Fatalf("unexpected response: %+v", r)
	}
	if r.AmountUSD != 1.99 || r.AmountMWK != 2500 {
		t.Fatalf("unexpected amounts: %+v", r)
	}
	if r.Status != "open" || !r.DueDate.Equal(due) {
		t.Fatalf("unexpected status/due: %+v", r)
	}
}

func TestFromPayableItems(t *testing.T) {
	items := []usecase.PayableItem{
		{
			Submission: entities.Submission{ID: "sub-1"},
			Invoice:    entities.Invoice{ID: "inv-1", SubmissionID: "sub-1"},
		},
	}

	out := FromPayableItems(items)
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if out[0].Submission.ID != "sub-1" || out[0].Invoice.ID != "inv-1" {
		t.Fatalf("unexpected row: %+v", out[0])
	}

	if got := FromPayableItems(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}

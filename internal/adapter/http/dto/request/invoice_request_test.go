package request

import (
	"errors"
	"testing"
	"time"
)

func TestInvoiceRequest_ResolveAmounts(t *testing.T) {
	usd, mwk := 1.99, 2500.0
	r := InvoiceRequest{AmountUSD: &usd, AmountMWK: &mwk}
	gotUSD, gotMWK, ok := r.ResolveAmounts()
	if !ok {
		t.Fatal("expected amounts to resolve")
	}
	if gotUSD != 1.99 || gotMWK != 2500 {
		t.Fatalf("unexpected amounts: %v %v", gotUSD, gotMWK)
	}

	r2 := InvoiceRequest{AmountUSD: &usd}
	if _, _, ok := r2.ResolveAmounts(); ok {
		t.Fatal("expected missing MWK amount to fail")
	}

	zero := 0.0
	r3 := InvoiceRequest{AmountUSD: &zero, AmountMWK: &zero}
	if _, _, ok := r3.ResolveAmounts(); !ok {
		t.Fatal("expected explicit zero amounts to resolve")
	}
}

func TestInvoiceRequest_ResolveDueDate(t *testing.T) {
	r := InvoiceRequest{DueDate: "2026-10-01"}
	due, err := r.ResolveDueDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if due.Year() != 2026 || due.Month() != time.October || due.Day() != 1 {
		t.Fatalf("unexpected due date: %s", due)
	}

	r2 := InvoiceRequest{DueDate: "2026-10-01T12:00:00Z"}
	if _, err := r2.ResolveDueDate(); err != nil {
		t.Fatalf("unexpected error for RFC3339: %v", err)
	}

	r3 := InvoiceRequest{DueDate: "next month"}
	if _, err := r3.ResolveDueDate(); !errors.Is(err, ErrInvalidDueDate) {
		t.Fatalf("expected ErrInvalidDueDate, got %v", err)
	}
}

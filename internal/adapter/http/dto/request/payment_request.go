package request

import (
	"strings"

	"research_hub/internal/domain/entities"
)

// PaymentAttemptRequest starts one gateway interaction against an invoice.
type PaymentAttemptRequest struct {
	Method string `json:"method" binding:"required"`
}

func (r PaymentAttemptRequest) ResolveMethod() entities.PaymentMethod {
	return entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method)))
}

// SettlementRequest is the gateway callback body reporting a terminal outcome.
type SettlementRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

func (r SettlementRequest) ResolveOutcome() entities.PaymentOutcome {
	return entities.PaymentOutcome(strings.ToLower(strings.TrimSpace(r.Outcome)))
}

package interfaces

import "context"

// ISettlementRepository applies the settle-succeeded write set as a single
// atomic unit: invoice open->paid, attempt pending->succeeded, submission
// payment status paid. A false return means a condition check failed and
// nothing was written; the invoice and attempt are exactly as a concurrent
// winner left them.

type ISettlementRepository interface {
	SettleSucceeded(ctx context.Context, invoiceID, attemptID, submissionID string) (bool, error)
}

package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvalidInvoiceID      = errors.New("invalid invoice id")
	ErrInvalidInvoiceAmount  = errors.New("invalid invoice amount")
	ErrAttemptNotFound       = errors.New("payment attempt not found")
	ErrInvalidAttemptID      = errors.New("invalid payment attempt id")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidPaymentOutcome = errors.New("invalid settlement outcome")
	ErrSubmissionNotPayable  = errors.New("submission is not accepted or published")
	ErrSettlementConflict    = errors.New("conflicting settlement for payment attempt")
	ErrInvoiceConflict       = errors.New("conflicting invoice creation")
)

// FeeConfig is the publication fee schedule applied when the accept/publish
// trigger cuts an invoice.
type FeeConfig struct {
	AmountUSD float64
	AmountMWK float64
	DueIn     time.Duration
}

// FeeConfigFromEnv reads the fee schedule from the environment.
//
// Supported env vars:
//   - PUBLICATION_FEE_USD (default: 1.99)
//   - PUBLICATION_FEE_MWK (default: 2500)
//   - INVOICE_DUE_DAYS    (default: 30)
func FeeConfigFromEnv() FeeConfig {
	return FeeConfig{
		AmountUSD: getenvFloat("PUBLICATION_FEE_USD", 1.99),
		AmountMWK: getenvFloat("PUBLICATION_FEE_MWK", 2500),
		DueIn:     time.Duration(getenvInt("INVOICE_DUE_DAYS", 30)) * 24 * time.Hour,
	}
}

// ILedgerUseCase is the invoice and payment ledger.
//
//   - CreateInvoice/EnsureInvoice cut at most one open invoice per submission.
//   - RecordPaymentAttempt appends a pending attempt and dispatches the
//     gateway fire-and-forget; the returned attempt id is the correlation key
//     for the provider callback.
//   - SettlePayment is the callback half: idempotent per attempt, conflicting
//     outcomes rejected, success commits invoice close, attempt flip and
//     submission reconciliation as one transaction.

type ILedgerUseCase interface {
	CreateInvoice(ctx context.Context, submissionID string, amountUSD, amountMWK float64, dueDate time.Time) (entities.Invoice, error)
	EnsureInvoice(ctx context.Context, submissionID string) (entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	RecordPaymentAttempt(ctx context.Context, invoiceID string, method entities.PaymentMethod) (entities.PaymentAttempt, error)
	GetAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error)
	SettlePayment(ctx context.Context, attemptID string, outcome entities.PaymentOutcome) (entities.PaymentAttempt, error)
	ExpireOverdueInvoices(ctx context.Context, now time.Time) (int, error)
}

type LedgerUseCase struct {
	invoices    interfaces.IInvoiceRepository
	attempts    interfaces.IPaymentAttemptRepository
	submissions interfaces.ISubmissionRepository
	settlements interfaces.ISettlementRepository
	gateway     interfaces.IPaymentGateway
	notifier    interfaces.INotifier
	fees        FeeConfig
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)
var _ interfaces.IInvoiceIssuer = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	invoices interfaces.IInvoiceRepository,
	attempts interfaces.IPaymentAttemptRepository,
	submissions interfaces.ISubmissionRepository,
	settlements interfaces.ISettlementRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotifier,
	fees FeeConfig,
) *LedgerUseCase {
	return &LedgerUseCase{
		invoices:    invoices,
		attempts:    attempts,
		submissions: submissions,
		settlements: settlements,
		gateway:     gateway,
		notifier:    notifier,
		fees:        fees,
	}
}

func (u *LedgerUseCase) CreateInvoice(ctx context.Context, submissionID string, amountUSD, amountMWK float64, dueDate time.Time) (entities.Invoice, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return entities.Invoice{}, ErrInvalidSubmissionID
	}
	if amountUSD < 0 || amountMWK < 0 {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}

	sub, err := u.loadPayableSubmission(ctx, submissionID)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.createInvoice(ctx, sub, amountUSD, amountMWK, dueDate)
}

// EnsureInvoice is the accept/publish trigger. It is a no-op returning the
// existing open invoice when one is already cut, and a no-op returning a
// zero-value invoice when the submission is already paid (re-publishing a
// paid submission must not re-bill).
func (u *LedgerUseCase) EnsureInvoice(ctx context.Context, submissionID string) (entities.Invoice, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return entities.Invoice{}, ErrInvalidSubmissionID
	}

	sub, err := u.loadPayableSubmission(ctx, submissionID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if sub.PaymentStatus == entities.PaymentStatusPaid {
		log.Printf("[ledger][usecase] ensure-invoice skipped submission_id=%s payment_status=paid", submissionID)
		return entities.Invoice{}, nil
	}

	due := time.Now().UTC().Add(u.fees.DueIn)
	return u.createInvoice(ctx, sub, u.fees.AmountUSD, u.fees.AmountMWK, due)
}

func (u *LedgerUseCase) createInvoice(ctx context.Context, sub entities.Submission, amountUSD, amountMWK float64, dueDate time.Time) (entities.Invoice, error) {
	existing, err := u.invoices.GetOpenBySubmissionID(ctx, sub.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID != "" {
		log.Printf("[ledger][usecase] open invoice already exists submission_id=%s invoice_id=%s", sub.ID, existing.ID)
		return existing, nil
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:           uuid.NewString(),
		SubmissionID: sub.ID,
		AmountUSD:    amountUSD,
		AmountMWK:    amountMWK,
		DueDate:      dueDate.UTC(),
		Status:       entities.InvoiceStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if created.ID == "" {
		// Lost the creation race: the store refused a second open invoice
		// for this submission. Return the winner's.
		winner, err := u.invoices.GetOpenBySubmissionID(ctx, sub.ID)
		if err != nil {
			return entities.Invoice{}, err
		}
		if winner.ID == "" {
			return entities.Invoice{}, ErrInvoiceConflict
		}
		log.Printf("[ledger][usecase] invoice creation lost race submission_id=%s invoice_id=%s", sub.ID, winner.ID)
		return winner, nil
	}

	if _, err := u.submissions.UpdatePaymentStatus(ctx, sub.ID, entities.PaymentStatusPending); err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[ledger][usecase] invoice created invoice_id=%s submission_id=%s amount_usd=%.2f amount_mwk=%.2f due=%s",
		created.ID, sub.ID, amountUSD, amountMWK, dueDate.UTC().Format(time.RFC3339))
	return created, nil
}

func (u *LedgerUseCase) loadPayableSubmission(ctx context.Context, submissionID string) (entities.Submission, error) {
	sub, err := u.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return entities.Submission{}, err
	}
	if sub.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	if sub.Status != entities.SubmissionStatusAccepted && sub.Status != entities.SubmissionStatusPublished {
		return entities.Submission{}, ErrSubmissionNotPayable
	}
	return sub, nil
}

func (u *LedgerUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *LedgerUseCase) RecordPaymentAttempt(ctx context.Context, invoiceID string, method entities.PaymentMethod) (entities.PaymentAttempt, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.PaymentAttempt{}, ErrInvalidInvoiceID
	}
	if !method.Valid() {
		return entities.PaymentAttempt{}, ErrInvalidPaymentMethod
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	// A non-open invoice is not a payable target.
	if inv.ID == "" || inv.Status != entities.InvoiceStatusOpen {
		return entities.PaymentAttempt{}, ErrInvoiceNotFound
	}

	now := time.Now().UTC()
	a := entities.PaymentAttempt{
		ID:        uuid.NewString(),
		InvoiceID: invoiceID,
		Method:    method,
		Outcome:   entities.PaymentOutcomePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.attempts.Create(ctx, a)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	log.Printf("[ledger][usecase] payment attempt recorded attempt_id=%s invoice_id=%s method=%s", created.ID, invoiceID, method)

	u.dispatchAsync(created, inv)
	return created, nil
}

// dispatchAsync hands the attempt to the gateway without blocking the caller.
// The gateway never settles anything here; settlement arrives through
// SettlePayment via the provider callback.
func (u *LedgerUseCase) dispatchAsync(attempt entities.PaymentAttempt, inv entities.Invoice) {
	if u.gateway == nil {
		log.Printf("[ledger][usecase] gateway not configured; dispatch skipped attempt_id=%s", attempt.ID)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ref, err := u.gateway.Dispatch(ctx, attempt, inv)
		if err != nil {
			log.Printf("[ledger][usecase] gateway dispatch failed attempt_id=%s method=%s err=%v", attempt.ID, attempt.Method, err)
			return
		}
		if ref == "" {
			return
		}
		if _, err := u.attempts.UpdateProviderRef(ctx, attempt.ID, ref); err != nil {
			log.Printf("[ledger][usecase] provider ref update failed attempt_id=%s provider_ref=%s err=%v", attempt.ID, ref, err)
		}
	}()
}

func (u *LedgerUseCase) GetAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentAttempt{}, ErrInvalidAttemptID
	}

	a, err := u.attempts.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if a.ID == "" {
		return entities.PaymentAttempt{}, ErrAttemptNotFound
	}
	return a, nil
}

func (u *LedgerUseCase) SettlePayment(ctx context.Context, attemptID string, outcome entities.PaymentOutcome) (entities.PaymentAttempt, error) {
	attemptID = strings.TrimSpace(attemptID)
	if attemptID == "" {
		return entities.PaymentAttempt{}, ErrInvalidAttemptID
	}
	if !outcome.Terminal() {
		return entities.PaymentAttempt{}, ErrInvalidPaymentOutcome
	}

	att, err := u.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if att.ID == "" {
		return entities.PaymentAttempt{}, ErrAttemptNotFound
	}
	if att.Outcome != entities.PaymentOutcomePending {
		if att.Outcome == outcome {
			// Idempotent re-settlement with the same outcome.
			log.Printf("[ledger][usecase] settle no-op attempt_id=%s outcome=%s", attemptID, outcome)
			return att, nil
		}
		return entities.PaymentAttempt{}, ErrSettlementConflict
	}

	if outcome == entities.PaymentOutcomeFailed {
		return u.settleFailed(ctx, attemptID)
	}
	return u.settleSucceeded(ctx, att)
}

func (u *LedgerUseCase) settleFailed(ctx context.Context, attemptID string) (entities.PaymentAttempt, error) {
	updated, err := u.attempts.UpdateOutcome(ctx, attemptID, entities.PaymentOutcomePending, entities.PaymentOutcomeFailed)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if updated.ID == "" {
		// Lost the race: someone settled this attempt between our read and
		// the conditional write.
		current, err := u.attempts.GetByID(ctx, attemptID)
		if err != nil {
			return entities.PaymentAttempt{}, err
		}
		if current.Outcome == entities.PaymentOutcomeFailed {
			return current, nil
		}
		return entities.PaymentAttempt{}, ErrSettlementConflict
	}
	log.Printf("[ledger][usecase] settle failed attempt_id=%s invoice_id=%s", updated.ID, updated.InvoiceID)
	return updated, nil
}

func (u *LedgerUseCase) settleSucceeded(ctx context.Context, att entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	inv, err := u.invoices.GetByID(ctx, att.InvoiceID)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if inv.ID == "" {
		return entities.PaymentAttempt{}, ErrInvoiceNotFound
	}

	// One transaction closes the invoice, flips the attempt and marks the
	// submission paid. A crash cannot strand a pending attempt behind an
	// already-paid invoice.
	committed, err := u.settlements.SettleSucceeded(ctx, inv.ID, att.ID, inv.SubmissionID)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if !committed {
		// Lost to a concurrent settlement. Re-read to tell a replay of the
		// same winner from a genuine conflict.
		current, err := u.attempts.GetByID(ctx, att.ID)
		if err != nil {
			return entities.PaymentAttempt{}, err
		}
		if current.Outcome == entities.PaymentOutcomeSucceeded {
			return current, nil
		}
		log.Printf("[ledger][usecase] invoice no longer open attempt_id=%s invoice_id=%s", att.ID, att.InvoiceID)
		return entities.PaymentAttempt{}, ErrSettlementConflict
	}

	updated, err := u.attempts.GetByID(ctx, att.ID)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	inv.Status = entities.InvoiceStatusPaid
	log.Printf("[ledger][usecase] settle succeeded attempt_id=%s invoice_id=%s submission_id=%s", att.ID, inv.ID, inv.SubmissionID)

	u.supersedeSiblings(ctx, inv.ID, att.ID)
	u.notifyPaid(inv)
	return updated, nil
}

// supersedeSiblings marks any other pending attempts on a paid invoice as
// failed. Best-effort; a sibling that settles concurrently just loses its own
// conditional write.
func (u *LedgerUseCase) supersedeSiblings(ctx context.Context, invoiceID, winnerID string) {
	siblings, err := u.attempts.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		log.Printf("[ledger][usecase] sibling listing failed invoice_id=%s err=%v", invoiceID, err)
		return
	}
	for _, s := range siblings {
		if s.ID == winnerID || s.Outcome != entities.PaymentOutcomePending {
			continue
		}
		if _, err := u.attempts.UpdateOutcome(ctx, s.ID, entities.PaymentOutcomePending, entities.PaymentOutcomeFailed); err != nil {
			log.Printf("[ledger][usecase] sibling supersede failed attempt_id=%s err=%v", s.ID, err)
		}
	}
}

func (u *LedgerUseCase) notifyPaid(inv entities.Invoice) {
	if u.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sub, err := u.submissions.GetByID(ctx, inv.SubmissionID)
		if err != nil || sub.ID == "" {
			log.Printf("[ledger][usecase] payment notification skipped submission_id=%s err=%v", inv.SubmissionID, err)
			return
		}
		if err := u.notifier.PaymentConfirmed(ctx, sub, inv); err != nil {
			log.Printf("[ledger][usecase] payment notification failed submission_id=%s err=%v", inv.SubmissionID, err)
		}
	}()
}

// ExpireOverdueInvoices marks open invoices past their due date as expired
// and reports how many were flipped. Submission payment status is left
// untouched; a new invoice can be cut later through the accept trigger.
func (u *LedgerUseCase) ExpireOverdueInvoices(ctx context.Context, now time.Time) (int, error) {
	due, err := u.invoices.ListOpenDueBefore(ctx, now.UTC())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, inv := range due {
		flipped, err := u.invoices.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusOpen, entities.InvoiceStatusExpired)
		if err != nil {
			return expired, err
		}
		if flipped.ID == "" {
			// Paid or expired concurrently; nothing to do.
			continue
		}
		log.Printf("[ledger][usecase] invoice expired invoice_id=%s submission_id=%s due=%s", inv.ID, inv.SubmissionID, inv.DueDate.Format(time.RFC3339))
		expired++
	}
	return expired, nil
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

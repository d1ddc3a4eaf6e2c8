package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrInvalidSubmissionID = errors.New("invalid submission id")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrInvalidTargetStatus = errors.New("invalid target status")
	ErrNotResubmittable    = errors.New("submission is not rejected")
	ErrResubmissionExists  = errors.New("submission already has a resubmission")
)

// ValidationError reports the draft fields that are missing or malformed.
// The form layer performs no validation beyond required-presence, so this is
// where a bad draft is named field by field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid submission draft: " + strings.Join(e.Fields, ", ")
}

// SubmissionDraft is the raw submission captured by the form layer.
type SubmissionDraft struct {
	FullName     string
	Email        string
	Country      string
	Institution  string
	Field        entities.ResearchField
	Year         int
	Title        string
	Keywords     []string
	AbstractText string
	DocumentRef  string
}

// allowedTransitions is the legal review state machine. Rejected->Submitted
// is deliberately absent: a rejected submission is revived only through
// Resubmit, which creates a new linked record and leaves the original as-is.
var allowedTransitions = map[entities.SubmissionStatus][]entities.SubmissionStatus{
	entities.SubmissionStatusSubmitted:   {entities.SubmissionStatusUnderReview},
	entities.SubmissionStatusUnderReview: {entities.SubmissionStatusAccepted, entities.SubmissionStatusRejected},
	entities.SubmissionStatusAccepted:    {entities.SubmissionStatusPublished},
}

func transitionAllowed(from, to entities.SubmissionStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ISubmissionUseCase is the submission lifecycle engine.
//
//   - Submit validates a draft and persists it in submitted state.
//   - Transition applies a legal review transition; entering accepted or
//     published triggers idempotent invoice creation via the ledger.
//   - Resubmit creates a new submitted record linked to a rejected original.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, draft SubmissionDraft) (entities.Submission, error)
	Transition(ctx context.Context, id string, target entities.SubmissionStatus) (entities.Submission, error)
	Resubmit(ctx context.Context, rejectedID string, draft SubmissionDraft) (entities.Submission, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
}

type SubmissionUseCase struct {
	repo     interfaces.ISubmissionRepository
	issuer   interfaces.IInvoiceIssuer
	notifier interfaces.INotifier
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(repo interfaces.ISubmissionRepository, issuer interfaces.IInvoiceIssuer, notifier interfaces.INotifier) *SubmissionUseCase {
	return &SubmissionUseCase{repo: repo, issuer: issuer, notifier: notifier}
}

func (u *SubmissionUseCase) Submit(ctx context.Context, draft SubmissionDraft) (entities.Submission, error) {
	if err := validateDraft(draft); err != nil {
		log.Printf("[submission][usecase] submit rejected err=%v", err)
		return entities.Submission{}, err
	}
	return u.createFromDraft(ctx, draft, "")
}

func (u *SubmissionUseCase) Transition(ctx context.Context, id string, target entities.SubmissionStatus) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}
	if !target.Valid() {
		return entities.Submission{}, ErrInvalidTargetStatus
	}

	sub, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if sub.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	if !transitionAllowed(sub.Status, target) {
		log.Printf("[submission][usecase] illegal transition submission_id=%s from=%s to=%s", id, sub.Status, target)
		return entities.Submission{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, sub.Status, target)
	}

	updated, err := u.repo.UpdateStatus(ctx, id, sub.Status, target)
	if err != nil {
		return entities.Submission{}, err
	}
	if updated.ID == "" {
		// Lost the conditional write: a concurrent mutation moved the
		// submission out of the from-status we validated against.
		log.Printf("[submission][usecase] transition lost race submission_id=%s from=%s to=%s", id, sub.Status, target)
		return entities.Submission{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, sub.Status, target)
	}
	log.Printf("[submission][usecase] transition applied submission_id=%s from=%s to=%s", id, sub.Status, target)

	if target == entities.SubmissionStatusAccepted || target == entities.SubmissionStatusPublished {
		if u.issuer == nil {
			return entities.Submission{}, errors.New("invoice issuer not configured")
		}
		if _, err := u.issuer.EnsureInvoice(ctx, id); err != nil {
			// Roll back the flip so the decision stays retryable; without it
			// the submission would sit accepted with no invoice and no legal
			// transition left to cut one.
			if _, rbErr := u.repo.UpdateStatus(ctx, id, target, sub.Status); rbErr != nil {
				log.Printf("[submission][usecase] transition rollback failed submission_id=%s from=%s to=%s err=%v", id, target, sub.Status, rbErr)
			}
			return entities.Submission{}, err
		}
		// Reload to pick up the payment status set by the ledger.
		updated, err = u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Submission{}, err
		}
	}

	if target == entities.SubmissionStatusAccepted || target == entities.SubmissionStatusRejected {
		u.notifyAsync("review-decision", updated, func(ctx context.Context) error {
			return u.notifier.ReviewDecision(ctx, updated)
		})
	}
	return updated, nil
}

func (u *SubmissionUseCase) Resubmit(ctx context.Context, rejectedID string, draft SubmissionDraft) (entities.Submission, error) {
	rejectedID = strings.TrimSpace(rejectedID)
	if rejectedID == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}

	original, err := u.repo.GetByID(ctx, rejectedID)
	if err != nil {
		return entities.Submission{}, err
	}
	if original.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	if original.Status != entities.SubmissionStatusRejected {
		return entities.Submission{}, ErrNotResubmittable
	}

	exists, err := u.repo.HasResubmission(ctx, rejectedID)
	if err != nil {
		return entities.Submission{}, err
	}
	if exists {
		return entities.Submission{}, ErrResubmissionExists
	}

	if err := validateDraft(draft); err != nil {
		log.Printf("[submission][usecase] resubmit rejected submission_id=%s err=%v", rejectedID, err)
		return entities.Submission{}, err
	}

	created, err := u.createFromDraft(ctx, draft, rejectedID)
	if err != nil {
		return entities.Submission{}, err
	}
	log.Printf("[submission][usecase] resubmission created submission_id=%s resubmission_of=%s", created.ID, rejectedID)
	return created, nil
}

func (u *SubmissionUseCase) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if s.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	return s, nil
}

func (u *SubmissionUseCase) createFromDraft(ctx context.Context, draft SubmissionDraft, resubmissionOf string) (entities.Submission, error) {
	now := time.Now().UTC()
	s := entities.Submission{
		ID: uuid.NewString(),
		Author: entities.Author{
			FullName:    strings.TrimSpace(draft.FullName),
			Email:       strings.TrimSpace(draft.Email),
			Country:     strings.TrimSpace(draft.Country),
			Institution: strings.TrimSpace(draft.Institution),
		},
		Field:          draft.Field,
		Year:           draft.Year,
		Title:          strings.TrimSpace(draft.Title),
		Keywords:       normalizeKeywords(draft.Keywords),
		AbstractText:   strings.TrimSpace(draft.AbstractText),
		DocumentRef:    strings.TrimSpace(draft.DocumentRef),
		Status:         entities.SubmissionStatusSubmitted,
		PaymentStatus:  entities.PaymentStatusNotApplicable,
		ResubmissionOf: resubmissionOf,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Submission{}, err
	}
	log.Printf("[submission][usecase] submission created submission_id=%s field=%q title=%q", created.ID, created.Field, created.Title)

	u.notifyAsync("submission-received", created, func(ctx context.Context) error {
		return u.notifier.SubmissionReceived(ctx, created)
	})
	return created, nil
}

// notifyAsync fires a best-effort notification without blocking the caller.
func (u *SubmissionUseCase) notifyAsync(kind string, s entities.Submission, send func(ctx context.Context) error) {
	if u.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := send(ctx); err != nil {
			log.Printf("[submission][usecase] %s notification failed submission_id=%s err=%v", kind, s.ID, err)
		}
	}()
}

func validateDraft(draft SubmissionDraft) error {
	var missing []string
	if strings.TrimSpace(draft.FullName) == "" {
		missing = append(missing, "full_name")
	}
	email := strings.TrimSpace(draft.Email)
	if email == "" {
		missing = append(missing, "email")
	} else if _, err := mail.ParseAddress(email); err != nil {
		missing = append(missing, "email")
	}
	if !draft.Field.Valid() {
		missing = append(missing, "field")
	}
	if strings.TrimSpace(draft.Title) == "" {
		missing = append(missing, "title")
	}

	hasText := strings.TrimSpace(draft.AbstractText) != ""
	hasDoc := strings.TrimSpace(draft.DocumentRef) != ""
	if hasText == hasDoc {
		// Exactly one content form: inline abstract or uploaded document.
		missing = append(missing, "abstract_text|document_ref")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func normalizeKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, k := range in {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		key := strings.ToLower(k)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, k)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

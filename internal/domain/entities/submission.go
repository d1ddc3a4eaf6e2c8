package entities

import "time"

// SubmissionStatus represents the review lifecycle of an abstract submission.
//
// Domain notes:
//   - The submission-service is the source of truth for review/payment state.
//   - Status transitions are applied only through the lifecycle use case; the
//     presentation side is a read-only consumer.

type SubmissionStatus string

const (
	SubmissionStatusSubmitted   SubmissionStatus = "submitted"
	SubmissionStatusUnderReview SubmissionStatus = "under_review"
	SubmissionStatusAccepted    SubmissionStatus = "accepted"
	SubmissionStatusRejected    SubmissionStatus = "rejected"
	SubmissionStatusPublished   SubmissionStatus = "published"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusSubmitted, SubmissionStatusUnderReview, SubmissionStatusAccepted,
		SubmissionStatusRejected, SubmissionStatusPublished:
		return true
	}
	return false
}

// PaymentStatus is the payment obligation derived from the review status.
//
// Invariant: not_applicable unless the submission is accepted or published.

type PaymentStatus string

const (
	PaymentStatusNotApplicable PaymentStatus = "not_applicable"
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPaid          PaymentStatus = "paid"
)

// ResearchField enumerates the fields of study accepted by the submission form.
type ResearchField string

const (
	FieldPublicHealth           ResearchField = "Public Health"
	FieldAgriculture            ResearchField = "Agriculture"
	FieldMiningEngineering      ResearchField = "Mining Engineering"
	FieldTechnologyICT          ResearchField = "Technology / ICT"
	FieldArtificialIntelligence ResearchField = "Artificial Intelligence"
)

func (f ResearchField) Valid() bool {
	switch f {
	case FieldPublicHealth, FieldAgriculture, FieldMiningEngineering,
		FieldTechnologyICT, FieldArtificialIntelligence:
		return true
	}
	return false
}

// Author identifies the researcher behind a submission. Email is the author
// key used by dashboard projections.
type Author struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Country     string `json:"country,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// Submission is the abstract record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//   - GSI2 (author_email-index): author_email
//   - GSI3 (resubmission_of-index): resubmission_of
//
// Content:
//   - Exactly one of AbstractText / DocumentRef is set. DocumentRef is an
//     opaque handle issued by the upload collaborator; this service never
//     reads the document itself.
//
// Records are never deleted; terminal states are retained for history, and a
// rejected original keeps its status when a resubmission is created.

type Submission struct {
	ID             string           `json:"id"`
	Author         Author           `json:"author"`
	Field          ResearchField    `json:"field"`
	Year           int              `json:"year,omitempty"`
	Title          string           `json:"title"`
	Keywords       []string         `json:"keywords,omitempty"`
	AbstractText   string           `json:"abstract_text,omitempty"`
	DocumentRef    string           `json:"document_ref,omitempty"`
	Status         SubmissionStatus `json:"status"`
	PaymentStatus  PaymentStatus    `json:"payment_status"`
	ResubmissionOf string           `json:"resubmission_of,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

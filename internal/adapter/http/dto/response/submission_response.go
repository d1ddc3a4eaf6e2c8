package response

import (
	"time"

	"research_hub/internal/domain/entities"
)

type SubmissionResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Country        string    `json:"country,omitempty"`
	Institution    string    `json:"institution,omitempty"`
	Field          string    `json:"field"`
	Year           int       `json:"year,omitempty"`
	Title          string    `json:"title"`
	Keywords       []string  `json:"keywords,omitempty"`
	AbstractText   string    `json:"abstract_text,omitempty"`
	DocumentRef    string    `json:"document_ref,omitempty"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	ResubmissionOf string    `json:"resubmission_of,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromSubmission(s entities.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:             s.ID,
		FullName:       s.Author.FullName,
		Email:          s.Author.Email,
		Country:        s.Author.Country,
		Institution:    s.Author.Institution,
		Field:          string(s.Field),
		Year:           s.Year,
		Title:          s.Title,
		Keywords:       s.Keywords,
		AbstractText:   s.AbstractText,
		DocumentRef:    s.DocumentRef,
		Status:         string(s.Status),
		PaymentStatus:  string(s.PaymentStatus),
		ResubmissionOf: s.ResubmissionOf,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromSubmissions(subs []entities.Submission) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubmission(s))
	}
	return out
}

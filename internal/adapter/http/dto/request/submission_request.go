package request

import (
	"strings"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase"
)

// SubmissionRequest is the form-capture payload. The form performs no
// validation beyond presence, so fields arrive raw and the lifecycle use
// case does the naming of what is missing.
type SubmissionRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Country      string `json:"country"`
	Institution  string `json:"institution"`
	Field        string `json:"field"`
	Year         int    `json:"year"`
	Title        string `json:"title"`
	AbstractText string `json:"abstract_text"`
	DocumentRef  string `json:"document_ref"`
	// Keywords arrive comma-separated, matching the submission form.
	Keywords string `json:"keywords"`
}

func (r SubmissionRequest) ToDraft() usecase.SubmissionDraft {
	return usecase.SubmissionDraft{
		FullName:     r.FullName,
		Email:        r.Email,
		Country:      r.Country,
		Institution:  r.Institution,
		Field:        entities.ResearchField(strings.TrimSpace(r.Field)),
		Year:         r.Year,
		Title:        r.Title,
		Keywords:     splitKeywords(r.Keywords),
		AbstractText: r.AbstractText,
		DocumentRef:  r.DocumentRef,
	}
}

func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

package request

import (
	"testing"

	"research_hub/internal/domain/entities"
)

func TestSubmissionRequest_ToDraft(t *testing.T) {
	r := SubmissionRequest{
		FullName:     "Chikondi Banda",
		Email:        "chikondi.banda@unima.mw",
		Field:        " Public Health ",
		Title:        "Cholera outbreak modelling",
		Keywords:     "cholera, epidemiology, , water",
		AbstractText: "Abstract body.",
	}

	draft := r.ToDraft()
	if draft.Field != entities.FieldPublicHealth {
		t.Fatalf("expected Public Health, got %q", draft.Field)
	}
	if len(draft.Keywords) != 3 {
		t.Fatalf("expected 3 keywords, got %v", draft.Keywords)
	}
	if draft.Keywords[0] != "cholera" || draft.Keywords[2] != "water" {
		t.Fatalf("unexpected keywords: %v", draft.Keywords)
	}
}

func TestSubmissionRequest_ToDraftEmptyKeywords(t *testing.T) {
	r := SubmissionRequest{Keywords: "  ,  "}
	if got := r.ToDraft().Keywords; got != nil {
		t.Fatalf("expected nil keywords, got %v", got)
	}
}

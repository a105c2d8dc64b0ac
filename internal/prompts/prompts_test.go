package prompts

import (
	"strings"
	"testing"

	"github.com/sant0-9/corpresearch/internal/plan"
)

func TestPlan(t *testing.T) {
	got := Plan("Acme", "sales opportunities and buying signals", "- Acme: grew 40%")

	if !strings.Contains(got, "account plan for **Acme**") {
		t.Error("prompt missing company")
	}
	for _, title := range plan.Titles {
		if !strings.Contains(got, plan.Marker(title)) {
			t.Errorf("prompt missing heading %q", title)
		}
	}
	if !strings.Contains(got, "sales opportunities") {
		t.Error("prompt missing role focus")
	}
	if !strings.Contains(got, "grew 40%") {
		t.Error("prompt missing research notes")
	}
}

func TestPlanWithoutExtras(t *testing.T) {
	got := Plan("Acme", "", "")

	if strings.Contains(got, "Tailor the content") {
		t.Error("no focus line expected")
	}
	if strings.Contains(got, "research notes") {
		t.Error("no research block expected")
	}
}

func TestSection(t *testing.T) {
	got := Section("Competitors", "Acme", "")

	if !strings.Contains(got, "Regenerate ONLY the section 'Competitors'") {
		t.Errorf("prompt = %q", got)
	}
	if !strings.Contains(got, "Acme") {
		t.Error("prompt missing company")
	}
}

func TestAnswerSkipsEmptySections(t *testing.T) {
	sections := []plan.Section{
		{Title: "Company Overview", Content: "Acme makes anvils."},
		{Title: "Recent News", Content: ""},
		{Title: "Competitors", Content: "Globex."},
	}

	got := Answer("who competes with them?", sections, "")

	if !strings.Contains(got, "Acme makes anvils.") || !strings.Contains(got, "Globex.") {
		t.Error("grounding missing filled sections")
	}
	if strings.Contains(got, "Recent News") {
		t.Error("empty sections must be skipped")
	}
	if !strings.Contains(got, "who competes with them?") {
		t.Error("question missing")
	}
}

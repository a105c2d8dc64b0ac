package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sant0-9/corpresearch/internal/plan"
	"github.com/sant0-9/corpresearch/internal/role"
)

// stubCollab records calls and returns deterministic content.
type stubCollab struct {
	genCalls   int
	genCompany string
	genRole    role.Tag
	genErr     error

	secCalls   int
	secSection string
	secCompany string
	secRole    role.Tag
	secErr     error

	ansCalls    int
	ansQuestion string
	ansRole     role.Tag
}

func (s *stubCollab) GeneratePlan(ctx context.Context, company string, r role.Tag) (*plan.Plan, error) {
	s.genCalls++
	s.genCompany = company
	s.genRole = r
	if s.genErr != nil {
		return nil, s.genErr
	}
	return plan.FromContents(map[string]string{
		"Company Overview":            company + " is a company.",
		"Recent News":                 "Fresh news.",
		"Products / Services":         "Products.",
		"Competitors":                 "Rivals.",
		"Key Opportunities / Signals": "Signals.",
		"Suggested Next Steps":        "Steps.",
	}), nil
}

func (s *stubCollab) RegenerateSection(ctx context.Context, section, company string, r role.Tag) (string, error) {
	s.secCalls++
	s.secSection = section
	s.secCompany = company
	s.secRole = r
	if s.secErr != nil {
		return "", s.secErr
	}
	return "rewritten " + section + " content", nil
}

func (s *stubCollab) Answer(ctx context.Context, question string, p *plan.Plan, r role.Tag) (string, error) {
	s.ansCalls++
	s.ansQuestion = question
	s.ansRole = r
	return "answer to: " + question, nil
}

func existingDoc(t *testing.T) string {
	t.Helper()
	return plan.FromContents(map[string]string{
		"Company Overview":            "Acme is a maker of anvils.",
		"Recent News":                 "Acme bought Initech.",
		"Products / Services":         "Anvils.",
		"Competitors":                 "Globex.",
		"Key Opportunities / Signals": "Europe.",
		"Suggested Next Steps":        "Call them.",
	}).Serialize()
}

func TestCascadeOrder(t *testing.T) {
	r := NewRouter(&stubCollab{}, nil)

	want := []string{
		"context-reveal",
		"role-question",
		"passive-role",
		"role-and-create",
		"plan-for-company",
		"bare-company",
		"bare-role",
		"section-update",
		"follow-up",
		"fallback",
	}

	got := r.RuleNames()
	if len(got) != len(want) {
		t.Fatalf("got %d rules, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCreatePlanForCompany(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	out, err := r.Route(context.Background(), "create account plan for Acme", "", "")
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "plan-for-company" {
		t.Errorf("rule = %q", out.Rule)
	}
	if !out.Changed {
		t.Fatal("expected a new document")
	}
	if stub.genCompany != "Acme" || stub.genRole != role.TagGeneral {
		t.Errorf("generated for %q under %q", stub.genCompany, stub.genRole)
	}
	if !strings.Contains(out.Message, "Acme") {
		t.Errorf("message = %q, should announce Acme", out.Message)
	}
	if out.Role != "" {
		t.Errorf("role = %q, want unchanged", out.Role)
	}
	for _, title := range plan.Titles {
		if !strings.Contains(out.Document, plan.Marker(title)) {
			t.Errorf("document missing marker for %q", title)
		}
	}
}

func TestRoleAndCreateCombined(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	out, err := r.Route(context.Background(), "I'm a student, make a plan for Globex", "", "")
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "role-and-create" {
		t.Errorf("rule = %q", out.Rule)
	}
	if stub.genCompany != "Globex" || stub.genRole != role.TagStudent {
		t.Errorf("generated for %q under %q", stub.genCompany, stub.genRole)
	}
	if out.Role != role.TagStudent {
		t.Errorf("role = %q, want student", out.Role)
	}
	if !out.Changed {
		t.Error("expected a new document")
	}
}

func TestBareCompanyHeuristic(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	out, err := r.Route(context.Background(), "tesla motors", "", role.TagSales)
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "bare-company" {
		t.Errorf("rule = %q", out.Rule)
	}
	if stub.genCompany != "Tesla Motors" {
		t.Errorf("company = %q", stub.genCompany)
	}
	if stub.genRole != role.TagSales {
		t.Errorf("role = %q, want current session role", stub.genRole)
	}
}

func TestGreetingHitsFallback(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	out, err := r.Route(context.Background(), "hello", "", "")
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "fallback" {
		t.Errorf("rule = %q, want fallback", out.Rule)
	}
	if out.Changed || out.Role != "" {
		t.Error("fallback must not change state")
	}
	if stub.genCalls != 0 {
		t.Error("no generation expected")
	}
}

func TestSectionUpdate(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)
	doc := existingDoc(t)

	out, err := r.Route(context.Background(), "update competitors section", doc, role.TagSales)
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "section-update" {
		t.Errorf("rule = %q", out.Rule)
	}
	if stub.secSection != "Competitors" {
		t.Errorf("section = %q", stub.secSection)
	}
	if stub.secCompany != "Acme" {
		t.Errorf("company guess = %q", stub.secCompany)
	}
	if stub.secRole != role.TagSales {
		t.Errorf("role = %q", stub.secRole)
	}
	if !strings.Contains(out.Message, "Competitors") {
		t.Errorf("message = %q", out.Message)
	}

	// Only the targeted section changed.
	before := plan.Parse(doc)
	after := plan.Parse(out.Document)
	for _, title := range plan.Titles {
		if title == "Competitors" {
			if after.Content(title) != "rewritten Competitors content" {
				t.Errorf("Competitors = %q", after.Content(title))
			}
			continue
		}
		if after.Content(title) != before.Content(title) {
			t.Errorf("section %q changed: %q -> %q", title, before.Content(title), after.Content(title))
		}
	}
}

func TestSectionUpdateWithoutDocumentFallsThrough(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	out, err := r.Route(context.Background(), "update competitors section", "", role.TagSales)
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "fallback" {
		t.Errorf("rule = %q, want fallback", out.Rule)
	}
	if stub.secCalls != 0 {
		t.Error("section regeneration must be gated on an existing document")
	}
}

func TestRoleQualifiedFollowUp(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)
	doc := existingDoc(t)

	out, err := r.Route(context.Background(), "as a sales rep, what opportunities are there?", doc, "")
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "role-question" {
		t.Errorf("rule = %q", out.Rule)
	}
	if out.Changed {
		t.Error("document must not change")
	}
	if out.Role != role.TagSales {
		t.Errorf("role = %q, want sales", out.Role)
	}
	if stub.ansCalls != 1 || stub.ansRole != role.TagSales {
		t.Errorf("answer calls = %d role = %q", stub.ansCalls, stub.ansRole)
	}
	if !strings.HasPrefix(out.Message, "answer to:") {
		t.Errorf("message = %q", out.Message)
	}
}

func TestContextRevealRegenerates(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)
	doc := existingDoc(t)

	out, err := r.Route(context.Background(), "how is this relevant to me? I'm an investor", doc, role.TagSales)
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "context-reveal" {
		t.Errorf("rule = %q", out.Rule)
	}
	if stub.genCompany != "Acme" || stub.genRole != role.TagInvestor {
		t.Errorf("regenerated for %q under %q", stub.genCompany, stub.genRole)
	}
	if out.Role != role.TagInvestor || !out.Changed {
		t.Errorf("role = %q changed = %v", out.Role, out.Changed)
	}
}

func TestContextRevealSameRoleNoRebuild(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	out, err := r.Route(context.Background(), "how is this relevant to me? I'm an investor", existingDoc(t), role.TagInvestor)
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "context-reveal" {
		t.Errorf("rule = %q", out.Rule)
	}
	if out.Changed || stub.genCalls != 0 {
		t.Error("same role must not trigger a rebuild")
	}
}

func TestBareRoleStatement(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	t.Run("without document", func(t *testing.T) {
		out, err := r.Route(context.Background(), "I'm an investor", "", "")
		if err != nil {
			t.Fatal(err)
		}
		if out.Rule != "bare-role" {
			t.Errorf("rule = %q", out.Rule)
		}
		if out.Role != role.TagInvestor || out.Changed {
			t.Errorf("role = %q changed = %v", out.Role, out.Changed)
		}
		if !strings.Contains(strings.ToLower(out.Message), "company") {
			t.Errorf("message should ask for a company, got %q", out.Message)
		}
	})

	t.Run("with document", func(t *testing.T) {
		out, err := r.Route(context.Background(), "I'm an investor", existingDoc(t), "")
		if err != nil {
			t.Fatal(err)
		}
		if out.Rule != "bare-role" {
			t.Errorf("rule = %q", out.Rule)
		}
		if out.Role != role.TagInvestor || out.Changed {
			t.Errorf("role = %q changed = %v", out.Role, out.Changed)
		}
		if stub.genCalls != 0 {
			t.Error("bare role must only offer, not regenerate")
		}
	})
}

func TestFreeFormFollowUp(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	out, err := r.Route(context.Background(), "who are their biggest rivals in Europe?", existingDoc(t), role.TagSales)
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "follow-up" {
		t.Errorf("rule = %q", out.Rule)
	}
	if out.Changed {
		t.Error("answering must not touch the document")
	}
	if stub.ansRole != role.TagSales {
		t.Errorf("answer role = %q", stub.ansRole)
	}
}

func TestPassiveRoleAdoption(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	// No terminal rule matches, but the role keyword is still adopted.
	out, err := r.Route(context.Background(), "update competitors section", "", "")
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "fallback" {
		t.Errorf("rule = %q", out.Rule)
	}
	if out.Role != role.TagCompetitor {
		t.Errorf("role = %q, want passively adopted competitor-analyst", out.Role)
	}
}

func TestStatementIsNotAQuestion(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	// "showing" contains "how" but the utterance is a plain statement.
	out, err := r.Route(context.Background(), "Acme is showing strong growth", existingDoc(t), "")
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "fallback" {
		t.Errorf("rule = %q, want fallback", out.Rule)
	}
	if stub.ansCalls != 0 {
		t.Error("statements must not reach the answer path")
	}
}

func TestRoleWordInsideCompanyName(t *testing.T) {
	stub := &stubCollab{}
	r := NewRouter(stub, nil)

	// "Salesforce" contains the sales keyword but states no role.
	out, err := r.Route(context.Background(), "create an account plan for Salesforce", "", "")
	if err != nil {
		t.Fatal(err)
	}

	if out.Rule != "plan-for-company" {
		t.Errorf("rule = %q, want plan-for-company", out.Rule)
	}
	if stub.genCompany != "Salesforce" || stub.genRole != role.TagGeneral {
		t.Errorf("generated for %q under %q", stub.genCompany, stub.genRole)
	}
	if out.Role != "" {
		t.Errorf("role = %q, want unchanged", out.Role)
	}
}

func TestCollaboratorFailureLeavesStateAlone(t *testing.T) {
	stub := &stubCollab{genErr: errors.New("provider down")}
	r := NewRouter(stub, nil)

	out, err := r.Route(context.Background(), "create account plan for Acme", "", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if out != nil {
		t.Fatal("no outcome on failure")
	}
}

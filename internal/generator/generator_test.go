package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sant0-9/corpresearch/internal/llm"
	"github.com/sant0-9/corpresearch/internal/plan"
	"github.com/sant0-9/corpresearch/internal/role"
)

// failingProvider errors on every completion.
type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }

func (failingProvider) Ping(ctx context.Context) error { return nil }

func (failingProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return nil, errors.New("boom")
}

// proseProvider returns text without any section markers.
type proseProvider struct{}

func (proseProvider) Name() string { return "prose" }

func (proseProvider) Ping(ctx context.Context) error { return nil }

func (proseProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: "Here is some chat about the company instead of a plan."}, nil
}

func TestGeneratePlan(t *testing.T) {
	svc := New(llm.NewMockProvider(), "mock", nil)

	p, err := svc.GeneratePlan(context.Background(), "Acme", role.TagSales)
	if err != nil {
		t.Fatal(err)
	}

	if got := p.Content("Company Overview"); !strings.Contains(got, "Acme") {
		t.Errorf("overview = %q, want company name", got)
	}
	for _, s := range p.Sections() {
		if s.Content == "" {
			t.Errorf("section %q is empty", s.Title)
		}
	}
}

func TestGeneratePlanProviderError(t *testing.T) {
	svc := New(failingProvider{}, "m", nil)

	p, err := svc.GeneratePlan(context.Background(), "Acme", role.TagGeneral)
	if err == nil {
		t.Fatal("expected error")
	}
	if p != nil {
		t.Error("no partial plan on failure")
	}
	if !strings.Contains(err.Error(), "Acme") {
		t.Errorf("error should name the company: %v", err)
	}
}

func TestGeneratePlanUnparseableResponse(t *testing.T) {
	svc := New(proseProvider{}, "m", nil)

	_, err := svc.GeneratePlan(context.Background(), "Acme", role.TagGeneral)
	if err == nil {
		t.Fatal("expected error for a markerless response")
	}
	if !strings.Contains(err.Error(), "no recognizable sections") {
		t.Errorf("error = %v", err)
	}
}

func TestRegenerateSection(t *testing.T) {
	svc := New(llm.NewMockProvider(), "mock", nil)

	got, err := svc.RegenerateSection(context.Background(), "Competitors", "Acme", role.TagGeneral)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Competitors") {
		t.Errorf("content = %q", got)
	}
	if strings.Contains(got, "<div") {
		t.Errorf("section content must be marker-free, got %q", got)
	}
}

func TestRegenerateSectionProviderError(t *testing.T) {
	svc := New(failingProvider{}, "m", nil)

	got, err := svc.RegenerateSection(context.Background(), "Competitors", "Acme", role.TagGeneral)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != "" {
		t.Errorf("content = %q, want empty on failure", got)
	}
}

func TestAnswer(t *testing.T) {
	svc := New(llm.NewMockProvider(), "mock", nil)
	p := plan.FromContents(map[string]string{"Company Overview": "Acme makes anvils."})

	got, err := svc.Answer(context.Background(), "what do they make?", p, role.TagSales)
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected an answer")
	}
}

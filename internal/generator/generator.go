package generator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sant0-9/corpresearch/internal/llm"
	"github.com/sant0-9/corpresearch/internal/plan"
	"github.com/sant0-9/corpresearch/internal/prompts"
	"github.com/sant0-9/corpresearch/internal/role"
	"github.com/sant0-9/corpresearch/internal/search"
)

// Service produces plan content through an LLM provider. It implements
// agent.Collaborator. Each method is one synchronous completion call;
// failures propagate without partial results.
type Service struct {
	provider llm.Provider
	model    string
	searcher *search.Client
	log      *zap.Logger
}

func New(provider llm.Provider, model string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider: provider,
		model:    model,
		log:      log,
	}
}

// WithSearch enables web research grounding for full plan generation.
func (s *Service) WithSearch(c *search.Client) *Service {
	s.searcher = c
	return s
}

// GeneratePlan asks the provider for a complete six-section plan and parses
// it into the canonical structure.
func (s *Service) GeneratePlan(ctx context.Context, company string, r role.Tag) (*plan.Plan, error) {
	research := ""
	if s.searcher != nil {
		items, err := s.searcher.Company(ctx, company)
		if err != nil {
			// Research is enrichment; generation proceeds without it.
			s.log.Warn("company research failed", zap.String("company", company), zap.Error(err))
		} else {
			research = search.Notes(items, 12)
		}
	}

	req := llm.NewRequest(s.model, prompts.Plan(company, role.Focus(r), research))
	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate plan for %s: %w", company, err)
	}

	p := plan.Parse(resp.Content)
	if empty(p) {
		return nil, fmt.Errorf("generate plan for %s: response had no recognizable sections", company)
	}

	s.log.Info("generated plan",
		zap.String("company", company),
		zap.String("role", string(r)),
		zap.Int("tokens", resp.Usage.TotalTokens))
	return p, nil
}

// RegenerateSection asks the provider for replacement content for exactly one
// section, marker-free.
func (s *Service) RegenerateSection(ctx context.Context, section, company string, r role.Tag) (string, error) {
	req := llm.NewRequest(s.model, prompts.Section(section, company, role.Focus(r)))
	req.MaxTokens = 400

	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("regenerate section %q: %w", section, err)
	}

	s.log.Info("regenerated section",
		zap.String("section", section),
		zap.String("company", company))
	return resp.Content, nil
}

// Answer responds to a follow-up question grounded on the parsed plan.
func (s *Service) Answer(ctx context.Context, question string, p *plan.Plan, r role.Tag) (string, error) {
	req := llm.NewRequest(s.model, prompts.Answer(question, p.Sections(), role.Focus(r)))
	req.MaxTokens = 600

	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("answer question: %w", err)
	}
	return resp.Content, nil
}

func empty(p *plan.Plan) bool {
	for _, s := range p.Sections() {
		if s.Content != "" {
			return false
		}
	}
	return true
}

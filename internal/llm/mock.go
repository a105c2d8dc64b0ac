package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockProvider returns canned content without any network access. It stands
// in for a real provider when no API key is configured, so the assistant
// stays usable offline.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return nil
}

// Complete inspects the prompt for the marker phrases the generator uses and
// answers in the expected shape: a full six-section plan body, a bare section
// body, or a one-line answer.
func (m *MockProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	prompt := ""
	for _, msg := range req.Messages {
		if msg.Role == "user" {
			prompt = msg.Content
		}
	}

	var content string
	switch {
	case strings.Contains(prompt, "account plan for **"):
		content = mockPlan(extractBetween(prompt, "account plan for **", "**"))
	case strings.Contains(prompt, "Regenerate ONLY the section '"):
		section := extractBetween(prompt, "Regenerate ONLY the section '", "'")
		content = fmt.Sprintf("Mock regenerated content for %s.", section)
	default:
		content = "Mock answer based on the current account plan."
	}

	return &CompletionResponse{
		Content:      content,
		Model:        "mock",
		FinishReason: "stop",
	}, nil
}

func mockPlan(company string) string {
	if company == "" {
		company = "the company"
	}
	return strings.TrimSpace(fmt.Sprintf(`
<div class='section-title'>Company Overview</div>
Mock overview for %s.

<div class='section-title'>Recent News</div>
Mock news data.

<div class='section-title'>Products / Services</div>
Mock product details.

<div class='section-title'>Competitors</div>
Mock competitors list.

<div class='section-title'>Key Opportunities / Signals</div>
Mock opportunities.

<div class='section-title'>Suggested Next Steps</div>
Mock strategic actions.
`, company))
}

func extractBetween(s, open, close string) string {
	start := strings.Index(s, open)
	if start < 0 {
		return ""
	}
	rest := s[start+len(open):]
	end := strings.Index(rest, close)
	if end < 0 {
		return ""
	}
	return rest[:end]
}

package prompts

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/sant0-9/corpresearch/internal/plan"
)

//go:embed plan.md
var planBase string

//go:embed section.md
var sectionBase string

//go:embed answer.md
var answerBase string

// Plan builds the full-generation prompt. focus tailors the content to the
// requester's role; research is optional grounding from web search.
func Plan(company, focus, research string) string {
	var headings strings.Builder
	for _, t := range plan.Titles {
		headings.WriteString(plan.Marker(t))
		headings.WriteString("\n")
	}

	p := strings.TrimSpace(planBase)
	p = strings.ReplaceAll(p, "{{company}}", company)
	p = strings.ReplaceAll(p, "{{headings}}", strings.TrimSpace(headings.String()))

	if focus != "" {
		p += fmt.Sprintf("\n\nTailor the content for %s.", focus)
	}
	if research != "" {
		p += "\n\nUse these research notes where relevant:\n" + research
	}
	return p
}

// Section builds the single-section regeneration prompt.
func Section(section, company, focus string) string {
	p := strings.TrimSpace(sectionBase)
	p = strings.ReplaceAll(p, "{{section}}", section)
	p = strings.ReplaceAll(p, "{{company}}", company)
	if focus != "" {
		p += fmt.Sprintf("\nTailor the content for %s.", focus)
	}
	return p
}

// Answer builds the follow-up question prompt, grounded on the plan sections.
func Answer(question string, sections []plan.Section, focus string) string {
	var grounding strings.Builder
	for _, s := range sections {
		if s.Content == "" {
			continue
		}
		grounding.WriteString(s.Title)
		grounding.WriteString(":\n")
		grounding.WriteString(s.Content)
		grounding.WriteString("\n\n")
	}

	p := strings.TrimSpace(answerBase)
	p = strings.ReplaceAll(p, "{{plan}}", strings.TrimSpace(grounding.String()))
	p = strings.ReplaceAll(p, "{{question}}", question)
	if focus != "" {
		p += fmt.Sprintf("\nAnswer from the perspective useful to %s.", focus)
	}
	return p
}

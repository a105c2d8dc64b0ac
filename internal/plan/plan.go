package plan

import (
	"strings"
)

// Titles is the canonical section list, in order. Every plan carries exactly
// these sections; serialization always emits them in this order.
var Titles = []string{
	"Company Overview",
	"Recent News",
	"Products / Services",
	"Competitors",
	"Key Opportunities / Signals",
	"Suggested Next Steps",
}

const (
	markerOpen  = "<div class='section-title'>"
	markerClose = "</div>"
)

// Marker returns the serialized delimiter line for a section title.
func Marker(title string) string {
	return markerOpen + title + markerClose
}

// Section is one titled slice of a plan.
type Section struct {
	Title   string
	Content string
}

// Plan is an account plan: the six canonical sections in canonical order.
// Sections missing from a parsed input are present with empty content.
type Plan struct {
	sections []Section
}

// New creates an empty plan with all canonical sections.
func New() *Plan {
	p := &Plan{sections: make([]Section, len(Titles))}
	for i, t := range Titles {
		p.sections[i] = Section{Title: t}
	}
	return p
}

// FromContents builds a plan from a title -> content mapping. Unknown titles
// are ignored, missing titles get empty content.
func FromContents(contents map[string]string) *Plan {
	p := New()
	for i := range p.sections {
		if c, ok := contents[p.sections[i].Title]; ok {
			p.sections[i].Content = strings.TrimSpace(c)
		}
	}
	return p
}

// Parse splits serialized plan text into a plan. It tolerates missing or
// reordered markers and trailing whitespace; anything before the first marker
// and any unknown marker is dropped. Parse never fails: a malformed input
// simply yields empty sections.
func Parse(text string) *Plan {
	contents := make(map[string]string)

	chunks := strings.Split(text, markerOpen)
	// chunks[0] is preamble before the first marker, if any.
	for _, chunk := range chunks[1:] {
		end := strings.Index(chunk, markerClose)
		if end < 0 {
			continue
		}
		title := strings.TrimSpace(chunk[:end])
		contents[title] = strings.TrimSpace(chunk[end+len(markerClose):])
	}

	return FromContents(contents)
}

// Serialize renders the plan in the canonical wire format: each section's
// marker line followed by its content, in canonical order.
func (p *Plan) Serialize() string {
	var b strings.Builder
	for _, s := range p.sections {
		b.WriteString(Marker(s.Title))
		b.WriteString("\n")
		b.WriteString(s.Content)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Sections returns a copy of the ordered section list.
func (p *Plan) Sections() []Section {
	out := make([]Section, len(p.sections))
	copy(out, p.sections)
	return out
}

// Content returns the content of the named section.
func (p *Plan) Content(title string) string {
	for _, s := range p.sections {
		if s.Title == title {
			return s.Content
		}
	}
	return ""
}

// SetContent replaces the content of the named section, leaving title and
// position untouched. Unknown titles are ignored.
func (p *Plan) SetContent(title, content string) {
	for i := range p.sections {
		if p.sections[i].Title == title {
			p.sections[i].Content = strings.TrimSpace(content)
			return
		}
	}
}

// Contents returns a title -> content mapping of the plan.
func (p *Plan) Contents() map[string]string {
	out := make(map[string]string, len(p.sections))
	for _, s := range p.sections {
		out[s.Title] = s.Content
	}
	return out
}

// MatchTitle reports the canonical title mentioned in the given lowercased
// text, if any. Declaration order breaks ties.
func MatchTitle(lower string) (string, bool) {
	for _, t := range Titles {
		if strings.Contains(lower, strings.ToLower(t)) {
			return t, true
		}
	}
	return "", false
}

package role

import "strings"

// Tag identifies the requester's professional perspective.
type Tag string

const (
	TagGeneral    Tag = "general"
	TagSales      Tag = "sales"
	TagStudent    Tag = "student"
	TagInvestor   Tag = "investor"
	TagPartner    Tag = "partner"
	TagCompetitor Tag = "competitor-analyst"
	TagRecruiter  Tag = "recruiter"
)

type definition struct {
	Tag      Tag
	Display  string
	Focus    string
	Keywords []string
}

// definitions is ordered: Detect returns the first tag whose keyword occurs
// in the text. The order is part of the contract: it is the documented
// tie-break when keywords of several roles appear in one utterance.
var definitions = []definition{
	{
		Tag:      TagSales,
		Display:  "Sales",
		Focus:    "a sales professional preparing outreach: emphasize buying signals, budget owners, and concrete next steps to open or grow the account",
		Keywords: []string{"sales", "account executive", "selling", "quota", "prospecting"},
	},
	{
		Tag:      TagStudent,
		Display:  "Student",
		Focus:    "a student researching the company: emphasize plain-language explanations, business model basics, and industry context",
		Keywords: []string{"student", "studying", "university", "college", "class project", "thesis"},
	},
	{
		Tag:      TagInvestor,
		Display:  "Investor",
		Focus:    "an investor evaluating the company: emphasize financial performance, growth trajectory, risks, and market position",
		Keywords: []string{"investor", "investing", "shareholder", "venture capital", "portfolio manager"},
	},
	{
		Tag:      TagPartner,
		Display:  "Partner",
		Focus:    "a prospective business partner: emphasize integration opportunities, partner programs, and strategic fit",
		Keywords: []string{"partner", "reseller", "alliance", "integrator"},
	},
	{
		Tag:      TagCompetitor,
		Display:  "Competitor Analyst",
		Focus:    "a competitive analyst: emphasize strengths, weaknesses, differentiation, and strategic moves to watch",
		Keywords: []string{"competitor", "competitive analysis", "rival"},
	},
	{
		Tag:      TagRecruiter,
		Display:  "Recruiter",
		Focus:    "a recruiter or candidate: emphasize team structure, hiring activity, culture, and growth areas",
		Keywords: []string{"recruiter", "recruiting", "hiring", "headhunter", "job candidate"},
	},
}

// Detect maps free text to a role tag. Input is lowercased and each role's
// keywords are checked as substrings, first match wins by declaration order.
// Returns TagGeneral when nothing matches.
func Detect(text string) Tag {
	lower := strings.ToLower(text)
	for _, d := range definitions {
		for _, kw := range d.Keywords {
			if strings.Contains(lower, kw) {
				return d.Tag
			}
		}
	}
	return TagGeneral
}

// DetectToken is Detect restricted to whole-token keyword hits, so a keyword
// embedded in a longer word ("Salesforce") does not count as a stated role.
// Plural forms still match; multi-word keywords are checked as phrases.
func DetectToken(text string) Tag {
	lower := strings.ToLower(text)
	tokens := strings.Fields(lower)
	for i, tok := range tokens {
		tokens[i] = strings.Trim(tok, ".,!?'\"")
	}

	for _, d := range definitions {
		for _, kw := range d.Keywords {
			if strings.Contains(kw, " ") {
				if strings.Contains(lower, kw) {
					return d.Tag
				}
				continue
			}
			for _, tok := range tokens {
				if tok == kw || tok == kw+"s" {
					return d.Tag
				}
			}
		}
	}
	return TagGeneral
}

// Tags returns the closed tag set in declaration order, without the default.
func Tags() []Tag {
	out := make([]Tag, len(definitions))
	for i, d := range definitions {
		out[i] = d.Tag
	}
	return out
}

// AllKeywords returns every trigger keyword across the role set, in
// declaration order.
func AllKeywords() []string {
	var out []string
	for _, d := range definitions {
		out = append(out, d.Keywords...)
	}
	return out
}

// Display returns a human-readable name for a tag.
func Display(t Tag) string {
	for _, d := range definitions {
		if d.Tag == t {
			return d.Display
		}
	}
	return "General"
}

// Focus returns the generation guidance for a tag, used to tailor plan
// content. Empty for the default tag.
func Focus(t Tag) string {
	for _, d := range definitions {
		if d.Tag == t {
			return d.Focus
		}
	}
	return ""
}

// Keyword returns one representative trigger for a tag, mainly for tests and
// acknowledgment messages.
func Keyword(t Tag) string {
	for _, d := range definitions {
		if d.Tag == t {
			return d.Keywords[0]
		}
	}
	return ""
}

package plan

import "regexp"

// PlaceholderCompany is used when no company name can be recovered from a plan.
const PlaceholderCompany = "the company"

var capitalizedWord = regexp.MustCompile(`\b([A-Z][A-Za-z0-9]+)\b`)

// GuessCompany recovers a company name from the overview section using a
// capitalized-word heuristic. Best effort: returns PlaceholderCompany when
// the overview is empty or holds no candidate.
func (p *Plan) GuessCompany() string {
	overview := p.Content(Titles[0])
	if m := capitalizedWord.FindStringSubmatch(overview); m != nil {
		return m[1]
	}
	return PlaceholderCompany
}

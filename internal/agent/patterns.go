package agent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sant0-9/corpresearch/internal/role"
)

var (
	createVerbs = []string{"create", "make", "build", "generate"}
	editVerbs   = []string{"update", "change", "regenerate", "rewrite"}

	// questionWords flag an utterance as a follow-up question when they
	// appear as whole tokens; "how" inside "showing" does not count.
	questionWords = map[string]bool{
		"what": true, "how": true, "why": true, "who": true,
		"when": true, "where": true, "which": true,
		"explain": true, "summarize": true,
	}
	questionPhrases = []string{"tell me"}

	// smallTalk keeps greetings and courtesies out of the bare-company
	// heuristic ("hello" is not a company).
	smallTalk = map[string]bool{
		"hello": true, "hi": true, "hey": true, "yo": true,
		"thanks": true, "thank": true, "you": true, "please": true,
		"ok": true, "okay": true, "yes": true, "no": true, "sure": true,
		"help": true, "bye": true, "goodbye": true, "there": true,
	}

	// "make/create ... plan ... for <company>", matched on lowercased text.
	reCreatePlanFor = regexp.MustCompile(`(?:create|make|build|generate)\b.*?\bplan\b.*?\bfor\s+(.+)`)

	// "how is this relevant to me" and friends.
	reRelevance = regexp.MustCompile(`relevant (?:to|for) me|why does this matter|what does this mean for me|how does this (?:relate|apply) to me`)

	// role hint after "I'm a ..." / "I am a ...".
	reIAmRole = regexp.MustCompile(`\b(?:i am|i'm|im)\s+(?:an?\s+)?([a-z][a-z' -]*)`)

	// "as a <role>, <question word> ..." at the start of the utterance.
	reAsRoleQuestion = regexp.MustCompile(`^as\s+an?\s+([a-z][a-z' -]*?),?\s+(?:what|how|why|which|where|who|when|can|could|should|would|do|does|is|are|tell)\b`)

	// a short run of alphabetic, possibly hyphenated words.
	reBareCompany = regexp.MustCompile(`^[a-zA-Z][a-zA-Z-]*(?:\s+[a-zA-Z][a-zA-Z-]*){0,2}$`)

	titleCaser = cases.Title(language.English)
)

// titleCase normalizes an extracted identifier, mirroring the original
// title-casing of captured company names.
func titleCase(s string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(s)))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// extractCompany pulls the company name out of a creation request.
// Returns "" when the pattern does not capture one.
func extractCompany(lower string) string {
	m := reCreatePlanFor.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	name := strings.Trim(m[1], " .,!?'\"")
	if name == "" {
		return ""
	}
	return titleCase(name)
}

// isQuestion reports whether the utterance reads as a question: a question
// mark, a question word as a whole token, or an asking phrase.
func isQuestion(lower string) bool {
	if strings.Contains(lower, "?") {
		return true
	}
	for _, tok := range strings.Fields(lower) {
		tok = strings.Trim(tok, ".,!'\"")
		tok = strings.TrimSuffix(tok, "'s")
		if questionWords[tok] {
			return true
		}
	}
	return containsAny(lower, questionPhrases)
}

// looksLikeCompany implements the bare-company heuristic: at most three
// alphabetic (or hyphenated) words, none of which is small talk or a
// role trigger word.
func looksLikeCompany(utterance string) bool {
	trimmed := strings.TrimSpace(utterance)
	if !reBareCompany.MatchString(trimmed) {
		return false
	}

	tokens := strings.Fields(strings.ToLower(trimmed))
	if len(tokens) == 0 || len(tokens) > 3 {
		return false
	}

	for _, tok := range tokens {
		if smallTalk[tok] {
			return false
		}
		for _, verb := range createVerbs {
			if tok == verb {
				return false
			}
		}
		for _, verb := range editVerbs {
			if tok == verb {
				return false
			}
		}
		// Exact or plural keyword hits only: "competitors" is a role word,
		// "Salesforce" is a company.
		for _, kw := range role.AllKeywords() {
			if tok == kw || tok == kw+"s" {
				return false
			}
		}
	}
	return true
}

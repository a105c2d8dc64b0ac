package role

import "testing"

func TestDetectRoundTrip(t *testing.T) {
	// Every tag's own trigger keyword must map back to that tag.
	for _, tag := range Tags() {
		if got := Detect(Keyword(tag)); got != tag {
			t.Errorf("Detect(%q) = %q, want %q", Keyword(tag), got, tag)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want Tag
	}{
		{"I'm a student working on a thesis", TagStudent},
		{"as a sales rep I need talking points", TagSales},
		{"we are evaluating this as an investor", TagInvestor},
		{"looking for a reseller partnership", TagPartner},
		{"doing a competitive analysis", TagCompetitor},
		{"I'm a recruiter hiring engineers", TagRecruiter},
		{"HELLO THERE", TagGeneral},
		{"", TagGeneral},
	}

	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectFirstMatchWins(t *testing.T) {
	// Sales is declared before student, so it wins when both appear.
	if got := Detect("a student of sales techniques"); got != TagSales {
		t.Errorf("Detect = %q, want %q (declaration order tie-break)", got, TagSales)
	}
}

func TestDetectToken(t *testing.T) {
	tests := []struct {
		text string
		want Tag
	}{
		{"i'm a student, make a plan for globex", TagStudent},
		{"update competitors section", TagCompetitor},
		{"doing a competitive analysis", TagCompetitor},
		{"as a sales rep", TagSales},
		// Keywords embedded in longer words do not count.
		{"create an account plan for salesforce", TagGeneral},
		{"salesforce", TagGeneral},
		{"", TagGeneral},
	}

	for _, tt := range tests {
		if got := DetectToken(tt.text); got != tt.want {
			t.Errorf("DetectToken(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDisplayAndFocus(t *testing.T) {
	for _, tag := range Tags() {
		if Display(tag) == "" || Display(tag) == "General" {
			t.Errorf("Display(%q) missing", tag)
		}
		if Focus(tag) == "" {
			t.Errorf("Focus(%q) missing", tag)
		}
	}
	if Display(TagGeneral) != "General" {
		t.Errorf("Display(general) = %q", Display(TagGeneral))
	}
	if Focus(TagGeneral) != "" {
		t.Errorf("Focus(general) should be empty")
	}
}

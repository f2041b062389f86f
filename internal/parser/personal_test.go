package parser

import "testing"

func TestExtractPhone(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "Call 555-123-4567 anytime", "555-123-4567"},
		{"parenthesized", "(555) 123-4567", "(555) 123-4567"},
		{"international", "+1 555 123 4567", "+1 555 123 4567"},
		{"bare ten digits", "Phone: 5551234567", "5551234567"},
		{"year-like prefix rejected", "ID 2023456789", ""},
		{"digit adjacent rejected", "Order 15551234567890", ""},
		{"years are not phones", "Graduated 2016, promoted 2019", ""},
		{"none", "no digits here", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractPhone(tc.text); got != tc.want {
				t.Fatalf("extractPhone(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractPersonalLinks(t *testing.T) {
	text := "Jane Smith\nlinkedin.com/in/jane-smith | github.com/janesmith"
	info := extractPersonal(text, text, HeuristicRecognizer{})

	if info.FullName != "Jane Smith" {
		t.Fatalf("full name = %q, want Jane Smith", info.FullName)
	}
	if info.LinkedIn != "linkedin.com/in/jane-smith" {
		t.Fatalf("linkedin = %q", info.LinkedIn)
	}
	if info.GitHub != "github.com/janesmith" {
		t.Fatalf("github = %q", info.GitHub)
	}
}

func TestRankCandidatesPrefersRecognizer(t *testing.T) {
	pool := []Candidate{
		{Text: "Pattern Name", Confidence: 0.9, Source: sourcePattern},
		{Text: "Recognizer Name", Confidence: 0.9, Source: sourceRecognizer},
		{Text: "Low Name", Confidence: 0.5, Source: sourceRecognizer},
	}
	ranked := rankCandidates(pool)

	if ranked[0].Text != "Recognizer Name" {
		t.Fatalf("top candidate = %q, want the recognizer-sourced one", ranked[0].Text)
	}
	if ranked[2].Text != "Low Name" {
		t.Fatalf("last candidate = %q, want the low-confidence one", ranked[2].Text)
	}
}

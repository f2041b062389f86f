package parser

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractSummaryFromSection(t *testing.T) {
	text := "SUMMARY\nSeasoned backend engineer. Ships reliable services. Mentors juniors. Fourth sentence.\nEXPERIENCE\nAcme"

	got := extractSummary(text)
	if !strings.HasPrefix(got, "Seasoned backend engineer") {
		t.Fatalf("summary = %q", got)
	}
	if strings.Contains(got, "Fourth sentence") {
		t.Fatalf("summary = %q, want at most three sentences", got)
	}
}

func TestExtractSummaryFallbackLine(t *testing.T) {
	text := "John Doe\nA results-driven engineer with a decade of experience building platforms"

	got := extractSummary(text)
	if !strings.Contains(got, "results-driven") {
		t.Fatalf("summary = %q, want the first substantial line", got)
	}
}

func TestCapLen(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short unchanged", "hello", 10, "hello"},
		{"exact unchanged", "hello", 5, "hello"},
		{"ascii cut", "hello", 3, "hel"},
		{"rune not split", "ab€cd", 4, "ab"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := capLen(tc.in, tc.max); got != tc.want {
				t.Fatalf("capLen(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestCapLenMultiByteRun(t *testing.T) {
	// 3-byte runes; maxSummaryLen is not a multiple of 3, so a byte-index
	// cut would land inside a rune.
	s := strings.Repeat("€", maxSummaryLen)

	got := capLen(s, maxSummaryLen)
	if len(got) > maxSummaryLen {
		t.Fatalf("capped length = %d, want at most %d", len(got), maxSummaryLen)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("capped string is not valid UTF-8: %q", got[len(got)-4:])
	}
}

package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var summarySectionKeywords = []string{
	"summary", "objective", "profile", "about", "overview",
}

const (
	maxSummaryLen     = 500
	summarySentences  = 3
	summaryLineMinLen = 50
	summaryScanLines  = 10
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// extractSummary takes the first sentences of a summary section when one
// exists, otherwise falls back to the first substantial line near the top of
// the document.
func extractSummary(text string) string {
	if section, ok := locateSection(text, summarySectionKeywords); ok {
		var sentences []string
		for _, s := range sentenceSplitRe.Split(section, -1) {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			sentences = append(sentences, s)
			if len(sentences) == summarySentences {
				break
			}
		}
		if len(sentences) > 0 {
			return capLen(strings.Join(sentences, ". "), maxSummaryLen)
		}
	}

	lines := strings.Split(text, "\n")
	if len(lines) > summaryScanLines {
		lines = lines[:summaryScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > summaryLineMinLen {
			return capLen(line, maxSummaryLen)
		}
	}
	return ""
}

// capLen truncates to at most max bytes without splitting a UTF-8 rune.
func capLen(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

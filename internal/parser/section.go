package parser

import (
	"regexp"
	"strings"
	"sync"
)

// sectionWindow caps a located section when no boundary header follows.
const sectionWindow = 2000

// sectionBoundaryRe marks the start of the next major section: a run of
// capitalized header text, a numbered marker, or an ALLCAPS word with a colon.
var sectionBoundaryRe = regexp.MustCompile(`\n\s*[A-Z][A-Z\s]{10,}|\n\s*\d+\.|\n\s*[A-Z]+\s*:`)

var sectionKeywordRes sync.Map

func keywordRe(keyword string) *regexp.Regexp {
	if re, ok := sectionKeywordRes.Load(keyword); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	sectionKeywordRes.Store(keyword, re)
	return re
}

// locateSection finds the body of the first section introduced by any of the
// keywords. The body runs from the end of the matched keyword to the next
// section boundary, capped at sectionWindow characters. The second return is
// false when no keyword occurs anywhere in the text.
func locateSection(text string, keywords []string) (string, bool) {
	if text == "" {
		return "", false
	}

	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		loc := keywordRe(keyword).FindStringIndex(text)
		if loc == nil {
			continue
		}
		body := text[loc[1]:]
		if end := sectionBoundaryRe.FindStringIndex(body); end != nil {
			return body[:end[0]], true
		}
		return capLen(body, sectionWindow), true
	}

	return "", false
}

// sectionOrAll returns the located section, or the whole document when no
// keyword matched, so extractors can fall back to a full scan.
func sectionOrAll(text string, keywords []string) string {
	if section, ok := locateSection(text, keywords); ok {
		return section
	}
	return text
}

// preprocess normalizes whitespace while preserving line structure.
func preprocess(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = innerSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

var innerSpaceRe = regexp.MustCompile(`[ \t]+`)

package parser

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Tried in priority order; the first non-ambiguous match wins.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	nameLineRe = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})(\s|$|[,\n])`)

	linkedinRe = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin\.com/pub/)([a-zA-Z0-9-]+)`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`)
)

const locationScanWindow = 500

// extractPersonal pulls contact and identity fields. Name and location run
// through a ranked candidate pool fed by the recognizer plus a regex
// fallback; email, phone and profile handles are single-strategy.
func extractPersonal(cleaned, original string, rec EntityRecognizer) PersonalInfo {
	info := PersonalInfo{}

	if email := emailRe.FindString(original); email != "" {
		info.Email = email
	}

	info.Phone = extractPhone(original)

	// Names live in the first few lines.
	lines := strings.Split(cleaned, "\n")
	topCount := len(lines)
	if topCount > 3 {
		topCount = 3
	}
	topLines := strings.Join(lines[:topCount], "\n")

	var pool []Candidate
	if rec != nil {
		for _, cand := range rec.People(topLines) {
			if len(strings.Fields(cand.Text)) >= 2 {
				pool = append(pool, cand)
			}
		}
	}
	if len(lines) > 0 {
		if m := nameLineRe.FindStringSubmatch(lines[0]); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" && !containsAnyFold(name, personStopWords) {
				pool = append(pool, Candidate{Text: name, Confidence: 0.7, Source: sourcePattern})
			}
		}
	}
	if ranked := rankCandidates(pool); len(ranked) > 0 {
		info.FullName = ranked[0].Text
	}

	// Contact blocks are near the top, so restrict the location scan.
	topText := cleaned
	if len(topText) > locationScanWindow {
		topText = topText[:locationScanWindow]
	}
	if rec != nil {
		if ranked := rankCandidates(rec.Places(topText)); len(ranked) > 0 {
			info.Location = ranked[0].Text
		}
	}

	if m := linkedinRe.FindStringSubmatch(original); m != nil {
		info.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := githubRe.FindStringSubmatch(original); m != nil {
		info.GitHub = "github.com/" + m[1]
	}

	return info
}

// extractPhone tries the phone patterns in order. A bare 10-digit candidate
// is rejected when it starts like a year or sits adjacent to another digit,
// which filters fragments of dates and longer IDs.
func extractPhone(text string) string {
	for _, re := range phoneRes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			candidate := strings.TrimSpace(text[loc[0]:loc[1]])
			if isBareTenDigits(candidate) {
				if strings.HasPrefix(candidate, "19") || strings.HasPrefix(candidate, "20") {
					continue
				}
				if digitAdjacent(text, loc[0], loc[1]) {
					continue
				}
			}
			return candidate
		}
	}
	return ""
}

func isBareTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func digitAdjacent(text string, start, end int) bool {
	if start > 0 && isDigit(text[start-1]) {
		return true
	}
	if end < len(text) && isDigit(text[end]) {
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

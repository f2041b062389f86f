package parser

import (
	"regexp"
	"strings"
)

var educationSectionKeywords = []string{
	"education", "academic", "qualification", "degree", "university", "college",
}

const maxEducationLineLen = 300

var (
	degreeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Bachelor|Master|PhD|Doctorate|Associate|Diploma|Certificate)\s+(?:of|in)?\s*[A-Za-z][A-Za-z &]*`),
		regexp.MustCompile(`(?i)\b(?:B\.?S\.?|M\.?S\.?|B\.?A\.?|M\.?A\.?|Ph\.?D\.?|MBA|B\.?E\.?|M\.?E\.?)\b`),
	}

	institutionRe = regexp.MustCompile(`\b([A-Z][A-Za-z &]+(?:University|College|Institute|School|Academy))\b`)

	eduYearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	gpaRe     = regexp.MustCompile(`(?i)\bGPA[:\s]*(\d+\.?\d*)\b`)
)

var institutionKeywords = []string{"university", "college", "institute", "school"}

// educationWalker accumulates at most one open entry; a degree line both
// commits the previous entry and opens the next.
type educationWalker struct {
	entries []EducationEntry
	current EducationEntry
	open    bool
}

func (w *educationWalker) openEntry(degree string) {
	w.commit()
	w.current = EducationEntry{Degree: degree}
	w.open = true
}

func (w *educationWalker) commit() {
	if !w.open {
		return
	}
	entry := w.current
	if entry.Honors == nil {
		entry.Honors = []string{}
	}
	if entry.Degree != "" {
		w.entries = append(w.entries, entry)
	}
	w.current = EducationEntry{}
	w.open = false
}

func extractEducation(text string) []EducationEntry {
	section := sectionOrAll(text, educationSectionKeywords)

	walker := &educationWalker{}
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > maxEducationLineLen {
			line = line[:maxEducationLineLen]
		}

		if degree := matchDegree(line); degree != "" {
			walker.openEntry(degree)
		}

		if !walker.open {
			continue
		}

		if walker.current.Institution == "" {
			walker.current.Institution = matchInstitution(line)
		}
		if walker.current.Year == "" {
			walker.current.Year = eduYearRe.FindString(line)
		}
		if walker.current.GPA == "" {
			if m := gpaRe.FindStringSubmatch(line); m != nil {
				walker.current.GPA = m[1]
			}
		}
	}
	walker.commit()

	if walker.entries == nil {
		return []EducationEntry{}
	}
	return walker.entries
}

func matchDegree(line string) string {
	for _, re := range degreeRes {
		if match := strings.TrimSpace(re.FindString(line)); match != "" && len(match) <= maxTitleLen {
			return match
		}
	}
	return ""
}

// matchInstitution prefers a suffix-anchored name; failing that it walks
// forward from an institution keyword collecting a bounded phrase.
func matchInstitution(line string) string {
	if m := institutionRe.FindStringSubmatch(line); m != nil && len(m[1]) <= maxCompanyLen {
		return strings.TrimSpace(m[1])
	}

	lower := strings.ToLower(line)
	for _, keyword := range institutionKeywords {
		idx := strings.Index(lower, keyword)
		if idx < 0 {
			continue
		}
		words := strings.Fields(line[idx:])
		if len(words) > 8 {
			words = words[:8]
		}
		phrase := strings.Join(words, " ")
		if len(phrase) > maxCompanyLen {
			phrase = phrase[:maxCompanyLen]
		}
		return strings.TrimSpace(phrase)
	}
	return ""
}

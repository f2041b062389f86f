package parser

import (
	"regexp"
	"strings"
)

var (
	certificationSectionKeywords = []string{"certifications", "certification", "certificates", "certificate", "certified", "licenses", "license"}
	languageSectionKeywords      = []string{"languages", "language"}
)

var certificationRe = regexp.MustCompile(`(?i)(?:Certified|Certification|License)\s+[A-Za-z][A-Za-z ]*`)

var languageVocabulary = []string{
	"English", "Spanish", "French", "German", "Chinese", "Japanese",
	"Hindi", "Arabic", "Portuguese", "Russian", "Italian",
}

var languageVocabularyRes = buildSkillRes(languageVocabulary)

// extractCertifications only scans an explicit certification section; without
// one the result is empty rather than a full-document guess.
func extractCertifications(text string) []string {
	section, ok := locateSection(text, certificationSectionKeywords)
	if !ok {
		return []string{}
	}

	var out []string
	for _, match := range certificationRe.FindAllString(section, -1) {
		out = append(out, strings.TrimSpace(match))
	}
	return dedupeFold(out)
}

func extractLanguages(text string) []string {
	section, ok := locateSection(text, languageSectionKeywords)
	if !ok {
		return []string{}
	}

	var out []string
	for i, re := range languageVocabularyRes {
		if re.MatchString(section) {
			out = append(out, languageVocabulary[i])
		}
	}
	if out == nil {
		return []string{}
	}
	return out
}

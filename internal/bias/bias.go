package bias

import (
	"regexp"
	"sort"
	"strings"

	"resume-parser-api/internal/parser"
)

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

type characteristic struct {
	patterns   []*regexp.Regexp
	indicators []string
}

// protectedOrder fixes the reporting order of characteristic findings.
var protectedOrder = []string{
	"age", "gender", "race_ethnicity", "religion",
	"marital_status", "nationality", "disability",
}

var protectedCharacteristics = map[string]characteristic{
	"age": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b\d{2}\s*years?\s*old\b`),
			regexp.MustCompile(`(?i)born\s+in\s+\d{4}`),
			regexp.MustCompile(`(?i)age[:\s]*\d{2}`),
			regexp.MustCompile(`(?i)graduated\s+\d{4}`),
		},
		indicators: []string{"birth year", "age", "graduation year"},
	},
	"gender": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:Mr\.?|Mrs\.?|Ms\.?|Miss)\b`),
			regexp.MustCompile(`(?i)\b(?:he|she|his|her)\b`),
		},
		indicators: []string{"gender pronouns", "title"},
	},
	"race_ethnicity": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:African|Asian|Hispanic|Latino|Native|Caucasian|White|Black)\b`),
		},
		indicators: []string{"ethnicity mention"},
	},
	"religion": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:Christian|Muslim|Jewish|Hindu|Buddhist|Catholic|Protestant)\b`),
		},
		indicators: []string{"religion mention"},
	},
	"marital_status": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:married|single|divorced|widowed|spouse)\b`),
		},
		indicators: []string{"marital status"},
	},
	"nationality": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:citizen|citizenship|nationality|passport)\b`),
		},
		indicators: []string{"citizenship status"},
	},
	"disability": {
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:disability|disabled|handicap)\b`),
		},
		indicators: []string{"disability mention"},
	},
}

type languageCategory struct {
	pattern     *regexp.Regexp
	description string
}

var languageOrder = []string{"gender_biased", "age_biased", "cultural_biased"}

var biasedLanguage = map[string]languageCategory{
	"gender_biased": {
		pattern:     regexp.MustCompile(`(?i)\b(?:aggressive|assertive|dominant|nurturing|emotional)\b`),
		description: "Gender-stereotyped language",
	},
	"age_biased": {
		pattern:     regexp.MustCompile(`(?i)\b(?:young|fresh|energetic|experienced|seasoned|mature)\b`),
		description: "Age-related language",
	},
	"cultural_biased": {
		pattern:     regexp.MustCompile(`(?i)\b(?:cultural fit|fit in|team player)\b`),
		description: "Potentially exclusionary language",
	},
}

// CharacteristicFinding is one protected characteristic observed in the text.
type CharacteristicFinding struct {
	Detected   bool     `json:"detected"`
	Matches    []string `json:"matches"`
	Indicators []string `json:"indicators"`
	Severity   string   `json:"severity"`
}

type LanguageFinding struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Matches     []string `json:"matches"`
	Severity    string   `json:"severity"`
}

// Detection is the full bias report for one resume.
type Detection struct {
	BiasDetected             bool                             `json:"bias_detected"`
	ProtectedCharacteristics map[string]CharacteristicFinding `json:"protected_characteristics"`
	BiasedLanguage           []LanguageFinding                `json:"biased_language"`
	Recommendations          []string                         `json:"recommendations"`
	AnonymizationSuggested   bool                             `json:"anonymization_suggested"`
	RiskLevel                string                           `json:"risk_level"`
}

// Detect scans the resume text, or a reconstruction from the parsed profile
// when raw text is absent, for protected characteristics and biased language.
func Detect(profile *parser.Profile, rawText string) *Detection {
	result := &Detection{
		ProtectedCharacteristics: map[string]CharacteristicFinding{},
		BiasedLanguage:           []LanguageFinding{},
		RiskLevel:                RiskLow,
	}

	text := rawText
	if strings.TrimSpace(text) == "" {
		text = reconstructText(profile)
	}

	for _, name := range protectedOrder {
		char := protectedCharacteristics[name]
		var matches []string
		for _, re := range char.patterns {
			matches = append(matches, re.FindAllString(text, -1)...)
		}
		if len(matches) == 0 {
			continue
		}
		result.BiasDetected = true
		result.ProtectedCharacteristics[name] = CharacteristicFinding{
			Detected:   true,
			Matches:    dedupeSorted(matches),
			Indicators: char.indicators,
			Severity:   RiskHigh,
		}
	}

	for _, name := range languageOrder {
		category := biasedLanguage[name]
		matches := category.pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		result.BiasedLanguage = append(result.BiasedLanguage, LanguageFinding{
			Type:        name,
			Description: category.description,
			Matches:     dedupeSorted(matches),
			Severity:    RiskMedium,
		})
	}

	switch {
	case len(result.ProtectedCharacteristics) > 0:
		result.RiskLevel = RiskHigh
		result.AnonymizationSuggested = true
	case len(result.BiasedLanguage) > 2:
		result.RiskLevel = RiskMedium
	}

	result.Recommendations = recommendations(result)
	return result
}

// Flags is the short form of Detect for list views.
func Flags(profile *parser.Profile) []string {
	detection := Detect(profile, "")

	var flags []string
	if detection.BiasDetected {
		flags = append(flags, "Protected characteristics present")
	}
	if len(detection.BiasedLanguage) > 0 {
		flags = append(flags, "Potentially biased language detected")
	}
	if detection.RiskLevel == RiskHigh {
		flags = append(flags, "HIGH RISK - Anonymization recommended")
	}
	return flags
}

// reconstructText flattens the profile fields that could carry bias signals.
func reconstructText(profile *parser.Profile) string {
	var parts []string
	if profile.Personal.FullName != "" {
		parts = append(parts, profile.Personal.FullName)
	}
	if profile.Personal.Email != "" {
		parts = append(parts, profile.Personal.Email)
	}
	for _, entry := range profile.Experience {
		if entry.Title != "" {
			parts = append(parts, entry.Title)
		}
		if entry.Description != "" {
			parts = append(parts, entry.Description)
		}
	}
	for _, entry := range profile.Education {
		if entry.Degree != "" {
			parts = append(parts, entry.Degree)
		}
	}
	return strings.Join(parts, " ")
}

func recommendations(detection *Detection) []string {
	var recs []string

	if detection.RiskLevel == RiskHigh {
		recs = append(recs,
			"HIGH RISK: Protected characteristics detected. Consider anonymization.",
			"Remove identifiable information before screening.")
	}

	if len(detection.ProtectedCharacteristics) > 0 {
		names := make([]string, 0, len(detection.ProtectedCharacteristics))
		for _, name := range protectedOrder {
			if _, ok := detection.ProtectedCharacteristics[name]; ok {
				names = append(names, name)
			}
		}
		recs = append(recs, "Detected characteristics: "+strings.Join(names, ", "))
	}

	if len(detection.BiasedLanguage) > 0 {
		recs = append(recs, "Review language for potential bias indicators.")
	}

	if detection.RiskLevel == RiskLow {
		recs = append(recs, "Low bias risk - Resume appears bias-free")
	}

	return recs
}

// dedupeSorted folds duplicates case-insensitively and sorts for stable
// report output.
func dedupeSorted(matches []string) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		key := strings.ToLower(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.ToLower(m))
	}
	sort.Strings(out)
	return out
}

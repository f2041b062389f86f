package anonymize

import (
	"regexp"
	"strings"

	"resume-parser-api/internal/parser"
)

// piiTypes is the detection order; it also decides replacement precedence
// when patterns overlap in the text.
var piiTypes = []string{
	"name", "email", "phone", "address",
	"social_media", "date_of_birth", "ssn", "passport",
}

var piiPatterns = map[string][]*regexp.Regexp{
	"name": {
		regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`),
		regexp.MustCompile(`\b(?:Mr\.?|Mrs\.?|Ms\.?|Dr\.?)\s+[A-Z][a-z]+\b`),
	},
	"email": {
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	},
	"phone": {
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
	},
	"address": {
		regexp.MustCompile(`\d+\s+[A-Za-z0-9\s,]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr)`),
		regexp.MustCompile(`[A-Za-z\s]+,\s*[A-Z]{2}\s+\d{5}`),
	},
	"social_media": {
		regexp.MustCompile(`linkedin\.com/in/[a-zA-Z0-9-]+`),
		regexp.MustCompile(`github\.com/[a-zA-Z0-9-]+`),
		regexp.MustCompile(`twitter\.com/[a-zA-Z0-9_]+`),
	},
	"date_of_birth": {
		regexp.MustCompile(`(?i)\b(?:DOB|Date of Birth|Born)[:\s]+\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	},
	"ssn": {
		regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		regexp.MustCompile(`\b\d{9}\b`),
	},
	"passport": {
		regexp.MustCompile(`\b[A-Z]{1,2}\d{6,9}\b`),
	},
}

var replacements = map[string]string{
	"name":          "[NAME]",
	"email":         "[EMAIL]",
	"phone":         "[PHONE]",
	"address":       "[ADDRESS]",
	"social_media":  "[PROFILE]",
	"date_of_birth": "[DATE]",
	"ssn":           "[SSN]",
	"passport":      "[PASSPORT]",
}

const (
	placeholderName     = "[NAME]"
	placeholderEmail    = "[EMAIL]"
	placeholderPhone    = "[PHONE]"
	placeholderLocation = "[LOCATION]"
	placeholderProfile  = "[PROFILE]"
)

// TextResult is the outcome of scrubbing free text.
type TextResult struct {
	AnonymizedText   string              `json:"anonymized_text"`
	RemovedItems     map[string][]string `json:"removed_items"`
	OriginalLength   int                 `json:"original_length"`
	AnonymizedLength int                 `json:"anonymized_length"`
}

// ProfileResult pairs the scrubbed profile with what was removed from it.
type ProfileResult struct {
	Profile    *parser.Profile   `json:"anonymized_data"`
	RemovedPII map[string]string `json:"removed_pii"`
}

// Version is the complete anonymized rendering of one resume.
type Version struct {
	Profile       *parser.Profile     `json:"anonymized_resume_data"`
	Text          string              `json:"anonymized_text,omitempty"`
	RemovedFields map[string]string   `json:"removed_fields"`
	RemovedText   map[string][]string `json:"removed_text,omitempty"`
	Report        Report              `json:"anonymization_report"`
}

// Report summarizes which PII kinds are present without removing anything.
type Report struct {
	PIIDetected map[string]bool `json:"pii_detected"`
	Recommended bool            `json:"anonymization_recommended"`
	Count       int             `json:"removed_items_count"`
}

// Text scrubs every known PII kind from free text, returning the scrubbed
// text plus what was removed, grouped by kind.
func Text(text string) TextResult {
	result := TextResult{
		AnonymizedText: text,
		RemovedItems:   map[string][]string{},
		OriginalLength: len(text),
	}

	for _, piiType := range piiTypes {
		replacement := replacements[piiType]
		var found []string
		for _, re := range piiPatterns[piiType] {
			matches := re.FindAllString(result.AnonymizedText, -1)
			if len(matches) == 0 {
				continue
			}
			found = append(found, matches...)
			result.AnonymizedText = re.ReplaceAllString(result.AnonymizedText, replacement)
		}
		if len(found) > 0 {
			result.RemovedItems[piiType] = dedupe(found)
		}
	}

	result.AnonymizedLength = len(result.AnonymizedText)
	return result
}

// Profile replaces the identifying personal fields with placeholders. The
// input is not modified; experience and education are carried over as-is.
func Profile(profile *parser.Profile) ProfileResult {
	scrubbed := *profile
	removed := map[string]string{}

	personal := &scrubbed.Personal
	if personal.FullName != "" {
		removed["name"] = personal.FullName
		personal.FullName = placeholderName
	}
	if personal.Email != "" {
		removed["email"] = personal.Email
		personal.Email = placeholderEmail
	}
	if personal.Phone != "" {
		removed["phone"] = personal.Phone
		personal.Phone = placeholderPhone
	}
	if personal.Location != "" {
		removed["location"] = personal.Location
		personal.Location = placeholderLocation
	}
	if personal.LinkedIn != "" {
		removed["linkedin"] = personal.LinkedIn
		personal.LinkedIn = placeholderProfile
	}
	if personal.GitHub != "" {
		removed["github"] = personal.GitHub
		personal.GitHub = placeholderProfile
	}

	return ProfileResult{Profile: &scrubbed, RemovedPII: removed}
}

// Build produces the full anonymized version: scrubbed profile plus, when the
// raw text is available, scrubbed text. The report reflects the input before
// scrubbing.
func Build(profile *parser.Profile, rawText string) Version {
	profileResult := Profile(profile)
	version := Version{
		Profile:       profileResult.Profile,
		RemovedFields: profileResult.RemovedPII,
		Report:        Inspect(profile, rawText),
	}

	if strings.TrimSpace(rawText) != "" {
		textResult := Text(rawText)
		version.Text = textResult.AnonymizedText
		version.RemovedText = textResult.RemovedItems
	}

	return version
}

// Inspect reports which PII kinds occur in the profile and, optionally, the
// raw text, without modifying either.
func Inspect(profile *parser.Profile, rawText string) Report {
	report := Report{PIIDetected: map[string]bool{}}

	if profile.Personal.FullName != "" {
		report.PIIDetected["name"] = true
	}
	if profile.Personal.Email != "" {
		report.PIIDetected["email"] = true
	}
	if profile.Personal.Phone != "" {
		report.PIIDetected["phone"] = true
	}
	if profile.Personal.Location != "" {
		report.PIIDetected["location"] = true
	}

	if rawText != "" {
		for _, piiType := range piiTypes {
			for _, re := range piiPatterns[piiType] {
				if re.MatchString(rawText) {
					report.PIIDetected[piiType] = true
					break
				}
			}
		}
	}

	report.Count = len(report.PIIDetected)
	report.Recommended = report.Count > 0
	return report
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

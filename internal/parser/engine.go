package parser

import (
	"fmt"

	"resume-parser-api/internal/shared/telemetry"
)

// Engine turns raw resume text into a structured Profile. The zero value is
// not usable; construct with NewEngine. An Engine is safe for concurrent use.
type Engine struct {
	recognizer EntityRecognizer
}

// NewEngine builds an engine with the heuristic recognizer.
func NewEngine() *Engine {
	return &Engine{recognizer: HeuristicRecognizer{}}
}

// NewEngineWithRecognizer builds an engine around a custom recognizer, for
// example a lazily-initialized external NER backend.
func NewEngineWithRecognizer(rec EntityRecognizer) *Engine {
	if rec == nil {
		rec = HeuristicRecognizer{}
	}
	return &Engine{recognizer: rec}
}

// Parse extracts a structured profile from resume text. It never fails: a
// panicking extractor is isolated and its field keeps the zero value, so the
// worst case is an empty profile with a low confidence score.
func (e *Engine) Parse(text string) *Profile {
	cleaned := preprocess(text)

	profile := &Profile{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Certifications: []string{},
		Languages:      []string{},
	}

	e.runExtractor("personal", func() {
		profile.Personal = extractPersonal(cleaned, text, e.recognizer)
	})
	e.runExtractor("experience", func() {
		profile.Experience = extractExperience(cleaned)
	})
	e.runExtractor("education", func() {
		profile.Education = extractEducation(cleaned)
	})
	e.runExtractor("skills", func() {
		profile.Skills = extractSkills(cleaned)
	})
	e.runExtractor("summary", func() {
		profile.Summary = extractSummary(cleaned)
	})
	e.runExtractor("certifications", func() {
		profile.Certifications = extractCertifications(cleaned)
	})
	e.runExtractor("languages", func() {
		profile.Languages = extractLanguages(cleaned)
	})

	profile.ConfidenceScore = scoreConfidence(profile)
	return profile
}

// runExtractor isolates one extraction stage so a single bad regex walk
// cannot take down the whole parse.
func (e *Engine) runExtractor(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("parser.extractor.panic", map[string]any{
				"extractor": name,
				"panic":     fmt.Sprint(r),
			})
		}
	}()
	fn()
}

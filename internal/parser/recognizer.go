package parser

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"resume-parser-api/internal/shared/telemetry"
)

// Candidate is one proposed value for a field, tagged with the strategy that
// produced it so arbitration can break confidence ties.
type Candidate struct {
	Text       string
	Confidence float64
	Source     string
}

// EntityRecognizer proposes person and place candidates from free text.
// Implementations must be safe for concurrent use.
type EntityRecognizer interface {
	People(text string) []Candidate
	Places(text string) []Candidate
}

// rankCandidates orders a candidate pool by confidence descending, breaking
// ties in favor of recognizer-sourced candidates over pattern fallbacks.
// The sort is stable so pool insertion order decides remaining ties.
func rankCandidates(pool []Candidate) []Candidate {
	ranked := append([]Candidate(nil), pool...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Source == sourceRecognizer && ranked[j].Source != sourceRecognizer
	})
	return ranked
}

const (
	sourceRecognizer = "recognizer"
	sourcePattern    = "pattern"
)

var (
	personLineRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\b`)
	cityStateRe  = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2})\b`)
)

var personStopWords = []string{"inc", "llc", "corp", "company", "engineer", "manager"}

// HeuristicRecognizer is the always-available recognizer implementation. It
// proposes capitalized multi-word runs as people and "City, ST" phrases as
// places.
type HeuristicRecognizer struct{}

func (HeuristicRecognizer) People(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		for _, match := range personLineRe.FindAllString(line, -1) {
			if len(match) >= 50 {
				continue
			}
			if containsAnyFold(match, personStopWords) {
				continue
			}
			out = append(out, Candidate{Text: match, Confidence: 0.9, Source: sourceRecognizer})
		}
	}
	return out
}

func (HeuristicRecognizer) Places(text string) []Candidate {
	var out []Candidate
	for _, match := range cityStateRe.FindAllString(text, -1) {
		out = append(out, Candidate{Text: match, Confidence: 0.9, Source: sourceRecognizer})
	}
	return out
}

func containsAnyFold(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// NewLazyRecognizer wraps an external recognizer whose construction is
// deferred until first use. A build failure is logged once and cached as
// unavailable; every later call falls back to the heuristic implementation.
// Pass the result to NewEngineWithRecognizer.
func NewLazyRecognizer(build func() (EntityRecognizer, error)) EntityRecognizer {
	return &lazyRecognizer{build: build, fallback: HeuristicRecognizer{}}
}

type lazyRecognizer struct {
	build    func() (EntityRecognizer, error)
	fallback EntityRecognizer

	once     sync.Once
	resolved EntityRecognizer
}

func (l *lazyRecognizer) resolve() EntityRecognizer {
	l.once.Do(func() {
		rec, err := l.build()
		if err != nil || rec == nil {
			if err != nil {
				telemetry.Warn("parser.recognizer.unavailable", map[string]any{"error": err.Error()})
			}
			l.resolved = l.fallback
			return
		}
		l.resolved = rec
	})
	return l.resolved
}

func (l *lazyRecognizer) People(text string) []Candidate { return l.resolve().People(text) }
func (l *lazyRecognizer) Places(text string) []Candidate { return l.resolve().Places(text) }

package parser

import (
	"errors"
	"testing"
)

type stubRecognizer struct {
	people []Candidate
	places []Candidate
}

func (s stubRecognizer) People(string) []Candidate { return s.people }
func (s stubRecognizer) Places(string) []Candidate { return s.places }

func TestNewLazyRecognizerBuildFailureCachedOnce(t *testing.T) {
	builds := 0
	rec := NewLazyRecognizer(func() (EntityRecognizer, error) {
		builds++
		return nil, errors.New("model unavailable")
	})

	text := "John Doe\nSeattle, WA"
	people := rec.People(text)
	rec.Places(text)
	rec.People(text)

	if builds != 1 {
		t.Fatalf("build calls = %d, want exactly 1", builds)
	}

	want := HeuristicRecognizer{}.People(text)
	if len(people) != len(want) || people[0].Text != want[0].Text {
		t.Fatalf("people = %v, want heuristic fallback %v", people, want)
	}
}

func TestNewLazyRecognizerDelegatesToBuilt(t *testing.T) {
	stub := stubRecognizer{
		people: []Candidate{{Text: "Jane Smith", Confidence: 1, Source: sourceRecognizer}},
	}
	builds := 0
	rec := NewLazyRecognizer(func() (EntityRecognizer, error) {
		builds++
		return stub, nil
	})

	for i := 0; i < 2; i++ {
		got := rec.People("anything")
		if len(got) != 1 || got[0].Text != "Jane Smith" {
			t.Fatalf("people = %v, want the stub's candidate", got)
		}
	}
	if builds != 1 {
		t.Fatalf("build calls = %d, want exactly 1", builds)
	}
}

func TestNewLazyRecognizerNilWithoutError(t *testing.T) {
	rec := NewLazyRecognizer(func() (EntityRecognizer, error) { return nil, nil })

	text := "Portland, OR"
	want := HeuristicRecognizer{}.Places(text)
	got := rec.Places(text)
	if len(got) != len(want) || got[0].Text != want[0].Text {
		t.Fatalf("places = %v, want heuristic fallback %v", got, want)
	}
}

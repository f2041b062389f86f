package bias

import (
	"testing"

	"resume-parser-api/internal/parser"
)

func TestDetectProtectedCharacteristics(t *testing.T) {
	detection := Detect(&parser.Profile{}, "Mrs. Jane Smith, 35 years old, married, US citizen")

	if !detection.BiasDetected {
		t.Fatal("expected bias to be detected")
	}
	for _, kind := range []string{"age", "gender", "marital_status", "nationality"} {
		finding, ok := detection.ProtectedCharacteristics[kind]
		if !ok || !finding.Detected {
			t.Fatalf("characteristics = %v, missing %q", detection.ProtectedCharacteristics, kind)
		}
		if finding.Severity != RiskHigh {
			t.Fatalf("%s severity = %q, want high", kind, finding.Severity)
		}
	}
	if detection.RiskLevel != RiskHigh || !detection.AnonymizationSuggested {
		t.Fatalf("risk = %q suggested = %v, want high/true", detection.RiskLevel, detection.AnonymizationSuggested)
	}
	if len(detection.Recommendations) == 0 {
		t.Fatal("recommendations missing")
	}
}

func TestDetectBiasedLanguageOnly(t *testing.T) {
	detection := Detect(&parser.Profile{}, "An energetic team player, aggressive about deadlines")

	if len(detection.ProtectedCharacteristics) != 0 {
		t.Fatalf("characteristics = %v, want none", detection.ProtectedCharacteristics)
	}
	if len(detection.BiasedLanguage) != 3 {
		t.Fatalf("biased language = %v, want 3 categories", detection.BiasedLanguage)
	}
	if detection.RiskLevel != RiskMedium {
		t.Fatalf("risk = %q, want medium", detection.RiskLevel)
	}
}

func TestDetectCleanText(t *testing.T) {
	detection := Detect(&parser.Profile{}, "Built backend services in Go and operated Postgres clusters")

	if detection.BiasDetected || detection.RiskLevel != RiskLow {
		t.Fatalf("detection = %+v, want clean low-risk report", detection)
	}
	if len(detection.Recommendations) != 1 {
		t.Fatalf("recommendations = %v, want the low-risk note only", detection.Recommendations)
	}
}

func TestDetectReconstructsFromProfile(t *testing.T) {
	profile := &parser.Profile{
		Experience: []parser.ExperienceEntry{
			{Title: "Manager", Description: "a seasoned leader, married to the job"},
		},
	}

	detection := Detect(profile, "")

	if _, ok := detection.ProtectedCharacteristics["marital_status"]; !ok {
		t.Fatalf("characteristics = %v, want marital_status from reconstructed text", detection.ProtectedCharacteristics)
	}
}

func TestFlags(t *testing.T) {
	profile := &parser.Profile{
		Experience: []parser.ExperienceEntry{{Title: "Engineer", Description: "single parent, energetic"}},
	}

	flags := Flags(profile)

	if len(flags) != 3 {
		t.Fatalf("flags = %v, want all three", flags)
	}

	if got := Flags(&parser.Profile{}); len(got) != 0 {
		t.Fatalf("flags for empty profile = %v, want none", got)
	}
}

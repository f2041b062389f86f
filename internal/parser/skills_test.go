package parser

import (
	"reflect"
	"testing"
)

func TestExtractSkillsDelimitedLine(t *testing.T) {
	text := "SKILLS\nPython; Django; Flask; CustomTool\n"

	got := extractSkills(text)

	for _, want := range []string{"Python", "Django", "Flask", "CustomTool"} {
		if !containsString(got, want) {
			t.Fatalf("skills = %v, missing %q", got, want)
		}
	}
}

func TestExtractSkillsCanonicalCasing(t *testing.T) {
	got := extractSkills("SKILLS\npython, DOCKER, kubernetes\n")

	want := []string{"Python", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("skills = %v, want %v", got, want)
	}
}

func TestExtractSkillsDedupesCaseInsensitively(t *testing.T) {
	got := extractSkills("SKILLS\nPython, python, PYTHON\n")

	if len(got) != 1 || got[0] != "Python" {
		t.Fatalf("skills = %v, want exactly [Python]", got)
	}
}

func TestExtractSkillsWholeWordOnly(t *testing.T) {
	// "PostgreSQL" must not also produce "SQL".
	got := extractSkills("SKILLS\nPostgreSQL, MongoDB, Terraform\n")

	if containsString(got, "SQL") {
		t.Fatalf("skills = %v, SQL matched inside PostgreSQL", got)
	}
	for _, want := range []string{"PostgreSQL", "MongoDB", "Terraform"} {
		if !containsString(got, want) {
			t.Fatalf("skills = %v, missing %q", got, want)
		}
	}
}

func TestExtractSkillsShortTokensDropped(t *testing.T) {
	got := extractSkills("SKILLS\nGo, R, Python, JS\n")

	// Vocabulary matches still surface short names; stray short tokens do not.
	if !containsString(got, "Go") || !containsString(got, "R") {
		t.Fatalf("skills = %v, vocabulary short names missing", got)
	}
	if containsString(got, "JS") {
		t.Fatalf("skills = %v, short free token should be dropped", got)
	}
}

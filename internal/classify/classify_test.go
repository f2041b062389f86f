package classify

import (
	"testing"

	"resume-parser-api/internal/parser"
)

func TestClassifyRole(t *testing.T) {
	got := ClassifyRole([]string{"Senior Software Engineer", "Backend Developer"}, nil)

	if got.PrimaryRole != "software_engineer" {
		t.Fatalf("primary role = %q, want software_engineer", got.PrimaryRole)
	}
	if got.RoleScores["software_engineer"] < 2 {
		t.Fatalf("role scores = %v, want software_engineer hits >= 2", got.RoleScores)
	}
	if len(got.PossibleRoles) == 0 {
		t.Fatal("possible roles empty")
	}
}

func TestClassifyRoleNoSignal(t *testing.T) {
	got := ClassifyRole([]string{"Baker"}, nil)

	if got.PrimaryRole != "other" {
		t.Fatalf("primary role = %q, want other", got.PrimaryRole)
	}
	if got.PossibleRoles == nil {
		t.Fatal("possible roles must be non-nil")
	}
}

func TestAssessSeniority(t *testing.T) {
	cases := []struct {
		name   string
		titles []string
		years  float64
		want   string
	}{
		{"keyword senior", []string{"Senior Engineer", "Staff Engineer"}, 6, "senior"},
		{"entry by years", []string{"Engineer"}, 1, "entry"},
		{"mid by years", []string{"Engineer"}, 3, "mid"},
		{"executive keywords", []string{"CTO", "VP Engineering"}, 12, "executive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AssessSeniority(tc.titles, tc.years)
			if got.Level != tc.want {
				t.Fatalf("level = %q (breakdown %v), want %q", got.Level, got.Breakdown, tc.want)
			}
		})
	}
}

func TestClassifyIndustry(t *testing.T) {
	got := ClassifyIndustry([]string{"Acme Software"}, []string{"built cloud saas products"})

	if got.PrimaryIndustry != "technology" {
		t.Fatalf("industry = %q, want technology", got.PrimaryIndustry)
	}
}

func TestImpliedExperience(t *testing.T) {
	entries := []parser.ExperienceEntry{
		{StartDate: "2015", EndDate: "2018"},
		{StartDate: "Jan 2018", EndDate: "Jan 2020"},
		{StartDate: "2021", EndDate: "2019"}, // negative span ignored
		{StartDate: "unknown", EndDate: "2020"},
	}

	if got := ImpliedExperience(entries); got != 5 {
		t.Fatalf("implied experience = %v, want 5", got)
	}
}

func TestScoreSkillRelevance(t *testing.T) {
	scored := ScoreSkillRelevance([]string{"Cooking", "Python", "Git"}, "software_engineer")

	if scored[0].Skill != "Python" || !scored[0].IsCore {
		t.Fatalf("first skill = %+v, want core Python", scored[0])
	}
	last := scored[len(scored)-1]
	if last.Skill != "Cooking" || last.RelevanceScore != 0.5 || last.IsCore {
		t.Fatalf("last skill = %+v, want non-core Cooking", last)
	}
}

func TestStandardizeSkill(t *testing.T) {
	cases := map[string]string{
		"js":            "JavaScript",
		"AWS":           "Amazon Web Services",
		"ui":            "UI/UX",
		"data modeling": "Data Modeling",
		"  ml ":         "Machine Learning",
	}
	for in, want := range cases {
		if got := StandardizeSkill(in); got != want {
			t.Fatalf("StandardizeSkill(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEnrich(t *testing.T) {
	profile := &parser.Profile{
		Experience: []parser.ExperienceEntry{
			{Title: "Senior Software Engineer", Company: "Acme Software", StartDate: "2015", EndDate: "2021"},
		},
		Skills: []string{"py", "Docker"},
	}

	got := Enrich(profile)

	if got.Role.PrimaryRole != "software_engineer" {
		t.Fatalf("role = %q", got.Role.PrimaryRole)
	}
	if got.Seniority.Level != "senior" {
		t.Fatalf("seniority = %q (breakdown %v)", got.Seniority.Level, got.Seniority.Breakdown)
	}
	if got.ImpliedYears != 6 {
		t.Fatalf("implied years = %v, want 6", got.ImpliedYears)
	}
	if len(got.Skills) != 2 {
		t.Fatalf("scored skills = %v", got.Skills)
	}
	if len(got.StandardizedSkills) != 2 ||
		got.StandardizedSkills[0] != "Python" || got.StandardizedSkills[1] != "Docker" {
		t.Fatalf("standardized skills = %v, want [Python Docker]", got.StandardizedSkills)
	}
}

package matching

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-parser-api/internal/parser"
	"resume-parser-api/internal/shared/telemetry"
)

// componentWeights is how the component scores blend into the overall score.
// Package-level so the blend can be tuned in one place.
var componentWeights = struct {
	Skills, Experience, Education, Title float64
}{
	Skills:     0.40,
	Experience: 0.30,
	Education:  0.15,
	Title:      0.15,
}

// semanticBlend mixes the heuristic overall score with the embedding
// similarity when an embedder is available.
var semanticBlend = struct {
	Heuristic, Semantic float64
}{
	Heuristic: 0.7,
	Semantic:  0.3,
}

// skillTerms is the reference vocabulary scanned for in job descriptions,
// lowercased for containment checks.
var skillTerms = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node.js", "sql", "postgresql", "mongodb", "aws", "azure", "gcp",
	"docker", "kubernetes", "git", "agile", "scrum", "ci/cd",
	"machine learning", "ai", "data science", "tensorflow", "pytorch",
}

var (
	requiredYearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`)
	entryYearRe     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

var relevantTitleWords = []string{"engineer", "developer", "manager", "analyst", "designer"}

var degreeKeywords = []string{"bachelor", "master", "phd", "doctorate", "degree"}

var titleKeywords = []string{"engineer", "developer", "manager", "analyst", "designer", "architect"}

// summaryBuckets maps overall-score thresholds to a one-line verdict,
// checked from the highest threshold down.
var summaryBuckets = []struct {
	Min  float64
	Text string
}{
	{0.8, "Excellent match - Strong candidate for this position"},
	{0.6, "Good match - Candidate meets most requirements"},
	{0.4, "Moderate match - Some gaps in requirements"},
	{0.0, "Weak match - Significant gaps in requirements"},
}

// Engine scores a parsed resume against a job description. An Engine is safe
// for concurrent use.
type Engine struct {
	embedder Embedder
}

func NewEngine() *Engine {
	return &Engine{}
}

// NewEngineWithEmbedder enables the semantic similarity component.
func NewEngineWithEmbedder(embedder Embedder) *Engine {
	return &Engine{embedder: embedder}
}

// Score computes the full relevancy report. Component scorers are isolated:
// a panicking component contributes 0.0 and leaves a note instead of failing
// the whole match.
func (e *Engine) Score(ctx context.Context, profile *parser.Profile, jobDescription string) *Result {
	result := &Result{}
	jobLower := strings.ToLower(jobDescription)

	e.runComponent(result, "skills", func() {
		result.Skills = scoreSkills(profile.Skills, jobLower)
	})
	e.runComponent(result, "experience", func() {
		result.Experience = scoreExperience(profile.Experience, jobLower)
	})
	e.runComponent(result, "education", func() {
		result.Education = scoreEducation(profile.Education, jobLower)
	})
	e.runComponent(result, "title", func() {
		result.Title = scoreTitles(profile.Experience, jobLower)
	})

	overall := componentWeights.Skills*result.Skills.Score +
		componentWeights.Experience*result.Experience.Score +
		componentWeights.Education*result.Education.Score +
		componentWeights.Title*result.Title.Score

	if e.embedder != nil {
		semantic := e.semanticScore(ctx, result, profile, jobDescription)
		result.Semantic = &SemanticScore{Score: semantic}
		overall = overall*semanticBlend.Heuristic + semantic*semanticBlend.Semantic
	}

	result.OverallScore = round2(math.Min(overall, 1.0))
	result.Summary = bucketSummary(result.OverallScore)
	return result
}

func (e *Engine) runComponent(result *Result, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("matching.component.panic", map[string]any{
				"component": name,
				"panic":     fmt.Sprint(r),
			})
			result.Notes = append(result.Notes, name+" scoring failed, contributing 0.0")
		}
	}()
	fn()
}

func scoreSkills(skills []string, jobLower string) SkillScore {
	score := SkillScore{
		MatchedSkills:  []string{},
		MissingSkills:  []string{},
		RequiredSkills: []string{},
	}

	for _, term := range skillTerms {
		if strings.Contains(jobLower, term) {
			score.RequiredSkills = append(score.RequiredSkills, term)
		}
	}
	if len(score.RequiredSkills) == 0 {
		return score
	}

	for _, skill := range skills {
		if termOverlap(strings.ToLower(skill), score.RequiredSkills) {
			score.MatchedSkills = append(score.MatchedSkills, skill)
		}
	}

	for _, term := range score.RequiredSkills {
		covered := false
		for _, matched := range score.MatchedSkills {
			lower := strings.ToLower(matched)
			if strings.Contains(lower, term) || strings.Contains(term, lower) {
				covered = true
				break
			}
		}
		if !covered {
			score.MissingSkills = append(score.MissingSkills, term)
		}
	}

	raw := float64(len(score.MatchedSkills)) / float64(len(score.RequiredSkills))
	score.Score = round2(math.Min(raw, 1.0))
	return score
}

// termOverlap reports whether the skill matches any required term by
// containment in either direction.
func termOverlap(skillLower string, required []string) bool {
	for _, term := range required {
		if strings.Contains(skillLower, term) || strings.Contains(term, skillLower) {
			return true
		}
	}
	return false
}

func scoreExperience(entries []parser.ExperienceEntry, jobLower string) ExperienceScore {
	if len(entries) == 0 {
		return ExperienceScore{}
	}

	score := ExperienceScore{TotalPositions: len(entries)}

	if m := requiredYearsRe.FindStringSubmatch(jobLower); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			score.RequiredYears = float64(years)
		}
	}

	total := 0.0
	for _, entry := range entries {
		total += entryYears(entry, time.Now().Year())
	}
	score.TotalYears = math.Round(total*10) / 10

	var yearsScore float64
	if score.RequiredYears == 0 {
		yearsScore = 0.8
	} else {
		yearsScore = math.Min(total/score.RequiredYears, 1.0)
	}

	for _, entry := range entries {
		if containsAnyFold(entry.Title, relevantTitleWords) {
			score.MatchedPositions++
		}
	}
	relevance := float64(score.MatchedPositions) / float64(len(entries))

	score.Score = round2(yearsScore*0.6 + relevance*0.4)
	return score
}

// entryYears estimates the duration of one position from the years embedded
// in its dates. Unparseable dates count as one year; negative spans count
// as zero.
func entryYears(entry parser.ExperienceEntry, currentYear int) float64 {
	start := firstYear(entry.StartDate, 0)
	end := firstYear(entry.EndDate, 0)
	if strings.EqualFold(strings.TrimSpace(entry.EndDate), parser.EndDatePresent) {
		end = currentYear
	}
	if start == 0 || end == 0 {
		return 1.0
	}
	return math.Max(float64(end-start), 0)
}

func firstYear(date string, fallback int) int {
	m := entryYearRe.FindString(date)
	if m == "" {
		return fallback
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return fallback
	}
	return year
}

func scoreEducation(entries []parser.EducationEntry, jobLower string) EducationScore {
	if len(entries) == 0 {
		return EducationScore{}
	}

	required := ""
	for _, keyword := range degreeKeywords {
		if strings.Contains(jobLower, keyword) {
			required = keyword
			break
		}
	}
	if required == "" {
		return EducationScore{Score: 0.8}
	}

	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Degree), required) {
			return EducationScore{Score: 1.0}
		}
	}
	return EducationScore{Score: 0.3}
}

func scoreTitles(entries []parser.ExperienceEntry, jobLower string) TitleScore {
	score := TitleScore{MatchedTitles: []string{}}

	var titles []string
	for _, entry := range entries {
		if entry.Title != "" {
			titles = append(titles, entry.Title)
		}
	}
	if len(titles) == 0 {
		return score
	}

	var present []string
	for _, keyword := range titleKeywords {
		if strings.Contains(jobLower, keyword) {
			present = append(present, keyword)
		}
	}

	for _, title := range titles {
		if containsAnyFold(title, present) {
			score.MatchedTitles = append(score.MatchedTitles, title)
		}
	}

	score.Score = round2(float64(len(score.MatchedTitles)) / float64(len(titles)))
	return score
}

func bucketSummary(overall float64) string {
	for _, bucket := range summaryBuckets {
		if overall >= bucket.Min {
			return bucket.Text
		}
	}
	return summaryBuckets[len(summaryBuckets)-1].Text
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

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

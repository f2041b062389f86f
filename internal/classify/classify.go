package classify

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"resume-parser-api/internal/parser"
)

// roleKeywords maps each role category to the phrases that indicate it.
// Order matters: ties between equally scored roles resolve to the earlier one.
var roleOrder = []string{
	"software_engineer", "data_scientist", "product_manager", "devops",
	"qa", "designer", "manager", "analyst", "consultant", "other",
}

var roleKeywords = map[string][]string{
	"software_engineer": {"software engineer", "developer", "programmer", "coder", "dev"},
	"data_scientist":    {"data scientist", "data analyst", "data engineer", "ml engineer"},
	"product_manager":   {"product manager", "pm", "product owner"},
	"devops":            {"devops", "sre", "site reliability", "infrastructure engineer"},
	"qa":                {"qa engineer", "test engineer", "quality assurance", "sdet"},
	"designer":          {"designer", "ui/ux", "graphic designer", "product designer"},
	"manager":           {"manager", "lead", "director", "head of", "vp", "cto", "ceo"},
	"analyst":           {"business analyst", "systems analyst", "financial analyst"},
	"consultant":        {"consultant", "advisor", "architect"},
	"other":             {},
}

var seniorityOrder = []string{"entry", "mid", "senior", "executive"}

var seniorityKeywords = map[string][]string{
	"entry":     {"intern", "junior", "entry", "associate", "trainee", "graduate"},
	"mid":       {"mid-level", "professional", "specialist", "analyst"},
	"senior":    {"senior", "sr.", "lead", "principal", "staff"},
	"executive": {"director", "vp", "vice president", "cto", "ceo", "cfo", "chief", "head of"},
}

var industryOrder = []string{
	"technology", "finance", "healthcare", "education",
	"consulting", "retail", "manufacturing", "other",
}

var industryKeywords = map[string][]string{
	"technology":    {"software", "tech", "it", "saas", "cloud", "ai", "fintech"},
	"finance":       {"bank", "financial", "investment", "trading", "fintech"},
	"healthcare":    {"health", "medical", "pharma", "hospital", "clinic"},
	"education":     {"education", "university", "school", "academic"},
	"consulting":    {"consulting", "advisory", "professional services"},
	"retail":        {"retail", "e-commerce", "commerce", "shopping"},
	"manufacturing": {"manufacturing", "production", "industrial"},
	"other":         {},
}

// roleSkills lists the priority skills per role used for relevance scoring.
var roleSkills = map[string][]string{
	"software_engineer": {"python", "java", "javascript", "react", "node", "sql", "git"},
	"data_scientist":    {"python", "r", "sql", "machine learning", "pandas", "numpy", "tensorflow"},
	"devops":            {"docker", "kubernetes", "aws", "ci/cd", "linux", "terraform"},
	"product_manager":   {"agile", "scrum", "product management", "stakeholder"},
}

var skillAliases = map[string]string{
	"js":    "JavaScript",
	"ts":    "TypeScript",
	"py":    "Python",
	"ml":    "Machine Learning",
	"dl":    "Deep Learning",
	"ai":    "Artificial Intelligence",
	"db":    "Database",
	"ui":    "UI/UX",
	"ux":    "UI/UX",
	"api":   "REST API",
	"aws":   "Amazon Web Services",
	"gcp":   "Google Cloud Platform",
	"azure": "Microsoft Azure",
}

type RoleClassification struct {
	PrimaryRole    string         `json:"primary_role"`
	RoleConfidence float64        `json:"role_confidence"`
	PossibleRoles  []string       `json:"possible_roles"`
	RoleScores     map[string]int `json:"role_scores"`
}

type SeniorityAssessment struct {
	Level      string         `json:"level"`
	Confidence float64        `json:"confidence"`
	Breakdown  map[string]int `json:"breakdown"`
}

type IndustryClassification struct {
	PrimaryIndustry    string   `json:"primary_industry"`
	Confidence         float64  `json:"confidence"`
	PossibleIndustries []string `json:"possible_industries"`
}

type ScoredSkill struct {
	Skill          string  `json:"skill"`
	RelevanceScore float64 `json:"relevance_score"`
	IsCore         bool    `json:"is_core"`
}

// Enrichment is the full classification report attached to a parsed resume.
type Enrichment struct {
	Role               RoleClassification     `json:"role"`
	Seniority          SeniorityAssessment    `json:"seniority"`
	Industry           IndustryClassification `json:"industry"`
	ImpliedYears       float64                `json:"implied_experience_years"`
	Skills             []ScoredSkill          `json:"skills"`
	StandardizedSkills []string               `json:"standardized_skills"`
}

// Enrich classifies a parsed profile: role, seniority, industry, implied
// experience and per-skill relevance.
func Enrich(profile *parser.Profile) *Enrichment {
	var titles, companies, descriptions []string
	for _, entry := range profile.Experience {
		if entry.Title != "" {
			titles = append(titles, entry.Title)
		}
		if entry.Company != "" {
			companies = append(companies, entry.Company)
		}
		if entry.Description != "" {
			descriptions = append(descriptions, entry.Description)
		}
	}

	years := ImpliedExperience(profile.Experience)
	role := ClassifyRole(titles, descriptions)

	standardized := make([]string, 0, len(profile.Skills))
	for _, skill := range profile.Skills {
		standardized = append(standardized, StandardizeSkill(skill))
	}

	return &Enrichment{
		Role:               role,
		Seniority:          AssessSeniority(titles, years),
		Industry:           ClassifyIndustry(companies, descriptions),
		ImpliedYears:       years,
		Skills:             ScoreSkillRelevance(profile.Skills, role.PrimaryRole),
		StandardizedSkills: standardized,
	}
}

// ClassifyRole scores each role category by keyword hits over the joined
// titles and descriptions.
func ClassifyRole(titles, descriptions []string) RoleClassification {
	text := joinLower(titles, descriptions)

	scores := map[string]int{}
	var possible []string
	for _, role := range roleOrder {
		score := keywordHits(text, roleKeywords[role])
		if score > 0 {
			scores[role] = score
			possible = append(possible, role)
		}
	}
	if possible == nil {
		possible = []string{}
	}

	primary := maxScore(roleOrder, scores, "other")
	return RoleClassification{
		PrimaryRole:    primary,
		RoleConfidence: float64(scores[primary]) / float64(maxInt(len(titles), 1)),
		PossibleRoles:  possible,
		RoleScores:     scores,
	}
}

// AssessSeniority combines title keywords with an experience-years boost.
func AssessSeniority(titles []string, experienceYears float64) SeniorityAssessment {
	text := joinLower(titles, nil)

	scores := map[string]int{}
	for _, level := range seniorityOrder {
		if score := keywordHits(text, seniorityKeywords[level]); score > 0 {
			scores[level] = score
		}
	}

	switch {
	case experienceYears < 2:
		scores["entry"] += 2
	case experienceYears < 5:
		scores["mid"] += 2
	case experienceYears < 10:
		scores["senior"] += 2
	default:
		scores["executive"]++
	}

	level := maxScore(seniorityOrder, scores, "mid")
	return SeniorityAssessment{
		Level:      level,
		Confidence: float64(scores[level]) / float64(maxInt(len(titles), 1)),
		Breakdown:  scores,
	}
}

func ClassifyIndustry(companies, descriptions []string) IndustryClassification {
	text := joinLower(companies, descriptions)

	scores := map[string]int{}
	var possible []string
	for _, industry := range industryOrder {
		if score := keywordHits(text, industryKeywords[industry]); score > 0 {
			scores[industry] = score
			possible = append(possible, industry)
		}
	}
	if possible == nil {
		possible = []string{}
	}

	primary := maxScore(industryOrder, scores, "other")
	return IndustryClassification{
		PrimaryIndustry:    primary,
		Confidence:         float64(scores[primary]) / float64(maxInt(len(companies), 1)),
		PossibleIndustries: possible,
	}
}

var yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// ImpliedExperience sums the positive year spans across the job history.
// Open-ended positions run to the current year.
func ImpliedExperience(entries []parser.ExperienceEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		start := extractYear(entry.StartDate)
		end := extractYear(entry.EndDate)
		if strings.EqualFold(strings.TrimSpace(entry.EndDate), parser.EndDatePresent) {
			end = time.Now().Year()
		}
		if start == 0 || end == 0 {
			continue
		}
		if years := end - start; years > 0 {
			total += float64(years)
		}
	}
	return total
}

func extractYear(date string) int {
	m := yearRe.FindString(date)
	if m == "" {
		return 0
	}
	year := 0
	for _, r := range m {
		year = year*10 + int(r-'0')
	}
	return year
}

// ScoreSkillRelevance scores each skill against the role's priority list and
// orders the result by relevance descending, preserving input order on ties.
func ScoreSkillRelevance(skills []string, role string) []ScoredSkill {
	priorities := roleSkills[role]

	scored := make([]ScoredSkill, 0, len(skills))
	for _, skill := range skills {
		relevance := 0.5
		lower := strings.ToLower(skill)
		for _, priority := range priorities {
			if strings.Contains(lower, priority) {
				relevance = 1.0
				break
			}
		}
		scored = append(scored, ScoredSkill{
			Skill:          skill,
			RelevanceScore: relevance,
			IsCore:         relevance >= 0.8,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	return scored
}

// StandardizeSkill expands common abbreviations and title-cases the rest.
func StandardizeSkill(skill string) string {
	if canonical, ok := skillAliases[strings.ToLower(strings.TrimSpace(skill))]; ok {
		return canonical
	}
	return titleCase(skill)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func joinLower(a, b []string) string {
	parts := append(append([]string{}, a...), b...)
	return strings.ToLower(strings.Join(parts, " "))
}

func keywordHits(text string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			hits++
		}
	}
	return hits
}

// maxScore returns the highest scoring key, breaking ties by the declared
// category order, or the fallback when nothing scored.
func maxScore(order []string, scores map[string]int, fallback string) string {
	best, bestScore := fallback, 0
	for _, key := range order {
		if scores[key] > bestScore {
			best, bestScore = key, scores[key]
		}
	}
	return best
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package matching

// SkillScore reports vocabulary-level overlap between the job description
// and the resume's skill list.
type SkillScore struct {
	Score          float64  `json:"score"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	RequiredSkills []string `json:"required_skills"`
}

// ExperienceScore combines accumulated years against the posting's stated
// requirement with how many held positions look relevant.
type ExperienceScore struct {
	Score            float64 `json:"score"`
	TotalYears       float64 `json:"total_years"`
	RequiredYears    float64 `json:"required_years"`
	MatchedPositions int     `json:"matched_positions"`
	TotalPositions   int     `json:"total_positions"`
}

type EducationScore struct {
	Score float64 `json:"score"`
}

type TitleScore struct {
	Score         float64  `json:"score"`
	MatchedTitles []string `json:"matched_titles"`
}

// SemanticScore is only present when an embedding backend is configured.
type SemanticScore struct {
	Score float64 `json:"score"`
}

// Result is the full relevancy report for one resume against one job
// description. Scores are fractions in [0, 1].
type Result struct {
	OverallScore float64         `json:"overall_score"`
	Skills       SkillScore      `json:"skill_match"`
	Experience   ExperienceScore `json:"experience_match"`
	Education    EducationScore  `json:"education_match"`
	Title        TitleScore      `json:"title_match"`
	Semantic     *SemanticScore  `json:"semantic_similarity,omitempty"`
	Summary      string          `json:"summary"`
	Notes        []string        `json:"notes,omitempty"`
}

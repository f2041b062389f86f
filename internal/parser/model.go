package parser

// PersonalInfo holds contact and identity fields. Every field is
// independently optional; absence is an empty string, not an error.
type PersonalInfo struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is a single employment record in document order.
type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution,omitempty"`
	Year        string   `json:"year,omitempty"`
	Field       string   `json:"field,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      []string `json:"honors"`
}

// Profile is the structured representation of a resume. List fields are
// never nil once the profile leaves Engine.Parse.
type Profile struct {
	Personal        PersonalInfo      `json:"personal_info"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	Skills          []string          `json:"skills"`
	Summary         string            `json:"summary,omitempty"`
	Certifications  []string          `json:"certifications"`
	Languages       []string          `json:"languages"`
	ConfidenceScore float64           `json:"confidence_score"`
}

// EndDatePresent is the normalized sentinel for an ongoing position.
const EndDatePresent = "Present"

package parser

import "math"

// confidencePoints holds the scoring weights behind the confidence estimate.
// Kept at package level so the allocation can be tuned without touching the
// scoring walk itself.
var confidencePoints = struct {
	Name, Email, Phone float64

	ExperienceTitle   float64
	ExperienceCompany float64
	ExperienceDates   float64
	ExperienceCap     float64

	EducationDegree      float64
	EducationInstitution float64
	EducationYear        float64
	EducationCap         float64

	Summary float64

	LanguagePer float64
	LanguageCap float64
	CertPer     float64
	CertCap     float64

	Floor float64
	Max   float64
}{
	Name:  10,
	Email: 10,
	Phone: 10,

	ExperienceTitle:   5,
	ExperienceCompany: 3,
	ExperienceDates:   2,
	ExperienceCap:     30,

	EducationDegree:      8,
	EducationInstitution: 6,
	EducationYear:        6,
	EducationCap:         20,

	Summary: 5,

	LanguagePer: 2,
	LanguageCap: 5,
	CertPer:     2,
	CertCap:     5,

	Floor: 10,
	Max:   100,
}

// skillCountPoints maps skill-count thresholds to awarded points, checked
// from the highest threshold down.
var skillCountPoints = []struct {
	MinCount int
	Points   float64
}{
	{10, 20},
	{5, 15},
	{3, 10},
}

const skillPointsPerEntry = 3

// scoreConfidence estimates extraction completeness on a 0..100 scale.
func scoreConfidence(p *Profile) float64 {
	pts := confidencePoints
	score := 0.0

	if p.Personal.FullName != "" {
		score += pts.Name
	}
	if p.Personal.Email != "" {
		score += pts.Email
	}
	if p.Personal.Phone != "" {
		score += pts.Phone
	}

	expScore := 0.0
	for _, e := range p.Experience {
		if e.Title != "" {
			expScore += pts.ExperienceTitle
		}
		if e.Company != "" {
			expScore += pts.ExperienceCompany
		}
		if e.StartDate != "" || e.EndDate != "" {
			expScore += pts.ExperienceDates
		}
	}
	score += math.Min(expScore, pts.ExperienceCap)

	eduScore := 0.0
	for _, e := range p.Education {
		if e.Degree != "" {
			eduScore += pts.EducationDegree
		}
		if e.Institution != "" {
			eduScore += pts.EducationInstitution
		}
		if e.Year != "" {
			eduScore += pts.EducationYear
		}
	}
	score += math.Min(eduScore, pts.EducationCap)

	score += skillPoints(len(p.Skills))

	if len(p.Summary) > 50 {
		score += pts.Summary
	}

	score += math.Min(pts.LanguageCap, pts.LanguagePer*float64(len(p.Languages)))
	score += math.Min(pts.CertCap, pts.CertPer*float64(len(p.Certifications)))

	if score == 0 && hasAnyContent(p) {
		score = pts.Floor
	}

	score = math.Round(score*10) / 10
	return math.Min(score, pts.Max)
}

func skillPoints(count int) float64 {
	for _, tier := range skillCountPoints {
		if count >= tier.MinCount {
			return tier.Points
		}
	}
	return float64(count * skillPointsPerEntry)
}

func hasAnyContent(p *Profile) bool {
	return p.Personal.FullName != "" ||
		p.Personal.Email != "" ||
		p.Personal.Phone != "" ||
		len(p.Experience) > 0 ||
		len(p.Education) > 0 ||
		len(p.Skills) > 0 ||
		p.Summary != ""
}

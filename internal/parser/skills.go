package parser

import (
	"regexp"
	"strings"
)

var skillsSectionKeywords = []string{
	"skills", "technical skills", "competencies", "technologies", "tools", "expertise",
}

// skillVocabulary is the recognized skill surface. Matching is
// case-insensitive; the casing here is the canonical output form.
var skillVocabulary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "SQL",
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express",
	"Django", "Flask", "FastAPI", "Spring", "Laravel", "ASP.NET",
	"Next.js", "Nuxt.js",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Oracle", "SQLite", "Cassandra",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git", "Linux",
	"Terraform", "Ansible", "Jenkins", "CI/CD", "GitHub Actions",
	"Machine Learning", "TensorFlow", "PyTorch", "Keras", "Scikit-learn",
	"Pandas", "NumPy", "OpenCV",
	"Agile", "Scrum", "DevOps",
	"Warehousing", "Logistics", "Supply Chain", "Operations", "Distribution",
}

var skillVocabularyRes = buildSkillRes(skillVocabulary)

// buildSkillRes compiles a whole-word pattern per vocabulary entry. Word
// boundaries only apply where the entry starts or ends with a word character,
// so entries like "C++" and "CI/CD" still anchor correctly.
func buildSkillRes(vocab []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(vocab))
	for _, skill := range vocab {
		pattern := regexp.QuoteMeta(skill)
		if isWordByte(skill[0]) {
			pattern = `\b` + pattern
		}
		if isWordByte(skill[len(skill)-1]) {
			pattern += `\b`
		}
		res = append(res, regexp.MustCompile(`(?i)`+pattern))
	}
	return res
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

const (
	minSkillTokenLen = 3
	maxSkillTokenLen = 50
)

var skillDelimiters = []string{",", "|", ";"}

// extractSkills combines vocabulary scanning over the skills section with
// token splitting on delimiter-heavy lines. Output order follows first
// appearance and duplicates are folded case-insensitively.
func extractSkills(text string) []string {
	section := sectionOrAll(text, skillsSectionKeywords)

	var collected []string
	for i, re := range skillVocabularyRes {
		if re.MatchString(section) {
			collected = append(collected, skillVocabulary[i])
		}
	}

	for _, line := range strings.Split(section, "\n") {
		if delimiterCount(line) < 2 {
			continue
		}
		collected = append(collected, splitSkillLine(line)...)
	}

	return dedupeFold(collected)
}

func delimiterCount(line string) int {
	n := 0
	for _, d := range skillDelimiters {
		n += strings.Count(line, d)
	}
	return n
}

// splitSkillLine splits on the first delimiter kind present in the line.
func splitSkillLine(line string) []string {
	sep := ""
	for _, d := range skillDelimiters {
		if strings.Contains(line, d) {
			sep = d
			break
		}
	}
	if sep == "" {
		return nil
	}

	var out []string
	for _, token := range strings.Split(line, sep) {
		token = strings.TrimSpace(token)
		if len(token) < minSkillTokenLen || len(token) > maxSkillTokenLen {
			continue
		}
		if canonical, ok := canonicalSkill(token); ok {
			out = append(out, canonical)
			continue
		}
		if token[0] >= 'A' && token[0] <= 'Z' {
			out = append(out, token)
		}
	}
	return out
}

func canonicalSkill(token string) (string, bool) {
	for _, skill := range skillVocabulary {
		if strings.EqualFold(skill, token) {
			return skill, true
		}
	}
	return "", false
}

func dedupeFold(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

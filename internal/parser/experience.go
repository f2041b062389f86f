package parser

import (
	"regexp"
	"strings"
)

var experienceSectionKeywords = []string{
	"experience",
	"work history",
	"employment history",
	"employment",
	"professional experience",
	"career",
	"work experience",
	"professional background",
	"employment background",
	"work background",
	"career history",
	"professional history",
}

const (
	maxTitleLen   = 100
	maxCompanyLen = 100
	maxLineLen    = 500
	minLineLen    = 5
)

var (
	// "Mon YYYY ... Engineer" layouts put the date before the role on one line.
	dateTitleRe = regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\b.*\b(?:Engineer|Developer|Manager|Analyst|Specialist|Associate|Coordinator|Supervisor)\b`)

	leadingDatesRe = regexp.MustCompile(`(?i)^(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}|\d{1,2}[/-]\d{4}|\d{4}|[-–—\s])+`)

	titleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Senior|Junior|Lead|Principal|Staff|Associate|Manager|Director|VP|CEO|CTO|CFO|Executive|Head|Chief)\s+[A-Za-z][A-Za-z ]*`),
		regexp.MustCompile(`(?i)\b[A-Za-z]+\s+(?:Engineer|Developer|Manager|Analyst|Specialist|Architect|Consultant|Coordinator|Supervisor|Representative|Assistant|Clerk)\b`),
		regexp.MustCompile(`(?i)\b(?:Software|Data|Product|DevOps|Backend|Frontend|Full.?Stack|Mobile|QA|Test|Systems|Security|Sales|Customer|Marketing|Operations)\s+(?:Engineer|Developer|Architect|Manager|Analyst|Specialist|Representative)\b`),
		regexp.MustCompile(`(?i)\b(?:Warehouse|Logistics|Supply Chain|Operations|Distribution|Retail|Fulfillment|Delivery|Shipping)\s+(?:Associate|Specialist|Coordinator|Supervisor|Manager|Worker|Operator|Technician|Clerk)\b`),
		regexp.MustCompile(`\b[A-Z][a-z]+\s+(?:at|@)\s+[A-Z]`),
		regexp.MustCompile(`^\s*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*-\s*[A-Z]`),
		regexp.MustCompile(`^\s*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*,\s*[A-Z]`),
	}

	titleAtPrefixRe = regexp.MustCompile(`(?i)^(?:at|@)\s+`)

	companyLineRe   = regexp.MustCompile(`^[A-Z][A-Za-z0-9\s&.,-]+(?:Inc|LLC|Ltd|Corp|Corporation|Company|Co|Technologies|Solutions|Systems|Group|Enterprises)?$`)
	companySepRe    = regexp.MustCompile(`(?i)(?:\bat\b|@|-|,)\s+([A-Z][A-Za-z0-9\s&.,-]*(?:Inc|LLC|Ltd|Corp|Corporation|Company|Co)?)`)
	fourDigitYearRe = regexp.MustCompile(`\d{4}`)

	expDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}[/-]\d{4}\b`),
		regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
		regexp.MustCompile(`(?i)Present|Current|Now`),
	}

	dateRangeRe = regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}|\d{1,2}[/-]\d{4})\s*[-–—]\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}|\d{1,2}[/-]\d{4}|Present|Current|Now)`)

	dateOnlyLineRe = regexp.MustCompile(`^[\d\s/–—-]+$`)

	companyishLineRe = regexp.MustCompile(`^[A-Z][A-Za-z\s&.,-]+(?:Inc|LLC|Ltd|Corp)?$`)

	companyRoleWords = []string{"engineer", "developer", "manager", "associate"}
)

var wellKnownCompanies = []string{
	"Amazon", "Google", "Microsoft", "Apple", "Facebook", "Meta",
	"IBM", "Oracle", "Salesforce", "Adobe", "Intel", "NVIDIA",
	"Tesla", "Netflix", "Uber", "Airbnb", "Twitter", "LinkedIn",
	"Walmart", "Target", "Costco", "FedEx", "UPS", "DHL",
}

// experienceWalker is the line-walking state machine behind experience
// extraction. It holds at most one open entry; the entry is only emitted
// once it has a title.
type experienceWalker struct {
	entries []ExperienceEntry
	current ExperienceEntry
	open    bool
}

func (w *experienceWalker) openEntry(title string) {
	w.commit()
	w.current = ExperienceEntry{Title: title}
	w.open = true
}

func (w *experienceWalker) commit() {
	if !w.open {
		return
	}
	entry := w.current
	entry.Description = strings.TrimSpace(entry.Description)
	if entry.Achievements == nil {
		entry.Achievements = []string{}
	}
	if entry.Technologies == nil {
		entry.Technologies = []string{}
	}
	if entry.Title != "" {
		w.entries = append(w.entries, entry)
	}
	w.current = ExperienceEntry{}
	w.open = false
}

// extractExperience walks the experience section (or the whole document when
// no section header is present) accumulating entries.
func extractExperience(text string) []ExperienceEntry {
	section := sectionOrAll(text, experienceSectionKeywords)

	walker := &experienceWalker{}
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) < minLineLen {
			walker.commit()
			continue
		}
		if len(line) > maxLineLen {
			line = line[:maxLineLen]
		}

		if title := matchJobTitle(line); title != "" {
			walker.openEntry(title)
			continue
		}

		if !walker.open {
			continue
		}

		if walker.current.Company == "" {
			walker.current.Company = matchCompany(line)
		}
		applyDates(&walker.current, line)
		appendDescription(&walker.current, line)
	}
	walker.commit()

	if walker.entries == nil {
		return []ExperienceEntry{}
	}
	return walker.entries
}

// matchJobTitle classifies a line as opening a new entry and returns the
// title text, or "" when the line is not a title line.
func matchJobTitle(line string) string {
	probe := line
	if dateTitleRe.MatchString(line) {
		probe = strings.TrimSpace(leadingDatesRe.ReplaceAllString(line, ""))
	}
	for _, re := range titleRes {
		match := re.FindString(probe)
		if match == "" {
			continue
		}
		title := strings.TrimSpace(titleAtPrefixRe.ReplaceAllString(strings.TrimSpace(match), ""))
		if len(title) > minLineLen && len(title) < maxTitleLen {
			return title
		}
	}
	return ""
}

func matchCompany(line string) string {
	lower := strings.ToLower(line)
	for _, company := range wellKnownCompanies {
		if strings.Contains(lower, strings.ToLower(company)) {
			return company
		}
	}

	if companyLineRe.MatchString(line) && len(line) > 3 && len(line) < maxCompanyLen {
		if !fourDigitYearRe.MatchString(line) && !containsAnyFold(line, companyRoleWords) {
			return line
		}
	}

	if m := companySepRe.FindStringSubmatch(line); m != nil {
		company := strings.TrimSpace(m[1])
		if len(company) > 3 && len(company) < maxCompanyLen && !isPresentWord(company) {
			return company
		}
	}

	return ""
}

func applyDates(entry *ExperienceEntry, line string) {
	for _, re := range expDateRes {
		found := re.FindAllString(line, -1)
		if len(found) == 0 {
			continue
		}
		if entry.StartDate == "" {
			entry.StartDate = found[0]
		}
		if len(found) > 1 {
			entry.EndDate = found[1]
		} else if containsAnyFold(line, []string{"present", "current", "now"}) {
			entry.EndDate = EndDatePresent
		}
		break
	}

	if m := dateRangeRe.FindStringSubmatch(line); m != nil {
		if entry.StartDate == "" || dateOnlyLineRe.MatchString(line) {
			entry.StartDate = strings.TrimSpace(m[1])
		}
		end := strings.TrimSpace(m[2])
		if isPresentWord(end) {
			entry.EndDate = EndDatePresent
		} else {
			entry.EndDate = end
		}
	}
}

func isPresentWord(s string) bool {
	switch strings.ToLower(s) {
	case "present", "current", "now":
		return true
	}
	return false
}

func appendDescription(entry *ExperienceEntry, line string) {
	if dateOnlyLineRe.MatchString(line) {
		return
	}
	if entry.Description != "" {
		if !strings.Contains(entry.Description, line) {
			entry.Description += "\n" + line
		}
		return
	}
	// A short company-looking line is not a description on its own.
	if companyishLineRe.MatchString(line) && len(line) <= 20 {
		return
	}
	entry.Description = line
}

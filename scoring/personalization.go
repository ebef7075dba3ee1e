package scoring

import (
	"regexp"
	"strings"

	"leadadapter/lead"
)

const (
	personalizationMax = 3.0
	nameMatchScore     = 1.0
	companyMatchScore  = 1.0
	patternMatchScore  = 0.33
)

// specificPatterns mark observations that only make sense for this lead:
// years-of-experience mentions and explicit observation phrases.
var specificPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*(años|years)`),
	regexp.MustCompile(`(vi que|noté que|me llamó la atención)`),
}

// PersonalizationCriterion awards points for lead-specific content: the
// first name (+1), the company (+1), and +0.33 per specific observation
// pattern or job-title keyword, capped at 3.
type PersonalizationCriterion struct{}

func (PersonalizationCriterion) Name() string { return "personalization" }

func (PersonalizationCriterion) MaxScore() float64 { return personalizationMax }

func (PersonalizationCriterion) Score(content string, ld lead.Lead) float64 {
	score := 0.0
	contentLower := strings.ToLower(content)

	if strings.Contains(contentLower, strings.ToLower(ld.FirstName)) {
		score += nameMatchScore
	}
	if strings.Contains(contentLower, strings.ToLower(ld.CompanyName)) {
		score += companyMatchScore
	}

	for _, re := range specificPatterns {
		if re.MatchString(contentLower) {
			score += patternMatchScore
		}
	}
	if kw := jobTitleKeyword(ld.JobTitle); kw != "" && strings.Contains(contentLower, kw) {
		score += patternMatchScore
	}

	return min(score, personalizationMax)
}

// jobTitleKeyword extracts the first word of the job title, lowercased.
func jobTitleKeyword(jobTitle string) string {
	parts := strings.Fields(jobTitle)
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[0])
}

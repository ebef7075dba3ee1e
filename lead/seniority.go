package lead

import "regexp"

// Seniority is the authority tier inferred from a free-text job title,
// ordered from most to least decision power. MID is the educated default
// when a title carries no level indicator; UNKNOWN means no title at all.
// The distinction matters downstream: MID unlocks peer-level message
// strategies, UNKNOWN forces generic fallbacks.
type Seniority string

const (
	SeniorityCLevel   Seniority = "C_LEVEL"
	SeniorityVP       Seniority = "VP"
	SeniorityDirector Seniority = "DIRECTOR"
	SeniorityManager  Seniority = "MANAGER"
	SenioritySenior   Seniority = "SENIOR"
	SeniorityMid      Seniority = "MID"
	SeniorityJunior   Seniority = "JUNIOR"
	SeniorityUnknown  Seniority = "UNKNOWN"
)

// IsDecisionMaker reports whether this tier typically holds budget authority.
func (s Seniority) IsDecisionMaker() bool {
	switch s {
	case SeniorityCLevel, SeniorityVP, SeniorityDirector:
		return true
	}
	return false
}

// IsTechnical reports whether this tier is typically an individual contributor.
func (s Seniority) IsTechnical() bool {
	switch s {
	case SenioritySenior, SeniorityMid, SeniorityJunior:
		return true
	}
	return false
}

// seniorityPatterns is evaluated in order, most senior first. The first hit
// wins, so "Senior Engineering Manager" resolves to MANAGER, not SENIOR.
var seniorityPatterns = []struct {
	re    *regexp.Regexp
	level Seniority
}{
	{regexp.MustCompile(`(?i)\b(ceo|cto|cfo|coo|cio|founder|co-founder|owner)\b`), SeniorityCLevel},
	{regexp.MustCompile(`(?i)\b(vp|vice\s*president)\b`), SeniorityVP},
	{regexp.MustCompile(`(?i)\b(director|head\s+of)\b`), SeniorityDirector},
	{regexp.MustCompile(`(?i)\b(manager|lead|team\s*lead|tech\s*lead)\b`), SeniorityManager},
	{regexp.MustCompile(`(?i)\b(sr\.?|senior|staff|principal)\b`), SenioritySenior},
	{regexp.MustCompile(`(?i)\b(jr\.?|junior|entry|trainee|intern)\b`), SeniorityJunior},
}

// SeniorityInferrer maps free-text job titles to a Seniority tier.
type SeniorityInferrer struct{}

// NewSeniorityInferrer returns a SeniorityInferrer.
func NewSeniorityInferrer() SeniorityInferrer {
	return SeniorityInferrer{}
}

// Infer resolves the seniority of a job title. An empty title yields
// UNKNOWN; a title matching no known pattern yields MID.
func (SeniorityInferrer) Infer(jobTitle string) Seniority {
	if jobTitle == "" {
		return SeniorityUnknown
	}
	for _, p := range seniorityPatterns {
		if p.re.MatchString(jobTitle) {
			return p.level
		}
	}
	return SeniorityMid
}

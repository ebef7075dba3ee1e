package scoring

import (
	"regexp"
	"strings"

	"leadadapter/lead"
)

const (
	structureMax   = 2.0
	greetingScore  = 0.5
	valuePropScore = 0.75
	ctaScore       = 0.75
)

// greetingPrefixes must start the message to count.
var greetingPrefixes = []string{"hola", "hi", "hey"}

// valueKeywords indicate a value proposition somewhere in the message.
var valueKeywords = []string{"ayudar", "mejorar", "optimizar", "help", "improve"}

// ctaPatterns match a closing question, a meeting suggestion or an
// engagement prompt.
var ctaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\?$`),
	regexp.MustCompile(`(hablamos|conectamos|charlamos|chat|call)`),
	regexp.MustCompile(`(te parece|qué opinas|interesa)`),
}

// StructureCriterion rewards a greeting opener (+0.5), a value proposition
// (+0.75) and a call-to-action (+0.75), capped at 2.
type StructureCriterion struct{}

func (StructureCriterion) Name() string { return "structure" }

func (StructureCriterion) MaxScore() float64 { return structureMax }

func (StructureCriterion) Score(content string, _ lead.Lead) float64 {
	score := 0.0
	contentLower := strings.ToLower(content)

	for _, greeting := range greetingPrefixes {
		if strings.HasPrefix(contentLower, greeting) {
			score += greetingScore
			break
		}
	}

	for _, kw := range valueKeywords {
		if strings.Contains(contentLower, kw) {
			score += valuePropScore
			break
		}
	}

	for _, re := range ctaPatterns {
		if re.MatchString(contentLower) {
			score += ctaScore
			break
		}
	}

	return min(score, structureMax)
}

package scoring

import (
	"strings"

	"leadadapter/lead"
)

const (
	toneMax          = 2.0
	toneBase         = 1.0
	lengthBonus      = 0.5
	toneBalanceBonus = 0.5

	minWordCount = 50
	maxWordCount = 150
)

var formalMarkers = []string{"estimado", "distinguido", "por medio de la presente"}

var informalMarkers = []string{"bro", "crack", "genio"}

// ToneCriterion starts at 1 and rewards an appropriate word count (+0.5)
// and the absence of over-formal or over-casual markers (+0.5), capped at 2.
type ToneCriterion struct{}

func (ToneCriterion) Name() string { return "tone" }

func (ToneCriterion) MaxScore() float64 { return toneMax }

func (ToneCriterion) Score(content string, _ lead.Lead) float64 {
	score := toneBase

	words := len(strings.Fields(content))
	if words >= minWordCount && words <= maxWordCount {
		score += lengthBonus
	}

	contentLower := strings.ToLower(content)
	if !containsAny(contentLower, formalMarkers) && !containsAny(contentLower, informalMarkers) {
		score += toneBalanceBonus
	}

	return min(score, toneMax)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

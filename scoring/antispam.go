package scoring

import (
	"strings"

	"leadadapter/lead"
)

const (
	antiSpamMax      = 3.0
	penaltyPerPhrase = 0.5
)

// spamPhrases trigger a deduction when present, one check per phrase no
// matter how often it repeats.
var spamPhrases = []string{
	"revolucionar",
	"game changer",
	"best in class",
	"líder del mercado",
	"solución integral",
	"no te arrepentirás",
	"oferta limitada",
	"actúa ahora",
}

// AntiSpamCriterion starts at 3 and deducts 0.5 per spam phrase found,
// flooring at 0. Clean messages keep full marks.
type AntiSpamCriterion struct{}

func (AntiSpamCriterion) Name() string { return "anti_spam" }

func (AntiSpamCriterion) MaxScore() float64 { return antiSpamMax }

func (AntiSpamCriterion) Score(content string, _ lead.Lead) float64 {
	contentLower := strings.ToLower(content)

	penalty := 0.0
	for _, phrase := range spamPhrases {
		if strings.Contains(contentLower, phrase) {
			penalty += penaltyPerPhrase
		}
	}

	return max(antiSpamMax-penalty, 0)
}

// DetectedSpamPhrases lists which spam phrases appear in the content,
// useful when reporting why a message scored low.
func (AntiSpamCriterion) DetectedSpamPhrases(content string) []string {
	contentLower := strings.ToLower(content)
	var found []string
	for _, phrase := range spamPhrases {
		if strings.Contains(contentLower, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

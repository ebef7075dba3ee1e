// Package scoring evaluates generated message text across pluggable quality
// dimensions. Each criterion is an independent strategy; the Scorer only
// aggregates, so new dimensions plug in without touching existing code.
package scoring

import "leadadapter/lead"

// Criterion evaluates one quality dimension of a message.
// Implementations must clamp the returned score to [0, MaxScore] and must
// tolerate empty content.
type Criterion interface {
	// Name uniquely identifies the criterion in the breakdown.
	Name() string
	// MaxScore is the most points the criterion can award.
	MaxScore() float64
	// Score rates the content for this dimension, using the lead for
	// personalization-aware checks.
	Score(content string, ld lead.Lead) float64
}

// DefaultCriteria returns the standard four dimensions: personalization
// (0-3), anti-spam (0-3), structure (0-2) and tone (0-2).
func DefaultCriteria() []Criterion {
	return []Criterion{
		PersonalizationCriterion{},
		AntiSpamCriterion{},
		StructureCriterion{},
		ToneCriterion{},
	}
}

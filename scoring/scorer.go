package scoring

import (
	"fmt"

	"leadadapter/lead"
)

// Breakdown is the per-dimension result of scoring one message. The four
// standard dimensions have named fields; any additional registered
// criterion lands in Extra under its own name.
type Breakdown struct {
	Personalization float64            `json:"personalization"`
	AntiSpam        float64            `json:"anti_spam"`
	Structure       float64            `json:"structure"`
	Tone            float64            `json:"tone"`
	Extra           map[string]float64 `json:"extra,omitempty"`
}

// Total sums every dimension, standard and extra.
func (b Breakdown) Total() float64 {
	total := b.Personalization + b.AntiSpam + b.Structure + b.Tone
	for _, v := range b.Extra {
		total += v
	}
	return total
}

// Map flattens the breakdown into name->score form.
func (b Breakdown) Map() map[string]float64 {
	m := map[string]float64{
		"personalization": b.Personalization,
		"anti_spam":       b.AntiSpam,
		"structure":       b.Structure,
		"tone":            b.Tone,
	}
	for name, v := range b.Extra {
		m[name] = v
	}
	return m
}

// Scorer runs every registered criterion against a message. It only
// orchestrates; the scoring logic lives in the criteria.
type Scorer struct {
	criteria []Criterion
}

// NewScorer builds a Scorer from the given criteria, or the default set
// when none are given. Registering two criteria under the same name is a
// configuration error.
func NewScorer(criteria ...Criterion) (*Scorer, error) {
	if len(criteria) == 0 {
		criteria = DefaultCriteria()
	}

	seen := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		if seen[c.Name()] {
			return nil, fmt.Errorf("duplicate scoring criterion %q", c.Name())
		}
		seen[c.Name()] = true
	}

	return &Scorer{criteria: criteria}, nil
}

// MaxPossible is the sum of every criterion's maximum.
func (s *Scorer) MaxPossible() float64 {
	total := 0.0
	for _, c := range s.criteria {
		total += c.MaxScore()
	}
	return total
}

// Score evaluates the content against all criteria.
func (s *Scorer) Score(content string, ld lead.Lead) Breakdown {
	var b Breakdown
	for _, c := range s.criteria {
		value := c.Score(content, ld)
		switch c.Name() {
		case "personalization":
			b.Personalization = value
		case "anti_spam":
			b.AntiSpam = value
		case "structure":
			b.Structure = value
		case "tone":
			b.Tone = value
		default:
			if b.Extra == nil {
				b.Extra = make(map[string]float64)
			}
			b.Extra[c.Name()] = value
		}
	}
	return b
}

// Criterion returns the registered criterion with the given name, or nil.
func (s *Scorer) Criterion(name string) Criterion {
	for _, c := range s.criteria {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

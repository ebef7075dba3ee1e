package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"leadadapter/errs"
	"leadadapter/outreach"
	"leadadapter/scoring"
)

// QualityGate runs the prompt chain up to maxAttempts times and accepts the
// first message whose total score meets the threshold. If every attempt
// falls short, the best-scoring attempt is returned anyway so a slow chain
// run is never wasted.
type QualityGate struct {
	runner      *ChainRunner
	scorer      *scoring.Scorer
	threshold   float64
	maxAttempts int
	logger      *zap.Logger
}

// GateResult is one accepted (or best-effort) generation outcome.
type GateResult struct {
	Message   outreach.Message
	Breakdown scoring.Breakdown
	Tokens    int
	Model     string
	Attempts  int
}

// NewQualityGate wires a gate around the chain. maxAttempts must be at
// least 1; config validation enforces this before construction.
func NewQualityGate(runner *ChainRunner, scorer *scoring.Scorer, threshold float64, maxAttempts int, logger *zap.Logger) *QualityGate {
	return &QualityGate{
		runner:      runner,
		scorer:      scorer,
		threshold:   threshold,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// GenerateWithRetry runs attempts until one passes the gate or the budget
// is exhausted. Chain errors propagate immediately without consuming the
// remaining budget; a QualityThresholdError is returned only when not a
// single attempt completed.
func (g *QualityGate) GenerateWithRetry(ctx context.Context, in ChainInput) (GateResult, error) {
	var best *GateResult
	bestScore := -1.0

	attempts := 0
	for attempts < g.maxAttempts {
		if err := ctx.Err(); err != nil {
			if best != nil {
				return *best, nil
			}
			return GateResult{}, fmt.Errorf("generation cancelled: %w", err)
		}
		attempts++

		result, err := g.runner.Run(ctx, in)
		if err != nil {
			return GateResult{}, err
		}

		breakdown := g.scorer.Score(result.Content, in.Lead)
		total := breakdown.Total()

		g.logger.Debug("scored generation attempt",
			zap.Int("attempt", attempts),
			zap.Float64("score", total),
			zap.Float64("threshold", g.threshold))

		msg, err := outreach.NewMessage(outreach.Message{
			Content:          result.Content,
			Channel:          in.Channel,
			SequenceStep:     in.SequenceStep,
			Strategy:         in.Strategy,
			QualityScore:     total,
			QualityBreakdown: breakdown.Map(),
			TokensUsed:       result.Tokens,
			Model:            result.Model,
		})
		if err != nil {
			return GateResult{}, fmt.Errorf("failed to build message from attempt %d: %w", attempts, err)
		}

		candidate := GateResult{
			Message:   msg,
			Breakdown: breakdown,
			Tokens:    result.Tokens,
			Model:     result.Model,
			Attempts:  attempts,
		}

		if total >= g.threshold {
			return candidate, nil
		}
		if best == nil || total > bestScore {
			c := candidate
			best = &c
			bestScore = total
		}
	}

	if best != nil {
		g.logger.Warn("quality threshold not met, returning best attempt",
			zap.Float64("best_score", bestScore),
			zap.Float64("threshold", g.threshold),
			zap.Int("attempts", best.Attempts))
		best.Attempts = attempts
		return *best, nil
	}
	return GateResult{}, &errs.QualityThresholdError{Score: 0, Threshold: g.threshold}
}

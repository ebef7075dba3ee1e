package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"leadadapter/cache"
	"leadadapter/lead"
	"leadadapter/outreach"
	"leadadapter/playbook"
)

// Generator is the top-level use case: validate the request, run the rule
// engines, generate through the quality gate, and serve repeat requests
// from cache.
type Generator struct {
	gate     *QualityGate
	inferrer lead.SeniorityInferrer
	matcher  playbook.Matcher
	selector outreach.StrategySelector
	store    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewGenerator wires the use case. store may be nil to disable caching.
func NewGenerator(gate *QualityGate, store cache.Store, cacheTTL time.Duration, logger *zap.Logger) *Generator {
	return &Generator{
		gate:     gate,
		inferrer: lead.NewSeniorityInferrer(),
		matcher:  playbook.NewMatcher(),
		selector: outreach.NewStrategySelector(),
		store:    store,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Generate produces one outreach message for the request. Identical
// requests within the cache TTL return the originally generated response.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	key := cache.MessageKey(req.Lead.FirstName, req.Lead.JobTitle, req.Lead.CompanyName, req.Channel, req.SequenceStep)

	if cached, ok := g.lookup(ctx, key); ok {
		return cached, nil
	}

	ld, sender, pb, channel, step, err := req.Domain()
	if err != nil {
		return GenerateResponse{}, err
	}

	seniority := g.inferrer.Infer(ld.JobTitle)
	matched := g.matcher.Match(ld, pb)
	strategy := g.selector.Select(ld, channel, step, pb, seniority)

	g.logger.Info("generating message",
		zap.String("company", ld.CompanyName),
		zap.String("channel", string(channel)),
		zap.String("step", string(step)),
		zap.String("seniority", string(seniority)),
		zap.String("strategy", string(strategy)),
		zap.Bool("icp_matched", matched != nil))

	start := time.Now()
	result, err := g.gate.GenerateWithRetry(ctx, ChainInput{
		Lead:         ld,
		Sender:       sender,
		Playbook:     pb,
		Channel:      channel,
		SequenceStep: step,
		Strategy:     strategy,
		MatchedICP:   matched,
		Seniority:    seniority,
	})
	if err != nil {
		return GenerateResponse{}, err
	}
	elapsed := time.Since(start)

	resp := GenerateResponse{
		MessageID: result.Message.ID,
		Content:   result.Message.Content,
		Quality: QualityReport{
			Score:           result.Message.QualityScore,
			Breakdown:       result.Breakdown.Map(),
			PassesThreshold: result.Message.PassesQualityGate(g.gate.threshold),
		},
		StrategyUsed: string(strategy),
		Metadata: GenerationMetadata{
			TokensUsed:       result.Tokens,
			GenerationTimeMS: elapsed.Milliseconds(),
			ModelUsed:        result.Model,
			Attempts:         result.Attempts,
		},
		CreatedAt: result.Message.CreatedAt,
	}

	g.save(ctx, key, resp)
	return resp, nil
}

// lookup treats any cache failure as a miss so caching never blocks
// generation.
func (g *Generator) lookup(ctx context.Context, key string) (GenerateResponse, bool) {
	if g.store == nil {
		return GenerateResponse{}, false
	}
	raw, ok, err := g.store.Get(ctx, key)
	if err != nil {
		g.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		return GenerateResponse{}, false
	}
	if !ok {
		return GenerateResponse{}, false
	}
	var resp GenerateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		g.logger.Warn("discarding corrupt cache entry", zap.String("key", key), zap.Error(err))
		return GenerateResponse{}, false
	}
	g.logger.Debug("cache hit", zap.String("key", key))
	return resp, true
}

// save stores the response unless the context was already cancelled, so a
// partially delivered generation is not cached for later requests.
func (g *Generator) save(ctx context.Context, key string, resp GenerateResponse) {
	if g.store == nil || ctx.Err() != nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		g.logger.Warn("failed to encode response for cache", zap.Error(err))
		return
	}
	if err := g.store.Set(ctx, key, raw, g.cacheTTL); err != nil {
		g.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Package pipeline composes the message-generation flow: the three-stage
// prompt chain, the quality gate around it, and the top-level Generator
// that wires rule engines, caching and mapping together.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"leadadapter/errs"
	"leadadapter/lead"
	"leadadapter/llm"
	"leadadapter/outreach"
	"leadadapter/playbook"
)

// Stage temperatures: structured calls stay low, the final generation runs
// hotter for variety between retry attempts.
const (
	classifyTemperature = 0.2
	inferTemperature    = 0.3
	generateTemperature = 0.7

	generateMaxTokens = 1000
)

// ChainInput carries everything the prompt chain needs for one attempt.
type ChainInput struct {
	Lead         lead.Lead
	Sender       lead.Sender
	Playbook     playbook.Playbook
	Channel      outreach.Channel
	SequenceStep outreach.SequenceStep
	Strategy     outreach.Strategy
	MatchedICP   *playbook.ICPProfile
	Seniority    lead.Seniority
}

// ChainResult is the outcome of one full chain run. Tokens accumulate over
// all three calls; Model is the one that produced the final text.
type ChainResult struct {
	Content string
	Tokens  int
	Model   string
}

// classification is the parsed output of the classify stage.
type classification struct {
	RoleType   string  `json:"role_type"`
	Confidence float64 `json:"confidence"`
}

// inferredContext is the parsed output of the infer stage.
type inferredContext struct {
	PainPoints    []string `json:"pain_points"`
	Hooks         []string `json:"hooks"`
	TalkingPoints []string `json:"talking_points"`
}

// ChainRunner executes the three-stage prompt chain: classify the lead,
// infer personalization context, then generate the message text. Stages
// are strictly sequential; each consumes the previous stage's output.
type ChainRunner struct {
	llm    llm.Client
	logger *zap.Logger
}

// NewChainRunner returns a ChainRunner over the given generative client.
func NewChainRunner(client llm.Client, logger *zap.Logger) *ChainRunner {
	return &ChainRunner{llm: client, logger: logger}
}

// Run executes the full chain. Malformed structured output or transport
// failures propagate unchanged; no stage is repaired or retried here.
func (r *ChainRunner) Run(ctx context.Context, in ChainInput) (ChainResult, error) {
	cls, clsTokens, err := r.classify(ctx, in)
	if err != nil {
		return ChainResult{}, err
	}

	inferred, inferTokens, err := r.inferContext(ctx, in, cls)
	if err != nil {
		return ChainResult{}, err
	}

	resp, err := r.generate(ctx, in, inferred)
	if err != nil {
		return ChainResult{}, err
	}

	r.logger.Debug("prompt chain completed",
		zap.String("role_type", cls.RoleType),
		zap.Int("tokens", clsTokens+inferTokens+resp.TotalTokens()),
		zap.String("model", resp.Model))

	return ChainResult{
		Content: resp.Content,
		Tokens:  clsTokens + inferTokens + resp.TotalTokens(),
		Model:   resp.Model,
	}, nil
}

func (r *ChainRunner) classify(ctx context.Context, in ChainInput) (classification, int, error) {
	prompt := buildClassifyPrompt(in.Lead.JobTitle, in.Lead.CompanyName, string(in.Seniority))

	resp, err := r.llm.CompleteJSON(ctx, prompt, classifySystem, classifyTemperature)
	if err != nil {
		return classification{}, 0, fmt.Errorf("lead classification failed: %w", err)
	}

	var cls classification
	if err := json.Unmarshal([]byte(resp.Content), &cls); err != nil {
		return classification{}, 0, errs.NewLLM("classify", fmt.Errorf("malformed JSON: %w", err))
	}
	return cls, resp.TotalTokens(), nil
}

func (r *ChainRunner) inferContext(ctx context.Context, in ChainInput, cls classification) (inferredContext, int, error) {
	product := r.chooseProduct(in)

	var industry, companySize string
	if in.MatchedICP != nil {
		if len(in.MatchedICP.TargetIndustries) > 0 {
			industry = in.MatchedICP.TargetIndustries[0]
		}
		if in.MatchedICP.CompanySizeMax > 0 {
			companySize = fmt.Sprintf("%d-%d employees", in.MatchedICP.CompanySizeMin, in.MatchedICP.CompanySizeMax)
		}
	}
	years, _ := in.Lead.YearsInCurrentRole()

	prompt := buildInferContextPrompt(
		in.Lead.JobTitle, in.Lead.CompanyName, cls.RoleType,
		product.Name+" - "+product.Description,
		industry, companySize, years)

	resp, err := r.llm.CompleteJSON(ctx, prompt, inferContextSystem, inferTemperature)
	if err != nil {
		return inferredContext{}, 0, fmt.Errorf("context inference failed: %w", err)
	}

	var inferred inferredContext
	if err := json.Unmarshal([]byte(resp.Content), &inferred); err != nil {
		return inferredContext{}, 0, errs.NewLLM("infer context", fmt.Errorf("malformed JSON: %w", err))
	}
	return inferred, resp.TotalTokens(), nil
}

func (r *ChainRunner) generate(ctx context.Context, in ChainInput, inferred inferredContext) (llm.Response, error) {
	product := r.chooseProduct(in)

	benefit := ""
	if len(inferred.PainPoints) > 0 {
		benefit = product.BenefitForPain(inferred.PainPoints[0])
	}
	if benefit == "" && len(product.KeyBenefits) > 0 {
		benefit = product.KeyBenefits[0]
	}
	years, _ := in.Lead.YearsInCurrentRole()

	prompt := buildGeneratePrompt(generatePromptParams{
		leadName:           in.Lead.FirstName,
		leadTitle:          in.Lead.JobTitle,
		leadCompany:        in.Lead.CompanyName,
		senderName:         in.Sender.Name,
		senderCompany:      in.Sender.CompanyName,
		channel:            in.Channel,
		step:               in.SequenceStep,
		strategy:           in.Strategy,
		painPoints:         inferred.PainPoints,
		hooks:              inferred.Hooks,
		productName:        product.Name,
		productBenefit:     benefit,
		communicationStyle: in.Playbook.CommunicationStyle,
		yearsInRole:        years,
	})

	resp, err := r.llm.Complete(ctx, prompt, generateSystem, generateTemperature, generateMaxTokens)
	if err != nil {
		return llm.Response{}, fmt.Errorf("message generation failed: %w", err)
	}
	return resp, nil
}

// chooseProduct picks the product most relevant to the matched ICP, or the
// playbook's first product when no profile matched.
func (r *ChainRunner) chooseProduct(in ChainInput) playbook.Product {
	if in.MatchedICP != nil {
		return in.Playbook.ProductForICP(*in.MatchedICP)
	}
	return in.Playbook.Products[0]
}

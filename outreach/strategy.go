package outreach

import (
	"leadadapter/lead"
	"leadadapter/playbook"
)

// Strategy is the persuasion angle a message is built around.
type Strategy string

const (
	StrategyTechnicalPeer    Strategy = "technical_peer"
	StrategyBusinessValue    Strategy = "business_value"
	StrategyProblemSolution  Strategy = "problem_solution"
	StrategySocialProof      Strategy = "social_proof"
	StrategyCuriosityHook    Strategy = "curiosity_hook"
	StrategyMutualConnection Strategy = "mutual_connection"
)

var strategyDescriptions = map[Strategy]string{
	StrategyTechnicalPeer:    "Hablar como un par técnico, usar jerga del sector",
	StrategyBusinessValue:    "Enfocarse en ROI y métricas de negocio",
	StrategyProblemSolution:  "Atacar un pain point específico",
	StrategySocialProof:      "Usar casos de éxito y testimonios",
	StrategyCuriosityHook:    "Generar curiosidad con una pregunta",
	StrategyMutualConnection: "Mencionar conexiones o contexto común",
}

// Description returns the one-line framing handed to the generator.
func (s Strategy) Description() string {
	return strategyDescriptions[s]
}

// strategiesBySeniority is the base candidate table, first entry preferred.
// Unmapped tiers (UNKNOWN) fall back to problem_solution alone.
var strategiesBySeniority = map[lead.Seniority][]Strategy{
	lead.SeniorityCLevel:   {StrategyBusinessValue, StrategySocialProof},
	lead.SeniorityVP:       {StrategyBusinessValue, StrategyProblemSolution},
	lead.SeniorityDirector: {StrategyProblemSolution, StrategyBusinessValue},
	lead.SeniorityManager:  {StrategyProblemSolution, StrategyTechnicalPeer},
	lead.SenioritySenior:   {StrategyTechnicalPeer, StrategyProblemSolution},
	lead.SeniorityMid:      {StrategyTechnicalPeer, StrategyCuriosityHook},
	lead.SeniorityJunior:   {StrategyCuriosityHook, StrategyTechnicalPeer},
}

// StrategiesForSeniority returns the candidate strategies for a tier.
func StrategiesForSeniority(s lead.Seniority) []Strategy {
	if candidates, ok := strategiesBySeniority[s]; ok {
		return candidates
	}
	return []Strategy{StrategyProblemSolution}
}

// StrategySelector picks a persuasion strategy from the lead context.
type StrategySelector struct{}

// NewStrategySelector returns a StrategySelector.
func NewStrategySelector() StrategySelector {
	return StrategySelector{}
}

// Select resolves the strategy for a message. Overrides apply in fixed
// precedence: prior contact forces problem_solution when it is a candidate,
// breakup steps force curiosity_hook, and a LinkedIn first contact forces
// mutual_connection; otherwise the first seniority candidate wins.
func (StrategySelector) Select(
	ld lead.Lead,
	channel Channel,
	step SequenceStep,
	_ playbook.Playbook,
	seniority lead.Seniority,
) Strategy {
	candidates := StrategiesForSeniority(seniority)

	if ld.HasPreviousContact() && contains(candidates, StrategyProblemSolution) {
		return StrategyProblemSolution
	}

	if step == StepBreakup {
		return StrategyCuriosityHook
	}

	if step == StepFirstContact && channel == ChannelLinkedIn {
		return StrategyMutualConnection
	}

	if len(candidates) == 0 {
		return StrategyProblemSolution
	}
	return candidates[0]
}

func contains(strategies []Strategy, s Strategy) bool {
	for _, candidate := range strategies {
		if candidate == s {
			return true
		}
	}
	return false
}

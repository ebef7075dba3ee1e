package pipeline

import (
	"fmt"
	"strings"

	"leadadapter/outreach"
)

// System prompts for the three chain stages. The classify and infer stages
// demand JSON so their output can be parsed; generate returns free text.

const classifySystem = `You are a B2B sales expert. Classify the lead's role type based on their job title and company context.

Role types:
- decision_maker: C-level, VP, Director with budget authority
- influencer: Manager, Lead who can influence decisions
- end_user: Individual contributor who would use the product
- gatekeeper: Admin, Assistant who controls access

Respond in JSON format:
{
  "role_type": "decision_maker|influencer|end_user|gatekeeper",
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}`

const inferContextSystem = `You are a B2B sales research expert. Based on the lead's profile, infer likely pain points, personalization hooks, and talking points.

Consider:
1. Common challenges for this role/seniority
2. Industry-specific problems
3. Current tech trends affecting their work
4. Likely priorities based on role type

Be specific and actionable. Avoid generic statements.

Respond in JSON format:
{
  "pain_points": ["specific pain point 1", "specific pain point 2", "specific pain point 3"],
  "hooks": ["personalization hook 1", "personalization hook 2"],
  "talking_points": ["talking point 1", "talking point 2"]
}`

const generateSystem = `You are an expert B2B copywriter. Generate personalized outreach messages that:
1. Feel genuine and human (not templated)
2. Reference specific details about the prospect
3. Have a clear value proposition
4. End with a soft call-to-action

NEVER use:
- Generic phrases like "game changer", "revolucionar", "líder del mercado"
- Aggressive sales language
- False urgency

Respond with ONLY the message content, no explanations.`

func buildClassifyPrompt(jobTitle, companyName, seniority string) string {
	return fmt.Sprintf(`Classify this lead:

Job Title: %s
Company: %s
Inferred Seniority: %s

What is their role type?`, jobTitle, companyName, seniority)
}

func buildInferContextPrompt(jobTitle, companyName, roleType, productContext, industry, companySize string, yearsInRole int) string {
	var contextParts []string
	if industry != "" {
		contextParts = append(contextParts, "Industry: "+industry)
	}
	if yearsInRole > 0 {
		contextParts = append(contextParts, fmt.Sprintf("Years in role: %d", yearsInRole))
	}
	if companySize != "" {
		contextParts = append(contextParts, "Company size: "+companySize)
	}
	additional := "No additional context available"
	if len(contextParts) > 0 {
		additional = strings.Join(contextParts, "\n")
	}

	return fmt.Sprintf(`Infer likely pain points and personalization opportunities for this lead:

LEAD PROFILE:
- Job Title: %s
- Company: %s
- Role Type: %s
%s

PRODUCT CONTEXT:
- Category: %s

What are their likely pain points, personalization hooks, and talking points?`,
		jobTitle, companyName, roleType, additional, productContext)
}

type generatePromptParams struct {
	leadName           string
	leadTitle          string
	leadCompany        string
	senderName         string
	senderCompany      string
	channel            outreach.Channel
	step               outreach.SequenceStep
	strategy           outreach.Strategy
	painPoints         []string
	hooks              []string
	productName        string
	productBenefit     string
	communicationStyle string
	yearsInRole        int
}

func buildGeneratePrompt(p generatePromptParams) string {
	context := "- No additional context"
	if p.yearsInRole > 0 {
		context = fmt.Sprintf("- Has been in their role for %d+ years", p.yearsInRole)
	}

	return fmt.Sprintf(`Generate a %s message for %s.

STEP TONE: %s (urgency %d/4)

LEAD:
- Name: %s
- Title: %s
- Company: %s
%s

SENDER:
- Name: %s
- Company: %s

STRATEGY: %s - %s

INFERRED PAIN POINTS:
%s

PERSONALIZATION HOOKS:
%s

PRODUCT TO MENTION:
- Name: %s
- Key Benefit: %s

TONE: %s

MAX LENGTH: %d characters

Write the message now:`,
		p.channel, p.step,
		p.step.Tone(), p.step.Urgency(),
		p.leadName, p.leadTitle, p.leadCompany, context,
		p.senderName, p.senderCompany,
		p.strategy, p.strategy.Description(),
		bulleted(p.painPoints, 3),
		bulleted(p.hooks, 2),
		p.productName, p.productBenefit,
		p.communicationStyle,
		p.channel.MaxLength())
}

// bulleted renders up to limit items as "- item" lines.
func bulleted(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

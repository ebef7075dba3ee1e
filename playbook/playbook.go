// Package playbook holds the commercial configuration used to personalize
// outreach: products, ideal-customer profiles and sales material, plus the
// matching rules that pick the most relevant profile for a lead.
package playbook

import (
	"strings"

	"leadadapter/errs"
	"leadadapter/lead"
)

// Product is an immutable description of something being sold. Benefits and
// target problems are parallel lists: KeyBenefits[i] answers TargetProblems[i].
type Product struct {
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	KeyBenefits    []string `json:"key_benefits,omitempty" yaml:"key_benefits"`
	TargetProblems []string `json:"target_problems,omitempty" yaml:"target_problems"`
}

// NewProduct validates and returns a Product.
func NewProduct(p Product) (Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return Product{}, errs.NewValidation("name", "cannot be empty")
	}
	return p, nil
}

// BenefitForPain returns the benefit paired with the target problem that
// contains the pain point, falling back to the first benefit.
func (p Product) BenefitForPain(painPoint string) string {
	painLower := strings.ToLower(painPoint)
	for i, problem := range p.TargetProblems {
		if strings.Contains(strings.ToLower(problem), painLower) && i < len(p.KeyBenefits) {
			return p.KeyBenefits[i]
		}
	}
	if len(p.KeyBenefits) > 0 {
		return p.KeyBenefits[0]
	}
	return ""
}

// ICPProfile is an immutable ideal-customer profile used for relevance
// matching against leads.
type ICPProfile struct {
	Name             string   `json:"name" yaml:"name"`
	TargetTitles     []string `json:"target_titles,omitempty" yaml:"target_titles"`
	TargetIndustries []string `json:"target_industries,omitempty" yaml:"target_industries"`
	CompanySizeMin   int      `json:"company_size_min,omitempty" yaml:"company_size_min"`
	CompanySizeMax   int      `json:"company_size_max,omitempty" yaml:"company_size_max"`
	PainPoints       []string `json:"pain_points,omitempty" yaml:"pain_points"`
	KeywordsSector   []string `json:"keywords_sector,omitempty" yaml:"keywords_sector"`
}

// MatchesTitle is a quick binary eligibility check: does the job title
// contain any target title? For weighted matching use Matcher.
func (p ICPProfile) MatchesTitle(jobTitle string) bool {
	titleLower := strings.ToLower(jobTitle)
	for _, target := range p.TargetTitles {
		if strings.Contains(titleLower, strings.ToLower(target)) {
			return true
		}
	}
	return false
}

// relevanceKeywords groups pain-point vocabulary by role type so that
// executives see business problems, managers see team problems and
// individual contributors see implementation problems.
var relevanceKeywords = map[string][]string{
	"executive": {
		"roi", "costo", "presupuesto", "escalar", "crecer", "revenue",
		"inversión", "competencia", "mercado", "estrategia", "visión", "roadmap",
	},
	"manager": {
		"equipo", "productividad", "deadline", "contratar", "retención",
		"talento", "coordinación", "delivery", "recursos", "capacidad", "planning",
	},
	"technical": {
		"bug", "deuda técnica", "legacy", "performance", "documentación",
		"testing", "deploy", "integración", "herramientas", "arquitectura", "código",
	},
}

// RelevantPainPoints filters the profile's pain points by the lead's
// seniority role group. When the filter would leave nothing, all pain
// points are returned instead.
func (p ICPProfile) RelevantPainPoints(seniority lead.Seniority) []string {
	if len(p.PainPoints) == 0 {
		return nil
	}

	keywords := relevanceKeywords[roleTypeFor(seniority)]
	var relevant []string
	for _, pain := range p.PainPoints {
		painLower := strings.ToLower(pain)
		for _, kw := range keywords {
			if strings.Contains(painLower, kw) {
				relevant = append(relevant, pain)
				break
			}
		}
	}

	if len(relevant) == 0 {
		return append([]string(nil), p.PainPoints...)
	}
	return relevant
}

func roleTypeFor(s lead.Seniority) string {
	switch {
	case s.IsDecisionMaker():
		return "executive"
	case s == lead.SeniorityManager:
		return "manager"
	default:
		return "technical"
	}
}

// Playbook bundles the communication style, products and target profiles
// that drive message generation. At least one product is required.
type Playbook struct {
	CommunicationStyle string       `json:"communication_style" yaml:"communication_style"`
	Products           []Product    `json:"products" yaml:"products"`
	ICPProfiles        []ICPProfile `json:"icp_profiles,omitempty" yaml:"icp_profiles"`
	SuccessCases       []string     `json:"success_cases,omitempty" yaml:"success_cases"`
	CommonObjections   []string     `json:"common_objections,omitempty" yaml:"common_objections"`
	ValuePropositions  []string     `json:"value_propositions,omitempty" yaml:"value_propositions"`
}

// NewPlaybook validates and returns a Playbook.
func NewPlaybook(p Playbook) (Playbook, error) {
	if strings.TrimSpace(p.CommunicationStyle) == "" {
		return Playbook{}, errs.NewValidation("communication_style", "cannot be empty")
	}
	if len(p.Products) == 0 {
		return Playbook{}, errs.NewValidation("products", "cannot be empty")
	}
	return p, nil
}

// ProductForICP returns the product whose target problems overlap most with
// the profile's pain points, or the first product when nothing stands out.
func (p Playbook) ProductForICP(icp ICPProfile) Product {
	if len(icp.PainPoints) == 0 {
		return p.Products[0]
	}

	var best *Product
	bestScore := 0
	for i := range p.Products {
		score := 0
		for _, pain := range icp.PainPoints {
			for _, problem := range p.Products[i].TargetProblems {
				painLower := strings.ToLower(pain)
				problemLower := strings.ToLower(problem)
				if strings.Contains(problemLower, painLower) || strings.Contains(painLower, problemLower) {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = &p.Products[i]
		}
	}

	if best == nil {
		return p.Products[0]
	}
	return *best
}

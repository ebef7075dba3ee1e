package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferSeniority(t *testing.T) {
	inferrer := NewSeniorityInferrer()

	tests := []struct {
		title string
		want  Seniority
	}{
		{"CEO", SeniorityCLevel},
		{"Founder & CTO", SeniorityCLevel},
		{"VP of Engineering", SeniorityVP},
		{"Vice President, Sales", SeniorityVP},
		{"Director of Operations", SeniorityDirector},
		{"Head of Growth", SeniorityDirector},
		{"Engineering Manager", SeniorityManager},
		{"Team Lead", SeniorityManager},
		{"Senior PHP Developer", SenioritySenior},
		{"Staff Engineer", SenioritySenior},
		{"Junior Analyst", SeniorityJunior},
		{"Software Engineer", SeniorityMid},
		{"Consultant", SeniorityMid},
		{"", SeniorityUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, inferrer.Infer(tt.title))
		})
	}
}

func TestInferSeniorityFirstMatchWins(t *testing.T) {
	inferrer := NewSeniorityInferrer()

	// A title carrying several level markers resolves to the most senior.
	assert.Equal(t, SeniorityManager, inferrer.Infer("Senior Engineering Manager"))
	assert.Equal(t, SeniorityCLevel, inferrer.Infer("CTO and Lead Developer"))
	assert.Equal(t, SeniorityVP, inferrer.Infer("VP, Senior Director Track"))
}

func TestSeniorityClassification(t *testing.T) {
	assert.True(t, SeniorityCLevel.IsDecisionMaker())
	assert.True(t, SeniorityDirector.IsDecisionMaker())
	assert.False(t, SeniorityManager.IsDecisionMaker())
	assert.False(t, SeniorityUnknown.IsDecisionMaker())

	assert.True(t, SenioritySenior.IsTechnical())
	assert.True(t, SeniorityMid.IsTechnical())
	assert.False(t, SeniorityVP.IsTechnical())
}

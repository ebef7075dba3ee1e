package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadadapter/lead"
)

var testLead = lead.Lead{
	FirstName:   "María",
	JobTitle:    "Engineering Manager",
	CompanyName: "TechCorp",
}

func TestPersonalizationCriterion(t *testing.T) {
	c := PersonalizationCriterion{}

	t.Run("name and company", func(t *testing.T) {
		got := c.Score("Hola María, me encantó lo que hacen en TechCorp.", testLead)
		assert.InDelta(t, 2.0, got, 0.001)
	})

	t.Run("specific observation adds points", func(t *testing.T) {
		got := c.Score("Hola María, vi que llevas 5 años en TechCorp.", testLead)
		// name + company + years pattern + observation phrase
		assert.InDelta(t, 2.66, got, 0.001)
	})

	t.Run("generic content scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, c.Score("Saludos, tenemos una propuesta para usted.", testLead))
	})

	t.Run("capped at three", func(t *testing.T) {
		content := "Hola María de TechCorp, vi que llevas 5 años como engineering lead, noté que el equipo creció."
		assert.LessOrEqual(t, c.Score(content, testLead), 3.0)
	})
}

func TestAntiSpamCriterion(t *testing.T) {
	c := AntiSpamCriterion{}

	t.Run("clean content keeps full marks", func(t *testing.T) {
		assert.Equal(t, 3.0, c.Score("Hola María, vi tu trabajo en TechCorp.", testLead))
	})

	t.Run("each phrase deducts half a point", func(t *testing.T) {
		content := "Somos el game changer que va a revolucionar tu sector."
		assert.InDelta(t, 2.0, c.Score(content, testLead), 0.001)
		assert.Equal(t, []string{"revolucionar", "game changer"}, c.DetectedSpamPhrases(content))
	})

	t.Run("floors at zero", func(t *testing.T) {
		content := strings.Join(spamPhrases, " ") + " " + strings.Join(spamPhrases, " ")
		assert.Equal(t, 0.0, c.Score(content, testLead))
	})
}

func TestStructureCriterion(t *testing.T) {
	c := StructureCriterion{}

	t.Run("full structure", func(t *testing.T) {
		got := c.Score("Hola María, podemos ayudar a tu equipo. ¿Te parece si hablamos?", testLead)
		assert.Equal(t, 2.0, got)
	})

	t.Run("greeting only", func(t *testing.T) {
		assert.Equal(t, 0.5, c.Score("Hola María. Un gusto saludarte.", testLead))
	})

	t.Run("no structural elements", func(t *testing.T) {
		assert.Equal(t, 0.0, c.Score("Nuestra empresa vende software.", testLead))
	})
}

func TestToneCriterion(t *testing.T) {
	c := ToneCriterion{}

	t.Run("short but balanced", func(t *testing.T) {
		assert.Equal(t, 1.5, c.Score("Hola María, un gusto.", testLead))
	})

	t.Run("ideal length and balanced", func(t *testing.T) {
		content := strings.Repeat("palabra ", 60)
		assert.Equal(t, 2.0, c.Score(content, testLead))
	})

	t.Run("formal marker loses balance bonus", func(t *testing.T) {
		assert.Equal(t, 1.0, c.Score("Estimado señor, le escribo brevemente.", testLead))
	})

	t.Run("informal marker loses balance bonus", func(t *testing.T) {
		assert.Equal(t, 1.0, c.Score("Qué tal crack, todo bien.", testLead))
	})
}

func TestScorer(t *testing.T) {
	t.Run("total equals sum of dimensions", func(t *testing.T) {
		scorer, err := NewScorer(DefaultCriteria()...)
		require.NoError(t, err)

		content := "Hola María, vi que el equipo de TechCorp creció. Podemos ayudar con eso. ¿Hablamos?"
		b := scorer.Score(content, testLead)
		assert.InDelta(t, b.Personalization+b.AntiSpam+b.Structure+b.Tone, b.Total(), 0.0001)
		assert.Equal(t, 10.0, scorer.MaxPossible())
	})

	t.Run("defaults applied when no criteria given", func(t *testing.T) {
		scorer, err := NewScorer()
		require.NoError(t, err)
		assert.NotNil(t, scorer.Criterion("anti_spam"))
	})

	t.Run("duplicate criterion names rejected", func(t *testing.T) {
		_, err := NewScorer(ToneCriterion{}, ToneCriterion{})
		assert.ErrorContains(t, err, "duplicate scoring criterion")
	})

	t.Run("empty content scores safely", func(t *testing.T) {
		scorer, err := NewScorer()
		require.NoError(t, err)
		b := scorer.Score("", testLead)
		assert.Equal(t, 0.0, b.Personalization)
		assert.Equal(t, 3.0, b.AntiSpam)
		assert.Equal(t, 0.0, b.Structure)
	})

	t.Run("breakdown map carries every dimension", func(t *testing.T) {
		b := Breakdown{Personalization: 2, AntiSpam: 3, Structure: 1.25, Tone: 1.5}
		m := b.Map()
		assert.Len(t, m, 4)
		assert.Equal(t, 1.25, m["structure"])
	})
}

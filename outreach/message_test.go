package outreach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("assigns id and timestamp", func(t *testing.T) {
		m, err := NewMessage(Message{
			Content:      "Hola María, vi que lideras el equipo técnico de TechCorp.",
			Channel:      ChannelLinkedIn,
			SequenceStep: StepFirstContact,
			Strategy:     StrategyMutualConnection,
			QualityScore: 7.5,
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(m.ID, "msg_"))
		assert.Len(t, m.ID, 16)
		assert.False(t, m.CreatedAt.IsZero())
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := NewMessage(Message{Content: "   ", QualityScore: 5})
		assert.Error(t, err)
	})

	t.Run("rejects out-of-range score", func(t *testing.T) {
		_, err := NewMessage(Message{Content: "hola", QualityScore: 10.5})
		assert.Error(t, err)
		_, err = NewMessage(Message{Content: "hola", QualityScore: -0.1})
		assert.Error(t, err)
	})
}

func TestMessageCounts(t *testing.T) {
	m := Message{Content: "Hola María, ¿hablamos?"}
	assert.Equal(t, 3, m.WordCount())
	assert.Equal(t, len(m.Content), m.CharCount())
}

func TestPassesQualityGate(t *testing.T) {
	assert.True(t, Message{QualityScore: 6.0}.PassesQualityGate(6.0))
	assert.False(t, Message{QualityScore: 5.99}.PassesQualityGate(6.0))
}

func TestMessageIDUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := NewMessageID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

package outreach

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"leadadapter/errs"
)

// Message is a generated outreach message together with its quality
// assessment. Immutable once built; candidates created during retries are
// discarded except for the one returned.
type Message struct {
	ID               string             `json:"message_id"`
	Content          string             `json:"content"`
	Channel          Channel            `json:"channel"`
	SequenceStep     SequenceStep       `json:"sequence_step"`
	Strategy         Strategy           `json:"strategy_used"`
	QualityScore     float64            `json:"quality_score"`
	QualityBreakdown map[string]float64 `json:"quality_breakdown"`
	TokensUsed       int                `json:"tokens_used"`
	Model            string             `json:"model_used"`
	CreatedAt        time.Time          `json:"created_at"`
}

// NewMessage validates and returns a Message with a fresh identifier.
func NewMessage(m Message) (Message, error) {
	if strings.TrimSpace(m.Content) == "" {
		return Message{}, errs.NewValidation("content", "cannot be empty")
	}
	if m.QualityScore < 0 || m.QualityScore > 10 {
		return Message{}, errs.NewValidation("quality_score", "must be between 0 and 10")
	}
	if m.ID == "" {
		m.ID = NewMessageID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return m, nil
}

// NewMessageID returns an identifier in the msg_<12 hex> format.
func NewMessageID() string {
	return "msg_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// PassesQualityGate reports whether the score meets the threshold.
func (m Message) PassesQualityGate(threshold float64) bool {
	return m.QualityScore >= threshold
}

// WordCount returns the number of whitespace-separated words.
func (m Message) WordCount() int {
	return len(strings.Fields(m.Content))
}

// CharCount returns the content length in bytes.
func (m Message) CharCount() int {
	return len(m.Content)
}

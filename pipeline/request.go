package pipeline

import (
	"errors"
	"time"

	"leadadapter/errs"
	"leadadapter/lead"
	"leadadapter/outreach"
	"leadadapter/playbook"
)

// GenerateRequest is the wire shape of a generation request. Entity types
// carry their own JSON tags, so the request reuses them directly.
type GenerateRequest struct {
	Channel      string            `json:"channel"`
	SequenceStep string            `json:"sequence_step"`
	Lead         lead.Lead         `json:"lead"`
	Sender       lead.Sender       `json:"sender"`
	Playbook     playbook.Playbook `json:"playbook"`
}

// Domain validates the request and returns constructed entities along with
// the parsed channel and sequence step. The first invalid field wins.
func (r GenerateRequest) Domain() (lead.Lead, lead.Sender, playbook.Playbook, outreach.Channel, outreach.SequenceStep, error) {
	var (
		ld lead.Lead
		sn lead.Sender
		pb playbook.Playbook
	)

	channel := outreach.Channel(r.Channel)
	if !channel.Valid() {
		return ld, sn, pb, "", "", errs.NewValidation("channel", "must be one of: linkedin, email")
	}
	step := outreach.SequenceStep(r.SequenceStep)
	if !step.Valid() {
		return ld, sn, pb, "", "", errs.NewValidation("sequence_step", "must be one of: first_contact, follow_up_1, follow_up_2, breakup")
	}

	ld, err := lead.NewLead(r.Lead)
	if err != nil {
		return ld, sn, pb, "", "", prefixField(err, "lead")
	}
	sn, err = lead.NewSender(r.Sender)
	if err != nil {
		return ld, sn, pb, "", "", prefixField(err, "sender")
	}
	pb, err = playbook.NewPlaybook(r.Playbook)
	if err != nil {
		return ld, sn, pb, "", "", prefixField(err, "playbook")
	}
	return ld, sn, pb, channel, step, nil
}

// prefixField qualifies a validation error's field with the request
// section it came from, so callers can tell lead.name from playbook.name.
func prefixField(err error, section string) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return errs.NewValidation(section+"."+ve.Field, ve.Reason)
	}
	return err
}

// QualityReport summarizes how a generated message scored.
type QualityReport struct {
	Score           float64            `json:"score"`
	Breakdown       map[string]float64 `json:"breakdown"`
	PassesThreshold bool               `json:"passes_threshold"`
}

// GenerationMetadata carries operational detail about one generation.
type GenerationMetadata struct {
	TokensUsed       int    `json:"tokens_used"`
	GenerationTimeMS int64  `json:"generation_time_ms"`
	ModelUsed        string `json:"model_used"`
	Attempts         int    `json:"attempts"`
}

// GenerateResponse is the wire shape of a generation result.
type GenerateResponse struct {
	MessageID    string             `json:"message_id"`
	Content      string             `json:"content"`
	Quality      QualityReport      `json:"quality"`
	StrategyUsed string             `json:"strategy_used"`
	Metadata     GenerationMetadata `json:"metadata"`
	CreatedAt    time.Time          `json:"created_at"`
}

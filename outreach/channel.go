// Package outreach defines the message-side domain model: communication
// channels, sequence steps, persuasion strategies with their selection
// rules, and the generated Message entity.
package outreach

// Channel is the medium a message is written for.
type Channel string

const (
	ChannelLinkedIn Channel = "linkedin"
	ChannelEmail    Channel = "email"
)

// channelMaxLength is advisory only; nothing truncates or rejects longer
// messages, the limit is just passed to the generator as guidance.
var channelMaxLength = map[Channel]int{
	ChannelLinkedIn: 300,
	ChannelEmail:    500,
}

// MaxLength returns the recommended character budget for the channel.
func (c Channel) MaxLength() int {
	if n, ok := channelMaxLength[c]; ok {
		return n
	}
	return 300
}

// RequiresSubject reports whether messages on this channel carry a subject.
func (c Channel) RequiresSubject() bool {
	return c == ChannelEmail
}

// Valid reports whether the channel is a known member of the enumeration.
func (c Channel) Valid() bool {
	_, ok := channelMaxLength[c]
	return ok
}

// SequenceStep is the position of a message within an outreach sequence.
type SequenceStep string

const (
	StepFirstContact SequenceStep = "first_contact"
	StepFollowUp1    SequenceStep = "follow_up_1"
	StepFollowUp2    SequenceStep = "follow_up_2"
	StepBreakup      SequenceStep = "breakup"
)

var stepTones = map[SequenceStep]string{
	StepFirstContact: "introductorio y curioso",
	StepFollowUp1:    "recordatorio amigable",
	StepFollowUp2:    "valor adicional",
	StepBreakup:      "última oportunidad, sin presión",
}

var stepUrgency = map[SequenceStep]int{
	StepFirstContact: 1,
	StepFollowUp1:    2,
	StepFollowUp2:    3,
	StepBreakup:      4,
}

// Tone returns the suggested tone label for the step.
func (s SequenceStep) Tone() string {
	if tone, ok := stepTones[s]; ok {
		return tone
	}
	return "profesional"
}

// Urgency returns the urgency level for the step, from 1 (first contact)
// to 4 (breakup).
func (s SequenceStep) Urgency() int {
	if level, ok := stepUrgency[s]; ok {
		return level
	}
	return 1
}

// Valid reports whether the step is a known member of the enumeration.
func (s SequenceStep) Valid() bool {
	_, ok := stepTones[s]
	return ok
}

package entity

// Transcript is the ordered, append-only conversation history of one session.
// Messages are never mutated or removed once appended; their order defines
// the context window sent to the model on every request.
type Transcript struct {
	messages []Message
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Append(msg Message) {
	t.messages = append(t.messages, msg)
}

// Messages returns a copy so callers cannot mutate history.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recently appended message, or false for an empty
// transcript.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

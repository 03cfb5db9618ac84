package input

import "context"

// TurnResult is what one user turn produced. Degraded marks answers emitted
// after a model failure or an exhausted tool-round budget; the session itself
// stays usable.
type TurnResult struct {
	Answer   string
	Rounds   int
	Degraded bool
}

type ChatSession interface {
	Submit(ctx context.Context, userText string) (*TurnResult, error)
}

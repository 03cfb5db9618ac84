package entity

import "errors"

// Failure taxonomy. Tool-level errors are captured as failure ToolResults and
// fed back to the model; ErrToolLoopExceeded and ErrModelUnavailable end the
// current turn with a degraded answer but never the session.
var (
	ErrInvalidArguments  = errors.New("invalid arguments")
	ErrUnknownTool       = errors.New("unknown tool")
	ErrEvaluation        = errors.New("evaluation error")
	ErrUnknownTimezone   = errors.New("unknown timezone")
	ErrSearchUnavailable = errors.New("search unavailable")
	ErrNoResults         = errors.New("no results")
	ErrToolLoopExceeded  = errors.New("tool loop exceeded")
	ErrModelUnavailable  = errors.New("model unavailable")
)

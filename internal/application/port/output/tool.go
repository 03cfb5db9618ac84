package output

import (
	"context"

	"chat-agent/internal/domain/entity"
	"chat-agent/internal/domain/schema"
)

// ToolPort is one executable tool. Execute receives arguments already parsed
// from JSON and validated against Parameters(); a non-nil error is captured
// by the orchestrator as a failure result, never raised past it.
type ToolPort interface {
	Name() entity.ToolName
	Description() string
	Parameters() schema.Schema
	Execute(ctx context.Context, args map[string]any) (string, error)
}

type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	Definitions() []entity.ToolDefinition
}

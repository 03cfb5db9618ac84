package entity

import "chat-agent/internal/domain/schema"

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

type Message struct {
	Role       MessageRole
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
}

// ToolCall is a single tool invocation requested by the model. ID is assigned
// by the model and unique within one response; Arguments is the raw JSON
// string exactly as it arrived on the wire.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolResult is the outcome of executing one ToolCall. CallID refers back to
// the originating ToolCall.ID.
type ToolResult struct {
	CallID   string
	ToolName string
	IsError  bool
	Content  string
}

type ToolDefinition struct {
	Name        string
	Description string
	Parameters  schema.Schema
}

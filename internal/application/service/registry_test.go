package service

import (
	"context"
	"fmt"
	"testing"

	"chat-agent/internal/domain/entity"
	"chat-agent/internal/domain/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name entity.ToolName
}

func (s *stubTool) Name() entity.ToolName    { return s.name }
func (s *stubTool) Description() string      { return "stub " + s.name.String() }
func (s *stubTool) Parameters() schema.Schema {
	return schema.Object(map[string]schema.Property{
		"q": {Type: "string"},
	}, "q")
}
func (s *stubTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	return "", nil
}

func TestRegistry_DefinitionsKeepRegistrationOrder(t *testing.T) {
	r := NewToolRegistry()
	var want []string
	for i := 0; i < 8; i++ {
		name := entity.ToolName(fmt.Sprintf("tool_%d", i))
		r.Register(&stubTool{name: name})
		want = append(want, name.String())
	}

	// Stable across repeated calls.
	for i := 0; i < 3; i++ {
		defs := r.Definitions()
		require.Len(t, defs, len(want))
		for j, def := range defs {
			assert.Equal(t, want[j], def.Name)
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewToolRegistry()
	tool := &stubTool{name: entity.ToolCalculator}
	r.Register(tool)

	got, ok := r.Get(entity.ToolCalculator)
	require.True(t, ok)
	assert.Equal(t, tool, got)

	_, ok = r.Get("no_such_tool")
	assert.False(t, ok)
}

func TestRegistry_ReRegisterReplacesWithoutDuplicating(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolWebSearch})
	r.Register(&stubTool{name: entity.ToolWebSearch})

	assert.Len(t, r.All(), 1)
	assert.Len(t, r.Definitions(), 1)
}

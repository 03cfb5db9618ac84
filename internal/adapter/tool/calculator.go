package tool

import (
	"context"
	"fmt"

	"chat-agent/internal/application/port/output"
	"chat-agent/internal/domain/entity"
	"chat-agent/internal/domain/schema"
	"chat-agent/internal/infrastructure/mathexpr"
)

var _ output.ToolPort = (*CalculatorTool)(nil)

type CalculatorTool struct {
	logger output.LoggerPort
}

func NewCalculatorTool(logger output.LoggerPort) *CalculatorTool {
	return &CalculatorTool{logger: logger}
}

func (t *CalculatorTool) Name() entity.ToolName { return entity.ToolCalculator }

func (t *CalculatorTool) Description() string {
	return "Evaluates a mathematical expression. Supports + - * / % ^, parentheses, " +
		"functions (sqrt, sin, cos, tan, abs, log, log10, log2, exp, floor, ceil, round, pow, min, max) " +
		"and the constants pi and e. Example: \"847 * 0.15\" or \"sqrt(16)\"."
}

func (t *CalculatorTool) Parameters() schema.Schema {
	return schema.Object(map[string]schema.Property{
		"expression": {
			Type:        "string",
			Description: "The expression to evaluate, e.g. \"2 + 3 * 4\"",
		},
	}, "expression")
}

func (t *CalculatorTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	expression, _ := args["expression"].(string)

	value, err := mathexpr.Evaluate(expression)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrEvaluation, err)
	}

	result := mathexpr.Format(value)
	t.logger.Debug("Expression evaluated", "expression", expression, "result", result)
	return result, nil
}

package mathexpr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Precedence(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 4 - 3", 3},
		{"20 / 4 / 5", 1},
		{"2 ^ 3 ^ 2", 512},
		{"-2 ^ 2", -4},
		{"(-2) ^ 2", 4},
		{"10 % 3", 1},
		{"847 * 0.15", 127.05},
		{"1.5e2 + 1", 151},
		{"2 * pi * 10", 2 * math.Pi * 10},
		{"e ^ 0", 1},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Evaluate(tc.expr)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestEvaluate_Functions(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"sqrt(16)", 4},
		{"sqrt(2) ^ 2", 2},
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"abs(-3.5)", 3.5},
		{"log(e)", 1},
		{"log10(1000)", 3},
		{"log2(8)", 3},
		{"exp(1)", math.E},
		{"floor(3.7)", 3},
		{"ceil(3.2)", 4},
		{"round(2.5)", 3},
		{"pow(2, 10)", 1024},
		{"min(3, -1)", -1},
		{"max(3, -1)", 3},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Evaluate(tc.expr)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestEvaluate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		expr string
		msg  string
	}{
		{"division by zero", "1 / 0", "division by zero"},
		{"modulo by zero", "1 % 0", "modulo by zero"},
		{"sqrt domain", "sqrt(-4)", "sqrt of negative"},
		{"log domain", "log(0)", "non-positive"},
		{"unknown function", "system(1)", "unknown function"},
		{"unknown identifier", "x + 1", "unknown identifier"},
		{"member access", "os.exit", "invalid number"},
		{"import attempt", "__import__(1)", "unknown function"},
		{"statement", "1; 2", "unexpected character"},
		{"string literal", `"abc"`, "unexpected character"},
		{"dangling operator", "2 +", "unexpected end"},
		{"unbalanced paren", "(1 + 2", "closing parenthesis"},
		{"empty input", "", "unexpected end"},
		{"bad arity", "pow(2)", "expects 2 argument"},
		{"overflow to inf", "10 ^ 1000", "not a finite"},
		{"lone dot", ".", "invalid number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.expr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"847 * 0.15", "127.05"},
		{"sqrt(16)", "4"},
		{"2 + 3 * 4", "14"},
		{"1 / 3", "0.333333333333"},
		{"10 / 4", "2.5"},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			v, err := Evaluate(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Format(v))
		})
	}
}

package mathexpr

import (
	"fmt"
	"math"
	"strconv"
)

type node interface {
	eval() (float64, error)
}

type literalNode float64

func (n literalNode) eval() (float64, error) {
	return float64(n), nil
}

type negateNode struct {
	operand node
}

func (n *negateNode) eval() (float64, error) {
	v, err := n.operand.eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type binaryNode struct {
	op    byte
	left  node
	right node
}

func (n *binaryNode) eval() (float64, error) {
	left, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	right, err := n.right.eval()
	if err != nil {
		return 0, err
	}

	switch n.op {
	case '+':
		return left + right, nil
	case '-':
		return left - right, nil
	case '*':
		return left * right, nil
	case '/':
		if right == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return left / right, nil
	case '%':
		if right == 0 {
			return 0, fmt.Errorf("modulo by zero")
		}
		return math.Mod(left, right), nil
	case '^':
		return math.Pow(left, right), nil
	}
	return 0, fmt.Errorf("unknown operator %q", n.op)
}

type callNode struct {
	name string
	fn   function
	args []node
}

func (n *callNode) eval() (float64, error) {
	values := make([]float64, len(n.args))
	for i, arg := range n.args {
		v, err := arg.eval()
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	return n.fn.apply(values)
}

type function struct {
	arity int
	apply func(args []float64) (float64, error)
}

func unaryFn(f func(float64) float64) function {
	return function{1, func(a []float64) (float64, error) { return f(a[0]), nil }}
}

func binaryFn(f func(float64, float64) float64) function {
	return function{2, func(a []float64) (float64, error) { return f(a[0], a[1]), nil }}
}

// functions is the allow-list. Every callable name must appear here; the
// parser rejects anything else before evaluation.
var functions = map[string]function{
	"sqrt": {1, func(a []float64) (float64, error) {
		if a[0] < 0 {
			return 0, fmt.Errorf("sqrt of negative number")
		}
		return math.Sqrt(a[0]), nil
	}},
	"log": {1, func(a []float64) (float64, error) {
		if a[0] <= 0 {
			return 0, fmt.Errorf("log of non-positive number")
		}
		return math.Log(a[0]), nil
	}},
	"log10": {1, func(a []float64) (float64, error) {
		if a[0] <= 0 {
			return 0, fmt.Errorf("log10 of non-positive number")
		}
		return math.Log10(a[0]), nil
	}},
	"log2": {1, func(a []float64) (float64, error) {
		if a[0] <= 0 {
			return 0, fmt.Errorf("log2 of non-positive number")
		}
		return math.Log2(a[0]), nil
	}},
	"sin":   unaryFn(math.Sin),
	"cos":   unaryFn(math.Cos),
	"tan":   unaryFn(math.Tan),
	"abs":   unaryFn(math.Abs),
	"exp":   unaryFn(math.Exp),
	"floor": unaryFn(math.Floor),
	"ceil":  unaryFn(math.Ceil),
	"round": unaryFn(math.Round),
	"pow":   binaryFn(math.Pow),
	"min":   binaryFn(math.Min),
	"max":   binaryFn(math.Max),
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Evaluate parses and evaluates a single expression.
func Evaluate(input string) (float64, error) {
	n, err := parse(input)
	if err != nil {
		return 0, err
	}
	v, err := n.eval()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("result is not a finite number")
	}
	return v, nil
}

// Format renders a result as a decimal string. Rounding to 12 significant
// digits hides float artifacts like 847*0.15 = 127.04999999999998.
func Format(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', 12, 64)
}

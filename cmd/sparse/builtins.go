package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hasbyte1/go-sparse/sparse"
)

var errNoContext = errors.New("callback needs a numeric -this")

type builtin struct {
	name string
	desc string
	fn   any
}

// builtins returns the callbacks the CLI exposes by name. Callbacks that
// produce output write to out.
func builtins(out io.Writer) []builtin {
	return []builtin{
		// map
		{"double", "x → x*2", func(x float64) float64 { return x * 2 }},
		{"square", "x → x*x", func(x float64) float64 { return x * x }},
		{"negate", "x → -x", func(x float64) float64 { return -x }},
		{"identity", "x → x", func(v any) any { return v }},
		{"scale", "x → x*this", sparse.FunctionFunc(func(this any, args ...any) (any, error) {
			factor, ok := this.(float64)
			if !ok {
				return nil, errNoContext
			}
			x, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("%w: %s is not a number", sparse.ErrArgumentType, sparse.Format(args[0]))
			}
			return x * factor, nil
		})},

		// filter
		{"even", "x % 2 == 0", func(x float64) bool { return math.Mod(x, 2) == 0 }},
		{"odd", "x % 2 != 0", func(x float64) bool { return math.Abs(math.Mod(x, 2)) == 1 }},
		{"positive", "x > 0", func(x float64) bool { return x > 0 }},

		// reduce
		{"sum", "(acc, x) → acc+x", func(acc, x float64) float64 { return acc + x }},
		{"product", "(acc, x) → acc*x", func(acc, x float64) float64 { return acc * x }},
		{"max", "(acc, x) → max(acc, x)", func(acc, x float64) float64 { return math.Max(acc, x) }},
		{"join", "(acc, x) → acc followed by x, as text", func(acc, v any) string {
			return text(acc) + text(v)
		}},

		// foreach
		{"print", "prints value and index", func(v any, i int) {
			fmt.Fprintln(out, sparse.Format(v), i)
		}},
	}
}

// text returns strings unquoted and everything else in console form.
func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return sparse.Format(v)
}

// registerBuiltins (re)registers every builtin in the sparse registry.
func registerBuiltins(out io.Writer) error {
	for _, b := range builtins(out) {
		if err := sparse.Register(b.name, b.fn); err != nil {
			return err
		}
	}
	return nil
}

package sparse

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// String renders the array the way an interactive console prints a sparse
// array: runs of holes collapse into "<n empty items>".
//
//	sparse.New(20, 4).String()        // [ 20, 4 ]
//	sparse.WithLength[int](3).String() // [ <3 empty items> ]
//	sparse.Empty[int]().String()      // []
//
// It implements [fmt.Stringer].
func (a *Array[T]) String() string {
	n := a.Len()
	if n == 0 {
		return "[]"
	}
	parts := make([]string, 0, n)
	holes := 0
	flush := func() {
		switch holes {
		case 0:
		case 1:
			parts = append(parts, "<1 empty item>")
		default:
			parts = append(parts, "<"+strconv.Itoa(holes)+" empty items>")
		}
		holes = 0
	}
	for i := 0; i < n; i++ {
		v, ok := a.At(i)
		if !ok {
			holes++
			continue
		}
		flush()
		parts = append(parts, render(v))
	}
	flush()
	return "[ " + strings.Join(parts, ", ") + " ]"
}

// MarshalJSON encodes the array as a JSON array. Holes encode as null, so
// the encoding does not distinguish a hole from a present nil.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	out := make([]any, a.Len())
	for i, v := range a.Entries() {
		out[i] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a JSON array into a dense array. Every element,
// null included, becomes a present slot.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*a = *From(items)
	return nil
}

// Format returns the console form of v, as used by [Array.String].
func Format(v any) string { return render(v) }

// render returns the console form of a single value. Strings are single
// quoted, numbers use the shortest exact decimal form, nil is "null".
func render(v any) string {
	if v == nil {
		return "null"
	}
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", `\'`) + "'"
	case float64:
		return renderFloat(x, 64)
	case float32:
		return renderFloat(float64(x), 32)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		if isNilPointer(v) {
			return "null"
		}
		return x.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan:
		if rv.IsNil() {
			return "null"
		}
	}
	if rv.Kind() == reflect.Func {
		return "func " + rv.Type().String()
	}
	return fmt.Sprintf("%v", v)
}

func renderFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

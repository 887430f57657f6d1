package sparse

import (
	"math"
	"reflect"
)

// This file contains the dynamic iteration functions. They take the
// receiver and the callback as untyped values, coerce them the way a
// dynamically typed host would, then run the typed engine in funcs.go:
//
//	doubled, err := sparse.MapValue([]any{10, 2, 4},
//	    func(v float64) float64 { return v * 2 }, nil)
//
//	_, err = sparse.MapValue([]any{1}, 5, nil)
//	// errors.Is(err, sparse.ErrNotAFunction) == true

// anyArray is implemented by every *Array[T].
type anyArray interface {
	Any() *Array[any]
}

// ToArray coerces receiver into an indexable view.
//
//   - nil and nil pointers, nil arrays included, fail with
//     [ErrInvalidReceiver];
//   - an *Array[any] is returned as is, so callbacks mutating it are observed
//     by the running traversal;
//   - any other *Array[T] and every [ArrayLike] are copied with their holes;
//   - Go slices and arrays are copied densely;
//   - a string yields one element per rune;
//   - every other value behaves as a zero-length sequence.
func ToArray(receiver any) (*Array[any], error) {
	if receiver == nil {
		return nil, ErrInvalidReceiver
	}
	rv := reflect.ValueOf(receiver)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, ErrInvalidReceiver
	}
	switch r := receiver.(type) {
	case *Array[any]:
		return r, nil
	case anyArray:
		return r.Any(), nil
	case ArrayLike:
		return fromArrayLike(r), nil
	case []any:
		return From(r), nil
	case string:
		out := Empty[any]()
		for _, c := range r {
			out.Push(string(c))
		}
		return out, nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := WithLength[any](rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.values[i] = rv.Index(i).Interface()
			out.present.Set(uint(i))
		}
		return out, nil
	}
	return Empty[any](), nil
}

// MapValue is the dynamic form of [Map]. callback is converted with
// [ToFunction] and called as callback.Call(this, value, index, seq).
func MapValue(receiver, callback, this any) (*Array[any], error) {
	seq, fn, err := prepare(receiver, callback)
	if err != nil {
		return nil, err
	}
	return Map(seq, func(this, v any, i int, s *Array[any]) (any, error) {
		return fn.Call(this, v, i, s)
	}, this)
}

// ForEachValue is the dynamic form of [ForEach]. Results of callback are
// discarded.
func ForEachValue(receiver, callback, this any) error {
	seq, fn, err := prepare(receiver, callback)
	if err != nil {
		return err
	}
	return ForEach(seq, func(this, v any, i int, s *Array[any]) error {
		_, err := fn.Call(this, v, i, s)
		return err
	}, this)
}

// FilterValue is the dynamic form of [Filter]. predicate is called with no
// bound context and its result is tested with [Truthy].
func FilterValue(receiver, predicate any) (*Array[any], error) {
	seq, fn, err := prepare(receiver, predicate)
	if err != nil {
		return nil, err
	}
	return Filter(seq, func(v any, i int, s *Array[any]) (bool, error) {
		r, err := fn.Call(nil, v, i, s)
		if err != nil {
			return false, err
		}
		return Truthy(r), nil
	})
}

// ReduceValue is the dynamic form of [Reduce]. reducer is called with no
// bound context as reducer.Call(nil, acc, value, index, seq).
func ReduceValue(receiver, reducer any, initial Option[any]) (any, error) {
	seq, fn, err := prepare(receiver, reducer)
	if err != nil {
		v, _ := initial.Get()
		return v, err
	}
	return Reduce(seq, func(acc, v any, i int, s *Array[any]) (any, error) {
		return fn.Call(nil, acc, v, i, s)
	}, initial)
}

func prepare(receiver, callback any) (*Array[any], Function, error) {
	seq, err := ToArray(receiver)
	if err != nil {
		return nil, nil, err
	}
	fn, err := ToFunction(callback)
	if err != nil {
		return nil, nil, err
	}
	return seq, fn, nil
}

// Truthy reports whether v counts as true when used as a condition.
//
// Falsy values are nil, false, numeric zero, NaN, the empty string, and nil
// pointers, maps, slices, funcs, channels and interfaces. Everything else is
// truthy, including empty non-nil slices and maps.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

package sparse

import (
	"fmt"
	"reflect"
)

// This file contains the typed iteration functions. They are package-level
// generics because Go methods cannot introduce their own type parameters:
//
//	doubled, err := sparse.Map(sparse.New(1, 2, 3),
//	    func(_ any, n, _ int, _ *sparse.Array[int]) (int, error) { return n * 2, nil },
//	    nil)
//
// All four share the same traversal policy:
//   - a nil seq fails with ErrInvalidReceiver, then a nil callback fails with
//     ErrNotAFunction, both before any callback call;
//   - the length is read once, before the first callback call;
//   - each index is re-read from the live array, so a hole or a truncated
//     slot is skipped and a value written ahead of the cursor is observed;
//   - an error returned by the callback is returned unchanged and stops the
//     traversal at that index.

// MapFunc is the callback of [Map]. this is the bound context passed to Map.
type MapFunc[T, U any] func(this any, value T, index int, seq *Array[T]) (U, error)

// EachFunc is the callback of [ForEach]. this is the bound context passed to
// ForEach.
type EachFunc[T any] func(this any, value T, index int, seq *Array[T]) error

// Predicate is the callback of [Filter].
type Predicate[T any] func(value T, index int, seq *Array[T]) (bool, error)

// Reducer is the callback of [Reduce].
type Reducer[T, U any] func(acc U, value T, index int, seq *Array[T]) (U, error)

// Map calls fn for every present index of seq and returns a new Array of
// the same length holding the results. Holes in seq stay holes in the
// result and fn is never called for them.
//
// this is handed to every fn call as its bound context; pass nil for none.
func Map[T, U any](seq *Array[T], fn MapFunc[T, U], this any) (*Array[U], error) {
	if err := validate(seq, fn == nil, fn); err != nil {
		return nil, err
	}
	n := seq.Len()
	out := WithLength[U](n)
	for i := 0; i < n; i++ {
		v, ok := seq.At(i)
		if !ok {
			continue
		}
		r, err := fn(this, v, i, seq)
		if err != nil {
			return nil, err
		}
		out.values[i] = r
		out.present.Set(uint(i))
	}
	return out, nil
}

// ForEach calls fn for every present index of seq, for its side effects.
//
// this is handed to every fn call as its bound context; pass nil for none.
func ForEach[T any](seq *Array[T], fn EachFunc[T], this any) error {
	if err := validate(seq, fn == nil, fn); err != nil {
		return err
	}
	n := seq.Len()
	for i := 0; i < n; i++ {
		v, ok := seq.At(i)
		if !ok {
			continue
		}
		if err := fn(this, v, i, seq); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns a new dense Array holding, in order, the present values of
// seq for which fn returns true. Holes are neither tested nor kept.
func Filter[T any](seq *Array[T], fn Predicate[T]) (*Array[T], error) {
	if err := validate(seq, fn == nil, fn); err != nil {
		return nil, err
	}
	n := seq.Len()
	out := Empty[T]()
	for i := 0; i < n; i++ {
		v, ok := seq.At(i)
		if !ok {
			continue
		}
		keep, err := fn(v, i, seq)
		if err != nil {
			return nil, err
		}
		if keep {
			out.Push(v)
		}
	}
	return out, nil
}

// Reduce folds the present values of seq into a single value.
//
// When initial holds a value the fold starts from it at index 0. Otherwise
// the first present element seeds the accumulator and the fold resumes at
// the index after it; a seq without any present element then fails with
// [ErrReduceOfEmpty], and an element that is not a U fails with
// [ErrAccumulatorType]. When fn fails, its error is returned together with
// the accumulator reached before the failing call.
//
//	sum, _ := sparse.Reduce(sparse.New(1, 2, 3),
//	    func(acc, n, _ int, _ *sparse.Array[int]) (int, error) { return acc + n, nil },
//	    sparse.None[int]())
func Reduce[T, U any](seq *Array[T], fn Reducer[T, U], initial Option[U]) (U, error) {
	acc, seeded := initial.Get()
	if err := validate(seq, fn == nil, fn); err != nil {
		return acc, err
	}
	n := seq.Len()
	start := 0
	if !seeded {
		for start < n && !seq.Has(start) {
			start++
		}
		if start >= n {
			return acc, ErrReduceOfEmpty
		}
		v, _ := seq.At(start)
		seed, err := seedFrom[U](v)
		if err != nil {
			return acc, err
		}
		acc = seed
		start++
	}
	for i := start; i < n; i++ {
		v, ok := seq.At(i)
		if !ok {
			continue
		}
		next, err := fn(acc, v, i, seq)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// seedFrom converts the first present element into the accumulator type.
// A nil element seeds an interface-typed accumulator with nil.
func seedFrom[U, T any](v T) (U, error) {
	if seed, ok := any(v).(U); ok {
		return seed, nil
	}
	var zero U
	if any(v) == nil && reflect.TypeFor[U]().Kind() == reflect.Interface {
		return zero, nil
	}
	return zero, fmt.Errorf("%w: %T is not %v", ErrAccumulatorType, v, reflect.TypeFor[U]())
}

// validate applies the receiver and callback checks shared by every
// iteration function.
func validate[T any](seq *Array[T], missing bool, fn any) error {
	if seq == nil {
		return ErrInvalidReceiver
	}
	if missing {
		return notAFunction(fn)
	}
	return nil
}

func notAFunction(v any) error {
	return fmt.Errorf("%w: %s", ErrNotAFunction, render(v))
}

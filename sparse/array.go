package sparse

import (
	"iter"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Array is an ordered, indexable sequence whose slots are either present
// (holding a value, possibly the zero value) or absent (a hole).
//
// Presence is tracked in a companion bitset so that a hole stays distinct
// from a present zero value or a present nil:
//
//	a := sparse.New(10, 2)
//	a.Set(3, 4)         // index 2 becomes a hole, Len() == 4
//	a.Has(2)            // false
//	v, ok := a.At(2)    // 0, false
//
// A nil *Array is the "no receiver" sentinel: every iteration function
// rejects it with [ErrInvalidReceiver]. Read-only accessors are nil-safe and
// treat a nil Array as empty.
//
// Array is not safe for concurrent mutation. Concurrent reads are safe,
// including on the zero Array, which allocates its bitset on first write.
type Array[T any] struct {
	values  []T
	present *bitset.BitSet
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a dense Array from a variadic list of items (copied).
func New[T any](items ...T) *Array[T] {
	return From(items)
}

// From creates a dense Array from a slice (the slice is copied).
func From[T any](items []T) *Array[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	present := bitset.New(uint(len(items)))
	for i := range items {
		present.Set(uint(i))
	}
	return &Array[T]{values: dst, present: present}
}

// WithLength creates an Array of length n in which every slot is a hole.
// It panics if n is negative.
func WithLength[T any](n int) *Array[T] {
	return &Array[T]{values: make([]T, n), present: bitset.New(uint(n))}
}

// Empty creates an Array of length 0.
func Empty[T any]() *Array[T] { return WithLength[T](0) }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the length of the array, holes included.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Has reports whether index holds a present value.
func (a *Array[T]) Has(index int) bool {
	if a == nil || a.present == nil || index < 0 || index >= len(a.values) {
		return false
	}
	return a.present.Test(uint(index))
}

// At returns the value at index together with a presence flag.
// Holes and out-of-range indices yield the zero value and false.
func (a *Array[T]) At(index int) (T, bool) {
	var zero T
	if !a.Has(index) {
		return zero, false
	}
	return a.values[index], true
}

// Count returns the number of present slots.
func (a *Array[T]) Count() int {
	if a == nil || a.present == nil {
		return 0
	}
	return int(a.present.Count())
}

// Values returns the present values in index order, as a dense slice.
func (a *Array[T]) Values() []T {
	out := make([]T, 0, a.Count())
	for _, v := range a.Entries() {
		out = append(out, v)
	}
	return out
}

// Entries returns an iterator over the present (index, value) pairs in
// ascending index order. The length is read once when iteration starts;
// values are read from the live array at each step.
func (a *Array[T]) Entries() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := a.Len()
		for i := 0; i < n; i++ {
			v, ok := a.At(i)
			if !ok {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns an independent copy of a, holes included.
func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}
	values := make([]T, len(a.values))
	copy(values, a.values)
	out := &Array[T]{values: values}
	if a.present != nil {
		out.present = a.present.Clone()
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Set stores v at index, making the slot present. Writing past the end grows
// the array to index+1; the slots in between become holes.
// Returns [ErrIndexOutOfRange] for a negative index or one whose length
// would not fit in an int.
func (a *Array[T]) Set(index int, v T) error {
	if index < 0 || index == math.MaxInt {
		return ErrIndexOutOfRange
	}
	if index >= len(a.values) {
		a.SetLen(index + 1)
	}
	a.values[index] = v
	a.bits().Set(uint(index))
	return nil
}

// Delete turns the slot at index into a hole. The length is unchanged and
// out-of-range indices are ignored.
func (a *Array[T]) Delete(index int) {
	if index < 0 || index >= len(a.values) {
		return
	}
	var zero T
	a.values[index] = zero
	a.bits().Clear(uint(index))
}

// SetLen truncates or extends the array to n slots. Slots added by
// extension are holes. Negative n is treated as 0.
func (a *Array[T]) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < len(a.values):
		for i, ok := a.bits().NextSet(uint(n)); ok; i, ok = a.bits().NextSet(i + 1) {
			a.bits().Clear(i)
		}
		clear(a.values[n:])
		a.values = a.values[:n]
	case n > len(a.values):
		a.values = append(a.values, make([]T, n-len(a.values))...)
	}
}

// Push appends items as present slots and returns the new length.
func (a *Array[T]) Push(items ...T) int {
	for _, item := range items {
		a.values = append(a.values, item)
		a.bits().Set(uint(len(a.values) - 1))
	}
	return len(a.values)
}

// bits returns the presence bitset, allocating it for a zero Array.
// Only mutators call it.
func (a *Array[T]) bits() *bitset.BitSet {
	if a.present == nil {
		a.present = bitset.New(uint(len(a.values)))
	}
	return a.present
}

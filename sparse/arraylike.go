package sparse

// ArrayLike is satisfied by values that expose a length and indexed,
// possibly absent, elements without being an [Array].
//
// [ToArray] accepts any ArrayLike receiver and copies it into an
// Array[any], keeping its holes:
//
//	type window struct{ buf []int; from int }
//
//	func (w window) Len() int { return len(w.buf) - w.from }
//	func (w window) At(i int) (any, bool) {
//	    if i < 0 || i >= w.Len() { return nil, false }
//	    return w.buf[w.from+i], true
//	}
//
// Every *Array[T] also converts through [Array.Any].
type ArrayLike interface {
	// Len returns the number of slots, holes included.
	Len() int

	// At returns the element at index and whether it is present.
	At(index int) (any, bool)
}

// Any returns a copy of a as an Array[any], holes included.
// A nil receiver yields nil.
func (a *Array[T]) Any() *Array[any] {
	if a == nil {
		return nil
	}
	out := WithLength[any](a.Len())
	for i, v := range a.Entries() {
		out.values[i] = v
		out.present.Set(uint(i))
	}
	return out
}

func fromArrayLike(src ArrayLike) *Array[any] {
	n := src.Len()
	if n < 0 {
		n = 0
	}
	out := WithLength[any](n)
	for i := 0; i < n; i++ {
		if v, ok := src.At(i); ok {
			out.values[i] = v
			out.present.Set(uint(i))
		}
	}
	return out
}

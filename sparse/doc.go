// Package sparse provides map, forEach, filter and reduce over sequences
// that may contain holes, with the contract of a dynamic language's array
// iteration protocol.
//
// # Overview
//
// The central type is [Array][T], an indexable sequence whose slots are
// either present or absent. A hole is not the zero value: it is a slot that
// was never set, or was deleted.
//
//	a := sparse.MustParse("[10, 2, , 4]")
//
//	doubled, _ := sparse.MapValue(a, func(v float64) float64 { return v * 2 }, nil)
//	// → [ 20, 4, <1 empty item>, 8 ]
//
//	evens, _ := sparse.FilterValue(a, func(v float64) bool { return int(v)%2 == 0 })
//	// → [ 10, 2, 4 ]
//
//	sum, _ := sparse.ReduceValue(a, func(acc, v float64) float64 { return acc + v },
//	    sparse.None[any]())
//	// → 16
//
// # Traversal rules
//
// Every operation checks its receiver, then its callback, before calling
// anything. It reads the length once, then walks the indices in ascending
// order, visiting each present index exactly once and skipping holes. The
// array is re-read at each step: a callback that writes ahead of the cursor
// is observed, a callback that deletes or truncates turns slots into holes,
// and slots appended past the captured length are not visited.
//
// A callback error stops the traversal and is returned unchanged.
//
// # Typed and dynamic forms
//
// [Map], [ForEach], [Filter] and [Reduce] are fully typed. Map and ForEach
// hand a bound context to their callback as an explicit first parameter.
//
// [MapValue], [ForEachValue], [FilterValue] and [ReduceValue] accept any
// receiver (coerced with [ToArray]) and any callback (converted with
// [ToFunction]); a value that is not a function fails with
// [ErrNotAFunction] before any element is visited.
//
// # Reduce initial value
//
// Whether an initial value was supplied is carried by [Option], never by the
// value itself: Some(nil) seeds the fold with nil, None seeds it from the
// first present element.
package sparse

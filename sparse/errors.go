package sparse

import "errors"

// Sentinel errors returned by the iteration functions and [Array] helpers.
//
// Callers should use errors.Is for comparisons; detail such as the offending
// value is appended with %w wrapping:
//
//	_, err := sparse.MapValue(arr, 5, nil)
//	if errors.Is(err, sparse.ErrNotAFunction) {
//	    // err.Error() == "sparse: not a function: 5"
//	}
var (
	// ErrInvalidReceiver is returned when an operation is invoked on a nil
	// sequence.
	ErrInvalidReceiver = errors.New("sparse: operation called on nil sequence")

	// ErrNotAFunction is returned when the callback, predicate or reducer
	// argument cannot be invoked. The wrapped message carries a rendering of
	// the offending value.
	ErrNotAFunction = errors.New("sparse: not a function")

	// ErrReduceOfEmpty is returned by Reduce when no initial value was
	// supplied and the sequence has no present element.
	ErrReduceOfEmpty = errors.New("sparse: reduce of empty sequence with no initial value")

	// ErrAccumulatorType is returned by the typed Reduce when it has to seed
	// the accumulator from an element that is not of the accumulator type.
	ErrAccumulatorType = errors.New("sparse: element cannot seed accumulator")

	// ErrArgumentType is returned when a reflected Go func is called with an
	// argument it cannot accept.
	ErrArgumentType = errors.New("sparse: argument type mismatch")

	// ErrIndexOutOfRange is returned when a negative index is written.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrSyntax is returned by Parse for malformed array literals.
	ErrSyntax = errors.New("sparse: invalid array literal")

	// ErrFunctionNotFound is returned when an unregistered function name is
	// looked up.
	ErrFunctionNotFound = errors.New("sparse: function not found")
)

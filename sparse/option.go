package sparse

import "fmt"

// Option holds a value that may or may not have been supplied.
//
// Reduce uses it for its initial value: Some(nil) and Some(0) are supplied
// values, None is the absence of one. The distinction is carried by the
// option itself, never by the value.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the held value and whether one was supplied.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether a value was supplied.
func (o Option[T]) IsSome() bool { return o.ok }

// String returns "Some(v)" or "None".
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

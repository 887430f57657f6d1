package sparse

import (
	"fmt"
	"reflect"
)

// Function is a callable that accepts an explicit receiver.
//
// The dynamic iteration functions ([MapValue], [ForEachValue], [FilterValue],
// [ReduceValue]) invoke callbacks through this interface: this is the bound
// context for map and forEach, and nil for filter and reduce.
type Function interface {
	Call(this any, args ...any) (any, error)
}

// FunctionFunc adapts an ordinary function to [Function].
type FunctionFunc func(this any, args ...any) (any, error)

// Call calls f(this, args...).
func (f FunctionFunc) Call(this any, args ...any) (any, error) { return f(this, args...) }

var errorType = reflect.TypeFor[error]()

// ToFunction returns v as a [Function].
//
// Values already implementing Function are returned as is. Any other non-nil
// Go func is wrapped through reflection: positional arguments beyond the
// func's arity are dropped, missing ones are passed as zero values, numeric
// arguments are converted to the parameter's numeric type, and a trailing
// error result is returned as the call error. Such funcs have no receiver
// parameter, so the bound context never reaches them; implement Function
// to observe it.
//
// Everything else fails with [ErrNotAFunction].
func ToFunction(v any) (Function, error) {
	if v == nil {
		return nil, notAFunction(v)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func && rv.IsNil() {
		return nil, notAFunction(v)
	}
	switch f := v.(type) {
	case Function:
		return f, nil
	case func(this any, args ...any) (any, error):
		return FunctionFunc(f), nil
	}
	if rv.Kind() != reflect.Func {
		return nil, notAFunction(v)
	}
	return reflectFunc{fn: rv}, nil
}

// IsFunction reports whether v can be used as a callback.
func IsFunction(v any) bool {
	_, err := ToFunction(v)
	return err == nil
}

type reflectFunc struct {
	fn reflect.Value
}

func (f reflectFunc) Call(_ any, args ...any) (any, error) {
	in, err := f.arguments(args)
	if err != nil {
		return nil, err
	}
	return f.results(f.fn.Call(in))
}

func (f reflectFunc) arguments(args []any) ([]reflect.Value, error) {
	t := f.fn.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	in := make([]reflect.Value, 0, t.NumIn())
	for i := 0; i < fixed; i++ {
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		v, err := convertArgument(arg, t.In(i), i)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	if t.IsVariadic() {
		elem := t.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := convertArgument(args[i], elem, i)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}
	return in, nil
}

func (f reflectFunc) results(out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		var err error
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
		if err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func convertArgument(arg any, to reflect.Type, position int) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(to), nil
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(to) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(to.Kind()) {
		return v.Convert(to), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: argument %d: %T is not %v", ErrArgumentType, position, arg, to)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

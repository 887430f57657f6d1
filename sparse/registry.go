package sparse

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// registry is the package-level, goroutine-safe store of named callbacks.
var registry struct {
	mu    sync.RWMutex
	funcs map[string]Function
}

func init() {
	registry.funcs = make(map[string]Function)
}

// Register adds a named callback to the global registry, converting fn with
// [ToFunction]. If a function with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
//	sparse.Register("double", func(v float64) float64 { return v * 2 })
//
//	fn, _ := sparse.Lookup("double")
//	out, _ := sparse.MapValue(sparse.MustParse("[1, , 3]"), fn, nil) // [ 2, <1 empty item>, 6 ]
func Register(name string, fn any) error {
	f, err := ToFunction(fn)
	if err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.funcs[name] = f
	return nil
}

// Lookup returns the function registered under name.
// Returns [ErrFunctionNotFound] if there is none.
func Lookup(name string) (Function, error) {
	registry.mu.RLock()
	fn, ok := registry.funcs[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}
	return fn, nil
}

// Registered returns the registered names in sorted order.
func Registered() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return slices.Sorted(maps.Keys(registry.funcs))
}

// FlushFunctions removes all registered functions.
// Intended for use in tests.
func FlushFunctions() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.funcs = make(map[string]Function)
}

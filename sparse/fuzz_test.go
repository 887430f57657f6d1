package sparse_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-sparse/sparse"
)

// FuzzParse ensures that Parse never panics on arbitrary input and that
// every failure is reported as ErrSyntax.
//
// Run with: go test -fuzz=FuzzParse ./sparse/
func FuzzParse(f *testing.F) {
	for _, s := range []string{
		"[]",
		"[1, 2, , 4]",
		"[,]",
		`["a", 'b', undefined, null]`,
		"[[1, , 2], {\"k\": 1}]",
		"[",
		"]",
		"[']",
	} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		a, err := sparse.Parse(src)
		if err != nil {
			if !errors.Is(err, sparse.ErrSyntax) {
				t.Fatalf("Parse(%q) returned untyped error: %v", src, err)
			}
			return
		}
		if a.Count() > a.Len() {
			t.Fatalf("Parse(%q): %d present slots in length %d", src, a.Count(), a.Len())
		}
		_ = a.String()
	})
}

// FuzzMapPreservesLayout checks that Map keeps the length and the hole
// layout of any parsed array.
func FuzzMapPreservesLayout(f *testing.F) {
	f.Add("[1, , 3]")
	f.Add("[, , ]")

	f.Fuzz(func(t *testing.T, src string) {
		in, err := sparse.Parse(src)
		if err != nil {
			return
		}
		out, err := sparse.MapValue(in, func(v any) any { return v }, nil)
		if err != nil {
			t.Fatalf("MapValue: %v", err)
		}
		if out.Len() != in.Len() {
			t.Fatalf("length %d, want %d", out.Len(), in.Len())
		}
		for i := 0; i < in.Len(); i++ {
			if in.Has(i) != out.Has(i) {
				t.Fatalf("index %d: presence %v, want %v", i, out.Has(i), in.Has(i))
			}
		}
	})
}

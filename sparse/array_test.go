package sparse_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sparse/sparse"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// holey builds an Array[int] of length n holding the given index → value
// entries; every other slot is a hole.
func holey(n int, entries map[int]int) *sparse.Array[int] {
	a := sparse.WithLength[int](n)
	for i, v := range entries {
		if err := a.Set(i, v); err != nil {
			panic(err)
		}
	}
	return a
}

// layout returns, for each slot of a, the value or -1 for a hole.
func layout(a *sparse.Array[int]) []int {
	out := make([]int, a.Len())
	for i := range out {
		v, ok := a.At(i)
		if !ok {
			v = -1
		}
		out[i] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	a := sparse.New(1, 2, 3)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 3, a.Count())
	assert.Equal(t, []int{1, 2, 3}, a.Values())
}

func TestFromCopies(t *testing.T) {
	s := []string{"a", "b", "c"}
	a := sparse.From(s)
	s[0] = "z"
	v, ok := a.At(0)
	require.True(t, ok)
	assert.Equal(t, "a", v, "From did not copy the slice")
}

func TestWithLength(t *testing.T) {
	a := sparse.WithLength[int](3)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 0, a.Count())
	for i := 0; i < 3; i++ {
		assert.False(t, a.Has(i), "index %d", i)
	}
	assert.Panics(t, func() { sparse.WithLength[int](-1) })
}

func TestEmpty(t *testing.T) {
	a := sparse.Empty[string]()
	assert.Equal(t, 0, a.Len())
	assert.Empty(t, a.Values())
}

func TestZeroArray(t *testing.T) {
	var a sparse.Array[int]
	assert.Equal(t, 0, a.Len())
	require.NoError(t, a.Set(1, 7))
	assert.Equal(t, []int{-1, 7}, layout(&a))
}

func TestZeroArrayConcurrentReads(t *testing.T) {
	var a sparse.Array[int]

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.False(t, a.Has(0))
			assert.Equal(t, 0, a.Count())
			assert.Equal(t, 0, a.Clone().Len())
			assert.Empty(t, a.Values())
		}()
	}
	wg.Wait()

	c := a.Clone()
	require.NoError(t, c.Set(0, 1))
	assert.Equal(t, []int{1}, layout(c))
	assert.Equal(t, 0, a.Len(), "clone is independent")
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestHoleIsNotZeroValue(t *testing.T) {
	a := sparse.New[any](nil, 0)
	require.NoError(t, a.Set(3, "x"))

	assert.True(t, a.Has(0), "present nil")
	assert.True(t, a.Has(1), "present zero")
	assert.False(t, a.Has(2), "hole")
	assert.True(t, a.Has(3))
	assert.Equal(t, 3, a.Count())
}

func TestAtOutOfRange(t *testing.T) {
	a := sparse.New(10, 20)
	_, ok := a.At(-1)
	assert.False(t, ok)
	_, ok = a.At(2)
	assert.False(t, ok)
}

func TestNilArrayAccessors(t *testing.T) {
	var a *sparse.Array[int]
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Count())
	assert.False(t, a.Has(0))
	assert.Empty(t, a.Values())
	assert.Nil(t, a.Clone())
	assert.Nil(t, a.Any())
}

func TestEntriesSkipsHoles(t *testing.T) {
	a := holey(5, map[int]int{0: 1, 3: 4})
	var idx, vals []int
	for i, v := range a.Entries() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 3}, idx)
	assert.Equal(t, []int{1, 4}, vals)
}

func TestEntriesBreak(t *testing.T) {
	a := sparse.New(1, 2, 3)
	var seen []int
	for _, v := range a.Entries() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestClone(t *testing.T) {
	a := holey(3, map[int]int{0: 1, 2: 3})
	b := a.Clone()
	a.Delete(0)
	require.NoError(t, a.Set(1, 9))
	assert.Equal(t, []int{1, -1, 3}, layout(b))
}

func TestAnyKeepsHoles(t *testing.T) {
	a := holey(3, map[int]int{1: 5}).Any()
	assert.Equal(t, 3, a.Len())
	assert.False(t, a.Has(0))
	v, ok := a.At(1)
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

func TestSetGrows(t *testing.T) {
	a := sparse.New(1)
	require.NoError(t, a.Set(3, 4))
	assert.Equal(t, []int{1, -1, -1, 4}, layout(a))
}

func TestSetNegative(t *testing.T) {
	assert.ErrorIs(t, sparse.New(1).Set(-1, 0), sparse.ErrIndexOutOfRange)
}

func TestSetMaxIndex(t *testing.T) {
	a := sparse.New(1, 2)
	assert.ErrorIs(t, a.Set(math.MaxInt, 3), sparse.ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 2}, layout(a), "array is left untouched")
}

func TestDelete(t *testing.T) {
	a := sparse.New(1, 2, 3)
	a.Delete(1)
	a.Delete(10)
	a.Delete(-1)
	assert.Equal(t, []int{1, -1, 3}, layout(a))
}

func TestSetLen(t *testing.T) {
	a := sparse.New(1, 2, 3, 4)
	a.SetLen(2)
	assert.Equal(t, []int{1, 2}, layout(a))
	assert.Equal(t, 2, a.Count())

	// Growing again must not resurrect the truncated values.
	a.SetLen(4)
	assert.Equal(t, []int{1, 2, -1, -1}, layout(a))

	a.SetLen(-5)
	assert.Equal(t, 0, a.Len())
}

func TestPush(t *testing.T) {
	a := holey(2, map[int]int{0: 1})
	n := a.Push(3, 4)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{1, -1, 3, 4}, layout(a))
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   *sparse.Array[any]
		want string
	}{
		{"empty", sparse.Empty[any](), "[]"},
		{"dense", sparse.New[any](20.0, 4.0), "[ 20, 4 ]"},
		{"one hole", sparse.MustParse("[20, 4, , 8]"), "[ 20, 4, <1 empty item>, 8 ]"},
		{"run of holes", sparse.MustParse("[1, , , 4]"), "[ 1, <2 empty items>, 4 ]"},
		{"only holes", sparse.WithLength[any](3), "[ <3 empty items> ]"},
		{"strings", sparse.New[any]("a", "it's"), `[ 'a', 'it\'s' ]`},
		{"nil and bool", sparse.New[any](nil, true), "[ null, true ]"},
		{"nested", sparse.MustParse("[[1, , 2]]"), "[ [ 1, <1 empty item>, 2 ] ]"},
		{"fraction", sparse.New[any](0.5), "[ 0.5 ]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	a := holey(3, map[int]int{0: 1, 2: 3})
	b, err := a.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1, null, 3]`, string(b))
}

func TestUnmarshalJSON(t *testing.T) {
	var a sparse.Array[any]
	require.NoError(t, a.UnmarshalJSON([]byte(`[1, null, "x"]`)))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 3, a.Count(), "null decodes to a present nil")

	var bad sparse.Array[int]
	assert.Error(t, bad.UnmarshalJSON([]byte(`{"a":1}`)))
}

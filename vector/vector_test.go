// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for construction, access and
// mutation of vectors.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/typedvec/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDefaults verifies a fresh vector is empty with DefaultCapacity slots.
func TestNewDefaults(t *testing.T) {
	for _, k := range []vector.Kind{
		vector.KindInt32, vector.KindFloat32, vector.KindChar, vector.KindString, vector.KindVector,
	} {
		t.Run(k.String(), func(t *testing.T) {
			n := vector.New(k)
			require.Equal(t, k, n.Kind())
			require.Equal(t, 0, n.Len())
			require.Equal(t, vector.DefaultCapacity, n.Cap())
			require.True(t, n.Live())
			require.False(t, n.Owned())
		})
	}
}

// TestNewUnknownKind ensures New rejects kinds outside the closed set.
func TestNewUnknownKind(t *testing.T) {
	requireViolation(t, vector.ErrUnknownKind, func() { vector.New(vector.Kind(42)) })
}

// TestNilAccessors checks the accessors on a nil vector.
func TestNilAccessors(t *testing.T) {
	var v *vector.Vector[int32]
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	require.False(t, v.Live())
	require.Equal(t, "[]", v.String())
	v.Destroy() // no-op on nil

	requireViolation(t, vector.ErrNilVector, func() { v.Push(1) })
	requireViolation(t, vector.ErrNilVector, func() { _ = v.Kind() })
}

// TestZeroValueUnusable ensures an unconstructed Vector is rejected rather than silently used.
func TestZeroValueUnusable(t *testing.T) {
	var v vector.Vector[int32]
	requireViolation(t, vector.ErrNilVector, func() { v.Push(1) })
	require.False(t, v.Live())
}

// TestPushAt verifies size equals the push count and At returns every pushed value.
func TestPushAt(t *testing.T) {
	v := vector.NewInt32()
	const n = 10000
	for i := int32(0); i < n; i++ {
		v.Push(i)
	}
	require.Equal(t, n, v.Len())
	for i := 0; i < n; i++ {
		require.Equal(t, int32(i), v.At(i))
	}
}

// TestGrowthDoubles verifies capacity stays 8 for 8 pushes and doubles on the 9th.
func TestGrowthDoubles(t *testing.T) {
	v := intRange(t, 0, 8)
	require.Equal(t, 8, v.Cap())

	v.Push(8)
	require.Equal(t, 9, v.Len())
	require.Equal(t, 16, v.Cap())
}

// TestGrowthSequence checks capacity after N pushes is the smallest 8·2^k ≥ N.
func TestGrowthSequence(t *testing.T) {
	v := vector.NewInt32()
	want := 8
	for n := 1; n <= 1000; n++ {
		v.Push(int32(n))
		for want < n {
			want *= 2
		}
		require.Equalf(t, want, v.Cap(), "after %d pushes", n)
	}
}

// TestWithCapacityZero ensures a zero initial capacity grows straight to DefaultCapacity.
func TestWithCapacityZero(t *testing.T) {
	v := vector.NewInt32(vector.WithCapacity(0))
	require.Equal(t, 0, v.Cap())
	v.Push(1)
	require.Equal(t, vector.DefaultCapacity, v.Cap())

	w := vector.NewInt32(vector.WithCapacity(3))
	for i := int32(0); i < 4; i++ {
		w.Push(i)
	}
	require.Equal(t, vector.DefaultCapacity, w.Cap()) // max(8, 3*2)
}

// TestInsertRemoveScenario walks the canonical example.
func TestInsertRemoveScenario(t *testing.T) {
	v := vector.NewInt32()
	v.Push(10)
	v.Push(20)
	v.Push(30)

	v.Insert(1, 99)
	require.Equal(t, []int32{10, 99, 20, 30}, ints(v))

	v.Remove(1)
	require.Equal(t, []int32{10, 20, 30}, ints(v))
	require.Equal(t, 3, v.Len())
}

// TestInsertBoundaries covers insertion at the front and at Len().
func TestInsertBoundaries(t *testing.T) {
	v := intRange(t, 0, 5)

	v.Insert(0, 77)
	require.Equal(t, []int32{77, 0, 1, 2, 3, 4}, ints(v))

	v.Insert(v.Len(), 88)
	require.Equal(t, []int32{77, 0, 1, 2, 3, 4, 88}, ints(v))

	v.Remove(0)
	v.Remove(v.Len() - 1)
	require.Equal(t, []int32{0, 1, 2, 3, 4}, ints(v))
}

// TestInsertGrows verifies Insert on a full vector grows and preserves order.
func TestInsertGrows(t *testing.T) {
	v := intRange(t, 0, 8)
	v.Insert(4, -1)
	require.Equal(t, 16, v.Cap())
	require.Equal(t, []int32{0, 1, 2, 3, -1, 4, 5, 6, 7}, ints(v))
}

// TestInsertRemoveIdentity checks remove(insert(v,i,x),i) == v for every valid i.
func TestInsertRemoveIdentity(t *testing.T) {
	base := intRange(t, 0, 12)
	for i := 0; i <= base.Len(); i++ {
		v := base.Copy()
		v.Insert(i, 1000)
		require.Equal(t, int32(1000), v.At(i))
		v.Remove(i)
		require.Truef(t, v.Equal(base), "index %d: %v != %v", i, v, base)
	}
}

// TestPopLIFO verifies Pop returns elements in reverse push order.
func TestPopLIFO(t *testing.T) {
	v := intRange(t, 0, 9)
	for i := int32(8); i >= 0; i-- {
		require.Equal(t, i, v.Pop())
		require.Equal(t, int(i), v.Len())
	}
	require.Equal(t, 16, v.Cap()) // capacity never shrinks
}

// TestTakeSet covers the supplementary index operations.
func TestTakeSet(t *testing.T) {
	v := intRange(t, 0, 5)
	require.Equal(t, int32(2), v.Take(2))
	require.Equal(t, []int32{0, 1, 3, 4}, ints(v))

	v.Set(0, 42)
	require.Equal(t, []int32{42, 1, 3, 4}, ints(v))
}

// TestUpdateInPlace verifies Update mutates the slot and rejects mutation while borrowed.
func TestUpdateInPlace(t *testing.T) {
	v := intRange(t, 0, 3)
	v.Update(1, func(p *int32) { *p *= 10 })
	require.Equal(t, []int32{0, 10, 2}, ints(v))

	requireViolation(t, vector.ErrBorrowed, func() {
		v.Update(0, func(*int32) { v.Push(5) })
	})
	// the borrow is released even when the callback panics
	v.Push(5)
	require.Equal(t, 4, v.Len())

	v.Update(2, func(p *int32) { *p = v.At(0) + int32(v.Len()-4) }) // reads are fine
	require.Equal(t, int32(0), v.At(2))
}

// TestContractViolations checks every fail-fast path on a live vector.
func TestContractViolations(t *testing.T) {
	v := intRange(t, 0, 3)

	ce := requireViolation(t, vector.ErrOutOfRange, func() { v.At(3) })
	assert.Equal(t, "At", ce.Op)
	assert.Equal(t, 3, ce.Index)
	assert.Equal(t, 3, ce.Len)

	requireViolation(t, vector.ErrOutOfRange, func() { v.At(-1) })
	requireViolation(t, vector.ErrOutOfRange, func() { v.Insert(4, 0) })
	requireViolation(t, vector.ErrOutOfRange, func() { v.Insert(-1, 0) })
	requireViolation(t, vector.ErrOutOfRange, func() { v.Remove(3) })
	requireViolation(t, vector.ErrOutOfRange, func() { v.Take(3) })
	requireViolation(t, vector.ErrOutOfRange, func() { v.Set(3, 0) })
	requireViolation(t, vector.ErrOutOfRange, func() { v.Update(3, func(*int32) {}) })

	empty := vector.NewInt32()
	requireViolation(t, vector.ErrEmpty, func() { empty.Pop() })
	requireViolation(t, vector.ErrOutOfRange, func() { empty.At(0) })

	require.Equal(t, []int32{0, 1, 2}, ints(v)) // failed calls left v untouched
}

// TestContractErrorMessage checks the rendered panic message.
func TestContractErrorMessage(t *testing.T) {
	v := vector.NewInt32()
	ce := requireViolation(t, vector.ErrEmpty, func() { v.Pop() })
	require.Equal(t, "vector.Pop len=0: vector: vector is empty", ce.Error())

	ce = requireViolation(t, vector.ErrOutOfRange, func() { v.At(0) })
	require.Equal(t, "vector.At(0) len=0: vector: index out of range", ce.Error())
}

// TestDestroyedState verifies the terminal state after Destroy.
func TestDestroyedState(t *testing.T) {
	v := intRange(t, 0, 5)
	v.Destroy()

	require.False(t, v.Live())
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	require.Equal(t, "[]", v.String())

	requireViolation(t, vector.ErrDestroyed, func() { v.At(0) })
	requireViolation(t, vector.ErrDestroyed, func() { v.Push(1) })
	requireViolation(t, vector.ErrDestroyed, func() { v.Copy() })
	requireViolation(t, vector.ErrDestroyed, func() { v.Destroy() })
}

// TestAsKindMismatch verifies typed views of a Node.
func TestAsKindMismatch(t *testing.T) {
	n := vector.New(vector.KindFloat32)
	f := vector.As[float32](n)
	f.Push(3.14)
	require.Equal(t, float32(3.14), f.At(0))

	requireViolation(t, vector.ErrKindMismatch, func() { vector.As[int32](n) })
	requireViolation(t, vector.ErrNilVector, func() { vector.As[int32](nil) })
}

// TestCharAndFloat covers the remaining scalar kinds.
func TestCharAndFloat(t *testing.T) {
	c := vector.NewChar()
	c.Push('a')
	require.Equal(t, byte('a'), c.At(0))

	f := vector.NewFloat32()
	f.Push(3.14)
	require.Equal(t, float32(3.14), f.At(0))
	require.Equal(t, vector.KindFloat32, f.Kind())
}

// TestAllIterates verifies All yields pairs in order and honors early exit.
func TestAllIterates(t *testing.T) {
	v := intRange(t, 10, 15)
	var got []int32
	for i, x := range v.All() {
		require.Equal(t, int32(10+i), x)
		got = append(got, x)
		if i == 2 {
			break
		}
	}
	require.Equal(t, []int32{10, 11, 12}, got)
}

// TestValuesIsCopy ensures Values does not alias storage.
func TestValuesIsCopy(t *testing.T) {
	v := intRange(t, 0, 3)
	vals := v.Values()
	vals[0] = 99
	require.Equal(t, int32(0), v.At(0))
}

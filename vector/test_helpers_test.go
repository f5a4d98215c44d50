// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers
//
// Purpose:
//   • Catch contract-violation panics and match their sentinels.
//   • Build small deterministic fixtures (int ranges, nested 3×3 trees).

package vector_test

import (
	"testing"

	"github.com/katalvlaran/typedvec/vector"
	"github.com/stretchr/testify/require"
)

// requireViolation ASSERTS that fn panics with a *vector.ContractError
// wrapping target, and returns it for further inspection.
func requireViolation(t *testing.T, target error, fn func()) *vector.ContractError {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	require.NotNil(t, got, "expected a contract violation")
	ce, ok := got.(*vector.ContractError)
	require.Truef(t, ok, "panic value %T (%v) is not *vector.ContractError", got, got)
	require.ErrorIs(t, ce, target)

	return ce
}

// intRange BUILDS an int32 vector holding lo, lo+1, ..., hi-1.
func intRange(t *testing.T, lo, hi int32, opts ...vector.Option) *vector.Vector[int32] {
	t.Helper()
	v := vector.NewInt32(opts...)
	for x := lo; x < hi; x++ {
		v.Push(x)
	}
	require.Equal(t, int(hi-lo), v.Len())

	return v
}

// nested3x3 BUILDS [[0, 1, 2], [0, 1, 2], [0, 1, 2]].
func nested3x3(t *testing.T) *vector.Vector[vector.Node] {
	t.Helper()
	outer := vector.NewNested()
	for i := 0; i < 3; i++ {
		outer.Push(intRange(t, 0, 3))
	}

	return outer
}

// ints EXTRACTS the live elements of an int32 vector.
func ints(v *vector.Vector[int32]) []int32 { return v.Values() }

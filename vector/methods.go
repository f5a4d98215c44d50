// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Mutations (Push, Pop, Insert, Remove, Take, Set, Update) and growth.
// Ownership rules for KindVector:
//   - Push/Insert/Set adopt the incoming child; it must be live and unowned.
//   - Pop/Take/Remove/Set disown the outgoing child without destroying it.
//     The caller (or the garbage collector) is responsible for it afterwards.
// Growth:
//   - When Len()==Cap(), capacity becomes max(DefaultCapacity, 2*Cap()).
//     Growth replaces the backing array; nothing outside Update can observe
//     slot addresses, so no caller-held reference is invalidated.

package vector

import (
	"math"

	"go.uber.org/zap"
)

// Push appends x after the last element, growing storage first if full.
//
// Behavior highlights:
//   - Scalars are copied by value.
//   - Strings are stored as given; Go strings are immutable, so the vector
//     owns its reference exclusively in every observable sense.
//   - A KindVector child is adopted: ownership transfers to v.
//
// Complexity: amortized O(1).
func (v *Vector[T]) Push(x T) {
	v.mustMutable(opPush, v.Len())
	v.grow()
	if v.elem.adopt != nil {
		v.elem.adopt(opPush, v.length, &v.state, x)
	}
	v.data[v.length] = x
	v.length++
}

// Pop removes and returns the last element. Ownership of a KindVector child
// transfers to the caller; the vector does not destroy it.
//
// Contract: Len() > 0.
func (v *Vector[T]) Pop() T {
	v.mustMutable(opPop, -1)
	if v.length == 0 {
		violate(opPop, -1, 0, ErrEmpty)
	}
	v.length--
	x := v.data[v.length]
	v.clear(v.length)
	if v.elem.disown != nil {
		v.elem.disown(x)
	}

	return x
}

// Insert writes x at index i, shifting [i, Len()) one slot to the right.
// Insert(Len(), x) is equivalent to Push(x); Insert(0, x) shifts everything.
//
// Contract: 0 ≤ i ≤ Len().
//
// Complexity: O(Len()-i), amortized growth.
func (v *Vector[T]) Insert(i int, x T) {
	v.mustMutable(opInsert, i)
	v.mustIndex(opInsert, i, v.length+1)
	v.grow()
	if v.elem.adopt != nil {
		v.elem.adopt(opInsert, i, &v.state, x)
	}
	copy(v.data[i+1:v.length+1], v.data[i:v.length]) // overlapping move, order preserved
	v.data[i] = x
	v.length++
}

// Remove deletes the element at index i, shifting [i+1, Len()) one slot left.
//
// Remove does not destroy the removed element. A removed KindVector child is
// disowned: whoever still holds its handle may keep using it (or Destroy it);
// otherwise it is simply unreachable and reclaimed by the garbage collector.
// Use Take to receive the element instead.
//
// Contract: 0 ≤ i < Len().
func (v *Vector[T]) Remove(i int) {
	v.take(opRemove, i)
}

// Take removes the element at index i and returns it, transferring ownership
// to the caller.
//
// Contract: 0 ≤ i < Len().
func (v *Vector[T]) Take(i int) T {
	return v.take(opTake, i)
}

func (v *Vector[T]) take(op string, i int) T {
	v.mustMutable(op, i)
	v.mustIndex(op, i, v.length)
	x := v.data[i]
	copy(v.data[i:v.length-1], v.data[i+1:v.length]) // overlapping move, order preserved
	v.length--
	v.clear(v.length)
	if v.elem.disown != nil {
		v.elem.disown(x)
	}

	return x
}

// Set replaces the element at index i with x. A replaced KindVector child
// is disowned, not destroyed, exactly as with Remove. Setting a child into
// the slot it already occupies is a no-op.
//
// Contract: 0 ≤ i < Len().
func (v *Vector[T]) Set(i int, x T) {
	v.mustMutable(opSet, i)
	v.mustIndex(opSet, i, v.length)
	if v.elem.adopt != nil {
		if any(x) == any(v.data[i]) {
			return
		}
		v.elem.adopt(opSet, i, &v.state, x)
		v.elem.disown(v.data[i])
	}
	v.data[i] = x
}

// Update calls fn with a pointer to slot i for in-place modification.
//
// The pointer aliases the backing array and is valid only until fn returns;
// it MUST NOT be retained. While fn runs, any mutation of v (Push, Insert,
// Pop, Remove, Take, Set, nested Update, Destroy) is a contract violation
// (ErrBorrowed), so the slot cannot move underneath fn.
//
// For KindVector, fn may mutate the child it receives but must not assign a
// different Node to the slot; use Set for that. A replaced slot is restored
// and reported as ErrOwned (ErrNilVector when nil was written).
//
// Contract: 0 ≤ i < Len().
func (v *Vector[T]) Update(i int, fn func(*T)) {
	v.mustMutable(opUpdate, i)
	v.mustIndex(opUpdate, i, v.length)
	v.borrowed = true
	defer func() { v.borrowed = false }()
	if v.elem.adopt == nil {
		fn(&v.data[i])

		return
	}

	old := v.data[i]
	fn(&v.data[i])
	if got := any(v.data[i]); got != any(old) {
		v.data[i] = old
		if got == nil {
			violate(opUpdate, i, v.length, ErrNilVector)
		}
		violate(opUpdate, i, v.length, ErrOwned)
	}
}

// grow doubles the backing array when it is full.
func (v *Vector[T]) grow() {
	old := len(v.data)
	if v.length < old {
		return
	}
	if old > math.MaxInt/2 {
		v.logger().Fatal("vector: capacity overflow",
			zap.Stringer("kind", v.kind),
			zap.Int("capacity", old),
		)
	}
	next := max(DefaultCapacity, old*2)
	data := alloc[T](&v.state, next)
	copy(data, v.data[:v.length])
	v.data = data

	if ce := v.logger().Check(zap.DebugLevel, "vector: grow"); ce != nil {
		ce.Write(
			zap.Stringer("kind", v.kind),
			zap.Int("len", v.length),
			zap.Int("from", old),
			zap.Int("to", next),
		)
	}
}

// clear zeroes slot i so dropped strings and children become unreachable.
func (v *Vector[T]) clear(i int) {
	var zero T
	v.data[i] = zero
}

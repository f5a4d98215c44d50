// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy, recursive destruction, equality and iteration.
// Determinism:
//   - Copy preserves kind, capacity, length and options of the source.
//   - Destroy walks children post-order (children before parent).

package vector

import "iter"

// Copy returns an independent vector with the same kind, capacity, length and
// options. KindString elements are duplicated byte-for-byte, KindVector
// children are copied recursively, scalar kinds are bulk-copied. The result
// shares no storage with v at any depth and is unowned.
//
// Complexity: O(total elements in the tree).
func (v *Vector[T]) Copy() *Vector[T] {
	v.mustLive(opCopy, -1)
	c := &Vector[T]{
		state: state{kind: v.kind, opts: v.opts},
		elem:  v.elem,
	}
	c.data = alloc[T](&c.state, len(v.data))
	if v.elem.clone == nil {
		copy(c.data, v.data[:v.length])
		c.length = v.length

		return c
	}
	for i := 0; i < v.length; i++ {
		x := v.elem.clone(v.data[i])
		if c.elem.adopt != nil {
			c.elem.adopt(opCopy, i, &c.state, x)
		}
		c.data[i] = x
		c.length++
	}

	return c
}

// CopyNode is Copy through the Node interface.
func (v *Vector[T]) CopyNode() Node { return v.Copy() }

// Destroy releases v's storage after recursively destroying every child
// (KindVector) and dropping every string (KindString). Afterwards v is in the
// terminal destroyed state: Len and Cap report 0 and any other operation is a
// contract violation.
//
// Contract:
//   - Destroy on a nil vector is a no-op.
//   - Destroying twice is a contract violation (ErrDestroyed).
//   - A child still owned by a parent cannot be destroyed directly (ErrOwned);
//     Pop or Take it first, or destroy the parent.
func (v *Vector[T]) Destroy() {
	if v == nil {
		return
	}
	v.mustMutable(opFree, -1)
	if v.owner != nil {
		violate(opFree, -1, v.length, ErrOwned)
	}
	v.release()
}

// release tears the tree down without ownership checks; parents call it on
// the children they own.
func (v *Vector[T]) release() {
	if v.elem.release != nil {
		for i := 0; i < v.length; i++ {
			v.elem.release(&v.data[i])
		}
	}
	v.data = nil
	v.length = 0
	v.owner = nil
	v.dead = true
}

// Equal reports element-wise equality (recursive for KindVector). Nil and
// destroyed vectors compare as empty. Capacity is not compared.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == o {
		return true
	}
	if v.Len() != o.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if !v.elem.equal(v.data[i], o.data[i]) {
			return false
		}
	}

	return true
}

func (v *Vector[T]) equalNode(other Node) bool {
	o, ok := other.(*Vector[T])
	if !ok {
		return false
	}

	return v.Equal(o)
}

// All iterates (index, element) pairs in order. Mutating v during iteration
// is allowed; the sequence observes the current length at every step.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	v.mustLive(opAll, -1)

	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

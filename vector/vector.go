// SPDX-License-Identifier: MIT

// Package vector - constructors, accessors and the allocation path.
//
// Purpose:
//   - Build vectors of each Kind with DefaultCapacity slots (or WithCapacity).
//   - Keep every allocation behind one guarded path (alloc) so resource
//     exhaustion is handled by a single fatal policy.
//   - Len/Cap on nil or destroyed vectors return 0.
//
// Complexity quicksheet:
//   - New*: O(capacity) zero-init; Len/Cap/Kind/Live: O(1); At: O(1).
package vector

import (
	"math"

	"go.uber.org/zap"
)

// ---------- error context tags ----------

const (
	opNew    = "New"
	opAt     = "At"
	opSet    = "Set"
	opUpdate = "Update"
	opPush   = "Push"
	opPop    = "Pop"
	opInsert = "Insert"
	opRemove = "Remove"
	opTake   = "Take"
	opCopy   = "Copy"
	opKind   = "Kind"
	opValues = "Values"
	opAll    = "All"
	opAs     = "As"
	opFree   = "Destroy"
)

// New creates an empty vector of the given kind and returns it as a Node.
// Use As to obtain the typed *Vector[T]:
//
//	n := vector.New(vector.KindInt32)
//	v := vector.As[int32](n)
//
// An invalid kind is a contract violation (ErrUnknownKind).
func New(kind Kind, opts ...Option) Node {
	switch kind {
	case KindInt32:
		return NewInt32(opts...)
	case KindFloat32:
		return NewFloat32(opts...)
	case KindChar:
		return NewChar(opts...)
	case KindString:
		return NewString(opts...)
	case KindVector:
		return NewNested(opts...)
	}
	violate(opNew, -1, 0, ErrUnknownKind)

	return nil
}

// NewInt32 creates an empty KindInt32 vector.
func NewInt32(opts ...Option) *Vector[int32] { return newVector(KindInt32, int32Policy, opts) }

// NewFloat32 creates an empty KindFloat32 vector.
func NewFloat32(opts ...Option) *Vector[float32] { return newVector(KindFloat32, float32Policy, opts) }

// NewChar creates an empty KindChar vector of single-byte characters.
func NewChar(opts ...Option) *Vector[byte] { return newVector(KindChar, charPolicy, opts) }

// NewString creates an empty KindString vector. Pushed strings are owned by
// the vector; Copy duplicates their bytes.
func NewString(opts ...Option) *Vector[string] { return newVector(KindString, stringPolicy, opts) }

// NewNested creates an empty KindVector vector. Children of any kind may be
// pushed; each child becomes owned by this vector until it is popped, taken,
// removed or replaced.
func NewNested(opts ...Option) *Vector[Node] { return newVector(KindVector, nodePolicy, opts) }

func newVector[T any](kind Kind, elem *policy[T], opts []Option) *Vector[T] {
	v := &Vector[T]{
		state: state{kind: kind, opts: gatherOptions(opts...)},
		elem:  elem,
	}
	v.data = alloc[T](&v.state, v.opts.capacity)

	return v
}

// alloc returns a zeroed backing array of n slots for s's kind.
// Exceeding the byte ceiling is resource exhaustion: the failure is logged at
// Fatal level and the process terminates.
func alloc[T any](s *state, n int) []T {
	width := s.kind.Width()
	if n > math.MaxInt/width || n*width > s.opts.maxBytes {
		s.logger().Fatal("vector: allocation failed",
			zap.Stringer("kind", s.kind),
			zap.Int("capacity", n),
			zap.Int("width", width),
			zap.Int("max_bytes", s.opts.maxBytes),
		)
	}

	return make([]T, n)
}

// Kind returns the element kind. Calling Kind on a nil vector is a contract violation.
func (v *Vector[T]) Kind() Kind {
	if v == nil {
		violate(opKind, -1, 0, ErrNilVector)
	}

	return v.kind
}

// Len returns the number of live elements; 0 for nil or destroyed vectors.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return v.length
}

// Cap returns the allocated slot count; 0 for nil or destroyed vectors.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Live reports whether v was constructed and not yet destroyed.
func (v *Vector[T]) Live() bool {
	return v != nil && v.elem != nil && !v.dead
}

// Owned reports whether v is currently a child of a KindVector vector.
func (v *Vector[T]) Owned() bool {
	return v != nil && v.owner != nil
}

// At returns the element at index i.
//
// Behavior highlights:
//   - Scalars and strings are returned by value; later mutations of v do not
//     affect the returned value.
//   - For KindVector the returned Node is the child itself (still owned by v).
//     The handle stays valid across growth of v, because growth moves slots,
//     not children.
//
// Contract: 0 ≤ i < Len(), v live.
func (v *Vector[T]) At(i int) T {
	v.mustLive(opAt, i)
	v.mustIndex(opAt, i, v.length)

	return v.data[i]
}

// Values returns a copy of the live region. For KindVector the returned
// slice holds the children themselves; they remain owned by v.
func (v *Vector[T]) Values() []T {
	v.mustLive(opValues, -1)
	out := make([]T, v.length)
	copy(out, v.data[:v.length])

	return out
}

// As returns n as a typed vector. A nil n, or an n whose element type is not
// T, is a contract violation (ErrNilVector, ErrKindMismatch).
//
//	outer := vector.NewNested()
//	...
//	inner := vector.As[int32](outer.At(0))
func As[T any](n Node) *Vector[T] {
	if n == nil {
		violate(opAs, -1, 0, ErrNilVector)
	}
	v, ok := n.(*Vector[T])
	if !ok {
		violate(opAs, -1, n.Len(), ErrKindMismatch)
	}

	return v
}

// base exposes the kind-independent header to ownership bookkeeping.
func (v *Vector[T]) base() *state {
	if v == nil {
		return nil
	}

	return &v.state
}

// ---------- contract checks ----------

// mustLive rejects nil, zero-value and destroyed receivers.
func (v *Vector[T]) mustLive(op string, i int) {
	if v == nil || v.elem == nil {
		violate(op, i, 0, ErrNilVector)
	}
	if v.dead {
		violate(op, i, 0, ErrDestroyed)
	}
}

// mustMutable additionally rejects mutation while an Update callback is running.
func (v *Vector[T]) mustMutable(op string, i int) {
	v.mustLive(op, i)
	if v.borrowed {
		violate(op, i, v.length, ErrBorrowed)
	}
}

// mustIndex checks 0 ≤ i < limit.
func (v *Vector[T]) mustIndex(op string, i, limit int) {
	if i < 0 || i >= limit {
		violate(op, i, v.length, ErrOutOfRange)
	}
}

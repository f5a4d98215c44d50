// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vector, Node and the per-kind element policies.
// Policy:
//   - Kind-specific behavior (copy, release, render, compare, ownership) is
//     chosen ONCE, by the constructor, as a *policy[T]. Operations never
//     switch on Kind themselves.
//   - Nested children are tracked by an owner pointer so that every child has
//     exactly one parent and the ownership graph stays a tree.

package vector

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is the kind-erased view of a vector. Every *Vector[T] is a Node, and
// KindVector vectors store their children as Nodes. The interface is sealed:
// only this package can implement it.
type Node interface {
	fmt.Stringer

	// Kind returns the element kind of the vector.
	Kind() Kind
	// Len returns the number of live elements (0 for nil or destroyed vectors).
	Len() int
	// Cap returns the allocated slot count (0 for nil or destroyed vectors).
	Cap() int
	// Live reports whether the vector is usable (constructed, not destroyed).
	Live() bool
	// Owned reports whether the vector is currently a child of another vector.
	Owned() bool
	// Destroy releases the vector and, recursively, everything it owns.
	Destroy()
	// CopyNode returns an independent deep copy.
	CopyNode() Node
	// Print writes the bracketed rendering followed by a newline.
	Print(w io.Writer) error

	base() *state
	format(b *strings.Builder)
	equalNode(other Node) bool
	release()
}

// state is the kind-independent header shared by all vectors.
type state struct {
	kind     Kind
	length   int     // live elements, 0 ≤ length ≤ len(data)
	owner    *state  // parent vector, nil for roots and disowned children
	dead     bool    // set by Destroy; terminal
	borrowed bool    // set while an Update callback holds a slot pointer
	opts     Options // captured at construction, carried by Copy
}

// Vector is a growable array of homogeneous elements of one Kind.
//   - data is the backing array; len(data) is the capacity.
//   - Slots [length, len(data)) always hold the zero value so dropped strings
//     and children are not kept reachable.
//
// Vectors are created with New or the typed constructors; the zero value is
// not usable. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	state
	data []T
	elem *policy[T]
}

// Compile-time assertions for interface conformance.
var (
	_ Node         = (*Vector[int32])(nil)
	_ Node         = (*Vector[Node])(nil)
	_ fmt.Stringer = (*Vector[string])(nil)
)

// policy holds the kind-specific element behavior.
type policy[T any] struct {
	// clone duplicates one element for Copy; nil means a bulk copy of the live region.
	clone func(T) T
	// release frees what one element owns on Destroy; nil means nothing to free.
	release func(*T)
	format  func(*strings.Builder, T)
	equal   func(a, b T) bool
	// adopt and disown maintain child ownership; both are nil for non-nested kinds.
	adopt  func(op string, i int, parent *state, x T)
	disown func(T)
}

var (
	int32Policy = &policy[int32]{
		format: func(b *strings.Builder, x int32) { b.WriteString(strconv.FormatInt(int64(x), 10)) },
		equal:  func(a, b int32) bool { return a == b },
	}

	float32Policy = &policy[float32]{
		format: func(b *strings.Builder, x float32) { b.WriteString(strconv.FormatFloat(float64(x), 'f', 6, 32)) },
		equal:  func(a, b float32) bool { return a == b },
	}

	charPolicy = &policy[byte]{
		format: func(b *strings.Builder, x byte) {
			b.WriteByte('\'')
			b.WriteByte(x)
			b.WriteByte('\'')
		},
		equal: func(a, b byte) bool { return a == b },
	}

	stringPolicy = &policy[string]{
		clone:   strings.Clone,
		release: func(s *string) { *s = "" },
		format: func(b *strings.Builder, x string) {
			b.WriteByte('"')
			b.WriteString(x)
			b.WriteByte('"')
		},
		equal: func(a, b string) bool { return a == b },
	}

	nodePolicy = &policy[Node]{
		clone: func(n Node) Node { return n.CopyNode() },
		release: func(n *Node) {
			(*n).release()
			*n = nil
		},
		format: func(b *strings.Builder, n Node) { n.format(b) },
		equal: func(a, b Node) bool {
			if a == nil || b == nil {
				return a == b
			}

			return a.equalNode(b)
		},
		adopt:  adoptNode,
		disown: func(n Node) { n.base().owner = nil },
	}
)

// adoptNode makes parent the owner of child, enforcing the tree invariant:
// the child must be live, unowned, and must not be parent or one of its ancestors.
func adoptNode(op string, i int, parent *state, child Node) {
	if child == nil {
		violate(op, i, parent.length, ErrNilVector)
	}
	c := child.base()
	if c == nil {
		violate(op, i, parent.length, ErrNilVector)
	}
	if c.dead {
		violate(op, i, parent.length, ErrDestroyed)
	}
	if c.owner != nil {
		violate(op, i, parent.length, ErrOwned)
	}
	for p := parent; p != nil; p = p.owner {
		if p == c {
			violate(op, i, parent.length, ErrOwned)
		}
	}
	c.owner = parent
}

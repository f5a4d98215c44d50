// SPDX-License-Identifier: MIT

// Package vector provides a type-tagged growable array whose elements are of
// one kind from a closed set: int32, float32, char, owned string, or nested
// vector. Nested vectors form an ownership tree: each child has exactly one
// parent, Copy duplicates the whole tree, and Destroy tears it down
// post-order.
//
// The package provides:
//
//   - Typed constructors (NewInt32, NewFloat32, NewChar, NewString,
//     NewNested) and a kind-dispatching New returning a Node.
//   - Index-based access (At, Set, Update) and mutation (Push, Pop, Insert,
//     Remove, Take) with amortized doubling growth from DefaultCapacity.
//   - Deep Copy, recursive Destroy, Equal and a bracketed String/Print dump.
//
// Failure policy:
//
//   - Contract violations (bad index, empty Pop, use after Destroy, kind
//     mismatch, shared children, mutation during Update) panic with a
//     *ContractError wrapping a package sentinel. These checks are always on.
//   - Allocation beyond WithMaxBytes is resource exhaustion: it is logged
//     with zap at Fatal level and the process exits.
//
// Quick example:
//
//	v := vector.NewInt32()
//	v.Push(10)
//	v.Push(20)
//	v.Push(30)
//	v.Insert(1, 99) // [10, 99, 20, 30]
//	v.Remove(1)     // [10, 20, 30]
//
// Vectors are single-owner values and are not safe for concurrent use.
package vector

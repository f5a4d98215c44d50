// SPDX-License-Identifier: MIT
// Package vector: sentinel error set and the contract-violation carrier.
// Every precondition breach in this package panics with a *ContractError whose
// Err field is one of the sentinels below. Tests and recover() sites MUST
// match them via errors.Is. Nothing here is ever returned as an error value:
// a violated precondition is a programming error, not a runtime condition.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING
// --------------
// Every message is prefixed with "vector: ..." so panics are easy to grep in
// crash logs. ContractError.Error() prepends the operation and index context.

var (
	// ErrOutOfRange indicates an index outside [0,Len) (or [0,Len] for Insert).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates Pop on a vector with no elements.
	ErrEmpty = errors.New("vector: vector is empty")

	// ErrDestroyed indicates an operation on a vector after Destroy.
	ErrDestroyed = errors.New("vector: vector is destroyed")

	// ErrNilVector indicates a nil vector where a live one was required
	// (nil receiver on a mutating call, or a nil nested element).
	ErrNilVector = errors.New("vector: nil vector")

	// ErrKindMismatch indicates typed access to a vector of another element kind.
	ErrKindMismatch = errors.New("vector: element kind mismatch")

	// ErrUnknownKind indicates a Kind outside the closed set.
	ErrUnknownKind = errors.New("vector: unknown element kind")

	// ErrOwned indicates an attempt to share a nested vector: pushing a child
	// that already has a parent, nesting a vector into itself, or destroying a
	// child that is still owned by its parent.
	ErrOwned = errors.New("vector: nested vector already owned")

	// ErrBorrowed indicates a mutation of a vector while an Update callback
	// holds a pointer into its storage.
	ErrBorrowed = errors.New("vector: storage is borrowed")
)

// ContractError describes a precondition breach. It is the panic value of
// every contract violation raised by this package.
type ContractError struct {
	Op    string // method name, e.g. "At", "Insert"
	Index int    // offending index, -1 when not applicable
	Len   int    // vector length at the time of the call
	Err   error  // one of the package sentinels
}

// Error renders "vector.<Op>(<index>) len=<n>: <sentinel>".
func (e *ContractError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("vector.%s len=%d: %v", e.Op, e.Len, e.Err)
	}

	return fmt.Sprintf("vector.%s(%d) len=%d: %v", e.Op, e.Index, e.Len, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ContractError) Unwrap() error { return e.Err }

// violate panics with a ContractError. It never returns.
func violate(op string, index, length int, err error) {
	panic(&ContractError{Op: op, Index: index, Len: length, Err: err})
}

// SPDX-License-Identifier: MIT

package vector

import (
	"strconv"
	"strings"
	"unsafe"
)

// Kind tags the element type stored by a vector. The set is closed: a
// vector's Kind is chosen at construction and never changes.
type Kind uint8

const (
	KindInt32   Kind = iota // int32 elements
	KindFloat32             // float32 elements
	KindChar                // single-byte characters
	KindString              // owned strings, deep-copied by Copy
	KindVector              // nested vectors of any kind, owned by the parent

	kindCount
)

var kindNames = [kindCount]string{
	KindInt32:   "int32",
	KindFloat32: "float32",
	KindChar:    "char",
	KindString:  "string",
	KindVector:  "vector",
}

// slot widths of the Go representation, in bytes.
var kindWidths = [kindCount]uintptr{
	KindInt32:   unsafe.Sizeof(int32(0)),
	KindFloat32: unsafe.Sizeof(float32(0)),
	KindChar:    unsafe.Sizeof(byte(0)),
	KindString:  unsafe.Sizeof(""),
	KindVector:  unsafe.Sizeof(Node(nil)),
}

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool { return k < kindCount }

// String returns the lower-case kind name, or "kind(N)" for invalid kinds.
func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Width returns the number of bytes one slot of this kind occupies in the
// backing array. For KindString and KindVector this is the header size; the
// owned payload lives elsewhere. Width panics on an invalid kind.
func (k Kind) Width() int {
	if !k.Valid() {
		violate("Width", -1, 0, ErrUnknownKind)
	}

	return int(kindWidths[k])
}

// ParseKind maps a kind name (case-insensitive) back to its Kind.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}

	return 0, false
}

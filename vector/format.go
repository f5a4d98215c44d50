// SPDX-License-Identifier: MIT

package vector

import (
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// String renders the vector as "[e0, e1, ...]" for diagnostics:
// int32 as %d, float32 as %f, chars quoted '%c', strings quoted "%s", and
// nested vectors recursively in their own brackets. Nil and destroyed
// vectors render as "[]". Not intended for hot paths or parsing.
func (v *Vector[T]) String() string {
	var b strings.Builder
	v.format(&b)

	return b.String()
}

// Print writes String() followed by a newline to w.
func (v *Vector[T]) Print(w io.Writer) error {
	_, err := io.WriteString(w, v.String()+"\n")

	return err
}

func (v *Vector[T]) format(b *strings.Builder) {
	b.WriteString(_fmtOpen)
	if v.Live() {
		for i := 0; i < v.length; i++ {
			if i > 0 {
				b.WriteString(_fmtSep)
			}
			v.elem.format(b, v.data[i])
		}
	}
	b.WriteString(_fmtClose)
}

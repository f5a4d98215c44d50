// SPDX-License-Identifier: MIT

package input

import (
	"strings"

	"github.com/katalvlaran/typedvec/vector"
)

// isBlank reports whether c is horizontal whitespace (or a CR of a CRLF ending).
func isBlank(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }

// CountLines counts the lines of s that contain at least one non-blank byte.
// A final line without a trailing newline is counted too; an empty or
// whitespace-only s yields 0.
//
// Complexity: O(len(s)), no allocation.
func CountLines(s string) int {
	count := 0
	empty := true
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\n':
			if !empty {
				count++
			}
			empty = true
		case !isBlank(c):
			empty = false
		}
	}
	if !empty {
		count++
	}

	return count
}

// Lines returns the non-blank lines of s, with a trailing CR removed, as an
// owned KindString vector. Lines(s).Len() == CountLines(s).
func Lines(s string, opts ...vector.Option) *vector.Vector[string] {
	out := vector.NewString(opts...)
	for line := range strings.Lines(s) {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimLeft(line, " \t\r") == "" {
			continue
		}
		out.Push(strings.Clone(line))
	}

	return out
}

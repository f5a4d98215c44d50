// SPDX-License-Identifier: MIT

package input

import (
	"iter"
	"strings"

	"github.com/katalvlaran/typedvec/vector"
)

// Splitter tokenizes a string on a literal delimiter. All state lives in the
// Splitter, so any number of splitters may run interleaved.
//
// Behavior highlights:
//   - The delimiter is matched as a whole string, not as a byte set: with
//     "::" the input "a:b::c" yields "a:b" and "c".
//   - Leading delimiters are skipped and consecutive delimiters collapse, so
//     no empty token is ever produced.
//   - An empty delimiter yields the remaining input as a single token.
//   - Tokens are substrings of the input; nothing is copied.
type Splitter struct {
	rest  string
	delim string
	done  bool
}

// NewSplitter returns a Splitter positioned at the start of s.
func NewSplitter(s, delim string) *Splitter {
	return &Splitter{rest: s, delim: delim}
}

// Next returns the next token, or ("", false) once s is exhausted.
func (sp *Splitter) Next() (string, bool) {
	if sp.done {
		return "", false
	}
	if sp.delim == "" {
		tok := sp.rest
		sp.rest, sp.done = "", true

		return tok, tok != ""
	}
	for strings.HasPrefix(sp.rest, sp.delim) {
		sp.rest = sp.rest[len(sp.delim):]
	}
	if sp.rest == "" {
		sp.done = true

		return "", false
	}
	if i := strings.Index(sp.rest, sp.delim); i >= 0 {
		tok := sp.rest[:i]
		sp.rest = sp.rest[i+len(sp.delim):]

		return tok, true
	}
	tok := sp.rest
	sp.rest, sp.done = "", true

	return tok, true
}

// Rest returns the not yet tokenized remainder.
func (sp *Splitter) Rest() string { return sp.rest }

// Split iterates the tokens of s.
func Split(s, delim string) iter.Seq[string] {
	return func(yield func(string) bool) {
		sp := NewSplitter(s, delim)
		for tok, ok := sp.Next(); ok; tok, ok = sp.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokens collects the tokens of s into an owned KindString vector.
func Tokens(s, delim string, opts ...vector.Option) *vector.Vector[string] {
	out := vector.NewString(opts...)
	for tok := range Split(s, delim) {
		out.Push(strings.Clone(tok))
	}

	return out
}

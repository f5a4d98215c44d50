// SPDX-License-Identifier: MIT

package input

import "errors"

var (
	// ErrTooLarge indicates a file (or its decompressed payload) above the
	// configured WithMaxSize limit.
	ErrTooLarge = errors.New("input: file too large")

	// ErrNotRegular indicates a path that is not a regular file.
	ErrNotRegular = errors.New("input: not a regular file")

	// ErrCorrupt indicates a compressed input that failed to decode.
	ErrCorrupt = errors.New("input: corrupt compressed data")
)

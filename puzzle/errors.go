// SPDX-License-Identifier: MIT

package puzzle

import "errors"

var (
	// ErrUnknownDay indicates a day number without a registered solver.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrMalformed indicates input that does not match the day's format.
	ErrMalformed = errors.New("puzzle: malformed input")
)

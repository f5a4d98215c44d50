// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/typedvec/vector"
)

// Result holds the answers of one day.
type Result struct {
	Day   int
	Part1 int64
	Part2 int64
}

// Day couples a day's parser and solver.
type Day struct {
	N     int
	Title string
	// Parse builds an owned vector tree from the raw input. The caller
	// destroys it.
	Parse func(text string) (vector.Node, error)
	// Solve computes both parts from a tree built by Parse.
	Solve func(parsed vector.Node) (Result, error)
}

var days = map[int]Day{
	1: {N: 1, Title: "Historian Hysteria", Parse: ParseDay1, Solve: SolveDay1},
	2: {N: 2, Title: "Red-Nosed Reports", Parse: ParseDay2, Solve: SolveDay2},
	3: {N: 3, Title: "Mull It Over", Parse: ParseDay3, Solve: SolveDay3},
}

// Lookup returns the Day registered under n.
func Lookup(n int) (Day, error) {
	d, ok := days[n]
	if !ok {
		return Day{}, fmt.Errorf("day %d: %w", n, ErrUnknownDay)
	}

	return d, nil
}

// Days lists the registered day numbers in ascending order.
func Days() []int {
	out := make([]int, 0, len(days))
	for n := range days {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}

// Inspect observes a parsed tree before it is solved. It must not mutate or
// retain the tree.
type Inspect func(parsed vector.Node) error

// Solve parses text for day n, runs every inspect hook in order, solves it
// and releases the parsed tree. The first failing hook aborts the day.
func Solve(n int, text string, inspect ...Inspect) (Result, error) {
	d, err := Lookup(n)
	if err != nil {
		return Result{}, err
	}
	parsed, err := d.Parse(text)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", n, err)
	}
	defer parsed.Destroy()

	for _, fn := range inspect {
		if err := fn(parsed); err != nil {
			return Result{}, fmt.Errorf("day %d: %w", n, err)
		}
	}

	res, err := d.Solve(parsed)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", n, err)
	}
	res.Day = n

	return res, nil
}

// malformed wraps ErrMalformed with the 1-based index of the non-blank record.
func malformed(record int, format string, args ...any) error {
	return fmt.Errorf("record %d: %s: %w", record, fmt.Sprintf(format, args...), ErrMalformed)
}

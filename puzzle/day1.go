// SPDX-License-Identifier: MIT

package puzzle

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/typedvec/input"
	"github.com/katalvlaran/typedvec/vector"
)

// ParseDay1 reads "a   b" pairs into a nested vector [left, right] of two
// int32 columns of equal length.
func ParseDay1(text string) (vector.Node, error) {
	lines := input.Lines(text)
	defer lines.Destroy()

	left, right := vector.NewInt32(), vector.NewInt32()
	for i, line := range lines.All() {
		sp := input.NewSplitter(line, " ")
		a, okA := sp.Next()
		b, okB := sp.Next()
		if _, extra := sp.Next(); !okA || !okB || extra {
			return nil, malformed(i+1, "want two columns in %q", line)
		}
		x, err := strconv.ParseInt(a, 10, 32)
		if err != nil {
			return nil, malformed(i+1, "left column: %v", err)
		}
		y, err := strconv.ParseInt(b, 10, 32)
		if err != nil {
			return nil, malformed(i+1, "right column: %v", err)
		}
		left.Push(int32(x))
		right.Push(int32(y))
	}

	cols := vector.NewNested(vector.WithCapacity(2))
	cols.Push(left)
	cols.Push(right)

	return cols, nil
}

// SolveDay1 pairs the sorted columns (part 1: sum of distances) and scores
// each left value by its frequency in the right column (part 2).
func SolveDay1(parsed vector.Node) (Result, error) {
	cols := vector.As[vector.Node](parsed)
	if cols.Len() != 2 {
		return Result{}, malformed(0, "want 2 columns, got %d", cols.Len())
	}
	left := vector.As[int32](cols.At(0)).Values()
	right := vector.As[int32](cols.At(1)).Values()
	if len(left) != len(right) {
		return Result{}, malformed(0, "column lengths differ: %d != %d", len(left), len(right))
	}

	slices.Sort(left)
	slices.Sort(right)

	var res Result
	freq := make(map[int32]int64, len(right))
	for i := range left {
		d := int64(left[i]) - int64(right[i])
		if d < 0 {
			d = -d
		}
		res.Part1 += d
		freq[right[i]]++
	}
	for _, x := range left {
		res.Part2 += int64(x) * freq[x]
	}

	return res, nil
}

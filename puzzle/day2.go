// SPDX-License-Identifier: MIT

package puzzle

import (
	"strconv"

	"github.com/katalvlaran/typedvec/input"
	"github.com/katalvlaran/typedvec/vector"
)

// Level steps between neighbours of a safe report.
const (
	minStep = 1
	maxStep = 3
)

// ParseDay2 reads one report per line into a nested vector of int32 vectors.
func ParseDay2(text string) (vector.Node, error) {
	lines := input.Lines(text)
	defer lines.Destroy()

	reports := vector.NewNested()
	for i, line := range lines.All() {
		levels := vector.NewInt32()
		for tok := range input.Split(line, " ") {
			x, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				reports.Destroy()
				return nil, malformed(i+1, "level %q: %v", tok, err)
			}
			levels.Push(int32(x))
		}
		reports.Push(levels)
	}

	return reports, nil
}

// SolveDay2 counts safe reports (part 1) and reports made safe by dropping
// at most one level (part 2).
func SolveDay2(parsed vector.Node) (Result, error) {
	var res Result
	for _, r := range vector.As[vector.Node](parsed).All() {
		levels := vector.As[int32](r)
		switch {
		case safe(levels):
			res.Part1++
			res.Part2++
		case safeDampened(levels):
			res.Part2++
		}
	}

	return res, nil
}

// safe reports whether levels has at least two entries, is strictly
// monotonic, and every step is within [minStep, maxStep].
func safe(levels *vector.Vector[int32]) bool {
	if levels.Len() < 2 {
		return false
	}
	increasing := levels.At(1) > levels.At(0)
	for i := 1; i < levels.Len(); i++ {
		step := int64(levels.At(i)) - int64(levels.At(i-1))
		if !increasing {
			step = -step
		}
		if step < minStep || step > maxStep {
			return false
		}
	}

	return true
}

// safeDampened tries every single-level removal on a copy of levels.
func safeDampened(levels *vector.Vector[int32]) bool {
	for i := 0; i < levels.Len(); i++ {
		candidate := levels.Copy()
		candidate.Remove(i)
		ok := safe(candidate)
		candidate.Destroy()
		if ok {
			return true
		}
	}

	return false
}

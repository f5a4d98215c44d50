// SPDX-License-Identifier: MIT

package puzzle

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/typedvec/input"
	"github.com/katalvlaran/typedvec/vector"
)

// Instruction spellings recognized in corrupted memory.
const (
	mulOpen  = "mul("
	opDo     = "do()"
	opDont   = "don't()"
	maxDigit = 3
)

// ParseDay3 scans corrupted memory and returns the well-formed instructions,
// in order, as a string vector: "mul(X,Y)", "do()" and "don't()".
// Operands are 1 to 3 digit numbers; anything else is noise.
//
// Implementation:
//   - Stage 1: split on "mul(": every token except a leading one that was
//     not preceded by "mul(" starts with a candidate operand list.
//   - Stage 2: accept "X,Y)" at the start of the token as a mul.
//   - Stage 3: collect every do()/don't() in the token in textual order;
//     they always follow the token's own mul.
func ParseDay3(text string) (vector.Node, error) {
	ops := vector.NewString()
	afterMul := strings.HasPrefix(text, mulOpen)
	for tok := range input.Split(text, mulOpen) {
		if afterMul {
			if x, y, ok := mulArgs(tok); ok {
				ops.Push("mul(" + strconv.Itoa(x) + "," + strconv.Itoa(y) + ")")
			}
		}
		afterMul = true
		for i := 0; i < len(tok); i++ {
			switch {
			case strings.HasPrefix(tok[i:], opDo):
				ops.Push(opDo)
			case strings.HasPrefix(tok[i:], opDont):
				ops.Push(opDont)
			}
		}
	}

	return ops, nil
}

// SolveDay3 sums all mul products (part 1) and only enabled ones (part 2).
// Instructions start enabled.
func SolveDay3(parsed vector.Node) (Result, error) {
	var res Result
	enabled := true
	for i, op := range vector.As[string](parsed).All() {
		switch op {
		case opDo:
			enabled = true
		case opDont:
			enabled = false
		default:
			x, y, ok := mulArgs(strings.TrimPrefix(op, mulOpen))
			if !ok {
				return Result{}, malformed(i+1, "instruction %q", op)
			}
			p := int64(x) * int64(y)
			res.Part1 += p
			if enabled {
				res.Part2 += p
			}
		}
	}

	return res, nil
}

// mulArgs parses "X,Y)" at the start of s.
func mulArgs(s string) (x, y int, ok bool) {
	x, s, ok = number(s)
	if !ok || !strings.HasPrefix(s, ",") {
		return 0, 0, false
	}
	y, s, ok = number(s[1:])
	if !ok || !strings.HasPrefix(s, ")") {
		return 0, 0, false
	}

	return x, y, true
}

// number consumes 1 to maxDigit leading decimal digits.
func number(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && i < maxDigit && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == 0 || (i < len(s) && s[i] >= '0' && s[i] <= '9') {
		return 0, s, false
	}

	return n, s[i:], true
}

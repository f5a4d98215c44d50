// SPDX-License-Identifier: MIT

// Package puzzle solves the first Advent of Code 2024 days on top of the
// vector container.
//
// Every day is split in two stages so callers can inspect the intermediate
// data:
//
//	parsed, err := day.Parse(text) // builds an owned vector tree
//	res, err := day.Solve(parsed)  // reads it, never mutates it
//	parsed.Destroy()
//
// Solve(n, text) runs both stages and destroys the tree.
//
// Days:
//
//	1: two integer columns: total distance of the sorted columns and a
//	    similarity score.
//	2: reports of levels as nested vectors: safe reports, and safe reports
//	    once a Problem Dampener may drop one level.
//	3: corrupted memory: sum of mul(X,Y) products, and the same sum honoring
//	    do() and don't().
package puzzle

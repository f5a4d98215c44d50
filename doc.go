// SPDX-License-Identifier: MIT

// Package typedvec is a type-tagged, growable vector container with nested
// ownership, deep copy and recursive destruction, plus the small toolkit
// built on it.
//
// What is inside?
//
//	vector/       Vector[T] for int32, float32, char, string and nested
//	              vectors; Node is the kind-erased handle of any of them.
//	input/        file loading (mmap, zstd/gzip/lz4), line counting and a
//	              multi-byte delimiter tokenizer.
//	puzzle/       Advent of Code 2024 days 1-3 solved on vector trees.
//	cmd/typedvec  CLI running the puzzles concurrently.
//
// Quick start:
//
//	outer := vector.NewNested()
//	inner := vector.NewInt32()
//	inner.Push(1)
//	outer.Push(inner) // outer now owns inner
//	cp := outer.Copy() // deep, shares nothing
//	outer.Destroy()    // destroys inner too
//	fmt.Println(cp)    // [[1]]
//
// Contract violations (bad index, Pop on empty, use after Destroy, shared
// children) panic with *vector.ContractError; allocation failure is fatal
// and logged through zap.
package typedvec

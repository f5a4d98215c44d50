// SPDX-License-Identifier: MIT

// Package input loads puzzle inputs and cuts them into tokens for the
// vector-based solvers.
//
// The package provides:
//
//   - ReadFile: load a whole file into one owned buffer. On unix the file is
//     mapped read-only and copied out; .zst, .gz and .lz4 files are
//     decompressed transparently.
//   - CountLines / Lines: count or collect the non-blank lines of a buffer.
//   - Splitter / Split / Tokens: a reentrant tokenizer with a literal,
//     possibly multi-byte delimiter.
//
// Tokens returned by Splitter and Split are views into the input string.
// Lines and Tokens duplicate them into vector.KindString vectors, which own
// their strings independently of the loader buffer.
package input

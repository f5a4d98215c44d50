// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/typedvec/puzzle"
)

// writeInputs lays out the three sample inputs, day 3 zstd-compressed.
func writeInputs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name string, data []byte) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}
	write("day-1.input", []byte("3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"))
	write("day-2.input", []byte("7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n"))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	day3 := []byte("xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))")
	write("day-3.input.zst", enc.EncodeAll(day3, nil))
	require.NoError(t, enc.Close())

	return dir
}

// TestRunAllDays solves every day and checks the rendered table.
func TestRunAllDays(t *testing.T) {
	dir := writeInputs(t)
	var out bytes.Buffer
	err := run(context.Background(), config{dir: dir, workers: 2}, &out, zaptest.NewLogger(t))
	require.NoError(t, err)

	s := out.String()
	for _, want := range []string{"Historian Hysteria", "Mull It Over", "11", "31", "161", "48"} {
		require.Contains(t, s, want)
	}
}

// TestRunDump prints the parsed tree of one day.
func TestRunDump(t *testing.T) {
	dir := writeInputs(t)
	var out bytes.Buffer
	err := run(context.Background(), config{dir: dir, day: 1, workers: 1, dump: true}, &out, zap.NewNop())
	require.NoError(t, err)
	require.Contains(t, out.String(), "[[3, 4, 2, 1, 3, 3], [4, 3, 5, 3, 9, 3]]\n")
	require.NotContains(t, out.String(), "Red-Nosed Reports")
}

// TestRunErrors covers configuration and input failures.
func TestRunErrors(t *testing.T) {
	dir := writeInputs(t)
	ctx := context.Background()

	err := run(ctx, config{dir: dir, workers: 0}, &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, errNoWorkers)

	err = run(ctx, config{dir: dir, day: 9, workers: 1}, &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)

	err = run(ctx, config{dir: t.TempDir(), workers: 3}, &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "day-1.input"), []byte("1 2 3\n"), 0o600))
	err = run(ctx, config{dir: dir, day: 1, workers: 1}, &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, puzzle.ErrMalformed)
}

// TestLocatePrefersPlain checks the suffix search order.
func TestLocatePrefersPlain(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"day-2.input.gz", "day-2.input"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	p, err := locate(dir, 2)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "day-2.input"), p)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "day-4.input"), 0o700))
	_, err = locate(dir, 4)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

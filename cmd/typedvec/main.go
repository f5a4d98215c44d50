// SPDX-License-Identifier: MIT

// Command typedvec solves the bundled puzzle days from input files.
//
// Usage:
//
//	typedvec -dir inputs [-day N] [-workers N] [-dump] [-v]
//
// For day N the file day-N.input is loaded from -dir; a .zst, .zstd, .gz or
// .lz4 suffix selects transparent decompression.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/typedvec/vector"
)

func main() {
	var cfg config
	flag.StringVar(&cfg.dir, "dir", ".", "Directory holding day-N.input files")
	flag.IntVar(&cfg.day, "day", 0, "Day to solve (0 = all registered days)")
	flag.IntVar(&cfg.workers, "workers", runtime.GOMAXPROCS(0), "Days solved concurrently")
	flag.BoolVar(&cfg.dump, "dump", false, "Print each parsed vector tree")
	verbose := flag.Bool("v", false, "Verbose (development) logging")
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	restore := vector.SetLogger(log)
	defer restore()

	if err := run(context.Background(), cfg, os.Stdout, log); err != nil {
		log.Error("typedvec failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}

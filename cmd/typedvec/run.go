// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/typedvec/input"
	"github.com/katalvlaran/typedvec/puzzle"
	"github.com/katalvlaran/typedvec/vector"
)

// errNoWorkers is returned for a non-positive -workers value.
var errNoWorkers = errors.New("typedvec: workers must be >= 1")

// inputSuffixes are tried in order after "day-N.input".
var inputSuffixes = []string{"", ".zst", ".zstd", ".gz", ".lz4"}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type config struct {
	dir     string
	day     int
	workers int
	dump    bool
}

// outcome is what one worker reports for one day.
type outcome struct {
	day     puzzle.Day
	path    string
	res     puzzle.Result
	tree    string
	elapsed time.Duration
}

// run solves the selected days concurrently and renders them to out in day
// order. The first failing day cancels the rest.
func run(ctx context.Context, cfg config, out io.Writer, log *zap.Logger) error {
	if cfg.workers < 1 {
		return errNoWorkers
	}
	selected := puzzle.Days()
	if cfg.day != 0 {
		if _, err := puzzle.Lookup(cfg.day); err != nil {
			return err
		}
		selected = []int{cfg.day}
	}

	outcomes := make([]outcome, len(selected))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, n := range selected {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			oc, err := solveDay(cfg, n, log)
			if err != nil {
				return err
			}
			outcomes[i] = oc

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.dump {
		for _, oc := range outcomes {
			fmt.Fprintf(out, "day %d (%s):\n%s", oc.day.N, oc.path, oc.tree)
		}
	}
	_, err := fmt.Fprintln(out, render(outcomes))

	return err
}

// solveDay loads day n and solves it through puzzle.Solve, capturing the
// parsed tree when dumping.
func solveDay(cfg config, n int, log *zap.Logger) (outcome, error) {
	start := time.Now()
	d, err := puzzle.Lookup(n)
	if err != nil {
		return outcome{}, err
	}
	path, err := locate(cfg.dir, n)
	if err != nil {
		return outcome{}, err
	}
	data, err := input.ReadFile(path, input.WithLogger(log))
	if err != nil {
		return outcome{}, fmt.Errorf("day %d: %w", n, err)
	}

	oc := outcome{day: d, path: path}
	var hooks []puzzle.Inspect
	if cfg.dump {
		hooks = append(hooks, func(parsed vector.Node) error {
			var sb strings.Builder
			err := parsed.Print(&sb)
			oc.tree = sb.String()

			return err
		})
	}
	oc.res, err = puzzle.Solve(n, string(data), hooks...)
	if err != nil {
		return outcome{}, err
	}
	oc.elapsed = time.Since(start)

	log.Info("day solved",
		zap.Int("day", n),
		zap.String("path", path),
		zap.Int64("part1", oc.res.Part1),
		zap.Int64("part2", oc.res.Part2),
		zap.Duration("elapsed", oc.elapsed),
	)

	return oc, nil
}

// locate finds the input file for day n in dir.
func locate(dir string, n int) (string, error) {
	base := filepath.Join(dir, "day-"+strconv.Itoa(n)+".input")
	for _, suffix := range inputSuffixes {
		p := base + suffix
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}

	return "", fmt.Errorf("day %d: no input at %s{,%s}: %w",
		n, base, strings.Join(inputSuffixes[1:], ","), fs.ErrNotExist)
}

func render(outcomes []outcome) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("DAY", "TITLE", "PART 1", "PART 2", "TIME")
	for _, oc := range outcomes {
		t.Row(
			strconv.Itoa(oc.day.N),
			oc.day.Title,
			strconv.FormatInt(oc.res.Part1, 10),
			strconv.FormatInt(oc.res.Part2, 10),
			oc.elapsed.Round(time.Microsecond).String(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("typedvec"), t.Render())
}

// SPDX-License-Identifier: MIT

package input

import "go.uber.org/zap"

const (
	// DefaultMaxSize bounds raw and decompressed input size (256 MiB).
	DefaultMaxSize = 256 << 20

	// DefaultMmap maps files read-only where the platform supports it.
	DefaultMmap = true
)

const panicMaxSizeInvalid = "input: WithMaxSize: limit must be > 0"

// Option configures ReadFile.
type Option func(*Options)

// Options is the resolved ReadFile configuration.
type Options struct {
	maxSize int64
	mmap    bool
	logger  *zap.Logger
}

// WithMaxSize caps both the on-disk size and the decompressed size.
func WithMaxSize(n int64) Option {
	if n <= 0 {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) { o.maxSize = n }
}

// WithMmap toggles memory-mapped loading. With false, files are read with
// ordinary reads.
func WithMmap(on bool) Option {
	return func(o *Options) { o.mmap = on }
}

// WithLogger routes load diagnostics (Debug level) to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxSize: DefaultMaxSize,
		mmap:    DefaultMmap,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT

// Package vector: functional configuration for vector construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Notes:
//   - Options are captured at construction and carried by Copy, so a copied
//     tree keeps the capacity ceiling and logger of its source.
//   - Nested vectors keep their own Options; a parent never overrides them.
package vector

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the slot count allocated by constructors and the
	// floor used by growth: new capacity = max(DefaultCapacity, 2*capacity).
	DefaultCapacity = 8

	// DefaultMaxBytes caps the backing array of a single vector (slots × Kind.Width).
	// Growth beyond it is treated as resource exhaustion and is fatal.
	DefaultMaxBytes = 1 << 40
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "vector: WithCapacity: capacity must be >= 0"
	panicMaxBytesInvalid = "vector: WithMaxBytes: limit must be > 0"
	panicLoggerNil       = "vector: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	capacity int         // initial slot count; DefaultCapacity
	maxBytes int         // backing-array ceiling in bytes; DefaultMaxBytes
	logger   *zap.Logger // nil ⇒ package logger (see Logger)
}

// WithCapacity sets the initial slot count. Zero is legal: the first push
// then allocates DefaultCapacity slots.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithMaxBytes sets the per-vector allocation ceiling in bytes.
//
// Behavior highlights:
//   - An allocation (construction, growth or Copy) whose slots × Kind.Width
//     exceeds n is logged at Fatal level and terminates the process.
//   - Nested vectors are checked against their own ceiling, not the parent's.
func WithMaxBytes(n int) Option {
	if n <= 0 {
		panic(panicMaxBytesInvalid)
	}

	return func(o *Options) { o.maxBytes = n }
}

// WithLogger routes the vector's diagnostics (growth at Debug, allocation
// failure at Fatal) to l instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		capacity: DefaultCapacity,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

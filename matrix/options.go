// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for container constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state is mutated by options.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Orientation options are read by NewVector only; triangle options by
//     NewTriangular only. Other constructors ignore them.
//   - checkCells enforces the cell cap where a shape can grow: constructors,
//     Resize (Vector and Matrix kinds) and the product in Mul. Clone,
//     Reshape, Transpose and element-wise results never exceed their inputs
//     and are not checked again.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultColumnVector makes NewVector build column vectors (L×1).
	DefaultColumnVector = true

	// DefaultUpper makes NewTriangular build upper-triangular matrices.
	DefaultUpper = true

	// DefaultMaxCells caps the number of cells a single container may hold.
	// Requests above the cap fail with ErrOutOfMemory instead of letting the
	// runtime abort the process.
	DefaultMaxCells = 1 << 28
)

// ---------- Internal panic messages (no magic strings) ----------

const panicMaxCellsInvalid = "matrix: WithMaxCells: n must be >= 1"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept `...Option`.
type Options struct {
	column   bool // DefaultColumnVector
	upper    bool // DefaultUpper
	maxCells int  // DefaultMaxCells
}

// WithRowVector makes NewVector build a row vector (1×L).
func WithRowVector() Option { return func(o *Options) { o.column = false } }

// WithColumnVector makes NewVector build a column vector (L×1). Default.
func WithColumnVector() Option { return func(o *Options) { o.column = true } }

// WithLower makes NewTriangular build a lower-triangular matrix
// (cells strictly above the diagonal are zero and locked).
func WithLower() Option { return func(o *Options) { o.upper = false } }

// WithUpper makes NewTriangular build an upper-triangular matrix. Default.
func WithUpper() Option { return func(o *Options) { o.upper = true } }

// WithMaxCells sets the cell cap checked at construction time.
// Implementation:
//   - Stage 1: validate n ≥ 1 (panic otherwise, programmer error).
//   - Stage 2: return a setter that writes n into Options.
//
// Notes:
//   - The cap is recorded on the container and reused by later Resize,
//     Reshape and Clone calls on it.
func WithMaxCells(n int) Option {
	if n < 1 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.maxCells = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		column:   DefaultColumnVector,
		upper:    DefaultUpper,
		maxCells: DefaultMaxCells,
	}
}

// gatherOptions resolves opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

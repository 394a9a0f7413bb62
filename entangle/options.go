// SPDX-License-Identifier: MIT

// Package entangle: functional configuration for analyzers.
// Same discipline as package quantum: documented defaults, WithX
// constructors that panic only on programmer error, and a gatherOptions
// resolver applying last-writer-wins semantics.

package entangle

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the numeric tolerance for separability and
	// maximal-entanglement checks and the Jacobi convergence target.
	DefaultTolerance = 1e-10

	// DefaultMaxSweeps caps Jacobi rotation sweeps. 100 sweeps converge
	// comfortably for the dimensions this package targets (d ≤ ~64).
	DefaultMaxSweeps = 100

	// SchmidtRankCutoff: Schmidt coefficients at or below this threshold
	// count as zero when computing the Schmidt rank.
	SchmidtRankCutoff = 1e-10
)

// Internal panic messages (programmer errors only).
const (
	panicToleranceInvalid = "entangle: WithTolerance: tol must be finite, non-negative"
	panicSweepsInvalid    = "entangle: WithMaxSweeps: sweeps must be > 0"
)

// Option mutates internal options; last writer wins.
type Option func(*Options)

// Options stores the effective analyzer configuration.
type Options struct {
	tol       float64        // ≥ 0; DefaultTolerance
	maxSweeps int            // > 0; DefaultMaxSweeps
	logger    zerolog.Logger // advisory; zerolog.Nop() by default
}

// WithTolerance sets the numeric tolerance. Panics when tol is negative,
// NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps caps the Jacobi sweep budget. Panics on non-positive
// values.
func WithMaxSweeps(n int) Option {
	if n < 1 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = n }
}

// WithLogger injects a zerolog logger for advisory debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:       DefaultTolerance,
		maxSweeps: DefaultMaxSweeps,
		logger:    zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

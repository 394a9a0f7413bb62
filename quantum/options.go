// SPDX-License-Identifier: MIT

// Package quantum: functional configuration for constructors, measurement
// and observability. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness
//     except where a Rand source is explicitly defaulted (Measure).
//   - Observability is advisory: logger and audit sink default to no-ops
//     and never change numeric results.

package quantum

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qentangle/qmath"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the numeric tolerance used by derived checks
	// (IsNormalized, IsTraceOne, IsHermitian, IsPure) when callers pass a
	// non-positive tolerance.
	DefaultTolerance = 1e-10

	// DefaultPrecision mirrors qmath.DefaultPrecision for amplitude storage.
	DefaultPrecision = qmath.DefaultPrecision

	// zeroEigenvalueCutoff treats eigenvalues below this threshold as exact
	// zeros inside entropy sums, avoiding log(0) on numerically degenerate
	// spectra. See DensityMatrix.VonNeumannEntropy.
	zeroEigenvalueCutoff = 1e-15
)

// Internal panic messages (programmer errors only; no magic strings).
const (
	panicToleranceInvalid = "quantum: WithTolerance: tol must be finite, non-negative"
	panicPrecisionZero    = "quantum: WithPrecision: prec must be > 0"
	panicRandNil          = "quantum: WithRand: source must be non-nil"
	panicSinkNil          = "quantum: WithAuditSink: sink must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly; last writer
// wins. Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option and
// resolve them via gatherOptions.
type Options struct {
	tol    float64        // ≥ 0; DefaultTolerance
	prec   uint           // > 0; DefaultPrecision
	logger zerolog.Logger // advisory; zerolog.Nop() by default
	rng    Rand           // measurement randomness; nil ⇒ time-seeded source
	sink   Sink           // audit emission; nil ⇒ no emission
}

// WithTolerance sets the numeric tolerance used by derived checks.
// Panics when tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithPrecision sets the big.Float mantissa precision (bits) used for
// amplitudes created by constructors. Panics on zero.
func WithPrecision(prec uint) Option {
	if prec == 0 {
		panic(panicPrecisionZero)
	}

	return func(o *Options) { o.prec = prec }
}

// WithLogger injects a zerolog logger for advisory debug events at
// construction, normalization and measurement. The default is
// zerolog.Nop(); the core behaves identically either way.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithRand injects the random source used by Measure, making collapse
// outcomes reproducible. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithAuditSink injects an audit sink receiving (op, contentHash) records
// from constructive and mutating operations. Panics on nil. Without a
// sink no hash is computed, keeping the hot paths free of hashing cost.
func WithAuditSink(s Sink) Option {
	if s == nil {
		panic(panicSinkNil)
	}

	return func(o *Options) { o.sink = s }
}

// gatherOptions applies user setters on top of documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:    DefaultTolerance,
		prec:   DefaultPrecision,
		logger: zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// randSource returns the injected Rand or, when absent, a fresh
// time-seeded math/rand source. Prefer WithRand everywhere outcomes must
// be reproducible; the fallback exists so Measure works out of the box.
func (o *Options) randSource() Rand {
	if o.rng != nil {
		return o.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// emit sends an audit record when a sink is configured. Hash construction
// is the caller's job so that emit stays allocation-free when unused.
func (o *Options) emit(op string, hash func() (string, error)) {
	if o.sink == nil {
		return
	}
	h, err := hash()
	if err != nil {
		// Audit is advisory: a hashing failure must never fail the math.
		o.logger.Debug().Err(err).Str("op", op).Msg("audit hash failed")

		return
	}
	o.sink.Record(op, h)
}

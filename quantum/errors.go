// SPDX-License-Identifier: MIT
// Package quantum: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// quantum package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in option
// constructors.

package quantum

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "quantum: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; when
// context matters, wrap with fmt.Errorf("ctx: %w", ErrX) at the facade —
// callers still match via errors.Is.

var (
	// ErrInvalidDimension is returned when a requested dimension is not a
	// positive integer. Constructors validate before allocating.
	ErrInvalidDimension = errors.New("quantum: dimension must be positive")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// Add/Sub/InnerProduct over vectors of unequal length, or matrix
	// arithmetic over unequal square sizes.
	ErrDimensionMismatch = errors.New("quantum: dimension mismatch")

	// ErrIndexOutOfBounds indicates a component or element access outside
	// [0, dimension). Public indexers return this; they never panic.
	ErrIndexOutOfBounds = errors.New("quantum: index out of bounds")

	// ErrInvalidOperation marks an operation whose preconditions cannot be
	// met by any tolerance: normalizing or measuring a zero vector, or an
	// ensemble/operator combination that divides by zero.
	ErrInvalidOperation = errors.New("quantum: invalid operation")

	// ErrUnsupportedDimension marks operations defined only for specific
	// dimensions: Bloch vectors need dimension 2, GHZ/W factories need
	// n ≥ 2 qubits.
	ErrUnsupportedDimension = errors.New("quantum: unsupported dimension")

	// ErrInvalidEnsemble is returned by mixed-state construction when the
	// state and probability counts differ, a probability is negative, or
	// the probabilities do not sum to 1 within tolerance.
	ErrInvalidEnsemble = errors.New("quantum: invalid ensemble")

	// ErrNotHermitian is returned by spectral routines when the input
	// matrix violates Hermitian symmetry beyond tolerance. Eigenvalue
	// extraction in this package is defined for Hermitian matrices only.
	ErrNotHermitian = errors.New("quantum: matrix is not Hermitian within tolerance")

	// ErrEigenFailed indicates the eigenvalue factorization did not
	// converge. Not expected for finite Hermitian inputs; surfaced rather
	// than silently approximated.
	ErrEigenFailed = errors.New("quantum: eigenvalue computation failed")

	// ErrNilState indicates a nil *StateVector or *DensityMatrix operand.
	ErrNilState = errors.New("quantum: nil state")

	// ErrSerialize is returned when a serialized form cannot be decoded
	// back into a state (malformed JSON, dimension/component mismatch, or
	// unparseable decimal strings).
	ErrSerialize = errors.New("quantum: malformed serialized state")
)

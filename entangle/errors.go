// SPDX-License-Identifier: MIT
// Package entangle: sentinel error set. Analyzer operations return these
// sentinels (or sentinels propagated from package quantum) and tests
// match them via errors.Is. No operation panics on user-triggered error
// conditions.

package entangle

import "errors"

var (
	// ErrIncompatibleBipartition is returned when dimA·dimB (or the product
	// of all party dimensions) does not equal the dimension of the density
	// matrix or state vector passed to an operation. Violated inputs are a
	// contract error, never a silent truncation.
	ErrIncompatibleBipartition = errors.New("entangle: bipartition incompatible with state dimension")

	// ErrUnsupportedDimension marks measures defined only for specific
	// systems: concurrence and CHSH need a 2×2 bipartition, the three-
	// tangle needs exactly three qubits.
	ErrUnsupportedDimension = errors.New("entangle: unsupported dimension for this measure")

	// ErrNilMatrix indicates a nil density matrix or state vector operand.
	ErrNilMatrix = errors.New("entangle: nil state")

	// ErrEigenFailed indicates the Hermitian Jacobi sweep did not reach the
	// off-diagonal tolerance within the sweep budget (WithMaxSweeps).
	ErrEigenFailed = errors.New("entangle: eigen decomposition failed to converge")

	// ErrBadMeasure is returned when a measure input is outside its domain,
	// e.g. a concurrence outside [0,1] passed to EntanglementOfFormation.
	ErrBadMeasure = errors.New("entangle: measure input outside valid range")
)

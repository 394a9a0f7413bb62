// SPDX-License-Identifier: MIT

// Package quantum: canonical benchmark-state factories (Bell, GHZ, W).
// Each factory returns a freshly built, normalized StateVector paired
// with its outer-product DensityMatrix. Results are immutable value
// objects recomputed per call; there is no shared cache.

package quantum

import (
	"math"

	"github.com/katalvlaran/qentangle/qmath"
)

// BellKind selects one of the four canonical 2-qubit Bell states.
type BellKind int

const (
	// BellPhiPlus is |Φ+⟩ = (|00⟩ + |11⟩)/√2.
	BellPhiPlus BellKind = iota
	// BellPhiMinus is |Φ−⟩ = (|00⟩ − |11⟩)/√2.
	BellPhiMinus
	// BellPsiPlus is |Ψ+⟩ = (|01⟩ + |10⟩)/√2.
	BellPsiPlus
	// BellPsiMinus is |Ψ−⟩ = (|01⟩ − |10⟩)/√2.
	BellPsiMinus
)

// bellAmplitudePatterns maps each kind to its two nonzero computational
// basis indices and the sign of the second amplitude.
var bellAmplitudePatterns = map[BellKind]struct {
	first, second int
	sign          float64
}{
	BellPhiPlus:  {0, 3, +1},
	BellPhiMinus: {0, 3, -1},
	BellPsiPlus:  {1, 2, +1},
	BellPsiMinus: {1, 2, -1},
}

// BellState builds the requested Bell state as a (vector, projector)
// pair. Returns ErrInvalidOperation for an unknown kind.
func BellState(kind BellKind, opts ...Option) (*StateVector, *DensityMatrix, error) {
	pat, ok := bellAmplitudePatterns[kind]
	if !ok {
		return nil, nil, ErrInvalidOperation
	}
	o := gatherOptions(opts...)

	amp := 1 / math.Sqrt2
	amps := make([]*qmath.Complex, 4)
	for i := range amps {
		amps[i] = qmath.Zero(o.prec)
	}
	amps[pat.first] = qmath.New(amp, 0, o.prec)
	amps[pat.second] = qmath.New(pat.sign*amp, 0, o.prec)

	return packCanonical(amps, opts...)
}

// GHZState builds the n-qubit GHZ state (|0…0⟩ + |1…1⟩)/√2: amplitude
// 1/√2 at indices 0 and 2ⁿ−1, zero elsewhere. Requires n ≥ 2
// (ErrUnsupportedDimension otherwise).
func GHZState(n int, opts ...Option) (*StateVector, *DensityMatrix, error) {
	if n < 2 {
		return nil, nil, ErrUnsupportedDimension
	}
	o := gatherOptions(opts...)

	dim := 1 << n
	amps := make([]*qmath.Complex, dim)
	for i := range amps {
		amps[i] = qmath.Zero(o.prec)
	}
	amp := qmath.New(1/math.Sqrt2, 0, o.prec)
	amps[0] = amp
	amps[dim-1] = amp.Copy()

	return packCanonical(amps, opts...)
}

// WState builds the n-qubit W state: amplitude 1/√n at every
// single-excitation index 2^i for i ∈ [0, n), zero elsewhere. Requires
// n ≥ 2 (ErrUnsupportedDimension otherwise).
func WState(n int, opts ...Option) (*StateVector, *DensityMatrix, error) {
	if n < 2 {
		return nil, nil, ErrUnsupportedDimension
	}
	o := gatherOptions(opts...)

	dim := 1 << n
	amps := make([]*qmath.Complex, dim)
	for i := range amps {
		amps[i] = qmath.Zero(o.prec)
	}
	amp := 1 / math.Sqrt(float64(n))
	for i := 0; i < n; i++ {
		amps[1<<i] = qmath.New(amp, 0, o.prec)
	}

	return packCanonical(amps, opts...)
}

// packCanonical wraps raw amplitudes into the (vector, projector) pair
// every canonical factory returns.
func packCanonical(amps []*qmath.Complex, opts ...Option) (*StateVector, *DensityMatrix, error) {
	v, err := NewStateVectorFrom(amps, opts...)
	if err != nil {
		return nil, nil, err
	}
	rho, err := FromStateVector(v, opts...)
	if err != nil {
		return nil, nil, err
	}

	return v, rho, nil
}

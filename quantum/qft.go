// SPDX-License-Identifier: MIT

// Package quantum: quantum Fourier transform over state-vector
// amplitudes, delegated to gonum's complex FFT and rescaled by 1/√d so
// the transform is unitary. The FFT works in complex128: amplitudes are
// narrowed for the transform and widened back to the vector's precision,
// so the result accuracy is float64-bounded.

package quantum

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/qentangle/qmath"
)

// ApplyQFT returns the quantum Fourier transform of |v⟩:
// QFT|j⟩ = (1/√d)·Σ_k e^{−2πi·jk/d}|k⟩. A fresh vector is returned;
// ‖QFT v‖ = ‖v‖ up to float64 rounding.
func ApplyQFT(v *StateVector) (*StateVector, error) {
	if v == nil {
		return nil, ErrNilState
	}

	fft := fourier.NewCmplxFFT(v.dim)
	coeff := fft.Coefficients(nil, v.complex128s())

	return v.fromComplex128s(coeff, 1/math.Sqrt(float64(v.dim))), nil
}

// ApplyInverseQFT inverts ApplyQFT: ApplyInverseQFT(ApplyQFT(v)) ≈ v
// within float64 tolerance.
func ApplyInverseQFT(v *StateVector) (*StateVector, error) {
	if v == nil {
		return nil, ErrNilState
	}

	fft := fourier.NewCmplxFFT(v.dim)
	seq := fft.Sequence(nil, v.complex128s())

	// Sequence is the unnormalized inverse; 1/√d restores unitarity.
	return v.fromComplex128s(seq, 1/math.Sqrt(float64(v.dim))), nil
}

// complex128s narrows all amplitudes for float64 kernels.
func (v *StateVector) complex128s() []complex128 {
	out := make([]complex128, v.dim)
	for i, c := range v.comps {
		out[i] = c.Complex128()
	}

	return out
}

// fromComplex128s widens scaled float64 amplitudes back into a vector at
// the receiver's precision.
func (v *StateVector) fromComplex128s(amps []complex128, scale float64) *StateVector {
	comps := make([]*qmath.Complex, len(amps))
	for i, a := range amps {
		comps[i] = qmath.New(real(a)*scale, imag(a)*scale, v.prec)
	}

	return &StateVector{dim: len(amps), prec: v.prec, comps: comps}
}

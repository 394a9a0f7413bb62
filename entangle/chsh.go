// SPDX-License-Identifier: MIT

// Package entangle: CHSH inequality evaluation.
//
// Each party measures a spin observable in the x–z plane,
// A(θ) = cosθ·σz + sinθ·σx. The CHSH combination
//
//	S = E(a,b) + E(a,b′) + E(a′,b) − E(a′,b′)
//
// obeys |S| ≤ 2 for any local hidden-variable model and reaches the
// Tsirelson bound 2√2 on a maximally entangled state at the canonical
// settings a=0, a′=π/2, b=π/4, b′=−π/4.

package entangle

import (
	"math"

	"github.com/katalvlaran/qentangle/qmath"
	"github.com/katalvlaran/qentangle/quantum"
)

// ClassicalCHSHBound is the local hidden-variable ceiling on |S|.
const ClassicalCHSHBound = 2.0

// TsirelsonBound is the quantum-mechanical maximum of |S|, 2√2.
var TsirelsonBound = 2 * math.Sqrt2

// CHSHSettings names the four measurement angles (radians, x–z plane).
type CHSHSettings struct {
	A, APrime float64 // first party
	B, BPrime float64 // second party
}

// OptimalCHSHSettings returns the canonical angles saturating the
// Tsirelson bound on |Φ⁺⟩.
func OptimalCHSHSettings() CHSHSettings {
	return CHSHSettings{A: 0, APrime: math.Pi / 2, B: math.Pi / 4, BPrime: -math.Pi / 4}
}

// CHSHResult reports the CHSH combination and its four correlators.
type CHSHResult struct {
	S         float64
	EAB       float64
	EABPrime  float64
	EAPrimeB  float64
	EAPrimeBP float64
	Violated  bool // |S| > 2 beyond tolerance
}

// measurementOperator builds A(θ) = cosθ·σz + sinθ·σx.
func measurementOperator(theta float64) (*quantum.DensityMatrix, error) {
	cz, err := quantum.PauliZ().Scale(qmath.New(math.Cos(theta), 0, 0))
	if err != nil {
		return nil, err
	}
	sx, err := quantum.PauliX().Scale(qmath.New(math.Sin(theta), 0, 0))
	if err != nil {
		return nil, err
	}

	return cz.Add(sx)
}

// correlation computes E(θa,θb) = Tr(ρ·A(θa)⊗B(θb)).
func (a *Analyzer) correlation(rho *quantum.DensityMatrix, thetaA, thetaB float64) (float64, error) {
	opA, err := measurementOperator(thetaA)
	if err != nil {
		return 0, err
	}
	opB, err := measurementOperator(thetaB)
	if err != nil {
		return 0, err
	}
	joint, err := opA.TensorProduct(opB)
	if err != nil {
		return 0, err
	}

	return rho.ExpectationValue(joint)
}

// CHSHValue evaluates the CHSH combination at the given settings.
// Defined only for the 2⊗2 bipartition.
func (a *Analyzer) CHSHValue(rho *quantum.DensityMatrix, set CHSHSettings) (*CHSHResult, error) {
	if err := a.checkState(rho); err != nil {
		return nil, err
	}
	if a.dimA != 2 || a.dimB != 2 {
		return nil, ErrUnsupportedDimension
	}

	res := &CHSHResult{}
	var err error
	if res.EAB, err = a.correlation(rho, set.A, set.B); err != nil {
		return nil, err
	}
	if res.EABPrime, err = a.correlation(rho, set.A, set.BPrime); err != nil {
		return nil, err
	}
	if res.EAPrimeB, err = a.correlation(rho, set.APrime, set.B); err != nil {
		return nil, err
	}
	if res.EAPrimeBP, err = a.correlation(rho, set.APrime, set.BPrime); err != nil {
		return nil, err
	}

	res.S = res.EAB + res.EABPrime + res.EAPrimeB - res.EAPrimeBP
	res.Violated = math.Abs(res.S) > ClassicalCHSHBound+a.tol

	a.logger.Debug().Float64("S", res.S).Bool("violated", res.Violated).Msg("entangle: CHSH")

	return res, nil
}

// SPDX-License-Identifier: MIT

// Package quantum models quantum-mechanical states — pure and mixed —
// over finite-dimensional Hilbert spaces, with arbitrary-precision
// amplitudes and fully explicit numeric policy.
//
// 🚀 What is quantum?
//
//	The state layer of qentangle:
//	  • StateVector    — pure state |ψ⟩: norms, inner/tensor/outer
//	    products, Bloch mapping, projective measurement
//	  • DensityMatrix  — general state ρ: trace, purity, Hermiticity,
//	    partial traces, exact Hermitian spectra, von Neumann entropy
//	  • QuantumState   — façade running every query through the
//	    density-matrix view so pure and mixed states share one code path
//	  • Bell/GHZ/W     — canonical benchmark-state factories
//	  • operators      — Pauli set, Hadamard, identity, operator apply
//	  • QFT            — unitary Fourier transform via gonum's FFT
//	  • serialization  — decimal-string JSON round-trips plus BLAKE2b
//	    content hashes for audit chaining
//
// ✨ Design rules:
//   - Value objects: every transform returns a new state; the only
//     in-place writers (SetComponent, SetElement) are explicit
//     builder-phase escape hatches.
//   - Not auto-normalized: normalization is an operation, IsNormalized a
//     query. Zero-norm normalization/measurement is ErrInvalidOperation.
//   - Fail fast: contract violations surface sentinel errors immediately
//     (ErrDimensionMismatch, ErrIndexOutOfBounds, ErrInvalidEnsemble, …)
//     and are matched with errors.Is.
//   - Observability is advisory: zerolog logging and the audit sink are
//     injected per call via options and never change results.
//   - The only nondeterminism is Measure; its randomness is injected
//     (WithRand) for reproducible tests.
//
// ⚙️ Usage:
//
//	v, _, err := quantum.BellState(quantum.BellPhiPlus)
//	if err != nil { ... }
//	rho, _ := quantum.FromStateVector(v)
//	s, _ := rho.VonNeumannEntropy() // 0 for any pure state
//
// Concurrency: single-threaded by design; callers own their values
// exclusively and no package-level mutable state exists.
package quantum

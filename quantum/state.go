// SPDX-License-Identifier: MIT

// Package quantum: QuantumState — the façade unifying StateVector and
// DensityMatrix. Purity, entropy and expectation values always run on the
// density-matrix view, so pure and mixed states share one code path. When
// constructed from a vector the equivalent projector is materialized
// eagerly; the vector itself is retained only in the pure case — a mixed
// state cannot be "un-mixed" back into a vector.

package quantum

// QuantumState wraps either representation of a quantum state.
type QuantumState struct {
	vec *StateVector   // non-nil only for pure construction
	rho *DensityMatrix // always non-nil
}

// NewPureState wraps a state vector, materializing ρ = |v⟩⟨v| for the
// uniform density-matrix queries. The input is deep-copied.
func NewPureState(v *StateVector, opts ...Option) (*QuantumState, error) {
	if v == nil {
		return nil, ErrNilState
	}

	rho, err := FromStateVector(v, opts...)
	if err != nil {
		return nil, err
	}

	return &QuantumState{vec: v.Clone(), rho: rho}, nil
}

// NewMixedState builds the mixed state Σ pᵢ|ψᵢ⟩⟨ψᵢ|. The ensemble
// contract is enforced by FromEnsemble (ErrInvalidEnsemble on violation).
func NewMixedState(states []*StateVector, probs []float64, opts ...Option) (*QuantumState, error) {
	rho, err := FromEnsemble(states, probs, opts...)
	if err != nil {
		return nil, err
	}

	return &QuantumState{rho: rho}, nil
}

// FromDensityMatrix wraps an existing density matrix (deep-copied). The
// vector view is unavailable for states constructed this way.
func FromDensityMatrix(rho *DensityMatrix) (*QuantumState, error) {
	if rho == nil {
		return nil, ErrNilState
	}

	return &QuantumState{rho: rho.Clone()}, nil
}

// Dimension reports the Hilbert-space dimension.
func (s *QuantumState) Dimension() int { return s.rho.dim }

// IsPure delegates to the density matrix's purity check: |Tr(ρ²)−1| ≤ tol.
func (s *QuantumState) IsPure(tol float64) bool { return s.rho.IsPure(tol) }

// Purity returns Tr(ρ²).
func (s *QuantumState) Purity() float64 { return s.rho.Purity() }

// Entropy returns the von Neumann entropy of the density-matrix view.
func (s *QuantumState) Entropy() (float64, error) { return s.rho.VonNeumannEntropy() }

// ExpectationValue returns Re Tr(ρ·op).
func (s *QuantumState) ExpectationValue(op *DensityMatrix) (float64, error) {
	return s.rho.ExpectationValue(op)
}

// Vector returns a copy of the underlying state vector and true when the
// state was constructed pure; (nil, false) otherwise.
func (s *QuantumState) Vector() (*StateVector, bool) {
	if s.vec == nil {
		return nil, false
	}

	return s.vec.Clone(), true
}

// Density returns a copy of the density-matrix view.
func (s *QuantumState) Density() *DensityMatrix { return s.rho.Clone() }

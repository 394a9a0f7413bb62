// SPDX-License-Identifier: MIT

// Package quantum: DensityMatrix — a square complex matrix ρ representing
// a pure or mixed state. The intended invariants (Hermitian, trace one,
// positive semi-definite) are produced by the constructors and checkable
// via IsHermitian/IsTraceOne/IsValid, but arbitrary mutation through
// SetElement can break them — that is the documented power-user escape
// hatch. Positive semi-definiteness is never enforced (IsValid checks
// Hermitian ∧ trace-one only; a documented limitation).

package quantum

import (
	"math"
	"math/big"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/qentangle/qmath"
)

// DensityMatrix is a dimension×dimension grid of complex amplitudes.
type DensityMatrix struct {
	dim  int
	prec uint
	rows [][]*qmath.Complex // rows[i][j], both in [0, dim)
}

// newZeroMatrix allocates a zero matrix without validation. Internal.
func newZeroMatrix(dim int, prec uint) *DensityMatrix {
	rows := make([][]*qmath.Complex, dim)
	for i := range rows {
		rows[i] = make([]*qmath.Complex, dim)
		for j := range rows[i] {
			rows[i][j] = qmath.Zero(prec)
		}
	}

	return &DensityMatrix{dim: dim, prec: prec, rows: rows}
}

// NewDensityMatrix returns a zero-filled dim×dim matrix.
// Returns ErrInvalidDimension when dim < 1.
func NewDensityMatrix(dim int, opts ...Option) (*DensityMatrix, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	o := gatherOptions(opts...)

	m := newZeroMatrix(dim, o.prec)

	o.logger.Debug().Int("dimension", dim).Msg("density matrix constructed")
	o.emit(OpConstruct, m.ContentHash)

	return m, nil
}

// NewDensityMatrixFrom builds a matrix from an explicit dim×dim grid.
// The grid and its elements are deep-copied. Returns ErrInvalidDimension
// on an empty grid, ErrDimensionMismatch on ragged rows, and ErrNilState
// on nil entries. Hermiticity and trace are NOT validated here; callers
// producing physical states should check IsValid.
func NewDensityMatrixFrom(grid [][]*qmath.Complex, opts ...Option) (*DensityMatrix, error) {
	dim := len(grid)
	if dim == 0 {
		return nil, ErrInvalidDimension
	}
	o := gatherOptions(opts...)

	rows := make([][]*qmath.Complex, dim)
	for i, r := range grid {
		if len(r) != dim {
			return nil, ErrDimensionMismatch
		}
		rows[i] = make([]*qmath.Complex, dim)
		for j, z := range r {
			if z == nil {
				return nil, ErrNilState
			}
			rows[i][j] = z.Copy()
		}
	}
	m := &DensityMatrix{dim: dim, prec: o.prec, rows: rows}

	o.logger.Debug().Int("dimension", dim).Msg("density matrix constructed from grid")
	o.emit(OpConstruct, m.ContentHash)

	return m, nil
}

// FromStateVector returns the pure-state projector ρ = |v⟩⟨v|.
func FromStateVector(v *StateVector, opts ...Option) (*DensityMatrix, error) {
	if v == nil {
		return nil, ErrNilState
	}

	m, err := v.OuterProduct(v)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	o.logger.Debug().Int("dimension", v.dim).Msg("density matrix from state vector")
	o.emit(OpConstruct, m.ContentHash)

	return m, nil
}

// FromEnsemble returns ρ = Σ pᵢ·|ψᵢ⟩⟨ψᵢ| for a statistical mixture.
// Contract (all violations return ErrInvalidEnsemble):
//   - len(states) == len(probs) and both non-empty,
//   - every probability ≥ 0,
//   - Σ probs == 1 within DefaultTolerance.
//
// All states must share one dimension (ErrDimensionMismatch otherwise).
func FromEnsemble(states []*StateVector, probs []float64, opts ...Option) (*DensityMatrix, error) {
	if len(states) == 0 || len(states) != len(probs) {
		return nil, ErrInvalidEnsemble
	}
	for _, p := range probs {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, ErrInvalidEnsemble
		}
	}
	if math.Abs(floats.Sum(probs)-1) > DefaultTolerance {
		return nil, ErrInvalidEnsemble
	}

	dim := 0
	for _, s := range states {
		if s == nil {
			return nil, ErrNilState
		}
		if dim == 0 {
			dim = s.dim
		} else if s.dim != dim {
			return nil, ErrDimensionMismatch
		}
	}
	o := gatherOptions(opts...)

	m := newZeroMatrix(dim, o.prec)
	for k, s := range states {
		proj, err := s.OuterProduct(s)
		if err != nil {
			return nil, err
		}
		w := new(big.Float).SetPrec(o.prec).SetFloat64(probs[k])
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				m.rows[i][j] = m.rows[i][j].Add(proj.rows[i][j].Scale(w))
			}
		}
	}

	o.logger.Debug().Int("dimension", dim).Int("states", len(states)).Msg("density matrix from ensemble")
	o.emit(OpConstruct, m.ContentHash)

	return m, nil
}

// MaximallyMixed returns ρ = I/dim, the state of complete ignorance.
func MaximallyMixed(dim int, opts ...Option) (*DensityMatrix, error) {
	m, err := NewDensityMatrix(dim, opts...)
	if err != nil {
		return nil, err
	}

	p := new(big.Float).SetPrec(m.prec).Quo(
		big.NewFloat(1).SetPrec(m.prec),
		new(big.Float).SetPrec(m.prec).SetInt64(int64(dim)),
	)
	for i := 0; i < dim; i++ {
		m.rows[i][i] = qmath.One(m.prec).Scale(p)
	}

	return m, nil
}

// Dimension reports the matrix dimension.
func (m *DensityMatrix) Dimension() int { return m.dim }

// At returns a copy of element (i, j), or ErrIndexOutOfBounds.
func (m *DensityMatrix) At(i, j int) (*qmath.Complex, error) {
	if i < 0 || i >= m.dim || j < 0 || j >= m.dim {
		return nil, ErrIndexOutOfBounds
	}

	return m.rows[i][j].Copy(), nil
}

// SetElement overwrites element (i, j) in place — the builder-phase
// escape hatch that can break Hermiticity and trace. Callers re-check
// IsValid afterwards when physicality matters.
func (m *DensityMatrix) SetElement(i, j int, z *qmath.Complex) error {
	if i < 0 || i >= m.dim || j < 0 || j >= m.dim {
		return ErrIndexOutOfBounds
	}
	if z == nil {
		return ErrNilState
	}
	m.rows[i][j] = z.Copy()

	return nil
}

// Clone returns a deep copy of m.
func (m *DensityMatrix) Clone() *DensityMatrix {
	out := newZeroMatrix(m.dim, m.prec)
	for i := range m.rows {
		for j := range m.rows[i] {
			out.rows[i][j] = m.rows[i][j].Copy()
		}
	}

	return out
}

// Trace returns Tr(ρ) = Σ ρ[i][i] at full precision.
func (m *DensityMatrix) Trace() *qmath.Complex {
	acc := qmath.Zero(m.prec)
	for i := 0; i < m.dim; i++ {
		acc = acc.Add(m.rows[i][i])
	}

	return acc
}

// IsTraceOne reports |Tr(ρ) − 1| ≤ tol (both parts). Non-positive tol
// selects DefaultTolerance.
func (m *DensityMatrix) IsTraceOne(tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	return m.Trace().Equal(qmath.One(m.prec), tol)
}

// IsHermitian reports ρ[i][j] == conj(ρ[j][i]) within tol for all i ≤ j.
// Non-positive tol selects DefaultTolerance.
func (m *DensityMatrix) IsHermitian(tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	for i := 0; i < m.dim; i++ {
		for j := i; j < m.dim; j++ {
			if !m.rows[i][j].Equal(m.rows[j][i].Conj(), tol) {
				return false
			}
		}
	}

	return true
}

// IsValid reports Hermitian ∧ trace-one. Positive semi-definiteness is
// intentionally NOT checked (documented limitation).
func (m *DensityMatrix) IsValid(tol float64) bool {
	return m.IsHermitian(tol) && m.IsTraceOne(tol)
}

// Purity returns Tr(ρ²) as float64: 1 for pure states, 1/dim for the
// maximally mixed state. Uses Σᵢⱼ ρ[i][j]·ρ[j][i] which avoids forming ρ².
func (m *DensityMatrix) Purity() float64 {
	acc := qmath.Zero(m.prec)
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			acc = acc.Add(m.rows[i][j].Mul(m.rows[j][i]))
		}
	}
	p, _ := acc.Real().Float64()

	return p
}

// IsPure reports |Tr(ρ²) − 1| ≤ tol. Non-positive tol selects
// DefaultTolerance.
func (m *DensityMatrix) IsPure(tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	return math.Abs(m.Purity()-1) <= tol
}

// LinearEntropy returns 1 − Tr(ρ²): 0 for pure states, approaching
// 1 − 1/dim for maximal mixing.
func (m *DensityMatrix) LinearEntropy() float64 {
	return 1 - m.Purity()
}

// Add returns ρ + σ. Returns ErrDimensionMismatch on unequal dimensions.
// Note the sum of two states is generally not a state; rescale as needed.
func (m *DensityMatrix) Add(w *DensityMatrix) (*DensityMatrix, error) {
	if w == nil {
		return nil, ErrNilState
	}
	if m.dim != w.dim {
		return nil, ErrDimensionMismatch
	}

	out := newZeroMatrix(m.dim, m.prec)
	for i := range m.rows {
		for j := range m.rows[i] {
			out.rows[i][j] = m.rows[i][j].Add(w.rows[i][j])
		}
	}

	return out, nil
}

// Scale returns z·ρ for a complex factor z.
func (m *DensityMatrix) Scale(z *qmath.Complex) (*DensityMatrix, error) {
	if z == nil {
		return nil, ErrNilState
	}

	out := newZeroMatrix(m.dim, m.prec)
	for i := range m.rows {
		for j := range m.rows[i] {
			out.rows[i][j] = m.rows[i][j].Mul(z)
		}
	}

	return out, nil
}

// Mul returns the matrix product ρ·σ with a fixed i→j→k loop order.
// Returns ErrDimensionMismatch on unequal dimensions.
func (m *DensityMatrix) Mul(w *DensityMatrix) (*DensityMatrix, error) {
	if w == nil {
		return nil, ErrNilState
	}
	if m.dim != w.dim {
		return nil, ErrDimensionMismatch
	}

	out := newZeroMatrix(m.dim, m.prec)
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			acc := qmath.Zero(m.prec)
			for k := 0; k < m.dim; k++ {
				acc = acc.Add(m.rows[i][k].Mul(w.rows[k][j]))
			}
			out.rows[i][j] = acc
		}
	}

	return out, nil
}

// TensorProduct returns ρ ⊗ σ with block structure
// (ρ⊗σ)[(iA·dB+iB)][(jA·dB+jB)] = ρ[iA][jA]·σ[iB][jB].
func (m *DensityMatrix) TensorProduct(w *DensityMatrix) (*DensityMatrix, error) {
	if w == nil {
		return nil, ErrNilState
	}

	out := newZeroMatrix(m.dim*w.dim, m.prec)
	for ia := 0; ia < m.dim; ia++ {
		for ja := 0; ja < m.dim; ja++ {
			for ib := 0; ib < w.dim; ib++ {
				for jb := 0; jb < w.dim; jb++ {
					out.rows[ia*w.dim+ib][ja*w.dim+jb] = m.rows[ia][ja].Mul(w.rows[ib][jb])
				}
			}
		}
	}

	return out, nil
}

// PartialTraceB traces out the second factor of a dimA⊗dimB composite:
// for i,j ∈ [0,dimA), result[i][j] = Σ_k ρ[i·dimB+k][j·dimB+k].
// Returns ErrDimensionMismatch when dimA·dimB ≠ Dimension() and
// ErrInvalidDimension on non-positive factors.
func (m *DensityMatrix) PartialTraceB(dimA, dimB int) (*DensityMatrix, error) {
	if dimA < 1 || dimB < 1 {
		return nil, ErrInvalidDimension
	}
	if dimA*dimB != m.dim {
		return nil, ErrDimensionMismatch
	}

	out := newZeroMatrix(dimA, m.prec)
	for i := 0; i < dimA; i++ {
		for j := 0; j < dimA; j++ {
			acc := qmath.Zero(m.prec)
			for k := 0; k < dimB; k++ {
				acc = acc.Add(m.rows[i*dimB+k][j*dimB+k])
			}
			out.rows[i][j] = acc
		}
	}

	return out, nil
}

// PartialTraceA is the mirror reduction tracing out the first factor:
// for i,j ∈ [0,dimB), result[i][j] = Σ_k ρ[k·dimB+i][k·dimB+j].
func (m *DensityMatrix) PartialTraceA(dimA, dimB int) (*DensityMatrix, error) {
	if dimA < 1 || dimB < 1 {
		return nil, ErrInvalidDimension
	}
	if dimA*dimB != m.dim {
		return nil, ErrDimensionMismatch
	}

	out := newZeroMatrix(dimB, m.prec)
	for i := 0; i < dimB; i++ {
		for j := 0; j < dimB; j++ {
			acc := qmath.Zero(m.prec)
			for k := 0; k < dimA; k++ {
				acc = acc.Add(m.rows[k*dimB+i][k*dimB+j])
			}
			out.rows[i][j] = acc
		}
	}

	return out, nil
}

// ExpectationValue returns Re Tr(ρ·A) for an operator A of equal
// dimension. For Hermitian ρ and A the trace is real; any numerically
// residual imaginary part is discarded.
func (m *DensityMatrix) ExpectationValue(op *DensityMatrix) (float64, error) {
	if op == nil {
		return 0, ErrNilState
	}
	if m.dim != op.dim {
		return 0, ErrDimensionMismatch
	}

	acc := qmath.Zero(m.prec)
	for i := 0; i < m.dim; i++ {
		for k := 0; k < m.dim; k++ {
			acc = acc.Add(m.rows[i][k].Mul(op.rows[k][i]))
		}
	}
	f, _ := acc.Real().Float64()

	return f, nil
}

// VonNeumannEntropy returns S(ρ) = −Σ λᵢ·log₂λᵢ over the eigenvalue
// spectrum, treating eigenvalues below 1e-15 as exact zeros to avoid
// log(0) on numerically degenerate spectra. Requires a Hermitian input
// (ErrNotHermitian otherwise).
func (m *DensityMatrix) VonNeumannEntropy() (float64, error) {
	eigs, err := m.Eigenvalues()
	if err != nil {
		return 0, err
	}

	s := 0.0
	for _, l := range eigs {
		if l > zeroEigenvalueCutoff {
			s -= l * math.Log2(l)
		}
	}

	return s, nil
}

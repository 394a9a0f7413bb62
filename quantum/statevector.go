// SPDX-License-Identifier: MIT

// Package quantum: StateVector — an immutable-on-construction pure state
// |ψ⟩ over a finite-dimensional Hilbert space. Every transform allocates a
// new vector; the only in-place escape hatch is SetComponent, which is an
// explicit builder-phase tool and can break derived invariants (callers
// re-check IsNormalized afterwards).

package quantum

import (
	"math/big"

	"github.com/katalvlaran/qentangle/qmath"
)

// StateVector is an ordered sequence of complex amplitudes of fixed
// dimension. It is NOT auto-normalized: normalization is an explicit
// operation and IsNormalized is a derived query, never an invariant.
type StateVector struct {
	dim   int
	prec  uint
	comps []*qmath.Complex // len(comps) == dim at all times
}

// NewStateVector returns a zero-filled vector of the given dimension.
// Returns ErrInvalidDimension when dim < 1.
func NewStateVector(dim int, opts ...Option) (*StateVector, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	o := gatherOptions(opts...)

	comps := make([]*qmath.Complex, dim)
	for i := range comps {
		comps[i] = qmath.Zero(o.prec)
	}
	v := &StateVector{dim: dim, prec: o.prec, comps: comps}

	o.logger.Debug().Int("dimension", dim).Msg("state vector constructed")
	o.emit(OpConstruct, v.ContentHash)

	return v, nil
}

// NewBasisState returns the computational-basis state |index⟩ of the given
// dimension. Returns ErrInvalidDimension when dim < 1 and
// ErrIndexOutOfBounds when index ∉ [0, dim).
func NewBasisState(dim, index int, opts ...Option) (*StateVector, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	if index < 0 || index >= dim {
		return nil, ErrIndexOutOfBounds
	}

	v, err := NewStateVector(dim, opts...)
	if err != nil {
		return nil, err
	}
	v.comps[index] = qmath.One(v.prec)

	return v, nil
}

// NewStateVectorFrom builds a vector from explicit amplitudes. The slice
// and its elements are deep-copied; the caller keeps ownership of amps.
// Returns ErrInvalidDimension on an empty slice and ErrNilState when any
// amplitude is nil.
func NewStateVectorFrom(amps []*qmath.Complex, opts ...Option) (*StateVector, error) {
	if len(amps) == 0 {
		return nil, ErrInvalidDimension
	}
	o := gatherOptions(opts...)

	comps := make([]*qmath.Complex, len(amps))
	for i, a := range amps {
		if a == nil {
			return nil, ErrNilState
		}
		comps[i] = a.Copy()
	}
	v := &StateVector{dim: len(amps), prec: o.prec, comps: comps}

	o.logger.Debug().Int("dimension", v.dim).Msg("state vector constructed from amplitudes")
	o.emit(OpConstruct, v.ContentHash)

	return v, nil
}

// Dimension reports the Hilbert-space dimension.
func (v *StateVector) Dimension() int { return v.dim }

// Component returns a copy of the amplitude at index i, or
// ErrIndexOutOfBounds when i ∉ [0, dim).
func (v *StateVector) Component(i int) (*qmath.Complex, error) {
	if i < 0 || i >= v.dim {
		return nil, ErrIndexOutOfBounds
	}

	return v.comps[i].Copy(), nil
}

// SetComponent overwrites the amplitude at index i in place. This is the
// builder-phase escape hatch: it can break normalization, and callers are
// expected to re-check IsNormalized (or Normalize) afterwards.
func (v *StateVector) SetComponent(i int, z *qmath.Complex) error {
	if i < 0 || i >= v.dim {
		return ErrIndexOutOfBounds
	}
	if z == nil {
		return ErrNilState
	}
	v.comps[i] = z.Copy()

	return nil
}

// Components returns a deep copy of all amplitudes in basis order.
func (v *StateVector) Components() []*qmath.Complex {
	out := make([]*qmath.Complex, v.dim)
	for i, c := range v.comps {
		out[i] = c.Copy()
	}

	return out
}

// Clone returns a deep copy of v.
func (v *StateVector) Clone() *StateVector {
	return &StateVector{dim: v.dim, prec: v.prec, comps: v.Components()}
}

// normSq accumulates Σ|cᵢ|² at full precision.
func (v *StateVector) normSq() *big.Float {
	sum := new(big.Float).SetPrec(v.prec)
	for _, c := range v.comps {
		sum.Add(sum, c.AbsSq())
	}

	return sum
}

// Norm returns ‖v‖ = √(Σ|cᵢ|²) at full precision.
func (v *StateVector) Norm() *big.Float {
	sq := v.normSq()
	if sq.Sign() == 0 {
		return sq
	}

	return new(big.Float).Sqrt(sq)
}

// NormFloat is Norm narrowed to float64, for callers living in the
// float64 numeric layer (measurement probabilities, tests).
func (v *StateVector) NormFloat() float64 {
	f, _ := v.Norm().Float64()

	return f
}

// IsNormalized reports |‖v‖ − 1| ≤ tol. Non-positive tol selects
// DefaultTolerance.
func (v *StateVector) IsNormalized(tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	d := v.Norm()
	d.Sub(d, big.NewFloat(1))

	return d.Abs(d).Cmp(big.NewFloat(tol)) <= 0
}

// Normalize returns v/‖v‖ as a new vector. Returns ErrInvalidOperation
// when the norm is exactly zero: the zero vector has no direction.
func (v *StateVector) Normalize(opts ...Option) (*StateVector, error) {
	norm := v.Norm()
	if norm.Sign() == 0 {
		return nil, ErrInvalidOperation
	}
	o := gatherOptions(opts...)

	inv := new(big.Float).SetPrec(v.prec).Quo(big.NewFloat(1).SetPrec(v.prec), norm)
	out := make([]*qmath.Complex, v.dim)
	for i, c := range v.comps {
		out[i] = c.Scale(inv)
	}
	n := &StateVector{dim: v.dim, prec: v.prec, comps: out}

	o.logger.Debug().Int("dimension", v.dim).Msg("state vector normalized")
	o.emit(OpNormalize, n.ContentHash)

	return n, nil
}

// Add returns v + w. Returns ErrDimensionMismatch on unequal dimensions.
func (v *StateVector) Add(w *StateVector) (*StateVector, error) {
	if w == nil {
		return nil, ErrNilState
	}
	if v.dim != w.dim {
		return nil, ErrDimensionMismatch
	}

	out := make([]*qmath.Complex, v.dim)
	for i := range out {
		out[i] = v.comps[i].Add(w.comps[i])
	}

	return &StateVector{dim: v.dim, prec: v.prec, comps: out}, nil
}

// Sub returns v − w. Returns ErrDimensionMismatch on unequal dimensions.
func (v *StateVector) Sub(w *StateVector) (*StateVector, error) {
	if w == nil {
		return nil, ErrNilState
	}
	if v.dim != w.dim {
		return nil, ErrDimensionMismatch
	}

	out := make([]*qmath.Complex, v.dim)
	for i := range out {
		out[i] = v.comps[i].Sub(w.comps[i])
	}

	return &StateVector{dim: v.dim, prec: v.prec, comps: out}, nil
}

// Scale returns z·v for a complex factor z.
func (v *StateVector) Scale(z *qmath.Complex) (*StateVector, error) {
	if z == nil {
		return nil, ErrNilState
	}

	out := make([]*qmath.Complex, v.dim)
	for i, c := range v.comps {
		out[i] = c.Mul(z)
	}

	return &StateVector{dim: v.dim, prec: v.prec, comps: out}, nil
}

// InnerProduct returns ⟨v|w⟩ = Σ conj(cᵢ)·dᵢ.
// Returns ErrDimensionMismatch on unequal dimensions.
func (v *StateVector) InnerProduct(w *StateVector) (*qmath.Complex, error) {
	if w == nil {
		return nil, ErrNilState
	}
	if v.dim != w.dim {
		return nil, ErrDimensionMismatch
	}

	acc := qmath.Zero(v.prec)
	for i := range v.comps {
		acc = acc.Add(v.comps[i].Conj().Mul(w.comps[i]))
	}

	return acc, nil
}

// Overlap returns |⟨v|w⟩|² as float64.
func (v *StateVector) Overlap(w *StateVector) (float64, error) {
	ip, err := v.InnerProduct(w)
	if err != nil {
		return 0, err
	}
	f, _ := ip.AbsSq().Float64()

	return f, nil
}

// TensorProduct returns v ⊗ w with dimension dim(v)·dim(w); the amplitude
// at flattened index i·dim(w)+j is cᵢ·dⱼ. Subsystem A (v) owns the most
// significant block of the index, matching PartialTraceB's layout.
func (v *StateVector) TensorProduct(w *StateVector) (*StateVector, error) {
	if w == nil {
		return nil, ErrNilState
	}

	out := make([]*qmath.Complex, v.dim*w.dim)
	for i, c := range v.comps {
		for j, d := range w.comps {
			out[i*w.dim+j] = c.Mul(d)
		}
	}

	return &StateVector{dim: v.dim * w.dim, prec: v.prec, comps: out}, nil
}

// OuterProduct returns |v⟩⟨w| as a DensityMatrix-shaped operator with
// M[i][j] = cᵢ·conj(dⱼ). Returns ErrDimensionMismatch on unequal
// dimensions (outer products between spaces are out of scope here).
func (v *StateVector) OuterProduct(w *StateVector) (*DensityMatrix, error) {
	if w == nil {
		return nil, ErrNilState
	}
	if v.dim != w.dim {
		return nil, ErrDimensionMismatch
	}

	m := newZeroMatrix(v.dim, v.prec)
	for i, c := range v.comps {
		for j, d := range w.comps {
			m.rows[i][j] = c.Mul(d.Conj())
		}
	}

	return m, nil
}

// ToBlochVector maps a 2-dimensional state onto the Bloch sphere:
// (x, y, z) = (2·Re(c₀*c₁), 2·Im(c₀*c₁), |c₀|²−|c₁|²). The state is not
// required to be normalized; unnormalized input yields a scaled vector.
// Returns ErrUnsupportedDimension for dim ≠ 2.
func (v *StateVector) ToBlochVector() ([3]float64, error) {
	if v.dim != 2 {
		return [3]float64{}, ErrUnsupportedDimension
	}

	cross := v.comps[0].Conj().Mul(v.comps[1])
	x, _ := cross.Real().Float64()
	y, _ := cross.Imag().Float64()
	p0, _ := v.comps[0].AbsSq().Float64()
	p1, _ := v.comps[1].AbsSq().Float64()

	return [3]float64{2 * x, 2 * y, p0 - p1}, nil
}

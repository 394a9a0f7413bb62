// SPDX-License-Identifier: MIT

// Package quantum: standard operators. Operators share the DensityMatrix
// representation — a square complex grid — without the state invariants
// (they are generally not trace-one). The Pauli set feeds expectation
// values, CHSH measurement settings and the Wootters spin flip downstream.

package quantum

import (
	"math"

	"github.com/katalvlaran/qentangle/qmath"
)

// Identity returns the dim×dim identity operator.
// Returns ErrInvalidDimension when dim < 1.
func Identity(dim int, opts ...Option) (*DensityMatrix, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	o := gatherOptions(opts...)

	m := newZeroMatrix(dim, o.prec)
	for i := 0; i < dim; i++ {
		m.rows[i][i] = qmath.One(o.prec)
	}

	return m, nil
}

// PauliX returns σx = [[0,1],[1,0]].
func PauliX(opts ...Option) *DensityMatrix {
	o := gatherOptions(opts...)

	m := newZeroMatrix(2, o.prec)
	m.rows[0][1] = qmath.One(o.prec)
	m.rows[1][0] = qmath.One(o.prec)

	return m
}

// PauliY returns σy = [[0,−i],[i,0]].
func PauliY(opts ...Option) *DensityMatrix {
	o := gatherOptions(opts...)

	m := newZeroMatrix(2, o.prec)
	m.rows[0][1] = qmath.I(o.prec).Neg()
	m.rows[1][0] = qmath.I(o.prec)

	return m
}

// PauliZ returns σz = [[1,0],[0,−1]].
func PauliZ(opts ...Option) *DensityMatrix {
	o := gatherOptions(opts...)

	m := newZeroMatrix(2, o.prec)
	m.rows[0][0] = qmath.One(o.prec)
	m.rows[1][1] = qmath.One(o.prec).Neg()

	return m
}

// Hadamard returns H = [[1,1],[1,−1]]/√2.
func Hadamard(opts ...Option) *DensityMatrix {
	o := gatherOptions(opts...)

	h := qmath.New(1/math.Sqrt2, 0, o.prec)
	m := newZeroMatrix(2, o.prec)
	m.rows[0][0] = h
	m.rows[0][1] = h.Copy()
	m.rows[1][0] = h.Copy()
	m.rows[1][1] = h.Neg()

	return m
}

// Conjugate returns the element-wise complex conjugate of the operator
// (NOT the conjugate transpose). Used by the Wootters spin flip.
func (m *DensityMatrix) Conjugate() *DensityMatrix {
	out := newZeroMatrix(m.dim, m.prec)
	for i := range m.rows {
		for j := range m.rows[i] {
			out.rows[i][j] = m.rows[i][j].Conj()
		}
	}

	return out
}

// ConjugateTranspose returns the adjoint M†.
func (m *DensityMatrix) ConjugateTranspose() *DensityMatrix {
	out := newZeroMatrix(m.dim, m.prec)
	for i := range m.rows {
		for j := range m.rows[i] {
			out.rows[j][i] = m.rows[i][j].Conj()
		}
	}

	return out
}

// ApplyOperator returns M·|v⟩ as a new state vector.
// Returns ErrDimensionMismatch when dimensions differ.
func ApplyOperator(op *DensityMatrix, v *StateVector) (*StateVector, error) {
	if op == nil || v == nil {
		return nil, ErrNilState
	}
	if op.dim != v.dim {
		return nil, ErrDimensionMismatch
	}

	out := make([]*qmath.Complex, v.dim)
	for i := 0; i < op.dim; i++ {
		acc := qmath.Zero(v.prec)
		for j := 0; j < op.dim; j++ {
			acc = acc.Add(op.rows[i][j].Mul(v.comps[j]))
		}
		out[i] = acc
	}

	return &StateVector{dim: v.dim, prec: v.prec, comps: out}, nil
}

// SPDX-License-Identifier: MIT

// Package quantum: Hermitian eigenvalue extraction.
//
// Dimension 2 uses the exact closed form (quadratic on trace and
// determinant of the Hermitian block). Larger dimensions embed the
// Hermitian matrix H = X + iY into the real symmetric 2d×2d block matrix
// [[X, −Y], [Y, X]], whose spectrum is that of H with every eigenvalue
// doubled, and diagonalize it with gonum's EigenSym. This replaces the
// diagonal-entry approximation some toy implementations use: eigenvalues
// here are numerically exact for any Hermitian input.

package quantum

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Eigenvalues returns the real spectrum of a Hermitian matrix, sorted
// descending. Returns ErrNotHermitian when the matrix violates Hermitian
// symmetry beyond DefaultTolerance and ErrEigenFailed when the underlying
// factorization does not converge (not observed for finite inputs).
//
// Complexity: O(d³) time, O(d²) space via the 2d×2d embedding.
func (m *DensityMatrix) Eigenvalues() ([]float64, error) {
	if !m.IsHermitian(DefaultTolerance) {
		return nil, ErrNotHermitian
	}
	if m.dim == 1 {
		re, _ := m.rows[0][0].Real().Float64()

		return []float64{re}, nil
	}
	if m.dim == 2 {
		return m.eigenvalues2x2(), nil
	}

	return m.eigenvaluesEmbedded()
}

// eigenvalues2x2 solves the characteristic quadratic exactly:
// λ± = (a+d)/2 ± √(((a−d)/2)² + |b|²) for H = [[a, b], [conj(b), d]].
func (m *DensityMatrix) eigenvalues2x2() []float64 {
	a, _ := m.rows[0][0].Real().Float64()
	d, _ := m.rows[1][1].Real().Float64()
	bsq, _ := m.rows[0][1].AbsSq().Float64()

	mean := (a + d) / 2
	disc := math.Sqrt((a-d)*(a-d)/4 + bsq)

	return []float64{mean + disc, mean - disc}
}

// eigenvaluesEmbedded diagonalizes the real symmetric embedding
// [[X, −Y], [Y, X]] of H = X + iY. The embedding is symmetrized before
// factorization so floating noise in the Hermitian input cannot leak an
// asymmetric matrix into EigenSym.
func (m *DensityMatrix) eigenvaluesEmbedded() ([]float64, error) {
	d := m.dim
	sym := mat.NewSymDense(2*d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			zij := m.rows[i][j].Complex128()
			zji := m.rows[j][i].Complex128()
			// Hermitian symmetrization: x symmetric, y antisymmetric.
			x := (real(zij) + real(zji)) / 2
			y := (imag(zij) - imag(zji)) / 2

			sym.SetSym(i, j, x)         // X block
			sym.SetSym(d+i, d+j, x)     // X block (lower-right)
			sym.SetSym(i, d+j, -y)      // −Y block
			if i != j {
				sym.SetSym(j, d+i, y) // Y[j][i] = −Y[i][j] via antisymmetry
			}
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, ErrEigenFailed
	}
	all := es.Values(nil) // ascending, each eigenvalue of H appears twice

	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = all[2*i] // collapse the doubled spectrum
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))

	return out, nil
}

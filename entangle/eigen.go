// SPDX-License-Identifier: MIT

// Package entangle: complex Hermitian Jacobi eigendecomposition.
//
// The measures in this package (Wootters concurrence, Schmidt
// decomposition) need eigenVECTORS of Hermitian matrices, not just the
// spectrum — so DensityMatrix.Eigenvalues (values-only) is not enough.
// The kernel below extends the classical real-symmetric Jacobi sweep to
// Hermitian input: each pivot's complex phase is absorbed into a unitary
// plane rotation, the rotation angle is the classical θ = (aqq−app)/2|apq|
// solution, and the accumulated rotations form the eigenvector matrix.
//
// Determinism:
//   - Fixed i→j pivot scan picking the largest |A[p,q]|, fixed update
//     order identical results for identical inputs.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²). Adequate for the small Hilbert
//     spaces entanglement analysis targets; callers bound dimension.

package entangle

import (
	"math"
	"math/cmplx"
	"sort"
)

// hermitianEigen diagonalizes a Hermitian matrix given as a dense
// complex128 grid. Returns eigenvalues sorted descending and the matching
// eigenvectors as COLUMNS of the returned grid. The input is not mutated.
// Returns ErrEigenFailed when the largest off-diagonal modulus still
// exceeds tol after the rotation budget.
func hermitianEigen(in [][]complex128, tol float64, maxSweeps int) ([]float64, [][]complex128, error) {
	n := len(in)

	// Working copy A and unitary accumulator V = I.
	a := make([][]complex128, n)
	v := make([][]complex128, n)
	for i := 0; i < n; i++ {
		a[i] = make([]complex128, n)
		copy(a[i], in[i])
		v[i] = make([]complex128, n)
		v[i][i] = 1
	}

	// One "iteration" is a single rotation; a full sweep touches every
	// upper off-diagonal pair once.
	maxRot := maxSweeps * n * n

	var p, q int
	for rot := 0; rot < maxRot; rot++ {
		// Pivot: largest |A[p,q]| above the diagonal, fixed scan order.
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := cmplx.Abs(a[i][j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		// Rotation parameters. The pivot phase e^{iφ} = apq/|apq| makes
		// the effective off-diagonal real, reducing to the classic form.
		apq := a[p][q]
		r := cmplx.Abs(apq)
		phase := apq / complex(r, 0)
		app := real(a[p][p])
		aqq := real(a[q][q])

		theta := (aqq - app) / (2 * r)
		t := math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		cc := complex(c, 0)
		sPhase := complex(s, 0) * phase
		sPhaseConj := complex(s, 0) * cmplx.Conj(phase)

		// Rotate rows/columns p and q; Hermiticity is restored exactly by
		// mirroring with conjugates.
		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := a[i][p], a[i][q]
			a[i][p] = cc*aip - sPhaseConj*aiq
			a[i][q] = sPhase*aip + cc*aiq
			a[p][i] = cmplx.Conj(a[i][p])
			a[q][i] = cmplx.Conj(a[i][q])
		}
		a[p][p] = complex(c*c*app-2*c*s*r+s*s*aqq, 0)
		a[q][q] = complex(s*s*app+2*c*s*r+c*c*aqq, 0)
		a[p][q], a[q][p] = 0, 0

		// Accumulate the rotation into V (columns are eigenvectors).
		for i := 0; i < n; i++ {
			vip, viq := v[i][p], v[i][q]
			v[i][p] = cc*vip - sPhaseConj*viq
			v[i][q] = sPhase*vip + cc*viq
		}
	}

	// Final convergence check mirrors the loop's pivot scan.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cmplx.Abs(a[i][j]) >= tol {
				return nil, nil, ErrEigenFailed
			}
		}
	}

	// Extract and order the spectrum descending, permuting columns of V
	// in lockstep.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(x, y int) bool {
		return real(a[idx[x]][idx[x]]) > real(a[idx[y]][idx[y]])
	})

	vals := make([]float64, n)
	vecs := make([][]complex128, n)
	for i := 0; i < n; i++ {
		vecs[i] = make([]complex128, n)
	}
	for col, src := range idx {
		vals[col] = real(a[src][src])
		for row := 0; row < n; row++ {
			vecs[row][col] = v[row][src]
		}
	}

	return vals, vecs, nil
}

// matMul128 returns the product of two equal-size square grids.
func matMul128(a, b [][]complex128) [][]complex128 {
	n := len(a)
	out := make([][]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			var acc complex128
			for k := 0; k < n; k++ {
				acc += a[i][k] * b[k][j]
			}
			out[i][j] = acc
		}
	}

	return out
}

// hermitianSqrt returns √M for a positive semi-definite Hermitian grid:
// U·diag(√max(λ,0))·U†. Negative near-zero eigenvalues from floating
// error are clamped to zero rather than surfaced.
func hermitianSqrt(m [][]complex128, tol float64, maxSweeps int) ([][]complex128, error) {
	vals, vecs, err := hermitianEigen(m, tol, maxSweeps)
	if err != nil {
		return nil, err
	}

	n := len(m)
	out := make([][]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			var acc complex128
			for k := 0; k < n; k++ {
				root := math.Sqrt(math.Max(vals[k], 0))
				acc += vecs[i][k] * complex(root, 0) * cmplx.Conj(vecs[j][k])
			}
			out[i][j] = acc
		}
	}

	return out, nil
}

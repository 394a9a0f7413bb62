// SPDX-License-Identifier: MIT

// Package entangle: Schmidt decomposition of bipartite pure states.
//
// Any |ψ⟩ ∈ H_A⊗H_B factors as Σ_k σ_k |u_k⟩|w_k⟩ with σ_k ≥ 0 and
// orthonormal bases on each side. The implementation reshapes the
// amplitude vector into the dimA×dimB matrix M (ψ[i·dimB+j] = M[i][j]),
// diagonalizes ρ_A = M·M† for the left basis and coefficients
// σ_k = √λ_k, and recovers the right basis from M and the left vectors.

package entangle

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qentangle/quantum"
)

// SchmidtDecomposition carries the full result of SchmidtDecompose.
// Coefficients arrive sorted descending; Left[k]/Right[k] are the
// matching orthonormal basis vectors of H_A and H_B. Rank counts the
// coefficients above SchmidtRankCutoff: 1 means a product state.
type SchmidtDecomposition struct {
	Coefficients []float64
	Left         [][]complex128
	Right        [][]complex128
	Rank         int
	Entropy      float64 // −Σ σ²·log₂ σ², the entanglement entropy
}

// SchmidtDecompose factors a pure state over the analyzer's bipartition.
// The input must be normalized; callers holding raw amplitudes should
// Normalize first.
func (a *Analyzer) SchmidtDecompose(v *quantum.StateVector) (*SchmidtDecomposition, error) {
	if err := a.checkVector(v); err != nil {
		return nil, err
	}

	// Reshape |ψ⟩ into M ∈ C^{dimA×dimB}.
	m := make([][]complex128, a.dimA)
	for i := 0; i < a.dimA; i++ {
		m[i] = make([]complex128, a.dimB)
		for j := 0; j < a.dimB; j++ {
			z, err := v.Component(i*a.dimB + j)
			if err != nil {
				return nil, err
			}
			m[i][j] = z.Complex128()
		}
	}

	// ρ_A = M·M† is Hermitian PSD on H_A.
	rhoA := make([][]complex128, a.dimA)
	for i := 0; i < a.dimA; i++ {
		rhoA[i] = make([]complex128, a.dimA)
		for j := 0; j < a.dimA; j++ {
			var acc complex128
			for k := 0; k < a.dimB; k++ {
				acc += m[i][k] * cmplx.Conj(m[j][k])
			}
			rhoA[i][j] = acc
		}
	}

	vals, vecs, err := hermitianEigen(rhoA, a.tol, a.maxSweeps)
	if err != nil {
		return nil, err
	}

	out := &SchmidtDecomposition{
		Coefficients: make([]float64, 0, len(vals)),
		Left:         make([][]complex128, 0, len(vals)),
		Right:        make([][]complex128, 0, len(vals)),
	}
	for k, lam := range vals {
		sigma := math.Sqrt(math.Max(lam, 0))
		out.Coefficients = append(out.Coefficients, sigma)

		left := make([]complex128, a.dimA)
		for i := 0; i < a.dimA; i++ {
			left[i] = vecs[i][k]
		}
		out.Left = append(out.Left, left)

		// Right vector: w_k[j] = Σ_i M[i][j]·conj(u_k[i]) / σ_k, so that
		// Σ_k σ_k·u_k⊗w_k reconstructs |ψ⟩ exactly. Zero modes get a zero
		// vector rather than a division blow-up.
		right := make([]complex128, a.dimB)
		if sigma > SchmidtRankCutoff {
			for j := 0; j < a.dimB; j++ {
				var acc complex128
				for i := 0; i < a.dimA; i++ {
					acc += m[i][j] * cmplx.Conj(left[i])
				}
				right[j] = acc / complex(sigma, 0)
			}
			out.Rank++
		}
		out.Right = append(out.Right, right)

		if lam > SchmidtRankCutoff {
			out.Entropy -= lam * math.Log2(lam)
		}
	}

	a.logger.Debug().
		Int("rank", out.Rank).
		Float64("entropy", out.Entropy).
		Msg("entangle: schmidt decomposition")

	return out, nil
}

// SPDX-License-Identifier: MIT

package quantum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qentangle/quantum"
)

// TestBellState_AllKinds: each Bell state is normalized, carries its two
// ±1/√2 amplitudes at the right indices, and the projector is pure.
func TestBellState_AllKinds(t *testing.T) {
	cases := []struct {
		name          string
		kind          quantum.BellKind
		first, second int
		sign          float64
	}{
		{"PhiPlus", quantum.BellPhiPlus, 0, 3, +1},
		{"PhiMinus", quantum.BellPhiMinus, 0, 3, -1},
		{"PsiPlus", quantum.BellPsiPlus, 1, 2, +1},
		{"PsiMinus", quantum.BellPsiMinus, 1, 2, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, rho, err := quantum.BellState(tc.kind)
			require.NoError(t, err)
			require.Equal(t, 4, v.Dimension())
			assert.True(t, v.IsNormalized(eps))

			c, err := v.Component(tc.first)
			require.NoError(t, err)
			assert.True(t, c.Equal(amp(1/math.Sqrt2), eps))
			c, err = v.Component(tc.second)
			require.NoError(t, err)
			assert.True(t, c.Equal(amp(tc.sign/math.Sqrt2), eps))

			assert.True(t, rho.IsValid(eps))
			assert.True(t, rho.IsPure(eps))
		})
	}

	_, _, err := quantum.BellState(quantum.BellKind(99))
	assert.ErrorIs(t, err, quantum.ErrInvalidOperation)
}

// TestBellState_Orthogonality: the four Bell states form an orthonormal
// basis of the two-qubit space.
func TestBellState_Orthogonality(t *testing.T) {
	kinds := []quantum.BellKind{
		quantum.BellPhiPlus, quantum.BellPhiMinus,
		quantum.BellPsiPlus, quantum.BellPsiMinus,
	}
	for _, a := range kinds {
		for _, b := range kinds {
			va, _, err := quantum.BellState(a)
			require.NoError(t, err)
			vb, _, err := quantum.BellState(b)
			require.NoError(t, err)

			ov, err := va.Overlap(vb)
			require.NoError(t, err)
			if a == b {
				assert.InDelta(t, 1.0, ov, eps)
			} else {
				assert.InDelta(t, 0.0, ov, eps, "kinds %d,%d", a, b)
			}
		}
	}
}

// TestGHZState_Widths: GHZ(n) for n up to 5 — two amplitudes of 1/√2 at
// the all-zeros and all-ones indices, maximally mixed single-qubit
// marginals.
func TestGHZState_Widths(t *testing.T) {
	for n := 2; n <= 5; n++ {
		v, rho, err := quantum.GHZState(n)
		require.NoError(t, err, "n=%d", n)
		dim := 1 << n
		require.Equal(t, dim, v.Dimension())
		assert.True(t, v.IsNormalized(eps))

		c, err := v.Component(0)
		require.NoError(t, err)
		assert.True(t, c.Equal(amp(1/math.Sqrt2), eps))
		c, err = v.Component(dim - 1)
		require.NoError(t, err)
		assert.True(t, c.Equal(amp(1/math.Sqrt2), eps))

		// every other amplitude is zero
		for i := 1; i < dim-1; i++ {
			c, err = v.Component(i)
			require.NoError(t, err)
			assert.True(t, c.IsZero(eps), "n=%d index %d", n, i)
		}

		// first-qubit marginal is maximally mixed
		reduced, err := rho.PartialTraceB(2, dim/2)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, reduced.Purity(), eps)
	}

	_, _, err := quantum.GHZState(1)
	assert.ErrorIs(t, err, quantum.ErrUnsupportedDimension)
	_, _, err = quantum.GHZState(0)
	assert.ErrorIs(t, err, quantum.ErrUnsupportedDimension)
}

// TestWState_Widths: W(n) for n up to 5 — amplitude 1/√n at every
// single-excitation index, zero elsewhere.
func TestWState_Widths(t *testing.T) {
	for n := 2; n <= 5; n++ {
		v, rho, err := quantum.WState(n)
		require.NoError(t, err, "n=%d", n)
		dim := 1 << n
		require.Equal(t, dim, v.Dimension())
		assert.True(t, v.IsNormalized(eps))

		want := 1 / math.Sqrt(float64(n))
		for i := 0; i < dim; i++ {
			c, err := v.Component(i)
			require.NoError(t, err)
			if i > 0 && i&(i-1) == 0 { // powers of two: one excited qubit
				assert.True(t, c.Equal(amp(want), eps), "n=%d index %d", n, i)
			} else {
				assert.True(t, c.IsZero(eps), "n=%d index %d", n, i)
			}
		}

		assert.True(t, rho.IsPure(eps))
	}

	_, _, err := quantum.WState(1)
	assert.ErrorIs(t, err, quantum.ErrUnsupportedDimension)
}

// TestWState_MarginalPurity: the W(3) single-qubit marginal is the
// textbook diag(2/3, 1/3), purity 5/9.
func TestWState_MarginalPurity(t *testing.T) {
	_, rho, err := quantum.WState(3)
	require.NoError(t, err)

	reduced, err := rho.PartialTraceB(2, 4)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/9, reduced.Purity(), eps)

	z, err := reduced.At(0, 0)
	require.NoError(t, err)
	assert.True(t, z.Equal(amp(2.0/3), eps))
}

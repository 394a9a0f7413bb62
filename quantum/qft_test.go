// SPDX-License-Identifier: MIT

package quantum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qentangle/quantum"
)

const qftEps = 1e-12 // float64-bounded path

// TestQFT_BasisState: QFT|0⟩ is the uniform superposition with all-real
// amplitudes 1/√d.
func TestQFT_BasisState(t *testing.T) {
	for _, dim := range []int{2, 4, 8} {
		v, err := quantum.NewBasisState(dim, 0)
		require.NoError(t, err)

		ft, err := quantum.ApplyQFT(v)
		require.NoError(t, err)
		assert.True(t, ft.IsNormalized(qftEps), "dim %d", dim)

		want := 1 / math.Sqrt(float64(dim))
		for i := 0; i < dim; i++ {
			c, err := ft.Component(i)
			require.NoError(t, err)
			assert.True(t, c.Equal(amp(want), qftEps), "dim %d index %d", dim, i)
		}
	}
}

// TestQFT_RoundTrip: inverse ∘ forward is the identity within float64
// tolerance, on a non-trivial state.
func TestQFT_RoundTrip(t *testing.T) {
	v, _, err := quantum.GHZState(3)
	require.NoError(t, err)

	ft, err := quantum.ApplyQFT(v)
	require.NoError(t, err)
	assert.True(t, ft.IsNormalized(qftEps), "QFT preserves the norm")

	back, err := quantum.ApplyInverseQFT(ft)
	require.NoError(t, err)

	ov, err := back.Overlap(v)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ov, 1e-10)
}

// TestQFT_NilInput: nil vectors are contract errors.
func TestQFT_NilInput(t *testing.T) {
	_, err := quantum.ApplyQFT(nil)
	assert.ErrorIs(t, err, quantum.ErrNilState)
	_, err = quantum.ApplyInverseQFT(nil)
	assert.ErrorIs(t, err, quantum.ErrNilState)
}

// TestQFT_ShiftPhaseRelation: QFT|j⟩ has flat modulus 1/√d for every
// basis input, phases excepted.
func TestQFT_ShiftPhaseRelation(t *testing.T) {
	const dim = 4
	for j := 0; j < dim; j++ {
		v, err := quantum.NewBasisState(dim, j)
		require.NoError(t, err)
		ft, err := quantum.ApplyQFT(v)
		require.NoError(t, err)

		for i := 0; i < dim; i++ {
			c, err := ft.Component(i)
			require.NoError(t, err)
			assert.InDelta(t, 0.25, absSq(t, c), qftEps, "input %d output %d", j, i)
		}
	}
}

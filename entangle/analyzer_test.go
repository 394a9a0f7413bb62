// SPDX-License-Identifier: MIT

package entangle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qentangle/entangle"
	"github.com/katalvlaran/qentangle/quantum"
)

const eps = 1e-9

// bellPair returns |Φ⁺⟩ and its projector, failing the test on error.
func bellPair(t *testing.T) (*quantum.StateVector, *quantum.DensityMatrix) {
	t.Helper()
	v, rho, err := quantum.BellState(quantum.BellPhiPlus)
	require.NoError(t, err)

	return v, rho
}

// productState returns |00⟩ and its projector.
func productState(t *testing.T) (*quantum.StateVector, *quantum.DensityMatrix) {
	t.Helper()
	v, err := quantum.NewBasisState(4, 0)
	require.NoError(t, err)
	rho, err := quantum.FromStateVector(v)
	require.NoError(t, err)

	return v, rho
}

// TestNewAnalyzer_Validation: non-positive factors are rejected up front.
func TestNewAnalyzer_Validation(t *testing.T) {
	_, err := entangle.NewAnalyzer(0, 2)
	assert.ErrorIs(t, err, quantum.ErrInvalidDimension)

	_, err = entangle.NewAnalyzer(2, -1)
	assert.ErrorIs(t, err, quantum.ErrInvalidDimension)

	an, err := entangle.NewAnalyzer(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, an.DimA())
	assert.Equal(t, 3, an.DimB())
}

// TestAnalyzer_BipartitionMismatch: every operation refuses states whose
// dimension is not dimA·dimB.
func TestAnalyzer_BipartitionMismatch(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 3) // expects dim 6
	require.NoError(t, err)
	_, rho := bellPair(t) // dim 4

	_, err = an.PartialTraceB(rho)
	assert.ErrorIs(t, err, entangle.ErrIncompatibleBipartition)

	_, err = an.PartialTransposeB(rho)
	assert.ErrorIs(t, err, entangle.ErrIncompatibleBipartition)

	_, err = an.EntanglementEntropy(rho)
	assert.ErrorIs(t, err, entangle.ErrIncompatibleBipartition)

	_, err = an.Negativity(rho)
	assert.ErrorIs(t, err, entangle.ErrIncompatibleBipartition)
}

// TestAnalyzer_NilState: nil operands are a contract error, not a panic.
func TestAnalyzer_NilState(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)

	_, err = an.PartialTraceB(nil)
	assert.ErrorIs(t, err, entangle.ErrNilMatrix)

	_, err = an.SchmidtDecompose(nil)
	assert.ErrorIs(t, err, entangle.ErrNilMatrix)
}

// TestAnalyzer_PartialTrace: tracing either side of |Φ⁺⟩ yields the
// maximally mixed qubit; tracing |00⟩ yields the pure |0⟩ projector.
func TestAnalyzer_PartialTrace(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)

	_, bell := bellPair(t)
	reduced, err := an.PartialTraceB(bell)
	require.NoError(t, err)
	assert.Equal(t, 2, reduced.Dimension())
	assert.InDelta(t, 0.5, reduced.Purity(), eps, "Bell marginal is maximally mixed")

	reducedA, err := an.PartialTraceA(bell)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, reducedA.Purity(), eps)

	_, prod := productState(t)
	reduced, err = an.PartialTraceB(prod)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, reduced.Purity(), eps, "product marginal stays pure")
}

// TestAnalyzer_PartialTransposeSpectrum: the partial transpose of |Φ⁺⟩
// has the textbook spectrum {1/2, 1/2, 1/2, −1/2}.
func TestAnalyzer_PartialTransposeSpectrum(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)
	_, bell := bellPair(t)

	pt, err := an.PartialTransposeB(bell)
	require.NoError(t, err)
	assert.True(t, pt.IsHermitian(eps), "partial transpose stays Hermitian")

	vals, err := pt.Eigenvalues()
	require.NoError(t, err)
	require.Len(t, vals, 4)
	// descending order
	assert.InDelta(t, 0.5, vals[0], eps)
	assert.InDelta(t, 0.5, vals[1], eps)
	assert.InDelta(t, 0.5, vals[2], eps)
	assert.InDelta(t, -0.5, vals[3], eps)
}

// TestAnalyzer_PartialTransposeInvolution: applying the partial transpose
// twice recovers the original matrix.
func TestAnalyzer_PartialTransposeInvolution(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)
	_, bell := bellPair(t)

	pt, err := an.PartialTransposeB(bell)
	require.NoError(t, err)
	back, err := an.PartialTransposeB(pt)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want, err := bell.At(i, j)
			require.NoError(t, err)
			got, err := back.At(i, j)
			require.NoError(t, err)
			assert.True(t, got.Equal(want, eps), "element (%d,%d)", i, j)
		}
	}
}

// TestAnalyzer_EntanglementEntropy: 1 ebit for Bell, 0 for product.
func TestAnalyzer_EntanglementEntropy(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)

	_, bell := bellPair(t)
	s, err := an.EntanglementEntropy(bell)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, eps, "Bell state carries exactly 1 ebit")

	_, prod := productState(t)
	s, err = an.EntanglementEntropy(prod)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, eps, "product state carries none")
}

// TestAnalyzer_IsMaximallyEntangled: Bell hits the log₂(min(dA,dB))
// ceiling, the product state does not.
func TestAnalyzer_IsMaximallyEntangled(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2, entangle.WithTolerance(1e-8))
	require.NoError(t, err)

	_, bell := bellPair(t)
	max, err := an.IsMaximallyEntangled(bell)
	require.NoError(t, err)
	assert.True(t, max)

	_, prod := productState(t)
	max, err = an.IsMaximallyEntangled(prod)
	require.NoError(t, err)
	assert.False(t, max)
}

// TestAnalyzer_VonNeumannEntropy: pure composite states have zero global
// entropy regardless of internal entanglement.
func TestAnalyzer_VonNeumannEntropy(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)
	_, bell := bellPair(t)

	s, err := an.VonNeumannEntropy(bell)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, eps)

	mixed, err := quantum.MaximallyMixed(4)
	require.NoError(t, err)
	s, err = an.VonNeumannEntropy(mixed)
	require.NoError(t, err)
	assert.InDelta(t, math.Log2(4), s, eps)
}

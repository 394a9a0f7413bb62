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

// TestCHSH_TsirelsonOnBell: |Φ⁺⟩ at the canonical settings saturates
// the quantum maximum S = 2√2 and violates the classical bound.
func TestCHSH_TsirelsonOnBell(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)
	_, bell := bellPair(t)

	res, err := an.CHSHValue(bell, entangle.OptimalCHSHSettings())
	require.NoError(t, err)

	assert.InDelta(t, 2*math.Sqrt2, res.S, eps)
	assert.True(t, res.Violated)

	// The four correlators underneath: three at +1/√2, one at −1/√2.
	assert.InDelta(t, 1/math.Sqrt2, res.EAB, eps)
	assert.InDelta(t, 1/math.Sqrt2, res.EABPrime, eps)
	assert.InDelta(t, 1/math.Sqrt2, res.EAPrimeB, eps)
	assert.InDelta(t, -1/math.Sqrt2, res.EAPrimeBP, eps)
}

// TestCHSH_ProductStateStaysClassical: separable states never exceed
// |S| = 2 at any settings.
func TestCHSH_ProductStateStaysClassical(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)
	_, prod := productState(t)

	res, err := an.CHSHValue(prod, entangle.OptimalCHSHSettings())
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(res.S), entangle.ClassicalCHSHBound+eps)
	assert.False(t, res.Violated)

	// A second, non-canonical setting for good measure.
	res, err = an.CHSHValue(prod, entangle.CHSHSettings{
		A: 0.3, APrime: 1.1, B: -0.7, BPrime: 2.0,
	})
	require.NoError(t, err)
	assert.False(t, res.Violated)
}

// TestCHSH_MaximallyMixedIsFlat: the maximally mixed state has zero
// correlators at every angle.
func TestCHSH_MaximallyMixedIsFlat(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)

	mixed, err := quantum.MaximallyMixed(4)
	require.NoError(t, err)
	res, err := an.CHSHValue(mixed, entangle.OptimalCHSHSettings())
	require.NoError(t, err)

	assert.InDelta(t, 0.0, res.S, eps)
	assert.InDelta(t, 0.0, res.EAB, eps)
	assert.False(t, res.Violated)
}

// TestCHSH_SuboptimalSettings: aligned settings collapse the Bell-state
// combination to S = 2, exactly at the classical boundary.
func TestCHSH_SuboptimalSettings(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 2)
	require.NoError(t, err)
	_, bell := bellPair(t)

	// a = b and a′ = b′: E(a,b) = E(a′,b′) = 1, cross terms cos(a−a′).
	res, err := an.CHSHValue(bell, entangle.CHSHSettings{
		A: 0, APrime: 0, B: 0, BPrime: 0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.S, eps)
	assert.False(t, res.Violated)
}

// TestCHSH_RequiresTwoQubits: non-2⊗2 analyzers reject the operation.
func TestCHSH_RequiresTwoQubits(t *testing.T) {
	an, err := entangle.NewAnalyzer(2, 3)
	require.NoError(t, err)

	mixed, err := quantum.MaximallyMixed(6)
	require.NoError(t, err)
	_, err = an.CHSHValue(mixed, entangle.OptimalCHSHSettings())
	assert.ErrorIs(t, err, entangle.ErrUnsupportedDimension)
}

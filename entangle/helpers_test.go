// SPDX-License-Identifier: MIT

// Shared fixtures for the entangle test suite.

package entangle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qentangle/qmath"
	"github.com/katalvlaran/qentangle/quantum"
)

// realAmp wraps a real amplitude at default precision.
func realAmp(x float64) *qmath.Complex { return qmath.New(x, 0, 0) }

// wernerState builds p·|Φ⁺⟩⟨Φ⁺| + (1−p)·I/4.
func wernerState(t *testing.T, p float64) *quantum.DensityMatrix {
	t.Helper()

	_, bell, err := quantum.BellState(quantum.BellPhiPlus)
	require.NoError(t, err)
	signal, err := bell.Scale(realAmp(p))
	require.NoError(t, err)

	mixed, err := quantum.MaximallyMixed(4)
	require.NoError(t, err)
	noise, err := mixed.Scale(realAmp(1 - p))
	require.NoError(t, err)

	rho, err := signal.Add(noise)
	require.NoError(t, err)

	return rho
}

// SPDX-License-Identifier: MIT

// Package entangle: the bipartite Analyzer — partial trace/transpose and
// entropy-based measures over a fixed dimA⊗dimB split. Every operation
// validates the invariant dimA·dimB == ρ.Dimension() up front and returns
// ErrIncompatibleBipartition on violation; nothing is silently truncated.

package entangle

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qentangle/quantum"
)

// Analyzer holds a fixed bipartition [dimA, dimB] and the numeric policy
// applied to every operation. Construct via NewAnalyzer; the zero value
// is not usable.
type Analyzer struct {
	dimA, dimB int
	tol        float64
	maxSweeps  int
	logger     zerolog.Logger
}

// NewAnalyzer builds an analyzer for the bipartition dimA⊗dimB.
// Returns quantum.ErrInvalidDimension when either factor is < 1.
func NewAnalyzer(dimA, dimB int, opts ...Option) (*Analyzer, error) {
	if dimA < 1 || dimB < 1 {
		return nil, quantum.ErrInvalidDimension
	}
	o := gatherOptions(opts...)

	return &Analyzer{
		dimA:      dimA,
		dimB:      dimB,
		tol:       o.tol,
		maxSweeps: o.maxSweeps,
		logger:    o.logger,
	}, nil
}

// DimA reports the first factor dimension.
func (a *Analyzer) DimA() int { return a.dimA }

// DimB reports the second factor dimension.
func (a *Analyzer) DimB() int { return a.dimB }

// checkState validates the bipartition contract for a density matrix.
func (a *Analyzer) checkState(rho *quantum.DensityMatrix) error {
	if rho == nil {
		return ErrNilMatrix
	}
	if rho.Dimension() != a.dimA*a.dimB {
		return ErrIncompatibleBipartition
	}

	return nil
}

// checkVector validates the bipartition contract for a state vector.
func (a *Analyzer) checkVector(v *quantum.StateVector) error {
	if v == nil {
		return ErrNilMatrix
	}
	if v.Dimension() != a.dimA*a.dimB {
		return ErrIncompatibleBipartition
	}

	return nil
}

// PartialTraceB reduces ρ to subsystem A by tracing out B.
func (a *Analyzer) PartialTraceB(rho *quantum.DensityMatrix) (*quantum.DensityMatrix, error) {
	if err := a.checkState(rho); err != nil {
		return nil, err
	}

	return rho.PartialTraceB(a.dimA, a.dimB)
}

// PartialTraceA reduces ρ to subsystem B by tracing out A.
func (a *Analyzer) PartialTraceA(rho *quantum.DensityMatrix) (*quantum.DensityMatrix, error) {
	if err := a.checkState(rho); err != nil {
		return nil, err
	}

	return rho.PartialTraceA(a.dimA, a.dimB)
}

// PartialTransposeB transposes only the B sub-indices of ρ:
// result[(iA,iB)][(jA,jB)] = ρ[(iA,jB)][(jA,iB)]. The output remains
// Hermitian; its spectrum drives the PPT criterion and negativity.
func (a *Analyzer) PartialTransposeB(rho *quantum.DensityMatrix) (*quantum.DensityMatrix, error) {
	if err := a.checkState(rho); err != nil {
		return nil, err
	}

	out, err := quantum.NewDensityMatrix(rho.Dimension())
	if err != nil {
		return nil, err
	}
	for iA := 0; iA < a.dimA; iA++ {
		for iB := 0; iB < a.dimB; iB++ {
			for jA := 0; jA < a.dimA; jA++ {
				for jB := 0; jB < a.dimB; jB++ {
					z, err := rho.At(iA*a.dimB+jB, jA*a.dimB+iB)
					if err != nil {
						return nil, err
					}
					if err := out.SetElement(iA*a.dimB+iB, jA*a.dimB+jB, z); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return out, nil
}

// VonNeumannEntropy returns S(ρ) of the full composite state.
func (a *Analyzer) VonNeumannEntropy(rho *quantum.DensityMatrix) (float64, error) {
	if err := a.checkState(rho); err != nil {
		return 0, err
	}

	return rho.VonNeumannEntropy()
}

// EntanglementEntropy returns S(Tr_B ρ): 0 for product states and
// log₂(min(dimA,dimB)) for maximally entangled pure states.
func (a *Analyzer) EntanglementEntropy(rho *quantum.DensityMatrix) (float64, error) {
	reduced, err := a.PartialTraceB(rho)
	if err != nil {
		return 0, err
	}

	return reduced.VonNeumannEntropy()
}

// IsMaximallyEntangled reports whether the entanglement entropy reaches
// its ceiling: |S(Tr_B ρ) − log₂(min(dimA,dimB))| < tol.
func (a *Analyzer) IsMaximallyEntangled(rho *quantum.DensityMatrix) (bool, error) {
	s, err := a.EntanglementEntropy(rho)
	if err != nil {
		return false, err
	}
	ceiling := math.Log2(float64(min(a.dimA, a.dimB)))

	return math.Abs(s-ceiling) < a.tol, nil
}

// toGrid narrows a density matrix to a dense complex128 grid for the
// float64 eigen kernels. Bounds are pre-validated, so At cannot fail.
func toGrid(rho *quantum.DensityMatrix) [][]complex128 {
	n := rho.Dimension()
	out := make([][]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			z, _ := rho.At(i, j)
			out[i][j] = z.Complex128()
		}
	}

	return out
}

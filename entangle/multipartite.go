// SPDX-License-Identifier: MIT

// Package entangle: multipartite entanglement analysis.
//
// A state of n parties is genuinely multipartite entangled (GME) when it
// is entangled across EVERY bipartition of the parties. Detection here
// walks all 2^(n−1)−1 bipartitions, permutes the composite index so the
// partition becomes a contiguous A⊗B split, and applies the PPT test.
// PPT is a necessary condition for separability, so a PPT result on any
// cut rules GME out; a violation on every cut certifies it for the
// qubit counts this package targets.
//
// Index bookkeeping uses mixed-radix digit decomposition with party 0 as
// the most significant digit: basis index i of the composite space maps
// to the digit string (d₀,…,d_{n−1}) with i = Σ dₖ·Π_{l>k} dims[l].

package entangle

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qentangle/quantum"
)

// Multipartite analyzes states over an ordered list of party dimensions.
// Construct via NewMultipartite; the zero value is not usable.
type Multipartite struct {
	dims      []int
	total     int
	tol       float64
	maxSweeps int
	logger    zerolog.Logger
}

// NewMultipartite builds an analyzer for parties of the given local
// dimensions. Requires at least two parties, each of dimension ≥ 2.
func NewMultipartite(dims []int, opts ...Option) (*Multipartite, error) {
	if len(dims) < 2 {
		return nil, ErrUnsupportedDimension
	}
	total := 1
	for _, d := range dims {
		if d < 2 {
			return nil, quantum.ErrInvalidDimension
		}
		total *= d
	}
	o := gatherOptions(opts...)

	return &Multipartite{
		dims:      append([]int(nil), dims...),
		total:     total,
		tol:       o.tol,
		maxSweeps: o.maxSweeps,
		logger:    o.logger,
	}, nil
}

// Parties reports the number of subsystems.
func (m *Multipartite) Parties() int { return len(m.dims) }

// Dims returns a copy of the party dimensions.
func (m *Multipartite) Dims() []int { return append([]int(nil), m.dims...) }

func (m *Multipartite) checkState(rho *quantum.DensityMatrix) error {
	if rho == nil {
		return ErrNilMatrix
	}
	if rho.Dimension() != m.total {
		return ErrIncompatibleBipartition
	}

	return nil
}

// digits decomposes a composite basis index into per-party digits,
// party 0 most significant.
func (m *Multipartite) digits(idx int) []int {
	out := make([]int, len(m.dims))
	for k := len(m.dims) - 1; k >= 0; k-- {
		out[k] = idx % m.dims[k]
		idx /= m.dims[k]
	}

	return out
}

// compose is the inverse of digits over an arbitrary dimension order.
func compose(digs, dims []int) int {
	idx := 0
	for k, d := range digs {
		idx = idx*dims[k] + d
	}

	return idx
}

// TraceOutAllExcept traces out every party not listed in keep and
// returns the reduced state over the kept parties in ascending order.
// Keep indices outside [0, Parties()), duplicates, or an empty keep set
// are rejected with ErrIncompatibleBipartition.
func (m *Multipartite) TraceOutAllExcept(rho *quantum.DensityMatrix, keep []int) (*quantum.DensityMatrix, error) {
	if len(keep) == 0 {
		return nil, ErrIncompatibleBipartition
	}
	seen := make([]bool, len(m.dims))
	for _, k := range keep {
		if k < 0 || k >= len(m.dims) || seen[k] {
			return nil, ErrIncompatibleBipartition
		}
		seen[k] = true
	}

	return m.reduceTo(rho, keep)
}

// reduceTo is TraceOutAllExcept without the keep-set validation; internal
// callers pass indices they generated themselves.
func (m *Multipartite) reduceTo(rho *quantum.DensityMatrix, keep []int) (*quantum.DensityMatrix, error) {
	if err := m.checkState(rho); err != nil {
		return nil, err
	}

	kept := append([]int(nil), keep...)
	sort.Ints(kept)
	keptDims := make([]int, len(kept))
	keptTotal := 1
	for i, k := range kept {
		keptDims[i] = m.dims[k]
		keptTotal *= m.dims[k]
	}
	inKeep := make([]bool, len(m.dims))
	for _, k := range kept {
		inKeep[k] = true
	}

	out, err := quantum.NewDensityMatrix(keptTotal)
	if err != nil {
		return nil, err
	}

	// For every full-index pair whose traced digits coincide, accumulate
	// into the kept-index pair.
	for i := 0; i < m.total; i++ {
		di := m.digits(i)
		for j := 0; j < m.total; j++ {
			dj := m.digits(j)

			same := true
			for k := range m.dims {
				if !inKeep[k] && di[k] != dj[k] {
					same = false
					break
				}
			}
			if !same {
				continue
			}

			ki := make([]int, 0, len(kept))
			kj := make([]int, 0, len(kept))
			for _, k := range kept {
				ki = append(ki, di[k])
				kj = append(kj, dj[k])
			}
			a, b := compose(ki, keptDims), compose(kj, keptDims)

			zi, err := rho.At(i, j)
			if err != nil {
				return nil, err
			}
			cur, err := out.At(a, b)
			if err != nil {
				return nil, err
			}
			if err := out.SetElement(a, b, cur.Add(zi)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// permuteToFront reorders the composite index so the parties in group
// (ascending) become the leading factor. Returns the permuted state and
// the dimension of the leading factor.
func (m *Multipartite) permuteToFront(rho *quantum.DensityMatrix, group []int) (*quantum.DensityMatrix, int, error) {
	inGroup := make([]bool, len(m.dims))
	for _, k := range group {
		inGroup[k] = true
	}

	order := make([]int, 0, len(m.dims))
	for k := range m.dims {
		if inGroup[k] {
			order = append(order, k)
		}
	}
	for k := range m.dims {
		if !inGroup[k] {
			order = append(order, k)
		}
	}

	newDims := make([]int, len(order))
	dimA := 1
	for i, k := range order {
		newDims[i] = m.dims[k]
		if inGroup[k] {
			dimA *= m.dims[k]
		}
	}

	perm := make([]int, m.total)
	for i := 0; i < m.total; i++ {
		d := m.digits(i)
		nd := make([]int, len(order))
		for pos, k := range order {
			nd[pos] = d[k]
		}
		perm[i] = compose(nd, newDims)
	}

	out, err := quantum.NewDensityMatrix(m.total)
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < m.total; i++ {
		for j := 0; j < m.total; j++ {
			z, err := rho.At(i, j)
			if err != nil {
				return nil, 0, err
			}
			if err := out.SetElement(perm[i], perm[j], z); err != nil {
				return nil, 0, err
			}
		}
	}

	return out, dimA, nil
}

// IsGME reports genuine multipartite entanglement: the state must
// violate PPT across every bipartition of the parties. Party 0 anchors
// one side, so each unordered bipartition is visited exactly once.
func (m *Multipartite) IsGME(rho *quantum.DensityMatrix) (bool, error) {
	if err := m.checkState(rho); err != nil {
		return false, err
	}

	n := len(m.dims)
	for mask := 0; mask < (1<<(n-1))-1; mask++ {
		group := []int{0}
		for k := 1; k < n; k++ {
			if mask&(1<<(k-1)) != 0 {
				group = append(group, k)
			}
		}

		permuted, dimA, err := m.permuteToFront(rho, group)
		if err != nil {
			return false, err
		}
		an, err := NewAnalyzer(dimA, m.total/dimA,
			WithTolerance(m.tol), WithMaxSweeps(m.maxSweeps))
		if err != nil {
			return false, err
		}
		sep, err := an.IsSeparable(permuted)
		if err != nil {
			return false, err
		}
		if sep {
			m.logger.Debug().Ints("group", group).Msg("entangle: PPT cut found, not GME")
			return false, nil
		}
	}

	return true, nil
}

// Concurrence computes the multipartite concurrence: the mean over
// parties k of √(2·(1 − Tr ρₖ²)). GHZ states of any width score 1; the
// three-qubit W state scores √8/3.
//
// rho must be a PURE state (ρ = |ψ⟩⟨ψ|, e.g. via quantum.FromStateVector):
// on mixed input the marginal impurity also counts classical mixing, so
// the value is not an entanglement measure there.
func (m *Multipartite) Concurrence(rho *quantum.DensityMatrix) (float64, error) {
	if err := m.checkState(rho); err != nil {
		return 0, err
	}

	sum := 0.0
	for k := range m.dims {
		reduced, err := m.reduceTo(rho, []int{k})
		if err != nil {
			return 0, err
		}
		sum += math.Sqrt(math.Max(2*(1-reduced.Purity()), 0))
	}

	return sum / float64(len(m.dims)), nil
}

// ThreeTangle computes the residual tangle of a three-qubit pure state
// via the Coffman–Kundu–Wootters monogamy relation:
//
//	τ = max(0, 4·det(ρ_A) − C²_AB − C²_AC).
//
// GHZ(3) scores 1, W(3) scores 0. Requires dims = [2,2,2] and a pure
// input; mixed ρ needs a convex-roof extension this package does not
// attempt.
func (m *Multipartite) ThreeTangle(v *quantum.StateVector) (float64, error) {
	if len(m.dims) != 3 || m.dims[0] != 2 || m.dims[1] != 2 || m.dims[2] != 2 {
		return 0, ErrUnsupportedDimension
	}
	if v == nil {
		return 0, ErrNilMatrix
	}
	if v.Dimension() != 8 {
		return 0, ErrIncompatibleBipartition
	}

	rho, err := quantum.FromStateVector(v)
	if err != nil {
		return 0, err
	}

	// 4·det(ρ_A) is the squared concurrence of A with the rest, C²_{A(BC)}.
	rhoA, err := m.reduceTo(rho, []int{0})
	if err != nil {
		return 0, err
	}
	detA, err := det2(rhoA)
	if err != nil {
		return 0, err
	}

	pair, err := NewAnalyzer(2, 2, WithTolerance(m.tol), WithMaxSweeps(m.maxSweeps))
	if err != nil {
		return 0, err
	}

	rhoAB, err := m.reduceTo(rho, []int{0, 1})
	if err != nil {
		return 0, err
	}
	cAB, err := pair.Concurrence(rhoAB)
	if err != nil {
		return 0, err
	}

	rhoAC, err := m.reduceTo(rho, []int{0, 2})
	if err != nil {
		return 0, err
	}
	cAC, err := pair.Concurrence(rhoAC)
	if err != nil {
		return 0, err
	}

	tau := 4*detA - cAB*cAB - cAC*cAC
	if tau < 0 {
		tau = 0
	}

	m.logger.Debug().Float64("tangle", tau).Msg("entangle: three-tangle")

	return tau, nil
}

// det2 returns the determinant of a Hermitian 2×2 density matrix; the
// result is real up to floating error.
func det2(rho *quantum.DensityMatrix) (float64, error) {
	a, err := rho.At(0, 0)
	if err != nil {
		return 0, err
	}
	b, err := rho.At(0, 1)
	if err != nil {
		return 0, err
	}
	c, err := rho.At(1, 0)
	if err != nil {
		return 0, err
	}
	d, err := rho.At(1, 1)
	if err != nil {
		return 0, err
	}

	z := a.Complex128()*d.Complex128() - b.Complex128()*c.Complex128()

	return real(z), nil
}

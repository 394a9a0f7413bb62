// SPDX-License-Identifier: MIT

// Package entangle quantifies and certifies entanglement of the states
// built by package quantum, over bipartite splits and full multipartite
// systems.
//
// 🚀 What is entangle?
//
//	The analysis layer of qentangle:
//	  • Analyzer        — fixed dimA⊗dimB bipartition: partial trace &
//	    transpose, entanglement entropy, maximal-entanglement check
//	  • measures        — Wootters concurrence, negativity, logarithmic
//	    negativity, entanglement of formation, PPT separability
//	  • Schmidt         — exact decomposition of pure states with rank,
//	    coefficients and both orthonormal bases
//	  • CHSH            — Bell-inequality evaluation at arbitrary x–z
//	    settings, with the canonical Tsirelson-saturating angles built in
//	  • witnesses       — projector witnesses W = α·I − |t⟩⟨t| with the
//	    separability bound α taken from the target's Schmidt spectrum
//	  • Multipartite    — GME detection across every bipartition,
//	    multipartite concurrence, exact three-qubit tangle
//
// ✨ Design rules:
//   - Bipartition first: every Analyzer operation validates
//     dimA·dimB == dim(ρ) and fails with ErrIncompatibleBipartition —
//     no silent reshaping.
//   - Exact spectra: eigen-decompositions run a deterministic complex
//     Hermitian Jacobi sweep; non-convergence is ErrEigenFailed, never a
//     silent approximation.
//   - Two-qubit-only measures (concurrence, CHSH, three-tangle) refuse
//     other dimensions with ErrUnsupportedDimension instead of guessing.
//   - PPT is reported for what it is: exact for 2⊗2 and 2⊗3, a
//     necessary condition elsewhere.
//
// ⚙️ Usage:
//
//	v, rho, err := quantum.BellState(quantum.BellPhiPlus)
//	if err != nil { ... }
//	an, _ := entangle.NewAnalyzer(2, 2)
//	c, _ := an.Concurrence(rho)               // 1.0
//	res, _ := an.CHSHValue(rho, entangle.OptimalCHSHSettings())
//	fmt.Println(res.S, res.Violated)          // 2.828…, true
//	dec, _ := an.SchmidtDecompose(v)          // rank 2, σ = {1/√2, 1/√2}
//
// Performance:
//
//   - Eigen kernel: O(sweeps·d³) time, O(d²) space per decomposition
//   - IsGME: 2^(n−1)−1 bipartitions, each one PPT spectrum
//
// See example_test.go for worked Bell/GHZ/W walkthroughs.
package entangle

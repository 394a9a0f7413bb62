// SPDX-License-Identifier: MIT

// Package qentangle is a quantum-state and entanglement-analysis toolkit:
// exact state algebra over arbitrary-precision amplitudes, plus the
// standard bipartite and multipartite entanglement measures.
//
// 🚀 What is qentangle?
//
//	A library of value-object quantum states and analyzers:
//		• qmath    — arbitrary-precision complex arithmetic on big.Float
//		• quantum  — StateVector, DensityMatrix, the QuantumState façade,
//		  Bell/GHZ/W factories, Pauli operators, QFT, measurement,
//		  lossless serialization & content hashing
//		• entangle — bipartite Analyzer (partial trace/transpose, Schmidt,
//		  concurrence, negativity, CHSH, witnesses) and Multipartite
//		  (GME detection, multipartite concurrence, three-tangle)
//		• audit    — tamper-evident hash chain over state operations
//
// ✨ Why choose qentangle?
//
//   - Exact where it matters — amplitudes live on big.Float; float64 is
//     entered only at the spectral kernels, and the entry is documented
//   - Explicit numeric policy — tolerances, precision, sweep budgets and
//     random sources are all injected options, never hidden globals
//   - Fail-fast contracts — sentinel errors matched via errors.Is;
//     panics only on programmer error in option constructors
//   - Honest diagnostics — PPT is reported with its exact domain,
//     eigensolver non-convergence surfaces instead of approximating
//
// Under the hood, everything is organized under four subpackages:
//
//	qmath/    — Complex on *big.Float: Add, Mul, Div, Abs, polar form,
//	            decimal round-trips
//	quantum/  — states and operations; the only nondeterminism is
//	            Measure, and its randomness is injectable
//	entangle/ — bipartite & multipartite entanglement analysis
//	audit/    — append-only BLAKE2b hash chain, plugs into
//	            quantum.WithAuditSink
//
// ⚙️ Quick start:
//
//	v, rho, err := quantum.BellState(quantum.BellPhiPlus)
//	if err != nil { ... }
//	an, _ := entangle.NewAnalyzer(2, 2)
//	c, _ := an.Concurrence(rho)    // 1.0 — maximally entangled
//	s, _ := an.SchmidtDecompose(v) // rank 2, σ = {1/√2, 1/√2}
//
// See the package-level doc.go files and example_test.go files for
// guided tours of each layer.
package qentangle

// SPDX-License-Identifier: MIT

package entangle_test

import (
	"fmt"

	"github.com/katalvlaran/qentangle/entangle"
	"github.com/katalvlaran/qentangle/quantum"
)

// ExampleAnalyzer_Concurrence measures the entanglement of a Bell pair.
func ExampleAnalyzer_Concurrence() {
	_, rho, err := quantum.BellState(quantum.BellPhiPlus)
	if err != nil {
		fmt.Println("bell:", err)
		return
	}

	an, err := entangle.NewAnalyzer(2, 2)
	if err != nil {
		fmt.Println("analyzer:", err)
		return
	}

	c, err := an.Concurrence(rho)
	if err != nil {
		fmt.Println("concurrence:", err)
		return
	}
	fmt.Printf("concurrence: %.2f\n", c)

	// Output:
	// concurrence: 1.00
}

// ExampleAnalyzer_CHSHValue demonstrates a maximal Bell-inequality
// violation at the canonical settings.
func ExampleAnalyzer_CHSHValue() {
	_, rho, err := quantum.BellState(quantum.BellPhiPlus)
	if err != nil {
		fmt.Println("bell:", err)
		return
	}

	an, err := entangle.NewAnalyzer(2, 2)
	if err != nil {
		fmt.Println("analyzer:", err)
		return
	}

	res, err := an.CHSHValue(rho, entangle.OptimalCHSHSettings())
	if err != nil {
		fmt.Println("chsh:", err)
		return
	}
	fmt.Printf("S = %.3f, violated = %v\n", res.S, res.Violated)

	// Output:
	// S = 2.828, violated = true
}

// ExampleAnalyzer_SchmidtDecompose factors a Bell pair into its Schmidt
// form.
func ExampleAnalyzer_SchmidtDecompose() {
	v, _, err := quantum.BellState(quantum.BellPhiPlus)
	if err != nil {
		fmt.Println("bell:", err)
		return
	}

	an, err := entangle.NewAnalyzer(2, 2)
	if err != nil {
		fmt.Println("analyzer:", err)
		return
	}

	dec, err := an.SchmidtDecompose(v)
	if err != nil {
		fmt.Println("schmidt:", err)
		return
	}
	fmt.Printf("rank %d, σ₁ = %.4f, entropy = %.2f\n",
		dec.Rank, dec.Coefficients[0], dec.Entropy)

	// Output:
	// rank 2, σ₁ = 0.7071, entropy = 1.00
}

// ExampleMultipartite_ThreeTangle contrasts the GHZ and W entanglement
// classes through the residual tangle.
func ExampleMultipartite_ThreeTangle() {
	m, err := entangle.NewMultipartite([]int{2, 2, 2})
	if err != nil {
		fmt.Println("multipartite:", err)
		return
	}

	ghz, _, err := quantum.GHZState(3)
	if err != nil {
		fmt.Println("ghz:", err)
		return
	}
	w, _, err := quantum.WState(3)
	if err != nil {
		fmt.Println("w:", err)
		return
	}

	tGHZ, err := m.ThreeTangle(ghz)
	if err != nil {
		fmt.Println("tangle:", err)
		return
	}
	tW, err := m.ThreeTangle(w)
	if err != nil {
		fmt.Println("tangle:", err)
		return
	}
	fmt.Printf("GHZ tangle %.2f, W tangle %.2f\n", tGHZ, tW)

	// Output:
	// GHZ tangle 1.00, W tangle 0.00
}

// SPDX-License-Identifier: MIT

// Package quantum_test provides benchmarks for the hot state kernels,
// using deterministic random fill for vectors and matrices.
package quantum_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qentangle/qmath"
	"github.com/katalvlaran/qentangle/quantum"
)

// benchDims are the state dimensions to benchmark.
var benchDims = []int{4, 8, 16}

// sinks to defeat dead-code elimination
var (
	sinkV *quantum.StateVector
	sinkM *quantum.DensityMatrix
	sinkS []float64
	sinkF float64
	sinkH string
)

// randState builds a normalized random pure state of the given dimension.
func randState(b *testing.B, dim int, seed int64) *quantum.StateVector {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	amps := make([]*qmath.Complex, dim)
	for i := range amps {
		amps[i] = qmath.New(rng.NormFloat64(), rng.NormFloat64(), 0)
	}
	v, err := quantum.NewStateVectorFrom(amps)
	if err != nil {
		b.Fatal(err)
	}
	n, err := v.Normalize()
	if err != nil {
		b.Fatal(err)
	}
	return n
}

// randDensity builds a random pure density matrix of the given dimension.
func randDensity(b *testing.B, dim int, seed int64) *quantum.DensityMatrix {
	b.Helper()
	rho, err := quantum.FromStateVector(randState(b, dim, seed))
	if err != nil {
		b.Fatal(err)
	}
	return rho
}

func BenchmarkStateVector_TensorProduct(b *testing.B) {
	b.ReportAllocs()
	for _, d := range benchDims {
		b.Run(fmt.Sprintf("d=%d", d), func(b *testing.B) {
			v := randState(b, d, 1337)
			w := randState(b, d, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := v.TensorProduct(w)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = out
			}
		})
	}
}

func BenchmarkDensityMatrix_Mul(b *testing.B) {
	b.ReportAllocs()
	for _, d := range benchDims {
		b.Run(fmt.Sprintf("d=%d", d), func(b *testing.B) {
			x := randDensity(b, d, 11)
			y := randDensity(b, d, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := x.Mul(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = out
			}
		})
	}
}

func BenchmarkDensityMatrix_Eigenvalues(b *testing.B) {
	b.ReportAllocs()
	for _, d := range benchDims {
		b.Run(fmt.Sprintf("d=%d", d), func(b *testing.B) {
			rho, err := quantum.MaximallyMixed(d)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vals, err := rho.Eigenvalues()
				if err != nil {
					b.Fatal(err)
				}
				sinkS = vals
			}
		})
	}
}

func BenchmarkDensityMatrix_VonNeumannEntropy(b *testing.B) {
	b.ReportAllocs()
	rho, err := quantum.MaximallyMixed(8)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := rho.VonNeumannEntropy()
		if err != nil {
			b.Fatal(err)
		}
		sinkF = s
	}
}

func BenchmarkApplyQFT(b *testing.B) {
	b.ReportAllocs()
	for _, d := range []int{8, 64, 256} {
		b.Run(fmt.Sprintf("d=%d", d), func(b *testing.B) {
			v := randState(b, d, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := quantum.ApplyQFT(v)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = out
			}
		})
	}
}

func BenchmarkStateVector_ContentHash(b *testing.B) {
	b.ReportAllocs()
	v := randState(b, 16, 99)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := v.ContentHash()
		if err != nil {
			b.Fatal(err)
		}
		sinkH = h
	}
}

// SPDX-License-Identifier: MIT

// Package qmath provides an arbitrary-precision complex scalar built on
// math/big, used as the amplitude type throughout qentangle.
//
// 🚀 What is qmath?
//
//	A small, allocation-explicit complex-arithmetic layer:
//	  • Complex — a value with *big.Float real/imaginary parts
//	  • construction from float64, *big.Float, polar form, decimal strings
//	  • Add / Sub / Mul / Div / Conj / Neg / Scale, all non-mutating
//	  • AbsSq / Abs (square root at full mantissa precision)
//	  • exact decimal-string round-trips for lossless serialization
//
// ✨ Design rules:
//   - Every operation returns a fresh *Complex; receivers are never mutated.
//   - Precision (in bits) is fixed at construction and propagates through
//     arithmetic via big.Float semantics; DefaultPrecision is 128.
//   - Division by (exact) zero is a contract error: ErrDivisionByZero.
//   - Comparisons are tolerance-based (Equal, IsZero) — never bitwise.
//
// ⚙️ Usage:
//
//	z := qmath.New(1, -2, qmath.DefaultPrecision)
//	w := qmath.FromPolar(1, math.Pi/4, qmath.DefaultPrecision)
//	p := z.Mul(w)            // fresh value
//	m := p.Abs()             // *big.Float magnitude
//
// Complexity: all operations are O(1) in elements and O(prec) in bit work.
package qmath

// SPDX-License-Identifier: MIT
// Package qmath: the Complex value type and its arithmetic kernels.
// All kernels are non-mutating: each returns a freshly allocated *Complex
// (or *big.Float) and leaves the operands untouched. Precision follows
// big.Float semantics: the result precision is the larger of the operand
// precisions, so mixed-precision arithmetic never silently truncates.

package qmath

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultPrecision is the default mantissa precision, in bits, used by
// constructors that are not given an explicit precision. 128 bits keeps
// roughly 38 decimal digits — comfortably past float64 — while keeping
// per-operation cost trivial for the matrix sizes this library targets.
const DefaultPrecision uint = 128

// Complex is a complex number with arbitrary-precision real and imaginary
// parts. The zero value is NOT usable; construct via New, FromBig, Zero,
// One, I, FromPolar or ParseDecimal.
type Complex struct {
	re *big.Float // real part; never nil after construction
	im *big.Float // imaginary part; never nil after construction
}

// New builds a Complex from float64 parts at the given precision in bits.
// prec == 0 selects DefaultPrecision.
func New(re, im float64, prec uint) *Complex {
	if prec == 0 {
		prec = DefaultPrecision
	}

	return &Complex{
		re: new(big.Float).SetPrec(prec).SetFloat64(re),
		im: new(big.Float).SetPrec(prec).SetFloat64(im),
	}
}

// FromBig copies the given parts into a fresh Complex. The inputs are
// deep-copied; later mutation of re/im does not affect the result.
func FromBig(re, im *big.Float) *Complex {
	return &Complex{
		re: new(big.Float).Copy(re),
		im: new(big.Float).Copy(im),
	}
}

// Zero returns 0+0i at the given precision (0 ⇒ DefaultPrecision).
func Zero(prec uint) *Complex { return New(0, 0, prec) }

// One returns 1+0i at the given precision (0 ⇒ DefaultPrecision).
func One(prec uint) *Complex { return New(1, 0, prec) }

// I returns 0+1i at the given precision (0 ⇒ DefaultPrecision).
func I(prec uint) *Complex { return New(0, 1, prec) }

// FromPolar builds r·(cos θ + i·sin θ) at the given precision.
// The trigonometric evaluation is performed in float64 (math.Cos/math.Sin)
// before widening, so the phase accuracy is float64-bounded even when
// prec exceeds 53 bits. Exact magnitudes (r) are preserved at full width.
func FromPolar(r, theta float64, prec uint) *Complex {
	return New(r*math.Cos(theta), r*math.Sin(theta), prec)
}

// ParseDecimal builds a Complex from decimal-string parts (the format
// emitted by DecimalParts). Returns ErrParse when either string is not a
// valid decimal float. prec == 0 selects DefaultPrecision.
func ParseDecimal(re, im string, prec uint) (*Complex, error) {
	if prec == 0 {
		prec = DefaultPrecision
	}

	r, _, err := big.ParseFloat(re, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("real %q: %w", re, ErrParse)
	}
	i, _, err := big.ParseFloat(im, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("imag %q: %w", im, ErrParse)
	}

	return &Complex{re: r, im: i}, nil
}

// Real returns a copy of the real part.
func (z *Complex) Real() *big.Float { return new(big.Float).Copy(z.re) }

// Imag returns a copy of the imaginary part.
func (z *Complex) Imag() *big.Float { return new(big.Float).Copy(z.im) }

// Prec reports the mantissa precision of the real part, in bits.
// Both parts always share one precision under this package's constructors.
func (z *Complex) Prec() uint { return z.re.Prec() }

// Copy returns a deep copy of z.
func (z *Complex) Copy() *Complex {
	return &Complex{
		re: new(big.Float).Copy(z.re),
		im: new(big.Float).Copy(z.im),
	}
}

// Add returns z + w.
func (z *Complex) Add(w *Complex) *Complex {
	return &Complex{
		re: new(big.Float).Add(z.re, w.re),
		im: new(big.Float).Add(z.im, w.im),
	}
}

// Sub returns z − w.
func (z *Complex) Sub(w *Complex) *Complex {
	return &Complex{
		re: new(big.Float).Sub(z.re, w.re),
		im: new(big.Float).Sub(z.im, w.im),
	}
}

// Mul returns z · w using the textbook (ac−bd, ad+bc) expansion.
func (z *Complex) Mul(w *Complex) *Complex {
	ac := new(big.Float).Mul(z.re, w.re)
	bd := new(big.Float).Mul(z.im, w.im)
	ad := new(big.Float).Mul(z.re, w.im)
	bc := new(big.Float).Mul(z.im, w.re)

	return &Complex{
		re: ac.Sub(ac, bd),
		im: ad.Add(ad, bc),
	}
}

// Div returns z / w, or ErrDivisionByZero when w is exactly zero.
// Computed as z·conj(w) / |w|².
func (z *Complex) Div(w *Complex) (*Complex, error) {
	den := w.AbsSq()
	if den.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	num := z.Mul(w.Conj())

	return &Complex{
		re: num.re.Quo(num.re, den),
		im: num.im.Quo(num.im, den),
	}, nil
}

// Conj returns the complex conjugate of z.
func (z *Complex) Conj() *Complex {
	return &Complex{
		re: new(big.Float).Copy(z.re),
		im: new(big.Float).Neg(z.im),
	}
}

// Neg returns −z.
func (z *Complex) Neg() *Complex {
	return &Complex{
		re: new(big.Float).Neg(z.re),
		im: new(big.Float).Neg(z.im),
	}
}

// Scale returns f · z for a real factor f.
func (z *Complex) Scale(f *big.Float) *Complex {
	return &Complex{
		re: new(big.Float).Mul(z.re, f),
		im: new(big.Float).Mul(z.im, f),
	}
}

// AbsSq returns |z|² = re² + im² as a fresh *big.Float.
func (z *Complex) AbsSq() *big.Float {
	r2 := new(big.Float).Mul(z.re, z.re)
	i2 := new(big.Float).Mul(z.im, z.im)

	return r2.Add(r2, i2)
}

// Abs returns |z| = √(re² + im²) as a fresh *big.Float.
func (z *Complex) Abs() *big.Float {
	sq := z.AbsSq()
	if sq.Sign() == 0 {
		return sq // √0 without invoking the root kernel
	}

	return new(big.Float).Sqrt(sq)
}

// Complex128 narrows z to complex128 precision. Use only where float64
// numerics are explicitly acceptable (eigensolvers, entropy evaluation).
func (z *Complex) Complex128() complex128 {
	re, _ := z.re.Float64()
	im, _ := z.im.Float64()

	return complex(re, im)
}

// Equal reports whether z and w agree within eps component-wise.
// eps must be ≥ 0; a zero eps demands exact big.Float equality.
func (z *Complex) Equal(w *Complex, eps float64) bool {
	tol := new(big.Float).SetPrec(z.Prec()).SetFloat64(eps)
	dr := new(big.Float).Sub(z.re, w.re)
	di := new(big.Float).Sub(z.im, w.im)

	return dr.Abs(dr).Cmp(tol) <= 0 && di.Abs(di).Cmp(tol) <= 0
}

// IsZero reports whether |re| ≤ eps and |im| ≤ eps.
func (z *Complex) IsZero(eps float64) bool {
	return z.Equal(Zero(z.Prec()), eps)
}

// String renders z as "(re+imi)" with shortest-unique decimal digits,
// e.g. "(0.5-0.5i)". Intended for logs and test failure messages only;
// lossless output belongs to DecimalParts.
func (z *Complex) String() string {
	im := z.im.Text('g', 10)
	if z.im.Sign() >= 0 {
		im = "+" + im
	}

	return fmt.Sprintf("(%s%si)", z.re.Text('g', 10), im)
}

// DecimalParts renders both parts as decimal strings with enough digits to
// reconstruct the stored value at the same precision via ParseDecimal.
// The digit count is derived from the mantissa width (bits·log₁₀2, plus
// guard digits), so the round-trip is lossless at equal precision.
func (z *Complex) DecimalParts() (re, im string) {
	d := decimalDigits(z.Prec())

	return z.re.Text('e', d), z.im.Text('e', d)
}

// decimalDigits maps mantissa bits to decimal digits with two guard digits.
func decimalDigits(prec uint) int {
	return int(math.Ceil(float64(prec)*math.Ln2/math.Ln10)) + 2
}

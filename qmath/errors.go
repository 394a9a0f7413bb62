// SPDX-License-Identifier: MIT
// Package qmath: sentinel error set. All public functions return these
// sentinels (optionally wrapped with fmt.Errorf("...: %w")); callers match
// them via errors.Is. Panics are reserved for programmer errors in option
// constructors, never for user-triggered conditions.

package qmath

import "errors"

var (
	// ErrDivisionByZero is returned by Div when the divisor is exactly zero
	// (both parts have Sign() == 0). Near-zero divisors are NOT rejected;
	// tolerance policy belongs to the caller.
	ErrDivisionByZero = errors.New("qmath: division by zero")

	// ErrParse is returned by ParseDecimal when a component string is not a
	// valid decimal floating-point number.
	ErrParse = errors.New("qmath: cannot parse decimal component")
)

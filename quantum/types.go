// SPDX-License-Identifier: MIT

// Package quantum: collaborator interfaces shared across the package.
// The core stays purely computational: both interfaces below are optional
// observers supplied through options, and every operation behaves
// identically when they are absent.

package quantum

// Rand is the random source consumed by Measure. It is satisfied by
// *math/rand.Rand, so tests inject rand.New(rand.NewSource(seed)) for
// reproducible collapse outcomes. Implementations must return values in
// [0, 1).
type Rand interface {
	Float64() float64
}

// Sink receives audit events emitted by constructive and mutating
// operations. The hash argument is the 64-character hexadecimal content
// hash of the state involved (see StateVector.ContentHash), stable under
// structural equality. Implementations own chaining, storage, and
// ordering; the core only emits.
type Sink interface {
	Record(op, hash string)
}

// Audit operation tags passed to Sink.Record. Kept as constants so sinks
// can dispatch without magic strings.
const (
	OpConstruct = "construct"
	OpNormalize = "normalize"
	OpMeasure   = "measure"
)

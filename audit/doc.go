// SPDX-License-Identifier: MIT

// Package audit provides a tamper-evident, append-only log of state
// operations.
//
// 🚀 What is audit?
//
//	A hash chain over the events package quantum emits:
//	  • Chain   — append-only log satisfying quantum.Sink
//	  • Record  — one entry: operation tag, state content hash, UUID,
//	    and a BLAKE2b-256 link to the previous record
//	  • Verify  — full-chain integrity walk; any edit, drop or reorder
//	    of history is reported at the first broken link
//
// ⚙️ Usage:
//
//	chain := audit.NewChain(zerolog.Nop())
//	v, _, err := quantum.BellState(quantum.BellPhiPlus,
//	    quantum.WithAuditSink(chain))
//	if err != nil { ... }
//	_ = v
//	if err := chain.Verify(); err != nil { ... }
//
// The chain records WHAT happened, keyed by content hash; it stores no
// amplitudes, so logs stay small and shareable.
package audit

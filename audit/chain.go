// SPDX-License-Identifier: MIT

// Package audit: tamper-evident operation chain.
//
// Each record links to its predecessor through a BLAKE2b-256 chain hash
// over (PrevHash ‖ Op ‖ StateHash ‖ Seq), so editing, dropping or
// reordering any historical record breaks verification of every record
// after it. Records carry a UUID for external correlation; the UUID is
// deliberately excluded from the chain hash so regenerating IDs cannot
// forge history.

package audit

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
)

// Record is one immutable chain entry.
type Record struct {
	Seq       int       // position in the chain, 0-based
	ID        uuid.UUID // correlation ID, not part of the chain hash
	Op        string    // operation tag (quantum.OpConstruct, …)
	StateHash string    // content hash of the state involved
	PrevHash  string    // ChainHash of the previous record; genesisHash for Seq 0
	ChainHash string    // BLAKE2b-256 over PrevHash‖Op‖StateHash‖Seq
}

// genesisHash anchors the first record. A fixed non-empty constant keeps
// "empty chain" and "chain starting from empty string" distinguishable.
const genesisHash = "qentangle-audit-genesis"

// Chain is an append-only audit log. It satisfies quantum.Sink, so it
// plugs straight into quantum.WithAuditSink. Safe for concurrent use.
type Chain struct {
	mu      sync.Mutex
	records []Record
	logger  zerolog.Logger
}

// NewChain returns an empty chain logging advisory events to l.
// Pass zerolog.Nop() to silence it.
func NewChain(l zerolog.Logger) *Chain {
	return &Chain{logger: l}
}

// Record appends an entry for op over the state identified by stateHash.
// This is the quantum.Sink entry point; Append returns the created
// record when the caller wants it.
func (c *Chain) Record(op, stateHash string) {
	c.Append(op, stateHash)
}

// Append links a new record to the chain tail and returns a copy of it.
func (c *Chain) Append(op, stateHash string) Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := genesisHash
	if n := len(c.records); n > 0 {
		prev = c.records[n-1].ChainHash
	}

	rec := Record{
		Seq:       len(c.records),
		ID:        uuid.New(),
		Op:        op,
		StateHash: stateHash,
		PrevHash:  prev,
	}
	rec.ChainHash = chainHash(rec)
	c.records = append(c.records, rec)

	c.logger.Debug().
		Int("seq", rec.Seq).
		Str("op", rec.Op).
		Str("chain_hash", rec.ChainHash).
		Msg("audit: record appended")

	return rec
}

// chainHash computes BLAKE2b-256 over the linked fields of a record.
// Seq is encoded as fixed-width big-endian so "1"+"23" and "12"+"3"
// style ambiguities cannot occur.
func chainHash(r Record) string {
	h, _ := blake2b.New256(nil) // nil key never errors

	h.Write([]byte(r.PrevHash))
	h.Write([]byte{0})
	h.Write([]byte(r.Op))
	h.Write([]byte{0})
	h.Write([]byte(r.StateHash))
	h.Write([]byte{0})

	var seq [8]byte
	binary.BigEndian.PutUint64(seq[:], uint64(r.Seq))
	h.Write(seq[:])

	return hex.EncodeToString(h.Sum(nil))
}

// Len reports the number of records.
func (c *Chain) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.records)
}

// Records returns a snapshot copy of the chain.
func (c *Chain) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Record(nil), c.records...)
}

// Verify walks the chain and recomputes every link. Returns nil for an
// intact chain (including the empty one) and a descriptive error naming
// the first broken record otherwise.
func (c *Chain) Verify() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := genesisHash
	for i, rec := range c.records {
		if rec.Seq != i {
			return fmt.Errorf("audit: record %d: sequence is %d", i, rec.Seq)
		}
		if rec.PrevHash != prev {
			return fmt.Errorf("audit: record %d: broken link", i)
		}
		if chainHash(rec) != rec.ChainHash {
			return fmt.Errorf("audit: record %d: chain hash mismatch", i)
		}
		prev = rec.ChainHash
	}

	return nil
}

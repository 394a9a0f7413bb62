// SPDX-License-Identifier: MIT

package audit

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qentangle/quantum"
)

// TestChain_AppendLinks: records link hash-to-hash and sequence densely.
func TestChain_AppendLinks(t *testing.T) {
	c := NewChain(zerolog.Nop())

	r0 := c.Append(quantum.OpConstruct, "hash-a")
	r1 := c.Append(quantum.OpNormalize, "hash-b")
	r2 := c.Append(quantum.OpMeasure, "hash-c")

	assert.Equal(t, 0, r0.Seq, "first record is Seq 0")
	assert.Equal(t, genesisHash, r0.PrevHash, "first record anchors to genesis")
	assert.Equal(t, r0.ChainHash, r1.PrevHash, "second record links to first")
	assert.Equal(t, r1.ChainHash, r2.PrevHash, "third record links to second")
	assert.Equal(t, 3, c.Len())

	require.NoError(t, c.Verify(), "freshly built chain verifies")
}

// TestChain_VerifyEmpty: the empty chain is trivially intact.
func TestChain_VerifyEmpty(t *testing.T) {
	c := NewChain(zerolog.Nop())
	assert.NoError(t, c.Verify())
}

// TestChain_IDsExcludedFromHash: regenerating a record's UUID must not
// affect verification — only the linked fields are hashed.
func TestChain_IDsExcludedFromHash(t *testing.T) {
	c := NewChain(zerolog.Nop())
	c.Append(quantum.OpConstruct, "hash-a")
	c.Append(quantum.OpMeasure, "hash-b")

	c.records[1].ID = c.records[0].ID
	assert.NoError(t, c.Verify(), "UUID is correlation metadata, not chained")
}

// TestChain_VerifyDetectsTamper: editing any chained field of a
// historical record breaks verification.
func TestChain_VerifyDetectsTamper(t *testing.T) {
	build := func() *Chain {
		c := NewChain(zerolog.Nop())
		c.Append(quantum.OpConstruct, "hash-a")
		c.Append(quantum.OpNormalize, "hash-b")
		c.Append(quantum.OpMeasure, "hash-c")
		return c
	}

	t.Run("op edited", func(t *testing.T) {
		c := build()
		c.records[1].Op = "forged"
		assert.Error(t, c.Verify())
	})

	t.Run("state hash edited", func(t *testing.T) {
		c := build()
		c.records[0].StateHash = "forged"
		assert.Error(t, c.Verify())
	})

	t.Run("record dropped", func(t *testing.T) {
		c := build()
		c.records = append(c.records[:1], c.records[2:]...)
		assert.Error(t, c.Verify())
	})

	t.Run("records swapped", func(t *testing.T) {
		c := build()
		c.records[0], c.records[1] = c.records[1], c.records[0]
		assert.Error(t, c.Verify())
	})
}

// TestChain_RecordsSnapshot: Records hands out a copy, not the backing
// slice.
func TestChain_RecordsSnapshot(t *testing.T) {
	c := NewChain(zerolog.Nop())
	c.Append(quantum.OpConstruct, "hash-a")

	snap := c.Records()
	snap[0].StateHash = "mutated"

	assert.NoError(t, c.Verify(), "mutating the snapshot leaves the chain intact")
}

// TestChain_AsQuantumSink: the chain plugs into quantum.WithAuditSink and
// captures construction events end to end.
func TestChain_AsQuantumSink(t *testing.T) {
	c := NewChain(zerolog.Nop())

	_, _, err := quantum.BellState(quantum.BellPhiPlus, quantum.WithAuditSink(c))
	require.NoError(t, err)

	require.Greater(t, c.Len(), 0, "construction emits at least one event")
	for _, rec := range c.Records() {
		assert.Equal(t, quantum.OpConstruct, rec.Op)
		assert.Len(t, rec.StateHash, 64, "content hashes are 64 hex chars")
	}
	assert.NoError(t, c.Verify())
}

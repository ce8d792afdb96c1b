// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/dowscoin/dows/chaincfg"
)

// HeaderCtx is the minimal view of a block-index entry the difficulty
// engine needs. It lets GetNextWorkRequired and CalculateNextWorkRequired
// be exercised against any ancestor-chain representation a caller already
// has, without this package dictating block-index storage.
type HeaderCtx interface {
	// Height returns the entry's height in the chain.
	Height() int32
	// Time returns the entry's block timestamp, Unix seconds.
	Time() int64
	// Bits returns the entry's compact-encoded target.
	Bits() uint32
	// Parent returns the entry immediately preceding this one, or nil
	// if this entry has no known parent (the genesis block).
	Parent() HeaderCtx
}

// BlockIndexEntry is a minimal, immutable in-memory HeaderCtx
// implementation, useful for building a synthetic ancestor chain in tests
// and in the CLI demonstrator without pulling in a full chain database.
type BlockIndexEntry struct {
	height int32
	time   int64
	bits   uint32
	parent *BlockIndexEntry
}

// NewBlockIndexEntry constructs a BlockIndexEntry. parent may be nil for
// a chain's genesis entry.
func NewBlockIndexEntry(height int32, t int64, bits uint32, parent *BlockIndexEntry) *BlockIndexEntry {
	return &BlockIndexEntry{height: height, time: t, bits: bits, parent: parent}
}

// Height implements HeaderCtx.
func (e *BlockIndexEntry) Height() int32 { return e.height }

// Time implements HeaderCtx.
func (e *BlockIndexEntry) Time() int64 { return e.time }

// Bits implements HeaderCtx.
func (e *BlockIndexEntry) Bits() uint32 { return e.bits }

// Parent implements HeaderCtx. It returns a true nil interface (not a nil
// *BlockIndexEntry boxed in a non-nil interface) when there is no parent,
// so callers can compare the result against nil directly.
func (e *BlockIndexEntry) Parent() HeaderCtx {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// AncestorAndAverageDifficulty walks back from tip to the entry at
// targetHeight (inclusive of both ends) and returns that ancestor
// together with the average of every visited entry's decoded target.
// It panics via assert if the chain ends before reaching targetHeight,
// which indicates a caller-constructed ancestor chain shorter than the
// window the parameters demand — a chain-structure violation, not a
// recoverable input error.
func AncestorAndAverageDifficulty(tip HeaderCtx, targetHeight int32, params *chaincfg.Params) (HeaderCtx, *big.Int) {
	assert(tip != nil, "AncestorAndAverageDifficulty: nil tip")
	assert(targetHeight >= 0 && targetHeight <= tip.Height(),
		"target height %d out of range for tip height %d", targetHeight, tip.Height())

	sum := new(big.Int)
	count := int64(0)
	cur := tip
	for {
		assert(cur != nil, "ancestor chain ended before reaching height %d", targetHeight)
		sum.Add(sum, CompactToBig(cur.Bits()))
		count++
		if cur.Height() == targetHeight {
			return cur, sum.Div(sum, big.NewInt(count))
		}
		cur = cur.Parent()
	}
}

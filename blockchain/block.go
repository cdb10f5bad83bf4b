// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"sync"

	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/havenchain/havencore/wire"
)

// Block wraps a wire.BlockHeader with the chain-position metadata spec.md
// §3 attaches to it once a block is accepted: its height, its cumulative
// chain work, and the transaction set the header's Merkle root commits to.
// It is the Haven analogue of the teacher's chainutil.Block, flattened to
// carry the header directly rather than a serialized wire.MsgBlock.
type Block struct {
	header *wire.BlockHeader
	txs    []*wire.MsgTx
	height int32
	work   *big.Int

	hashOnce sync.Once
	hash     chainhash.Hash
}

// NewBlock creates a Block from a header and its transaction set. Height and
// chain work are left zero until AttachTo records the block's position
// relative to a parent.
func NewBlock(header *wire.BlockHeader, txs []*wire.MsgTx) *Block {
	return &Block{
		header: header,
		txs:    txs,
		height: 0,
		work:   big.NewInt(0),
	}
}

// NewBlockAt reconstructs a Block with an already-known height and chain
// work, the form a ChainReader backed by persistent storage uses to
// rehydrate a block without replaying AttachTo from genesis on every
// restart.
func NewBlockAt(header *wire.BlockHeader, txs []*wire.MsgTx, height int32, work *big.Int) *Block {
	return &Block{
		header: header,
		txs:    txs,
		height: height,
		work:   work,
	}
}

// Header returns the block's header.
func (b *Block) Header() *wire.BlockHeader {
	return b.header
}

// Transactions returns the block's transaction set.
func (b *Block) Transactions() []*wire.MsgTx {
	return b.txs
}

// Hash returns the block's hash, computed once and cached thereafter. Header
// returns the underlying *wire.BlockHeader, so nothing prevents a caller from
// mutating it after Hash has already cached an answer; Validator.CheckHash
// is the guard against exactly that staleness.
func (b *Block) Hash() chainhash.Hash {
	b.hashOnce.Do(func() {
		b.hash = b.header.BlockHash()
	})
	return b.hash
}

// Height returns the block's height in the chain it was attached to.
func (b *Block) Height() int32 {
	return b.height
}

// ChainWork returns the cumulative work of the chain ending at this block.
func (b *Block) ChainWork() *big.Int {
	return b.work
}

// AttachTo records b's position as the immediate successor of parent: its
// height becomes parent.Height()+1 and its chain work becomes parent's
// chain work plus b's own proof-of-work contribution. AttachTo is
// idempotent -- calling it again with the same parent recomputes the same
// values -- matching spec.md §3's "chain work accumulates" invariant
// without requiring the caller to maintain a separate running total.
func (b *Block) AttachTo(parent *Block) {
	b.height = parent.height + 1
	own := CalcWork(powBits(b.header))
	b.work = new(big.Int).Add(parent.work, own)
}

// powBits returns the difficulty target a block's own proof-of-work is
// measured against: the AuxPoW parent header's Bits when merge-mined,
// otherwise the block's own Bits, per spec.md §4.4.
func powBits(h *wire.BlockHeader) uint32 {
	if h.HasAuxPowFlag() && h.AuxPow != nil {
		return h.AuxPow.ParentBlock.Bits
	}
	return h.Bits
}

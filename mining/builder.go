// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining assembles candidate blocks ready for proof-of-work and
// hands them to an external Miner to solve, the division of labor spec.md
// §4.8 describes: the Builder owns everything about a candidate block
// except discovering the winning nonce.
package mining

import (
	"context"
	"fmt"
	"time"

	"github.com/havenchain/havencore/blockchain"
	"github.com/havenchain/havencore/chaincfg"
	"github.com/havenchain/havencore/wire"
)

// Miner discovers a nonce satisfying target for header, the external
// collaborator spec.md §4.8 names as "Solve(header, target) -> nonce."
// Implementations may run arbitrarily long searches and must respect
// ctx cancellation.
type Miner interface {
	Solve(ctx context.Context, header *wire.BlockHeader, target []byte) (uint32, bool, error)
}

// Builder assembles candidate blocks for a single network, consulting a
// ChainReader for the parent context the way the teacher's BlkTmplGenerator
// consults a BlockChain.
type Builder struct {
	reader       blockchain.ChainReader
	CoinbaseAddr []byte // PkScript paid the block reward; a placeholder script if nil
}

// NewBuilder constructs a Builder backed by reader.
func NewBuilder(reader blockchain.ChainReader) *Builder {
	return &Builder{reader: reader}
}

// PrepareNextBlock assembles an unsolved candidate block extending the
// current chain tip: a coinbase transaction paying CalcBlockSubsidy(height),
// the caller-supplied non-coinbase transactions, and a header carrying the
// resulting Merkle root, the required next difficulty, and the timestamp
// pickTimestamp chooses -- everything CheckBlockContext/CheckBlockSanity will later verify,
// except the nonce.
func (b *Builder) PrepareNextBlock(ctx context.Context, txs []*wire.MsgTx, extraNonce uint64, blockTime ...time.Time) (*wire.BlockHeader, []*wire.MsgTx, error) {
	tip, err := b.reader.TopBlock(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("prepare next block: %w", err)
	}
	params := b.reader.Params()
	nextHeight := tip.Height() + 1

	coinbase := b.buildCoinbase(nextHeight, extraNonce, params)
	allTxs := make([]*wire.MsgTx, 0, len(txs)+1)
	allTxs = append(allTxs, coinbase)
	allTxs = append(allTxs, txs...)

	now, err := b.pickTimestamp(ctx, tip, blockTime)
	if err != nil {
		return nil, nil, fmt.Errorf("prepare next block: %w", err)
	}

	bits, err := blockchain.CalcNextRequiredDifficulty(ctx, b.reader, now)
	if err != nil {
		return nil, nil, fmt.Errorf("prepare next block: %w", err)
	}

	merkleRoot := blockchain.CalcMerkleRootForTxs(allTxs)
	parentHash := tip.Hash()

	header := wire.NewBlockHeader(1, &parentHash, &merkleRoot, bits, 0)
	header.Timestamp = now

	log.Debugf("prepared candidate block at height %d with %d transactions", nextHeight, len(allTxs))

	return header, allTxs, nil
}

// pickTimestamp implements spec.md §4.7's "time = time ?? max(median + 1,
// wall_clock_seconds())": an explicit blockTime (at most one, the variadic
// form standing in for an optional argument) is used verbatim; otherwise the
// candidate's timestamp is the later of one second past the chain's median
// time past and the wall clock, so it can never be rejected by
// CheckBlockContext's "timestamp must exceed median time past" rule.
func (b *Builder) pickTimestamp(ctx context.Context, tip *blockchain.Block, blockTime []time.Time) (time.Time, error) {
	if len(blockTime) > 0 {
		return blockTime[0], nil
	}

	median, err := blockchain.CalcMedianTimePast(ctx, b.reader, tip.Height())
	if err != nil {
		return time.Time{}, err
	}

	floor := median.Add(time.Second)
	now := time.Now()
	if now.After(floor) {
		return now, nil
	}
	return floor, nil
}

// buildCoinbase constructs the mandatory first transaction of a candidate
// block: one null-previous-outpoint input carrying the block height (BIP
// 34-style, so coinbases at different heights never collide) and an extra
// nonce for external miners to vary (so successive candidates at the same
// height differ), and one output paying
// CalcBlockSubsidy(height, params) to CoinbaseAddr.
func (b *Builder) buildCoinbase(height int32, extraNonce uint64, params *chaincfg.Params) *wire.MsgTx {
	sig := encodeHeightAndNonce(height, extraNonce)

	pkScript := b.CoinbaseAddr
	if len(pkScript) == 0 {
		pkScript = []byte{0x51} // OP_TRUE placeholder; address/script selection is out of scope
	}

	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{
			{
				PreviousOutPoint: wire.OutPoint{Index: wire.CoinbaseOutpointIndex},
				SignatureScript:  sig,
				Sequence:         0xffffffff,
			},
		},
		TxOut: []*wire.TxOut{
			{
				Value:    blockchain.CalcBlockSubsidy(height, params),
				PkScript: pkScript,
			},
		},
		LockTime: 0,
	}
}

// encodeHeightAndNonce packs height and an arbitrary extra nonce into a
// coinbase script_sig, the conventional way successive candidate blocks at
// the same height (each probing a different extra nonce) stay distinct
// even before a winning header nonce is found.
func encodeHeightAndNonce(height int32, extraNonce uint64) []byte {
	buf := make([]byte, 0, 13)
	buf = append(buf, 0x03,
		byte(height), byte(height>>8), byte(height>>16))
	buf = append(buf, 0x08)
	for i := 0; i < 8; i++ {
		buf = append(buf, byte(extraNonce>>(8*uint(i))))
	}
	return buf
}

// MineNextBlock prepares a candidate block and delegates solving it to
// miner, retrying with a fresh timestamp/extra nonce whenever miner reports
// no solution was found within its own search bound -- the retry loop
// spec.md §4.8 describes as "Builder regenerates a candidate whenever the
// previous one's search space is exhausted."
func (b *Builder) MineNextBlock(ctx context.Context, miner Miner, txs []*wire.MsgTx) (*wire.BlockHeader, []*wire.MsgTx, error) {
	var extraNonce uint64
	for {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		header, allTxs, err := b.PrepareNextBlock(ctx, txs, extraNonce)
		if err != nil {
			return nil, nil, err
		}

		target := blockchain.CompactToBigUnsigned(header.Bits).Bytes()
		nonce, found, err := miner.Solve(ctx, header, target)
		if err != nil {
			return nil, nil, err
		}
		if found {
			header.Nonce = nonce
			return header, allTxs, nil
		}

		extraNonce++
	}
}

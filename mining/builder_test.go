// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/havenchain/havencore/blockchain"
	"github.com/havenchain/havencore/chaincfg"
	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/havenchain/havencore/wire"
	"github.com/stretchr/testify/require"
)

// fakeReader is a single-block ChainReader test double: enough for Builder
// to compute a next-height candidate without exercising the full retarget
// machinery, which blockchain's own tests cover.
type fakeReader struct {
	params *chaincfg.Params
	tip    *blockchain.Block
}

func newFakeReader() *fakeReader {
	params := &chaincfg.Params{
		PowLimit:          blockchain.CompactToBigUnsigned(0x1d01ffff),
		PowLimitBits:      0x1d01ffff,
		TargetTimespan:    2016 * 10 * time.Minute,
		TargetSpacing:     10 * time.Minute,
		BlocksPerRetarget: 2016,
		SubsidyHalvingInterval: 210000,
		AltChain:          false,
		AuxPoWChainID:     0x48,
	}

	var zero chainhash.Hash
	genesisHeader := wire.NewBlockHeader(1, &zero, &zero, params.PowLimitBits, 0)
	genesisHeader.Timestamp = time.Unix(1700000000, 0)
	genesis := blockchain.NewBlockAt(genesisHeader, nil, 0, blockchain.CalcWork(params.PowLimitBits))

	return &fakeReader{params: params, tip: genesis}
}

func (f *fakeReader) Params() *chaincfg.Params { return f.params }

func (f *fakeReader) TopBlock(ctx context.Context) (*blockchain.Block, error) {
	return f.tip, nil
}

func (f *fakeReader) BlockByHeight(ctx context.Context, height int32) (*blockchain.Block, error) {
	if height == f.tip.Height() {
		return f.tip, nil
	}
	return nil, fmt.Errorf("no block at height %d", height)
}

func (f *fakeReader) BlocksByHeights(ctx context.Context, heights []int32) ([]*blockchain.Block, error) {
	out := make([]*blockchain.Block, len(heights))
	for i, h := range heights {
		blk, err := f.BlockByHeight(ctx, h)
		if err != nil {
			return nil, err
		}
		out[i] = blk
	}
	return out, nil
}

func payTx(seed byte) *wire.MsgTx {
	var prev chainhash.Hash
	prev[0] = seed
	return &wire.MsgTx{
		TxIn:  []*wire.TxIn{{PreviousOutPoint: wire.OutPoint{Hash: prev, Index: 0}}},
		TxOut: []*wire.TxOut{{Value: 100}},
	}
}

func TestPrepareNextBlockBuildsConsistentCandidate(t *testing.T) {
	reader := newFakeReader()
	b := NewBuilder(reader)

	extra := []*wire.MsgTx{payTx(1), payTx(2)}
	header, txs, err := b.PrepareNextBlock(context.Background(), extra, 0)
	require.NoError(t, err)

	require.Len(t, txs, 3)
	require.True(t, txs[0].IsCoinBase())

	tipHash := reader.tip.Hash()
	require.True(t, header.PrevBlock.IsEqual(&tipHash))

	wantRoot := blockchain.CalcMerkleRootForTxs(txs)
	require.True(t, header.MerkleRoot.IsEqual(&wantRoot))

	require.Equal(t, reader.params.PowLimitBits, header.Bits,
		"non-boundary height carries the tip's own bits forward")
}

func TestPrepareNextBlockDistinctExtraNonceChangesCoinbase(t *testing.T) {
	reader := newFakeReader()
	b := NewBuilder(reader)

	header0, txs0, err := b.PrepareNextBlock(context.Background(), nil, 0)
	require.NoError(t, err)
	header1, txs1, err := b.PrepareNextBlock(context.Background(), nil, 1)
	require.NoError(t, err)

	require.NotEqual(t, txs0[0].TxIn[0].SignatureScript, txs1[0].TxIn[0].SignatureScript)
	require.NotEqual(t, header0.MerkleRoot, header1.MerkleRoot)
}

// instantMiner always reports success on its first call, returning a fixed
// nonce -- enough to exercise MineNextBlock's happy path without a real
// proof-of-work search.
type instantMiner struct {
	nonce uint32
}

func (m *instantMiner) Solve(ctx context.Context, header *wire.BlockHeader, target []byte) (uint32, bool, error) {
	return m.nonce, true, nil
}

// exhaustedThenInstantMiner reports failure on its first call and success on
// its second, exercising MineNextBlock's extra-nonce retry loop.
type exhaustedThenInstantMiner struct {
	calls int
}

func (m *exhaustedThenInstantMiner) Solve(ctx context.Context, header *wire.BlockHeader, target []byte) (uint32, bool, error) {
	m.calls++
	if m.calls == 1 {
		return 0, false, nil
	}
	return 99, true, nil
}

func TestMineNextBlockReturnsSolvedHeader(t *testing.T) {
	reader := newFakeReader()
	b := NewBuilder(reader)

	header, txs, err := b.MineNextBlock(context.Background(), &instantMiner{nonce: 42}, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(42), header.Nonce)
	require.Len(t, txs, 1)
}

func TestMineNextBlockRetriesOnNoSolution(t *testing.T) {
	reader := newFakeReader()
	b := NewBuilder(reader)

	miner := &exhaustedThenInstantMiner{}
	header, _, err := b.MineNextBlock(context.Background(), miner, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(99), header.Nonce)
	require.Equal(t, 2, miner.calls)
}

func TestPrepareNextBlockHonorsExplicitTimestamp(t *testing.T) {
	reader := newFakeReader()
	b := NewBuilder(reader)

	explicit := time.Unix(1800000000, 0)
	header, _, err := b.PrepareNextBlock(context.Background(), nil, 0, explicit)
	require.NoError(t, err)
	require.True(t, header.Timestamp.Equal(explicit))
}

func TestPrepareNextBlockClampsTimestampAboveMedianTimePast(t *testing.T) {
	reader := newFakeReader()
	// Push the tip's timestamp far into the future so the wall clock falls
	// behind the chain's median time past, exercising the
	// max(median+1, wall_clock) clamp spec.md §4.7 requires.
	// Whole seconds, the resolution the median time past is computed at.
	future := time.Unix(time.Now().Add(365*24*time.Hour).Unix(), 0)
	reader.tip.Header().Timestamp = future
	b := NewBuilder(reader)

	header, _, err := b.PrepareNextBlock(context.Background(), nil, 0)
	require.NoError(t, err)
	require.True(t, header.Timestamp.After(future))
	require.Equal(t, future.Add(time.Second), header.Timestamp)
}

func TestMineNextBlockRespectsContextCancellation(t *testing.T) {
	reader := newFakeReader()
	b := NewBuilder(reader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := b.MineNextBlock(ctx, &exhaustedThenInstantMiner{}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

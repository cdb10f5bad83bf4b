// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/havenchain/havencore/blockchain"
	"github.com/havenchain/havencore/chaincfg"
	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// countingReader is a minimal blockchain.ChainReader test double that
// records how many times each method is invoked, so cache-hit behavior can
// be verified without a real backing store.
type countingReader struct {
	params       *chaincfg.Params
	blocks       map[int32]*blockchain.Block
	top          int32
	byHeightHits int
	topHits      int
}

func newCountingReader() *countingReader {
	return &countingReader{params: &chaincfg.MainNetParams, blocks: make(map[int32]*blockchain.Block)}
}

func (c *countingReader) Params() *chaincfg.Params { return c.params }

func (c *countingReader) TopBlock(ctx context.Context) (*blockchain.Block, error) {
	c.topHits++
	blk, ok := c.blocks[c.top]
	if !ok {
		return nil, fmt.Errorf("no top block")
	}
	return blk, nil
}

func (c *countingReader) BlockByHeight(ctx context.Context, height int32) (*blockchain.Block, error) {
	c.byHeightHits++
	blk, ok := c.blocks[height]
	if !ok {
		return nil, fmt.Errorf("no block at height %d", height)
	}
	return blk, nil
}

func (c *countingReader) BlocksByHeights(ctx context.Context, heights []int32) ([]*blockchain.Block, error) {
	out := make([]*blockchain.Block, len(heights))
	for i, h := range heights {
		blk, err := c.BlockByHeight(ctx, h)
		if err != nil {
			return nil, err
		}
		out[i] = blk
	}
	return out, nil
}

func TestCachingReaderBlockByHeightCachesAfterFirstFetch(t *testing.T) {
	backing := newCountingReader()
	var zero chainhash.Hash
	backing.blocks[0] = blockAtHeight(0, zero, 1, false)
	backing.top = 0

	reader := NewCachingReader(backing, 16)

	first, err := reader.BlockByHeight(context.Background(), 0)
	require.NoError(t, err)
	second, err := reader.BlockByHeight(context.Background(), 0)
	require.NoError(t, err)

	require.Equal(t, first.Height(), second.Height())
	require.Equal(t, 1, backing.byHeightHits, "second lookup must be served from cache")
}

func TestCachingReaderTopBlockPopulatesCache(t *testing.T) {
	backing := newCountingReader()
	var zero chainhash.Hash
	backing.blocks[3] = blockAtHeight(3, zero, 1, false)
	backing.top = 3

	reader := NewCachingReader(backing, 16)

	top, err := reader.TopBlock(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(3), top.Height())

	again, err := reader.BlockByHeight(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, int32(3), again.Height())
	require.Equal(t, 0, backing.byHeightHits, "TopBlock must have already cached height 3")
}

func TestCachingReaderBlocksByHeightsPartialCache(t *testing.T) {
	backing := newCountingReader()
	var zero chainhash.Hash
	for h := int32(0); h < 3; h++ {
		backing.blocks[h] = blockAtHeight(h, zero, int64(h), false)
	}

	reader := NewCachingReader(backing, 16)
	_, err := reader.BlockByHeight(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, backing.byHeightHits)

	blocks, err := reader.BlocksByHeights(context.Background(), []int32{0, 1, 2})
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	// Height 1 was already cached, so only heights 0 and 2 should reach
	// the backing reader on this second pass.
	require.Equal(t, 3, backing.byHeightHits)
}

func TestCachingReaderPropagatesBackingError(t *testing.T) {
	backing := newCountingReader()
	reader := NewCachingReader(backing, 16)

	_, err := reader.BlockByHeight(context.Background(), 42)
	require.Error(t, err)
}

func TestCachingReaderParamsDelegates(t *testing.T) {
	backing := newCountingReader()
	reader := NewCachingReader(backing, 16)
	require.Same(t, backing.params, reader.Params())
}

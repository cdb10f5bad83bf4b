// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainstore provides reference ChainReader implementations: a
// bounded in-memory cache suitable for wrapping any slower backing store,
// and a goleveldb-backed store suitable for tests and small deployments.
// Neither is part of the validation core itself -- spec.md §6 treats the
// chain store as an external collaborator reached only through the
// blockchain.ChainReader interface.
package chainstore

import (
	"context"
	"fmt"

	"github.com/decred/dcrd/lru"
	"github.com/havenchain/havencore/blockchain"
	"github.com/havenchain/havencore/chaincfg"
)

// CachingReader wraps another ChainReader with a bounded recently-used
// cache of blocks by height, so repeated lookups during a retarget
// walk-back or a median-time-past scan don't all reach the backing store.
type CachingReader struct {
	backing blockchain.ChainReader
	cache   *lru.Map[int32, *blockchain.Block]
}

// NewCachingReader wraps backing with an LRU cache holding up to capacity
// blocks.
func NewCachingReader(backing blockchain.ChainReader, capacity uint64) *CachingReader {
	return &CachingReader{
		backing: backing,
		cache:   lru.NewMap[int32, *blockchain.Block](capacity),
	}
}

// Params delegates to the backing reader.
func (c *CachingReader) Params() *chaincfg.Params {
	return c.backing.Params()
}

// TopBlock delegates to the backing reader and caches the result by height.
func (c *CachingReader) TopBlock(ctx context.Context) (*blockchain.Block, error) {
	blk, err := c.backing.TopBlock(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Put(blk.Height(), blk)
	return blk, nil
}

// BlockByHeight returns the cached block at height if present, otherwise
// fetches it from the backing reader and caches the result.
func (c *CachingReader) BlockByHeight(ctx context.Context, height int32) (*blockchain.Block, error) {
	if blk, ok := c.cache.Get(height); ok {
		return blk, nil
	}
	blk, err := c.backing.BlockByHeight(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("chainstore: block at height %d: %w", height, err)
	}
	c.cache.Put(height, blk)
	return blk, nil
}

// BlocksByHeights resolves each height independently through BlockByHeight
// so a span that is only partially cached still avoids re-fetching the
// cached portion.
func (c *CachingReader) BlocksByHeights(ctx context.Context, heights []int32) ([]*blockchain.Block, error) {
	blocks := make([]*blockchain.Block, len(heights))
	for i, h := range heights {
		blk, err := c.BlockByHeight(ctx, h)
		if err != nil {
			return nil, err
		}
		blocks[i] = blk
	}
	return blocks, nil
}

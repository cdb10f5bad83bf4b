// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/havenchain/havencore/chaincfg"
	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/havenchain/havencore/wire"
)

// fakeReader is a minimal in-memory ChainReader test double, standing in
// for the caching/leveldb-backed readers a real node uses. It keeps every
// block it is given by height, with no eviction.
type fakeReader struct {
	params *chaincfg.Params
	blocks map[int32]*Block
	top    int32
}

func newFakeReader(params *chaincfg.Params) *fakeReader {
	return &fakeReader{params: params, blocks: make(map[int32]*Block)}
}

// append builds a header at the next height with the given bits and
// timestamp, chains it onto the current top, and records it.
func (f *fakeReader) append(bits uint32, ts time.Time) *Block {
	var parent *Block
	if len(f.blocks) > 0 {
		parent = f.blocks[f.top]
	}

	var prevHash chainhash.Hash
	if parent != nil {
		prevHash = parent.Hash()
	}

	var root chainhash.Hash
	header := wire.NewBlockHeader(1, &prevHash, &root, bits, 0)
	header.Timestamp = ts

	blk := NewBlock(header, nil)
	if parent == nil {
		blk.height = 0
		blk.work = new(big.Int).Add(big.NewInt(0), CalcWork(bits))
	} else {
		blk.AttachTo(parent)
	}

	f.blocks[blk.Height()] = blk
	f.top = blk.Height()
	return blk
}

func (f *fakeReader) Params() *chaincfg.Params { return f.params }

func (f *fakeReader) TopBlock(ctx context.Context) (*Block, error) {
	blk, ok := f.blocks[f.top]
	if !ok {
		return nil, fmt.Errorf("no blocks")
	}
	return blk, nil
}

func (f *fakeReader) BlockByHeight(ctx context.Context, height int32) (*Block, error) {
	blk, ok := f.blocks[height]
	if !ok {
		return nil, fmt.Errorf("no block at height %d", height)
	}
	return blk, nil
}

func (f *fakeReader) BlocksByHeights(ctx context.Context, heights []int32) ([]*Block, error) {
	out := make([]*Block, len(heights))
	for i, h := range heights {
		blk, err := f.BlockByHeight(ctx, h)
		if err != nil {
			return nil, err
		}
		out[i] = blk
	}
	return out, nil
}

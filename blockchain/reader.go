// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"

	"github.com/havenchain/havencore/chaincfg"
)

// ChainReader is the lookup contract spec.md §6 describes as the
// Validator's and Builder's only external collaborator: given a height (or
// span of heights) it returns the already-accepted block(s) at that
// position, without specifying how or where they are stored. Every method
// takes a context.Context so an implementation backed by network or disk IO
// can be canceled or timed out the way the teacher's own store-facing calls
// are -- the idiomatic Go rendering of spec.md's "interleaved awaited
// lookups" concurrency model.
//
// Implementations must be safe for concurrent use; the Validator and
// Builder may call BlockByHeight and BlocksByHeights concurrently while
// validating independent candidate blocks.
type ChainReader interface {
	// Params returns the network parameters this reader's chain was
	// constructed under.
	Params() *chaincfg.Params

	// TopBlock returns the current chain tip. It returns an error if the
	// chain is empty (no block has been accepted, not even genesis).
	TopBlock(ctx context.Context) (*Block, error)

	// BlockByHeight returns the block accepted at the given height. It
	// returns an error if no block exists at that height.
	BlockByHeight(ctx context.Context, height int32) (*Block, error)

	// BlocksByHeights returns the blocks accepted at each of the given
	// heights, in the same order. It is the batch form BlockByHeight's
	// single-height callers use when an operation -- such as
	// calcMedianTimePast's last-11-blocks scan -- needs a contiguous span and an implementation can
	// serve the whole span more efficiently than one lookup at a time.
	BlocksByHeights(ctx context.Context, heights []int32) ([]*Block, error)
}

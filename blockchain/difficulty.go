// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"math/big"
	"sort"
	"time"

	"github.com/havenchain/havencore/chaincfg"
)

// medianTimeBlocks is the number of preceding blocks whose timestamps are
// sorted to compute a block's median time past, the fixed window spec.md
// §4.6 specifies.
const medianTimeBlocks = 11

// CalcMedianTimePast returns the median of the timestamps of the
// medianTimeBlocks blocks ending at (and including) tipHeight, the value
// every new block's own timestamp must exceed per spec.md §4.6. It is
// exported so the Builder can pick a candidate block's timestamp
// (spec.md §4.7's "time = time ?? max(median + 1, wall_clock_seconds())")
// without duplicating the windowed lookup and sort.
func CalcMedianTimePast(ctx context.Context, reader ChainReader, tipHeight int32) (time.Time, error) {
	return calcMedianTimePast(ctx, reader, tipHeight)
}

// calcMedianTimePast is the unexported implementation CalcMedianTimePast and
// CheckBlockContext both call.
func calcMedianTimePast(ctx context.Context, reader ChainReader, tipHeight int32) (time.Time, error) {
	count := medianTimeBlocks
	if int32(count) > tipHeight+1 {
		count = int(tipHeight + 1)
	}

	heights := make([]int32, count)
	for i := 0; i < count; i++ {
		heights[i] = tipHeight - int32(count-1-i)
	}

	blocks, err := reader.BlocksByHeights(ctx, heights)
	if err != nil {
		return time.Time{}, err
	}

	timestamps := make([]int64, len(blocks))
	for i, blk := range blocks {
		timestamps[i] = blk.Header().Timestamp.Unix()
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	median := timestamps[len(timestamps)/2]
	return time.Unix(median, 0), nil
}

// CalcNextRequiredDifficulty computes the Bits value the block following
// tipHeight must carry, implementing spec.md §4.5's retarget algorithm:
// the genesis block is never retargeted, non-boundary heights simply carry
// the tip's own Bits forward, testnet may fall back to its minimum
// difficulty after a sufficiently long gap since the last block, and every
// BlocksPerRetarget-th height recomputes the target from the elapsed time
// since the last retarget boundary.
func CalcNextRequiredDifficulty(ctx context.Context, reader ChainReader, newBlockTime time.Time) (uint32, error) {
	params := reader.Params()

	tip, err := reader.TopBlock(ctx)
	if err != nil {
		return 0, err
	}
	tipHeight := tip.Height()
	nextHeight := tipHeight + 1

	if nextHeight%params.BlocksPerRetarget != 0 {
		if params.ReduceMinDifficulty {
			allowMinTime := tip.Header().Timestamp.Add(params.MinDiffReductionTime)
			if newBlockTime.After(allowMinTime) {
				return params.PowLimitBits, nil
			}
			return findPrevTestNetDifficulty(ctx, reader, tip)
		}
		return tip.Header().Bits, nil
	}

	// spec.md §4.5: anchor = height - interval + 1 (== nextHeight - interval
	// here), minus one more only once this block's own height has reached
	// FullRetargetStart. The un-corrected anchor is never touched below
	// that height -- it must not be clamped to FullRetargetStart-1, which
	// would pull the anchor forward past where the retarget window says it
	// belongs.
	anchorHeight := nextHeight - params.BlocksPerRetarget
	if tipHeight >= params.FullRetargetStart {
		anchorHeight--
	}
	if anchorHeight < 0 {
		anchorHeight = 0
	}

	anchor, err := reader.BlockByHeight(ctx, anchorHeight)
	if err != nil {
		return 0, err
	}

	actualTimespan := tip.Header().Timestamp.Sub(anchor.Header().Timestamp)
	adjustedTimespan := clampTimespan(params, actualTimespan)

	oldTarget := CompactToBig(tip.Header().Bits)
	newTarget := new(big.Int).Mul(oldTarget, big.NewInt(int64(adjustedTimespan/time.Second)))
	newTarget.Div(newTarget, big.NewInt(int64(params.TargetTimespan/time.Second)))

	if newTarget.Cmp(params.PowLimit) > 0 {
		newTarget.Set(params.PowLimit)
	}

	return BigToCompact(newTarget), nil
}

// findPrevTestNetDifficulty walks backward from tip past every block mined
// at the testnet minimum difficulty exception and every non-retarget
// boundary, returning the Bits of the most recent block that reflects a
// genuine retarget -- the testnet-only lookup spec.md §4.5 describes as
// "walk backward to the last properly retargeted block."
func findPrevTestNetDifficulty(ctx context.Context, reader ChainReader, tip *Block) (uint32, error) {
	params := reader.Params()
	cur := tip

	for cur.Height() != 0 && cur.Height()%params.BlocksPerRetarget != 0 && cur.Header().Bits == params.PowLimitBits {
		prev, err := reader.BlockByHeight(ctx, cur.Height()-1)
		if err != nil {
			return 0, err
		}
		cur = prev
	}

	return cur.Header().Bits, nil
}

// clampTimespan bounds actual within [MinRetargetTimespan, MaxRetargetTimespan]
// so a single retarget can never swing difficulty by more than a factor of
// 4 in either direction, per spec.md §4.5.
func clampTimespan(params *chaincfg.Params, actual time.Duration) time.Duration {
	min := time.Duration(params.MinRetargetTimespan()) * time.Second
	max := time.Duration(params.MaxRetargetTimespan()) * time.Second
	switch {
	case actual < min:
		return min
	case actual > max:
		return max
	default:
		return actual
	}
}

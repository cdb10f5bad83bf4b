// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameters a validator, retarget
// engine, and builder need: proof-of-work limits, retarget cadence, the
// AuxPoW configuration, and the genesis block. Everything here is data, not
// behavior -- the behavior that consumes it lives in package blockchain.
package chaincfg

import (
	"math/big"
	"time"

	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/havenchain/havencore/wire"
)

// Params groups every network-parameter accessor spec.md §6's chain-lookup
// contract names (min_diff_bits, target_timespan, target_spacing,
// is_testnet, alt_chain, aux_pow_flag, aux_pow_chain_id,
// full_retarget_start) into the single struct a ChainReader implementation
// hands back, the same bundling convention the teacher's
// blockchain.ChainCtx/HeaderCtx split uses for its *chaincfg.Params plumbed
// through BlockChain.
type Params struct {
	// Name is a human-readable network identifier, e.g. "mainnet".
	Name string

	// GenesisBlock is the block at height 0.
	GenesisBlock *wire.BlockHeader

	// GenesisHash is the cached hash of GenesisBlock.
	GenesisHash chainhash.Hash

	// PowLimit is the highest possible (easiest) proof-of-work target for
	// this network, as a 256-bit unsigned integer.
	PowLimit *big.Int

	// PowLimitBits is PowLimit's compact encoding.
	PowLimitBits uint32

	// TargetTimespan is the desired interval between difficulty
	// retargets.
	TargetTimespan time.Duration

	// TargetSpacing is the desired interval between blocks.
	TargetSpacing time.Duration

	// RetargetAdjustmentFactor records how much the difficulty may swing
	// in a single retarget. The retarget code does not read it:
	// MinRetargetTimespan and MaxRetargetTimespan use a fixed factor of 4.
	RetargetAdjustmentFactor int64

	// ReduceMinDifficulty enables the testnet special rule in spec.md
	// §4.5: after a sufficiently long gap since the last block, the next
	// block may be mined at the network's minimum difficulty.
	ReduceMinDifficulty bool

	// MinDiffReductionTime is "sufficiently long gap" above, expressed as
	// a multiple of TargetSpacing by convention (2x is the canonical
	// Bitcoin-family value).
	MinDiffReductionTime time.Duration

	// FullRetargetStart is the height at which the anchor-block
	// off-by-one correction described in spec.md §4.5 begins applying.
	// Zero applies the correction at every retarget.
	FullRetargetStart int32

	// SubsidyHalvingInterval is the number of blocks between successive
	// halvings of the coinbase subsidy (spec.md §4.7's 210000).
	SubsidyHalvingInterval int32

	// AltChain reports whether this network accepts AuxPoW blocks at
	// all. A block's AuxPoW is only "in effect" when both AltChain is
	// true and the block's own AuxPoWFlag bit is set (spec.md §4.4).
	AltChain bool

	// AuxPoWFlag is the Version bit mask identifying an AuxPoW payload.
	AuxPoWFlag int32

	// AuxPoWChainID is this network's registered merge-mining chain
	// identifier, checked against the high bits of Version.
	AuxPoWChainID int32

	// BlocksPerRetarget is TargetTimespan/TargetSpacing, the interval at
	// which CalcNextRequiredDifficulty recomputes the target rather than
	// carrying the previous block's bits forward.
	BlocksPerRetarget int32
}

// MinRetargetTimespan and MaxRetargetTimespan clamp the actual elapsed time
// used in a retarget computation to within [1/4, 4x] of TargetTimespan, the
// standard Bitcoin-family bound (spec.md §4.5).
func (p *Params) MinRetargetTimespan() int64 {
	return int64(p.TargetTimespan/time.Second) / 4
}

func (p *Params) MaxRetargetTimespan() int64 {
	return int64(p.TargetTimespan/time.Second) * 4
}

var bigOne = big.NewInt(1)

// mainPowLimit is 2^224 - 2^208, the exact target PowLimitBits 0x1d00ffff
// decodes to: a moderate starting difficulty appropriate for a new
// merge-mined network, the same order of magnitude as Bitcoin's historical
// genesis difficulty.
var mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), new(big.Int).Lsh(bigOne, 208))

// testPowLimit is 2^236 - 2^216, the exact target PowLimitBits 0x1e0fffff
// decodes to, deliberately much easier than mainnet's, consistent with
// every Bitcoin-family testnet.
var testPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), new(big.Int).Lsh(bigOne, 216))

// MainNetParams defines the parameters for Haven's production network.
var MainNetParams = Params{
	Name:                     "mainnet",
	GenesisBlock:             mainNetGenesisHeader,
	GenesisHash:              mainNetGenesisHeader.BlockHash(),
	PowLimit:                 mainPowLimit,
	PowLimitBits:             0x1d00ffff,
	TargetTimespan:           time.Hour * 24 * 14, // 2 weeks
	TargetSpacing:            time.Minute * 10,
	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      false,
	MinDiffReductionTime:     0,
	FullRetargetStart:        0,
	SubsidyHalvingInterval:   210000,
	AltChain:                 true,
	AuxPoWFlag:               wire.VersionAuxPowFlag,
	AuxPoWChainID:            0x48, // "H" for Haven
	BlocksPerRetarget:        2016,
}

// TestNetParams defines the parameters for Haven's test network, which adds
// the minimum-difficulty exception described in spec.md §4.5.
var TestNetParams = Params{
	Name:                     "testnet",
	GenesisBlock:             testNetGenesisHeader,
	GenesisHash:              testNetGenesisHeader.BlockHash(),
	PowLimit:                 testPowLimit,
	PowLimitBits:             0x1e0fffff,
	TargetTimespan:           time.Hour * 24 * 14,
	TargetSpacing:            time.Minute * 10,
	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      true,
	MinDiffReductionTime:     time.Minute * 20, // 2 * TargetSpacing
	FullRetargetStart:        0,
	SubsidyHalvingInterval:   210000,
	AltChain:                 true,
	AuxPoWFlag:               wire.VersionAuxPowFlag,
	AuxPoWChainID:            0x48,
	BlocksPerRetarget:        2016,
}

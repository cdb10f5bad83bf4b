// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/havenchain/havencore/chaincfg"

// baseSubsidy is the coinbase subsidy paid for the first
// SubsidyHalvingInterval blocks, 50 HVN expressed in Drops, per spec.md
// §4.7.
const baseSubsidy = 50 * 1e8

// CalcBlockSubsidy returns block_value(height): the coinbase subsidy a
// block at height is entitled to pay, halving every
// params.SubsidyHalvingInterval blocks until it would fall to zero, at
// which point it simply stays zero -- matching spec.md §4.7's
// 50*COIN*2^-floor(height/210000) formula, which the teacher's
// CalcBlockSubsidy computes via a right shift since the two are
// equivalent for integer division.
func CalcBlockSubsidy(height int32, params *chaincfg.Params) int64 {
	if params.SubsidyHalvingInterval == 0 {
		return baseSubsidy
	}

	shift := uint(height / params.SubsidyHalvingInterval)
	if shift >= 64 {
		return 0
	}
	return baseSubsidy >> shift
}

// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainutil holds small monetary-unit helpers shared by the builder
// and any caller that renders amounts for display.
package chainutil

const (
	// UnitsPerCent is the number of base units (Drops) in one cent of HVN.
	UnitsPerCent = 1e6

	// COIN is the number of base units (Drops) in one whole HVN. This is
	// the constant spec.md §4.7 calls COIN in block_value's formula.
	COIN = 1e8

	// MaxSupply is the maximum number of Drops that will ever exist,
	// given the halving schedule in spec.md §4.7 (50 HVN halving every
	// 210000 blocks converges to this bound).
	MaxSupply = 21e6 * COIN
)

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/havenchain/havencore/chaincfg"
	"github.com/stretchr/testify/require"
)

func subsidyParams(interval int32) *chaincfg.Params {
	return &chaincfg.Params{SubsidyHalvingInterval: interval}
}

func TestCalcBlockSubsidyGenesisEra(t *testing.T) {
	params := subsidyParams(210000)
	require.Equal(t, int64(baseSubsidy), CalcBlockSubsidy(0, params))
	require.Equal(t, int64(baseSubsidy), CalcBlockSubsidy(209999, params))
}

func TestCalcBlockSubsidyHalvesAtInterval(t *testing.T) {
	params := subsidyParams(210000)
	require.Equal(t, int64(baseSubsidy/2), CalcBlockSubsidy(210000, params))
	require.Equal(t, int64(baseSubsidy/4), CalcBlockSubsidy(420000, params))
	require.Equal(t, int64(baseSubsidy/8), CalcBlockSubsidy(630000, params))
}

func TestCalcBlockSubsidyReachesZero(t *testing.T) {
	params := subsidyParams(210000)
	// After 64 halvings the shift would overflow a uint64 right shift;
	// CalcBlockSubsidy must floor to zero instead.
	require.Equal(t, int64(0), CalcBlockSubsidy(210000*64, params))
	require.Equal(t, int64(0), CalcBlockSubsidy(210000*1000, params))
}

func TestCalcBlockSubsidyZeroIntervalNeverHalves(t *testing.T) {
	params := subsidyParams(0)
	require.Equal(t, int64(baseSubsidy), CalcBlockSubsidy(1000000, params))
}

func TestCalcBlockSubsidyMonotonicDecrease(t *testing.T) {
	params := subsidyParams(210000)
	prev := CalcBlockSubsidy(0, params)
	for _, h := range []int32{210000, 420000, 630000, 840000} {
		cur := CalcBlockSubsidy(h, params)
		require.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

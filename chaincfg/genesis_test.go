// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestGenesisHashIsDeterministic(t *testing.T) {
	a := mainNetGenesisHeader.BlockHash()
	b := mainNetGenesisHeader.BlockHash()
	require.True(t, a.IsEqual(&b))
}

func TestMainNetAndTestNetGenesisDiffer(t *testing.T) {
	mainHash := mainNetGenesisHeader.BlockHash()
	testHash := testNetGenesisHeader.BlockHash()
	require.False(t, mainHash.IsEqual(&testHash), "distinct genesis messages must produce distinct hashes")
}

func TestParamsGenesisHashMatchesCachedGenesisBlock(t *testing.T) {
	for _, params := range []Params{MainNetParams, TestNetParams} {
		got := params.GenesisBlock.BlockHash()
		require.Truef(t, got.IsEqual(&params.GenesisHash),
			"%s: genesis block hashes to %s, GenesisHash field holds %s\nblock: %s",
			params.Name, got, params.GenesisHash, spew.Sdump(params.GenesisBlock))
	}
}

func TestGenesisMerkleRootMatchesCoinbase(t *testing.T) {
	coinbase := genesisCoinbaseTx("Haven mainnet genesis")
	want := coinbase.TxHash()
	require.True(t, mainNetGenesisHeader.MerkleRoot.IsEqual(&want))
}

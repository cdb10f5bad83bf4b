// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func sampleHeader() *BlockHeader {
	prev := chainhash.Hash{1, 2, 3}
	root := chainhash.Hash{4, 5, 6}
	h := NewBlockHeader(1, &prev, &root, 0x1d00ffff, 12345)
	h.Timestamp = time.Unix(1700000000, 0)
	return h
}

func TestBlockHeaderSerializeDeserializeRoundTrip(t *testing.T) {
	h := sampleHeader()

	var buf bytes.Buffer
	require.NoError(t, h.Serialize(&buf))
	require.Equal(t, BlockHeaderLen, buf.Len())

	got := new(BlockHeader)
	require.NoError(t, got.Deserialize(&buf))

	require.Equal(t, h.Version, got.Version)
	require.True(t, h.PrevBlock.IsEqual(&got.PrevBlock))
	require.True(t, h.MerkleRoot.IsEqual(&got.MerkleRoot))
	require.Equal(t, h.Timestamp.Unix(), got.Timestamp.Unix())
	require.Equal(t, h.Bits, got.Bits)
	require.Equal(t, h.Nonce, got.Nonce)
}

func TestBlockHashIgnoresAuxPowPayload(t *testing.T) {
	h := sampleHeader()
	withoutAux := h.BlockHash()

	h.SetAuxPowFlag(true)
	h.AuxPow = &AuxPow{
		ParentBlock: *sampleHeader(),
	}
	withAux := h.BlockHash()

	require.True(t, withoutAux.IsEqual(&withAux),
		"BlockHash must be computed over the 80-byte fixed header only")
}

func TestChainIDRoundTrip(t *testing.T) {
	h := sampleHeader()
	h.SetChainID(0x48)
	require.Equal(t, int32(0x48), h.ChainID())

	h.SetAuxPowFlag(true)
	require.True(t, h.HasAuxPowFlag())
	require.Equal(t, int32(0x48), h.ChainID(), "chain id bits independent of the auxpow flag bit")
}

// TestBlockHashMatchesBitcoinGenesisVector is the golden end-to-end hash
// vector: version 1, all-zero prev-block and Merkle root, timestamp
// 1231006505, bits 0x1d00ffff, nonce 2083236893 -- the Bitcoin genesis
// header -- must hash to the known genesis hash, in internal (unreversed)
// byte order.
func TestBlockHashMatchesBitcoinGenesisVector(t *testing.T) {
	var prev, root chainhash.Hash
	h := NewBlockHeader(1, &prev, &root, 0x1d00ffff, 2083236893)
	h.Timestamp = time.Unix(1231006505, 0)

	got := h.BlockHash()
	want := "6fe28c0ab6f1b372c1a6a246ae63f74f931e8365e15a089c68d6190000000000"
	require.Equal(t, want, hex.EncodeToString(got[:]))
}

func TestSerializeFailsWithoutAuxPowPayload(t *testing.T) {
	h := sampleHeader()
	h.SetAuxPowFlag(true)
	h.AuxPow = nil

	var buf bytes.Buffer
	require.Error(t, h.Serialize(&buf))
}

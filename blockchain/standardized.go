// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/havenchain/havencore/wire"
)

// StandardizedBlock is the externally facing projection of an accepted
// block described in spec.md §5: reversed-hex hashes (the display
// convention every Bitcoin-family explorer and RPC surface uses), the
// transaction count, the serialized size (the 80-byte header, the
// transaction-count varint and the transactions; an AuxPoW payload is not
// counted), each transaction's own
// reversed-hex hash, and the flattened Merkle tree used to derive the root.
type StandardizedBlock struct {
	Hash       string   `json:"hash"`
	Version    int32    `json:"version"`
	PrevBlock  string   `json:"previousblockhash"`
	MerkleRoot string   `json:"merkleroot"`
	Time       int64    `json:"time"`
	Bits       string   `json:"bits"`
	Nonce      uint32   `json:"nonce"`
	Height     int32    `json:"height"`
	NTx        int      `json:"n_tx"`
	Size       int      `json:"size"`
	Tx         []string `json:"tx"`
	MerkleTree []string `json:"mrkl_tree"`
}

// Standardize projects block into its StandardizedBlock form.
func Standardize(block *Block) StandardizedBlock {
	header := block.Header()
	hash := block.Hash()

	txHashes := make([]string, len(block.Transactions()))
	leafHashes := make([]chainhash.Hash, len(block.Transactions()))
	size := wire.BlockHeaderLen + wire.VarIntSerializeSize(uint64(len(block.Transactions())))
	for i, tx := range block.Transactions() {
		h := tx.TxHash()
		txHashes[i] = h.String()
		leafHashes[i] = h
		size += tx.SerializeSize()
	}

	return StandardizedBlock{
		Hash:       hash.String(),
		Version:    header.Version,
		PrevBlock:  header.PrevBlock.String(),
		MerkleRoot: header.MerkleRoot.String(),
		Time:       header.Timestamp.Unix(),
		Bits:       compactHex(header.Bits),
		Nonce:      header.Nonce,
		Height:     block.Height(),
		NTx:        len(block.Transactions()),
		Size:       size,
		Tx:         txHashes,
		MerkleTree: buildMerkleHexTree(leafHashes),
	}
}

// compactHex formats a compact difficulty encoding as zero-padded hex, the
// conventional "bits" display format.
func compactHex(bits uint32) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		out[i] = hexDigits[bits&0xf]
		bits >>= 4
	}
	return string(out)
}

// buildMerkleHexTree flattens BuildMerkleTreeStore's output into the
// reversed-hex string form StandardizedBlock.MerkleTree reports.
func buildMerkleHexTree(leaves []chainhash.Hash) []string {
	store := BuildMerkleTreeStore(leaves)
	out := make([]string, 0, len(store))
	for _, h := range store {
		if h == nil {
			continue
		}
		out = append(out, h.String())
	}
	return out
}

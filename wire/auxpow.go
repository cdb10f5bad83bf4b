// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/havenchain/havencore/chaincfg/chainhash"
)

// MaxChainBranchHashes bounds the number of siblings a Merkle branch may
// carry, guarding against a maliciously oversized proof.
const MaxChainBranchHashes = 30

// MaxAuxCoinbaseTxSize bounds the serialized size of the parent chain's
// coinbase transaction accepted inside an AuxPow payload.
const MaxAuxCoinbaseTxSize = 100000

// MergeMiningTag is the literal 4-byte marker a parent-chain coinbase script
// prefixes the embedded auxiliary block hash with (spec.md §6).
var MergeMiningTag = []byte{0xFA, 0xBE, 0x6D, 0x6D}

// MerkleBranch is a Merkle inclusion proof: a sequence of sibling hashes
// plus a side mask whose bits select, from the leaf upward, whether each
// sibling combines on the left (1) or the right (0). See spec.md §4.3.
type MerkleBranch struct {
	Hashes []chainhash.Hash
	Mask   uint32
}

// Size returns the number of sibling hashes in the branch.
func (mb *MerkleBranch) Size() uint32 {
	return uint32(len(mb.Hashes))
}

// DetermineRoot folds leaf up through the branch's siblings according to
// Mask and returns the resulting root. It never mutates leaf.
func (mb *MerkleBranch) DetermineRoot(leaf *chainhash.Hash) chainhash.Hash {
	acc := *leaf
	mask := mb.Mask

	var buf [chainhash.HashSize * 2]byte
	for _, sibling := range mb.Hashes {
		if mask&1 != 0 {
			copy(buf[:chainhash.HashSize], sibling[:])
			copy(buf[chainhash.HashSize:], acc[:])
		} else {
			copy(buf[:chainhash.HashSize], acc[:])
			copy(buf[chainhash.HashSize:], sibling[:])
		}
		acc = chainhash.DoubleHashH(buf[:])
		mask >>= 1
	}
	return acc
}

// HasRoot reports whether folding leaf through the branch yields root.
func (mb *MerkleBranch) HasRoot(leaf, root *chainhash.Hash) bool {
	got := mb.DetermineRoot(leaf)
	return got.IsEqual(root)
}

func (mb *MerkleBranch) Serialize(w io.Writer) error {
	if err := WriteVarInt(w, 0, uint64(len(mb.Hashes))); err != nil {
		return err
	}
	for i := range mb.Hashes {
		if err := writeElement(w, &mb.Hashes[i]); err != nil {
			return err
		}
	}
	return writeElement(w, mb.Mask)
}

func (mb *MerkleBranch) Deserialize(r io.Reader) error {
	n, err := ReadVarInt(r, 0)
	if err != nil {
		return err
	}
	if n > MaxChainBranchHashes {
		return fmt.Errorf("wire: merkle branch too large: %d > %d", n, MaxChainBranchHashes)
	}
	mb.Hashes = make([]chainhash.Hash, n)
	for i := range mb.Hashes {
		if err := readElement(r, &mb.Hashes[i]); err != nil {
			return err
		}
	}
	return readElement(r, &mb.Mask)
}

func (mb *MerkleBranch) SerializeSize() int {
	return VarIntSerializeSize(uint64(len(mb.Hashes))) + chainhash.HashSize*len(mb.Hashes) + 4
}

// AuxPow is the auxiliary proof-of-work substructure: the parent chain's
// coinbase transaction (whose input script embeds this block's hash), the
// Merkle proof linking that coinbase to the parent block's Merkle root, the
// multi-chain aggregation branch, and the parent chain's own block header.
// See spec.md §3 "AuxPoW substructure" and §4.4.
type AuxPow struct {
	Coinbase          MsgTx
	CoinbaseBranch    MerkleBranch
	BlockchainBranch  MerkleBranch
	ParentBlock       BlockHeader
	ClaimedParentHash chainhash.Hash
}

func (ap *AuxPow) Serialize(w io.Writer) error {
	if err := ap.Coinbase.Serialize(w); err != nil {
		return err
	}
	if err := ap.CoinbaseBranch.Serialize(w); err != nil {
		return err
	}
	if err := ap.BlockchainBranch.Serialize(w); err != nil {
		return err
	}
	if err := writeElement(w, &ap.ClaimedParentHash); err != nil {
		return err
	}
	return ap.ParentBlock.SerializeHeader(w)
}

func (ap *AuxPow) Deserialize(r io.Reader) error {
	if err := ap.Coinbase.Deserialize(r); err != nil {
		return err
	}
	if err := ap.CoinbaseBranch.Deserialize(r); err != nil {
		return err
	}
	if err := ap.BlockchainBranch.Deserialize(r); err != nil {
		return err
	}
	if err := readElement(r, &ap.ClaimedParentHash); err != nil {
		return err
	}
	return readBlockHeader(r, &ap.ParentBlock)
}

func (ap *AuxPow) SerializeSize() int {
	n := chainhash.HashSize + BlockHeaderLen
	n += ap.Coinbase.SerializeSize()
	n += ap.CoinbaseBranch.SerializeSize()
	n += ap.BlockchainBranch.SerializeSize()
	return n
}

// reverse returns h with its byte order flipped, the orientation a hash is
// embedded in a coinbase script under (spec.md §6 wire formats).
func reverse(h chainhash.Hash) chainhash.Hash {
	var r chainhash.Hash
	for i := 0; i < chainhash.HashSize; i++ {
		r[i] = h[chainhash.HashSize-1-i]
	}
	return r
}

// lcgExpectedMask runs the fixed 32-bit linear-congruential generator the
// reference implementation uses to pick a deterministic slot in the
// multi-chain Merkle tree for (nonce, chainID, size). All arithmetic wraps
// at 32 bits; widening it would silently diverge from consensus (spec.md
// §9).
func lcgExpectedMask(nonce, chainID, size uint32) uint32 {
	r := nonce
	r = r*1103515245 + 12345
	r += chainID
	r = r*1103515245 + 12345
	return r % size
}

// CheckCoinbaseLink verifies that the AuxPow's coinbase transaction embeds
// auxBlockHash (reversed to the script's big-endian convention, possibly
// aggregated through BlockchainBranch first), that the coinbase proves into
// the parent block's Merkle root, and that the mask used to place this
// chain within the multi-chain aggregation tree matches the deterministic
// slot computed by lcgExpectedMask. See spec.md §4.4 "AuxPoW coinbase
// script check".
func (ap *AuxPow) CheckCoinbaseLink(auxBlockHash chainhash.Hash, chainID int32) error {
	if ap.Coinbase.SerializeSize() > MaxAuxCoinbaseTxSize {
		return fmt.Errorf("auxpow: parent coinbase too large")
	}
	if ap.BlockchainBranch.Size() > MaxChainBranchHashes {
		return fmt.Errorf("auxpow: blockchain branch too long")
	}
	if len(ap.Coinbase.TxIn) == 0 {
		return fmt.Errorf("auxpow: parent coinbase has no inputs")
	}

	coinbaseHash := ap.Coinbase.TxHash()
	if !ap.CoinbaseBranch.HasRoot(&coinbaseHash, &ap.ParentBlock.MerkleRoot) {
		return errAuxPowMerkleLink
	}

	var expected chainhash.Hash
	if ap.BlockchainBranch.Size() > 0 {
		expected = reverse(ap.BlockchainBranch.DetermineRoot(&auxBlockHash))
	} else {
		expected = reverse(auxBlockHash)
	}

	script := ap.Coinbase.TxIn[0].SignatureScript
	hashPos := bytes.Index(script, expected[:])
	if hashPos < 0 {
		return errAuxPowHashNotInScript
	}

	tagPos := bytes.Index(script, MergeMiningTag)
	if tagPos >= 0 {
		if secondPos := bytes.Index(script[tagPos+1:], MergeMiningTag); secondPos >= 0 {
			return errAuxPowHeaderDuplicated
		}
		if tagPos+len(MergeMiningTag) != hashPos {
			return errAuxPowHashNotAfterHeader
		}
	} else if hashPos > 20 {
		return errAuxPowLegacyOffset
	}

	paramsPos := hashPos + chainhash.HashSize
	if len(script)-paramsPos < 8 {
		return fmt.Errorf("auxpow: coinbase script has no room for merge-mining params")
	}

	size := binary.LittleEndian.Uint32(script[paramsPos : paramsPos+4])
	if size != 1<<ap.BlockchainBranch.Size() {
		return errAuxPowSizeMismatch
	}

	nonce := binary.LittleEndian.Uint32(script[paramsPos+4 : paramsPos+8])
	expectedMask := lcgExpectedMask(nonce, uint32(chainID), size)
	if ap.BlockchainBranch.Mask != expectedMask {
		return errAuxPowMaskMismatch
	}

	return nil
}

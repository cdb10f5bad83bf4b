// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/havenchain/havencore/wire"
)

// nextPowerOfTwo returns the smallest power of two greater than or equal to
// n, used to size the flattened tree storage the same way
// BuildMerkleTreeStore's teacher analogue does.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	exponent := 0
	for 1<<uint(exponent) < n {
		exponent++
	}
	return 1 << uint(exponent)
}

// hashMerkleBranches combines two sibling hashes into their parent via H2,
// the single node-construction step every level of the tree (and every
// branch-verification fold) reduces to.
func hashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(buf[:])
}

// BuildMerkleTreeStore builds a Merkle tree over leaves and returns it
// flattened into a single slice: level 0 (the leaves) first, then each
// successive level, with the final element being the root. An odd-sized
// level duplicates its last element to pair with itself, per spec.md §4.3.
// An empty leaf set yields a single all-zero root.
func BuildMerkleTreeStore(leaves []chainhash.Hash) []*chainhash.Hash {
	if len(leaves) == 0 {
		zero := chainhash.Hash{}
		return []*chainhash.Hash{&zero}
	}

	// The tree store is sized as if the leaf count were rounded up to
	// the next power of two and fully complete, matching the storage
	// shape used throughout the btcd-family BuildMerkleTreeStore.
	nextPoT := nextPowerOfTwo(len(leaves))
	arraySize := nextPoT*2 - 1
	merkles := make([]*chainhash.Hash, arraySize)

	for i := range leaves {
		h := leaves[i]
		merkles[i] = &h
	}

	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		var left, right *chainhash.Hash
		switch {
		case merkles[i] == nil:
			merkles[offset] = nil
		case merkles[i+1] == nil:
			left = merkles[i]
			right = merkles[i]
			h := hashMerkleBranches(left, right)
			merkles[offset] = &h
		default:
			left = merkles[i]
			right = merkles[i+1]
			h := hashMerkleBranches(left, right)
			merkles[offset] = &h
		}
		offset++
	}

	return merkles
}

// CalcMerkleRoot computes the Merkle root over leaves directly, without
// retaining the intermediate tree levels BuildMerkleTreeStore keeps around
// for branch construction.
func CalcMerkleRoot(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}
	if len(leaves) == 1 {
		return leaves[0]
	}

	level := make([]chainhash.Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		next := make([]chainhash.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashMerkleBranches(&level[i], &level[i+1]))
			} else {
				next = append(next, hashMerkleBranches(&level[i], &level[i]))
			}
		}
		level = next
	}
	return level[0]
}

// CalcMerkleRootForTxs hashes each transaction and computes the Merkle root
// over the resulting leaves, the form the Validator and Builder actually
// call with (spec.md §3's merkle_root == MerkleRoot(txs) invariant).
func CalcMerkleRootForTxs(txs []*wire.MsgTx) chainhash.Hash {
	leaves := make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		leaves[i] = tx.TxHash()
	}
	return CalcMerkleRoot(leaves)
}

// MerkleBranchForIndex derives the sibling-hash branch and mask that proves
// leaves[index] includes under CalcMerkleRoot(leaves), the construction side
// of spec.md §4.3's inclusion proof (used by property tests verifying
// wire.MerkleBranch.DetermineRoot against CalcMerkleRoot).
func MerkleBranchForIndex(leaves []chainhash.Hash, index int) wire.MerkleBranch {
	level := make([]chainhash.Hash, len(leaves))
	copy(level, leaves)

	var branch wire.MerkleBranch
	pos := index

	for len(level) > 1 {
		var siblingIdx int
		var maskBit uint32
		if pos%2 == 0 {
			siblingIdx = pos + 1
			maskBit = 0
		} else {
			siblingIdx = pos - 1
			maskBit = 1
		}
		if siblingIdx >= len(level) {
			siblingIdx = pos // odd tail: duplicate self
		}
		branch.Hashes = append(branch.Hashes, level[siblingIdx])
		branch.Mask |= maskBit << uint(len(branch.Hashes)-1)

		next := make([]chainhash.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashMerkleBranches(&level[i], &level[i+1]))
			} else {
				next = append(next, hashMerkleBranches(&level[i], &level[i]))
			}
		}
		level = next
		pos /= 2
	}

	return branch
}

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func leafFromByte(b byte) chainhash.Hash {
	var h chainhash.Hash
	h[0] = b
	return h
}

func TestCalcMerkleRootMatchesTreeStoreRoot(t *testing.T) {
	for n := 1; n <= 9; n++ {
		leaves := make([]chainhash.Hash, n)
		for i := range leaves {
			leaves[i] = leafFromByte(byte(i + 1))
		}

		calculated := CalcMerkleRoot(leaves)
		store := BuildMerkleTreeStore(leaves)
		storeRoot := store[len(store)-1]

		require.NotNil(t, storeRoot)
		require.Equal(t, calculated, *storeRoot, "size %d", n)
	}
}

func TestCalcMerkleRootEmptyIsZeroHash(t *testing.T) {
	require.Equal(t, chainhash.Hash{}, CalcMerkleRoot(nil))
}

func TestCalcMerkleRootSingleLeafIsItself(t *testing.T) {
	leaf := leafFromByte(7)
	require.Equal(t, leaf, CalcMerkleRoot([]chainhash.Hash{leaf}))
}

func TestCalcMerkleRootOddLeafDuplication(t *testing.T) {
	// Three leaves: the third is implicitly paired with itself, so the
	// root must equal the root of four leaves where the fourth is a copy
	// of the third.
	a, b, c := leafFromByte(1), leafFromByte(2), leafFromByte(3)
	three := CalcMerkleRoot([]chainhash.Hash{a, b, c})
	four := CalcMerkleRoot([]chainhash.Hash{a, b, c, c})
	require.Equal(t, four, three)
}

func TestMerkleBranchForIndexProvesInclusion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 16).Draw(t, "n")
		idx := rapid.IntRange(0, n-1).Draw(t, "idx")

		leaves := make([]chainhash.Hash, n)
		for i := range leaves {
			b := rapid.Byte().Draw(t, "leaf")
			leaves[i][0] = b
			leaves[i][1] = byte(i) // keep leaves distinct even if byte collides
		}

		root := CalcMerkleRoot(leaves)
		branch := MerkleBranchForIndex(leaves, idx)

		require.True(t, branch.HasRoot(&leaves[idx], &root))
	})
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCompactRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		compact uint32
	}{
		{"zero", 0},
		{"mainnet pow limit", 0x1d00ffff},
		{"exponent at bias", 0x03123456},
		{"exponent above bias", 0x04123456},
		{"exponent below bias, normalized mantissa", 0x01010000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := CompactToBig(tt.compact)
			got := BigToCompact(n)
			require.Equal(t, tt.compact, got)
		})
	}
}

func TestCompactToBigUnsignedIgnoresSignBit(t *testing.T) {
	const withSign = 0x03800001
	const withoutSign = 0x03000001

	signed := CompactToBig(withSign)
	require.Equal(t, -1, signed.Sign())

	unsigned := CompactToBigUnsigned(withSign)
	require.Equal(t, CompactToBig(withoutSign), unsigned)
}

func TestCalcWorkMonotonic(t *testing.T) {
	// A smaller target (harder difficulty) must yield strictly more work.
	easy := CalcWork(0x1d00ffff)
	hard := CalcWork(0x1c00ffff)
	require.Equal(t, 1, hard.Cmp(easy))
}

func TestCalcWorkZeroTarget(t *testing.T) {
	require.Equal(t, big.NewInt(0), CalcWork(0))
}

func TestHashToBigReversesByteOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var hash chainhash.Hash
		b := rapid.SliceOfN(rapid.Byte(), chainhash.HashSize, chainhash.HashSize).Draw(t, "bytes")
		copy(hash[:], b)

		n := HashToBig(&hash)

		reversed := make([]byte, chainhash.HashSize)
		for i := 0; i < chainhash.HashSize; i++ {
			reversed[i] = hash[chainhash.HashSize-1-i]
		}
		require.Equal(t, new(big.Int).SetBytes(reversed), n)
	})
}

func TestBigToCompactRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// Exponent >= compactExponentBias and a mantissa occupying the
		// full 3 bytes keeps the encoding normalized: CompactToBig never
		// discards low-order mantissa bytes, so BigToCompact can recover
		// exactly the same exponent/mantissa pair.
		exp := rapid.Uint32Range(compactExponentBias, 0x20).Draw(t, "exponent")
		mantissa := rapid.Uint32Range(0x010000, 0x7fffff).Draw(t, "mantissa")
		compact := exp<<24 | mantissa

		n := CompactToBig(compact)
		got := BigToCompact(n)
		require.Equal(t, compact, got, "round trip must be stable for a conforming encoding")
	})
}

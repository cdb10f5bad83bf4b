// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/havenchain/havencore/chaincfg/chainhash"
)

// compactExponentBias is the exponent value at which the mantissa sits
// exactly at 1x (no shifting), i.e. a 3-byte mantissa fills the target's
// low 3 bytes.
const compactExponentBias = 3

// signBit is bit 23 (the 24th bit) of a compact difficulty encoding,
// reserved by the format though Haven -- like every Bitcoin-family chain --
// never produces a negative target on the wire.
const signBit = 0x00800000

// CompactToBig converts a compact-encoded (IEEE754-float-shaped) 256-bit
// unsigned number to a *big.Int, honoring the sign bit so that retarget
// arithmetic that may transiently underflow still round-trips correctly
// (spec.md §4.1 "signed-aware" decode mode).
//
// Layout: the high 8 bits are a base-256 exponent e, bit 23 is a sign flag,
// and the low 23 bits are the mantissa m. N = (-1)^sign * m * 256^(e-3).
func CompactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	isNegative := compact&signBit != 0
	exponent := uint(compact >> 24)

	var n *big.Int
	if exponent <= compactExponentBias {
		mantissa >>= 8 * (compactExponentBias - exponent)
		n = big.NewInt(int64(mantissa))
	} else {
		n = big.NewInt(int64(mantissa))
		n.Lsh(n, 8*(exponent-compactExponentBias))
	}

	if isNegative {
		n = n.Neg(n)
	}
	return n
}

// CompactToBigUnsigned decodes compact the same way CompactToBig does but
// ignores the sign bit, matching spec.md §4.1's "unsigned" decode mode used
// whenever the result is compared directly against a hash.
func CompactToBigUnsigned(compact uint32) *big.Int {
	return CompactToBig(compact &^ signBit)
}

// BigToCompact converts a whole number to its compact representation,
// renormalizing the mantissa so it never sets the sign bit by accident
// (spec.md §4.1's "clamping mantissa below 0x800000" requirement). The
// round-trip law BigToCompact(CompactToBig(b)) == b holds for every b a
// conforming encoder can produce.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	isNegative := n.Sign() < 0
	mag := new(big.Int).Abs(n)

	var mantissa uint32
	exponent := uint(len(mag.Bytes()))
	if exponent <= compactExponentBias {
		mantissa = uint32(mag.Int64())
		mantissa <<= 8 * (compactExponentBias - exponent)
	} else {
		shifted := new(big.Int).Rsh(mag, 8*(exponent-compactExponentBias))
		mantissa = uint32(shifted.Int64())
	}

	// If the mantissa's high bit would be interpreted as the sign bit,
	// shift one more byte into the exponent to keep it clear.
	if mantissa&signBit != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent)<<24 | mantissa
	if isNegative {
		compact |= signBit
	}
	return compact
}

// HashToBig interprets hash as a 256-bit unsigned integer after reversing
// its byte order to big-endian, the reversal spec.md §4.1 requires so that
// lexicographic and numeric comparison against a target agree.
func HashToBig(hash *chainhash.Hash) *big.Int {
	var reversed chainhash.Hash
	for i := 0; i < chainhash.HashSize; i++ {
		reversed[i] = hash[chainhash.HashSize-1-i]
	}
	return new(big.Int).SetBytes(reversed[:])
}

// twoTo256 is 2^256, the numerator of the work metric.
var twoTo256 = new(big.Int).Lsh(bigOne, 256)

var bigOne = big.NewInt(1)

// CalcWork computes work(bits) = floor(2^256 / (target(bits) + 1)) as
// specified in spec.md §4.1, used to accumulate chain work for fork choice.
func CalcWork(bits uint32) *big.Int {
	target := CompactToBigUnsigned(bits)
	if target.Sign() <= 0 {
		return big.NewInt(0)
	}
	denom := new(big.Int).Add(target, bigOne)
	return new(big.Int).Div(twoTo256, denom)
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the 32-byte hash type and the double-SHA-256
// primitive used throughout the consensus core.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// HashSize is the number of bytes in a hash produced by H2.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that does not have the right number of characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is used in several of the consensus messages and common structures.
// It typically represents the double SHA-256 of data, stored in internal
// (little-endian-as-produced-by-sha256) byte order, NOT the reversed
// big-endian order used for human display or numeric comparison against a
// target.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash, matching the convention used for display and for embedding inside
// merge-mining coinbase scripts.
func (h Hash) String() string {
	var reversed Hash
	for i := 0; i < HashSize/2; i++ {
		reversed[i], reversed[HashSize-1-i] = h[HashSize-1-i], h[i]
	}
	return hex.EncodeToString(reversed[:])
}

// Bytes returns the bytes which represent the hash as a byte slice.
func (h *Hash) Bytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, h[:])
	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", nhlen, HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as the hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHash returns a new Hash from a byte slice in internal order.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

// NewHashFromStr creates a Hash from a hash string. The string should be the
// canonical hex string of a reversed (big-endian display) hash.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash to
// a destination.
func Decode(dst *Hash, src string) error {
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	var reversedHash Hash
	_, err := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	for i, b := range reversedHash[:HashSize/2] {
		reversedHash[i], reversedHash[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}
	*dst = reversedHash
	return nil
}

// Sum256 returns the plain single SHA-256 digest of data. Exposed for
// callers that need the half-hash (e.g. to compose their own doubled
// construction over streaming input).
func Sum256(data []byte) [HashSize]byte {
	return sha256.Sum256(data)
}

// DoubleHashB calculates H2(b) = SHA256(SHA256(b)) and returns it as a byte
// slice.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates H2(b) and returns it as a Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// DoubleHashRaw calculates H2 over the bytes written by f to an internal
// buffer. It is used by callers that build the hash input by serializing a
// structure through a writer, such as a block header, instead of having the
// flat byte slice on hand already.
func DoubleHashRaw(f func(w io.Writer) error) Hash {
	var buf bufWriter
	// A fixed-size serialized header is always small; grow on demand for
	// anything larger (e.g. a parent chain's coinbase transaction).
	if err := f(&buf); err != nil {
		// Every caller in this module only ever writes to an in-memory
		// buffer, which cannot fail; a failure here indicates a caller bug.
		panic(fmt.Sprintf("chainhash: DoubleHashRaw: %v", err))
	}
	return DoubleHashH(buf.b)
}

// bufWriter is a minimal growable io.Writer backed by a byte slice, used to
// avoid pulling in bytes.Buffer's extra surface for the hot hashing path.
type bufWriter struct {
	b []byte
}

func (w *bufWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

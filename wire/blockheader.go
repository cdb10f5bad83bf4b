// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/havenchain/havencore/chaincfg/chainhash"
)

const (
	// BlockHeaderLen is the number of bytes in the fixed, AuxPoW-free
	// portion of a block header: 4 (version) + 32 (prev) + 32 (merkle) +
	// 4 (time) + 4 (bits) + 4 (nonce).
	BlockHeaderLen = 80

	// MaxBlockHeaderPayload is the maximum number of bytes a bare block
	// header can occupy on the wire, not counting any AuxPoW payload.
	MaxBlockHeaderPayload = 16 + (chainhash.HashSize * 2)

	// VersionAuxPowFlag is the version bit that, when set, indicates the
	// block carries an AuxPoW payload after the base 80-byte header.
	VersionAuxPowFlag int32 = 1 << 8

	// ChainIDMask covers the bits of Version that carry the merge-mined
	// chain identifier. The high 16 bits of Version hold the chain ID;
	// this mask matches spec.md's "high 16 bits = aux chain id" data model.
	ChainIDMask int32 = ^int32(0xFFFF)

	// ChainIDShift is the bit offset of the chain-id field within Version.
	ChainIDShift = 16
)

// BlockHeader defines the 80-byte fixed portion of a block's identity, plus
// the optional AuxPoW substructure appended after it when the AuxPoW version
// bit is set. All integer fields are written little-endian; PrevBlock and
// MerkleRoot are stored in internal (non-reversed) byte order.
type BlockHeader struct {
	// Version encodes both the block format version and, for merge-mined
	// chains, the aux chain id (high 16 bits) and the AuxPoW flag bit.
	Version int32

	// PrevBlock is the hash of the previous block header in the chain.
	PrevBlock chainhash.Hash

	// MerkleRoot is the root of the Merkle tree built over the block's
	// transactions.
	MerkleRoot chainhash.Hash

	// Timestamp is the time the block was created, encoded on the wire as
	// a uint32 of seconds since the Unix epoch.
	Timestamp time.Time

	// Bits is the compact-encoded difficulty target this block must meet.
	Bits uint32

	// Nonce is the value miners vary to search for a header hash at or
	// below the target implied by Bits.
	Nonce uint32

	// AuxPow carries the auxiliary proof-of-work substructure. It is
	// present if and only if the AuxPoW flag bit is set in Version; see
	// HasAuxPowFlag and spec.md's Block.aux invariant. A non-nil AuxPow's own
	// ParentBlock must never itself carry an AuxPow (no recursion beyond
	// one level).
	AuxPow *AuxPow
}

// ChainID returns the merge-mined chain identifier encoded in the high bits
// of Version.
func (h *BlockHeader) ChainID() int32 {
	return int32(uint32(h.Version) >> ChainIDShift)
}

// SetChainID rewrites the chain-id bits of Version, leaving every other bit
// untouched.
func (h *BlockHeader) SetChainID(chainID int32) {
	h.Version &= ^ChainIDMask
	h.Version |= (chainID << ChainIDShift) & ChainIDMask
}

// HasAuxPowFlag reports whether the AuxPoW version bit is set, independent
// of whether an AuxPow payload is actually attached. On an AltChain network
// the Validator rejects a set flag with no payload attached (see
// checkProofOfWork in package blockchain).
func (h *BlockHeader) HasAuxPowFlag() bool {
	return h.Version&VersionAuxPowFlag != 0
}

// SetAuxPowFlag sets or clears the AuxPoW version bit.
func (h *BlockHeader) SetAuxPowFlag(set bool) {
	if set {
		h.Version |= VersionAuxPowFlag
	} else {
		h.Version &= ^VersionAuxPowFlag
	}
}

// BlockHash computes H2 over the 80-byte fixed header only -- never over any
// attached AuxPoW bytes -- matching spec.md §4.2's calc_hash definition.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	return chainhash.DoubleHashRaw(func(w io.Writer) error {
		return writeBlockHeader(w, h)
	})
}

// Serialize encodes the full header -- the 80-byte fixed portion, followed by
// the AuxPoW payload if HasAuxPowFlag is set -- to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	if err := writeBlockHeader(w, h); err != nil {
		return err
	}
	if h.HasAuxPowFlag() {
		if h.AuxPow == nil {
			return fmt.Errorf("wire: auxpow flag set but AuxPow is nil (hash %s)", h.BlockHash())
		}
		return h.AuxPow.Serialize(w)
	}
	return nil
}

// Deserialize decodes a full header, including any AuxPoW payload implied by
// the version bit, from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	if err := readBlockHeader(r, h); err != nil {
		return err
	}
	if h.HasAuxPowFlag() {
		h.AuxPow = new(AuxPow)
		return h.AuxPow.Deserialize(r)
	}
	return nil
}

// SerializeHeader encodes only the 80-byte fixed header fields to w,
// regardless of the AuxPoW flag. This is the exact byte sequence H2 is
// computed over.
func (h *BlockHeader) SerializeHeader(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Bytes returns the fixed 80-byte header serialization.
func (h *BlockHeader) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(BlockHeaderLen)
	_ = h.SerializeHeader(&buf)
	return buf.Bytes()
}

// NewBlockHeader returns a new BlockHeader with the given version, previous
// block hash, Merkle root, difficulty bits and nonce. Timestamp defaults to
// the current wall-clock time truncated to one-second precision, matching
// the protocol's resolution.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash, bits, nonce uint32) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	bh.Version = int32(littleEndian.Uint32(buf[:4]))

	if _, err := io.ReadFull(r, bh.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, bh.MerkleRoot[:]); err != nil {
		return err
	}

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	bh.Timestamp = time.Unix(int64(littleEndian.Uint32(buf[:4])), 0)

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	bh.Bits = littleEndian.Uint32(buf[:4])

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return err
	}
	bh.Nonce = littleEndian.Uint32(buf[:4])

	return nil
}

func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	littleEndian.PutUint32(buf[:4], uint32(bh.Version))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}
	if _, err := w.Write(bh.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := w.Write(bh.MerkleRoot[:]); err != nil {
		return err
	}

	littleEndian.PutUint32(buf[:4], uint32(bh.Timestamp.Unix()))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}

	littleEndian.PutUint32(buf[:4], bh.Bits)
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}

	littleEndian.PutUint32(buf[:4], bh.Nonce)
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}

	return nil
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/havenchain/havencore/chaincfg"
	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/havenchain/havencore/wire"
)

// maxTimeOffset is how far into the future, relative to a Validator's own
// clock, a block's timestamp may claim to be before it is rejected, the
// bound spec.md §4.4 calls "timestamp too far in the future."
const maxTimeOffset = 2 * time.Hour

// Validator checks candidate blocks against the consensus rules spec.md §4
// describes, consulting a ChainReader for the chain context -- prior
// blocks, network parameters -- it needs but never holds itself. It has no
// exported fields to construct besides its options, mirroring the
// teacher's BlockChain type being the single stateful home for its
// checkBlockHeaderSanity/checkProofOfWork/checkBlockSanity trio.
type Validator struct {
	reader ChainReader

	// StrictAuxParentHash, when true, rejects an AuxPoW block whose
	// ClaimedParentHash does not match the hash actually computed over
	// ParentBlock. When false (the default), the mismatch is not checked:
	// it does not fail validation and nothing logs it, matching spec.md's Open
	// Question decision recorded in DESIGN.md: some merge-mining proxies
	// populate this field inconsistently, and rejecting on it would
	// orphan otherwise-valid blocks from an established network.
	StrictAuxParentHash bool

	// Now returns the Validator's notion of the current time, used for
	// the future-timestamp check. It defaults to time.Now when nil,
	// overridable so tests can drive it deterministically.
	Now func() time.Time
}

// NewValidator constructs a Validator backed by reader.
func NewValidator(reader ChainReader) *Validator {
	return &Validator{reader: reader}
}

func (v *Validator) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

// CheckHash implements spec.md §4.4 step 1, check_hash: a block's hash, once
// latched by Block.Hash, must still match the hash freshly computed over its
// current header bytes. Block.Header returns the *wire.BlockHeader directly,
// so nothing stops a caller from mutating it (changing its timestamp, say)
// after Hash has already cached an answer for the old bytes; CheckHash is the
// fatal guard against that divergence, distinct from checkProofOfWork's
// StrictAuxParentHash check, which compares a different pair of hashes (an
// AuxPoW's claimed vs. computed parent block, not the block's own).
func (v *Validator) CheckHash(blk *Block) error {
	cached := blk.Hash()
	fresh := blk.Header().BlockHash()
	if !cached.IsEqual(&fresh) {
		return ruleError(ErrBadHash,
			fmt.Sprintf("block hash %v no longer matches %v computed over its current header", cached, fresh))
	}
	return nil
}

// CheckBlockHeaderSanity validates header in isolation: its proof-of-work
// satisfies its target, and its timestamp is not implausibly far in the
// future. The cached-versus-fresh hash check is CheckHash's. It does not consult prior blocks for
// ordering (that is CheckBlockContext's job once the chain needs it); it is
// the subset of spec.md §4.4 that depends only on the header itself and the
// network's AuxPoW configuration.
func (v *Validator) CheckBlockHeaderSanity(ctx context.Context, header *wire.BlockHeader) error {
	params := v.reader.Params()

	if err := v.checkProofOfWork(header, params); err != nil {
		return err
	}

	if header.Timestamp.After(v.now().Add(maxTimeOffset)) {
		return ruleError(ErrTimestampTooFarFuture,
			fmt.Sprintf("block timestamp %v is too far in the future", header.Timestamp))
	}

	return nil
}

// checkProofOfWork implements spec.md §4.4's proof-of-work check: a primary
// (non-AuxPoW) block's own hash must satisfy its own Bits; an AuxPoW block
// must instead carry a chain ID matching the network's, and its embedded
// parent block's hash must satisfy the parent's Bits while linking back to
// this block's hash via the coinbase merge-mining proof.
func (v *Validator) checkProofOfWork(header *wire.BlockHeader, params *chaincfg.Params) error {
	if !params.AltChain || !header.HasAuxPowFlag() {
		target := CompactToBigUnsigned(header.Bits)
		return checkHashAgainstTarget(header.BlockHash(), target, header.Bits)
	}

	if header.AuxPow == nil {
		return ruleError(ErrPowBelowTarget, "auxpow flag set but no auxpow payload present")
	}

	if header.ChainID() != params.AuxPoWChainID {
		return ruleError(ErrPowWrongAuxChain,
			fmt.Sprintf("block chain ID %d does not match network chain ID %d",
				header.ChainID(), params.AuxPoWChainID))
	}

	ap := header.AuxPow
	parentTarget := CompactToBigUnsigned(ap.ParentBlock.Bits)
	if err := checkHashAgainstTarget(ap.ParentBlock.BlockHash(), parentTarget, ap.ParentBlock.Bits); err != nil {
		return err
	}

	auxHash := header.BlockHash()
	if err := ap.CheckCoinbaseLink(auxHash, header.ChainID()); err != nil {
		code, ok := auxPowErrorCode(err)
		if !ok {
			code = ErrPowBelowTarget
		}
		return ruleError(code, err.Error())
	}

	if v.StrictAuxParentHash {
		computedParentHash := ap.ParentBlock.BlockHash()
		if !computedParentHash.IsEqual(&ap.ClaimedParentHash) {
			return ruleError(ErrBadHash, "auxpow claimed parent hash does not match computed parent block hash")
		}
	}

	return nil
}

// checkHashAgainstTarget verifies hash, reinterpreted as a 256-bit integer,
// is at or below target. A non-positive target is always rejected; target
// is not compared against the network's PowLimit.
func checkHashAgainstTarget(hash chainhash.Hash, target *big.Int, bits uint32) error {
	if target.Sign() <= 0 {
		return ruleError(ErrPowBelowTarget, fmt.Sprintf("compact bits %08x decode to a non-positive target", bits))
	}
	hashNum := HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		return ruleError(ErrPowBelowTarget,
			fmt.Sprintf("block hash %v is higher than expected target %064x", hash, target))
	}
	return nil
}

// CheckBlockSanity validates a full candidate block's transaction set
// against header, the structural checks of spec.md §4.2/§4.3 that do not
// require chain context: the transaction list is non-empty, exactly the
// first transaction is a coinbase, and the header's Merkle root equals the
// root computed over the transaction set.
func (v *Validator) CheckBlockSanity(ctx context.Context, header *wire.BlockHeader, txs []*wire.MsgTx) error {
	if len(txs) == 0 {
		return ruleError(ErrNoTransactions, "block has no transactions")
	}

	if !txs[0].IsCoinBase() {
		return ruleError(ErrFirstTxNotCoinbase, "first transaction in block is not a coinbase")
	}

	for i, tx := range txs[1:] {
		if tx.IsCoinBase() {
			return ruleError(ErrNonFirstTxIsCoinbase,
				fmt.Sprintf("transaction at index %d is a coinbase", i+1))
		}
	}

	calculated := CalcMerkleRootForTxs(txs)
	if !calculated.IsEqual(&header.MerkleRoot) {
		return ruleError(ErrMerkleRootMismatch,
			fmt.Sprintf("block merkle root is %v, expected %v", header.MerkleRoot, calculated))
	}

	return nil
}

// CheckBlockContext validates header against the chain it extends: its
// timestamp must exceed the median time past of the blocks ending at tip,
// and its Bits must equal the difficulty CalcNextRequiredDifficulty
// computes for the position following tip. This is the chain-dependent
// half of spec.md §4.4/§4.5 -- it is the only Validator method that reads
// from the ChainReader rather than validating the header/block in
// isolation.
func (v *Validator) CheckBlockContext(ctx context.Context, header *wire.BlockHeader) error {
	tip, err := v.reader.TopBlock(ctx)
	if err != nil {
		return err
	}

	medianTime, err := calcMedianTimePast(ctx, v.reader, tip.Height())
	if err != nil {
		return err
	}
	if !header.Timestamp.After(medianTime) {
		return ruleError(ErrTimestampTooEarly,
			fmt.Sprintf("block timestamp %v is not after median time past %v", header.Timestamp, medianTime))
	}

	required, err := CalcNextRequiredDifficulty(ctx, v.reader, header.Timestamp)
	if err != nil {
		return err
	}
	if header.Bits != required {
		return ruleError(ErrWrongDifficulty,
			fmt.Sprintf("block difficulty bits %08x, expected %08x", header.Bits, required))
	}

	return nil
}

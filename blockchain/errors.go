// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/havenchain/havencore/wire"
)

// ErrorCode identifies a rejection reason returned by the Validator. The set
// is closed: every value a Validator may return is listed here, matching
// spec.md §7's enumeration exactly.
type ErrorCode int

const (
	// ErrBadHash indicates a block's claimed hash does not match the hash
	// actually computed over its header bytes.
	ErrBadHash ErrorCode = iota

	// ErrPowBelowTarget indicates the block's hash does not satisfy its
	// own claimed (or AuxPoW parent's) proof-of-work target.
	ErrPowBelowTarget

	// ErrPowWrongAuxChain indicates an AuxPoW block's chain ID does not
	// match the network's registered merge-mining chain ID.
	ErrPowWrongAuxChain

	// ErrTimestampTooFarFuture indicates a block's timestamp is further
	// ahead of the validator's notion of "now" than permitted.
	ErrTimestampTooFarFuture

	// ErrNoTransactions indicates a block has an empty transaction list.
	ErrNoTransactions

	// ErrFirstTxNotCoinbase indicates a block's first transaction is not
	// a coinbase.
	ErrFirstTxNotCoinbase

	// ErrNonFirstTxIsCoinbase indicates some transaction other than the
	// first is a coinbase.
	ErrNonFirstTxIsCoinbase

	// ErrNoMerkleRoot indicates a Merkle root could not be computed (an
	// internal precondition failure, not expected in normal operation).
	ErrNoMerkleRoot

	// ErrMerkleRootMismatch indicates the block's claimed Merkle root
	// does not equal the root computed over its transactions.
	ErrMerkleRootMismatch

	// ErrAuxPowMerkleLink indicates an AuxPoW's coinbase branch does not
	// fold up to the parent block's claimed Merkle root.
	ErrAuxPowMerkleLink

	// ErrAuxPowHashNotInScript indicates the expected merge-mining hash
	// could not be found anywhere in the parent coinbase's script.
	ErrAuxPowHashNotInScript

	// ErrAuxPowHeaderDuplicated indicates the merge-mining tag appears
	// more than once in the parent coinbase script.
	ErrAuxPowHeaderDuplicated

	// ErrAuxPowHashNotAfterHeader indicates the merge-mining hash does
	// not immediately follow the merge-mining tag.
	ErrAuxPowHashNotAfterHeader

	// ErrAuxPowLegacyOffset indicates a tagless merge-mining hash was
	// found outside the small fixed offset legacy miners use.
	ErrAuxPowLegacyOffset

	// ErrAuxPowSizeMismatch indicates the encoded chain-merkle tree size
	// does not match the aggregated blockchain branch's claimed size.
	ErrAuxPowSizeMismatch

	// ErrAuxPowMaskMismatch indicates the blockchain branch's slot mask
	// does not match the value the deterministic LCG derives from the
	// chain ID and merge-mining nonce.
	ErrAuxPowMaskMismatch

	// ErrWrongDifficulty indicates a block's Bits field does not match
	// the difficulty the retarget algorithm requires at its height.
	ErrWrongDifficulty

	// ErrTimestampTooEarly indicates a block's timestamp is not strictly
	// after the median of the last 11 blocks' timestamps.
	ErrTimestampTooEarly
)

var errorCodeStrings = map[ErrorCode]string{
	ErrBadHash:                  "ErrBadHash",
	ErrPowBelowTarget:           "ErrPowBelowTarget",
	ErrPowWrongAuxChain:         "ErrPowWrongAuxChain",
	ErrTimestampTooFarFuture:    "ErrTimestampTooFarFuture",
	ErrNoTransactions:           "ErrNoTransactions",
	ErrFirstTxNotCoinbase:       "ErrFirstTxNotCoinbase",
	ErrNonFirstTxIsCoinbase:     "ErrNonFirstTxIsCoinbase",
	ErrNoMerkleRoot:             "ErrNoMerkleRoot",
	ErrMerkleRootMismatch:       "ErrMerkleRootMismatch",
	ErrAuxPowMerkleLink:         "ErrAuxPowMerkleLink",
	ErrAuxPowHashNotInScript:    "ErrAuxPowHashNotInScript",
	ErrAuxPowHeaderDuplicated:   "ErrAuxPowHeaderDuplicated",
	ErrAuxPowHashNotAfterHeader: "ErrAuxPowHashNotAfterHeader",
	ErrAuxPowLegacyOffset:       "ErrAuxPowLegacyOffset",
	ErrAuxPowSizeMismatch:       "ErrAuxPowSizeMismatch",
	ErrAuxPowMaskMismatch:       "ErrAuxPowMaskMismatch",
	ErrWrongDifficulty:          "ErrWrongDifficulty",
	ErrTimestampTooEarly:        "ErrTimestampTooEarly",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(e))
}

// RuleError identifies a block that violates a consensus rule. It carries an
// ErrorCode from the closed set above plus a human-readable description, the
// same shape as the teacher's RuleError in blockchain/error.go.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// auxPowErrorCode maps a sentinel error returned by wire.AuxPow.CheckCoinbaseLink
// to the matching closed-set RuleError code, the mapping wire/errors.go's doc
// comment refers to.
func auxPowErrorCode(err error) (ErrorCode, bool) {
	switch {
	case wire.IsAuxPowMerkleLink(err):
		return ErrAuxPowMerkleLink, true
	case wire.IsAuxPowHashNotInScript(err):
		return ErrAuxPowHashNotInScript, true
	case wire.IsAuxPowHeaderDuplicated(err):
		return ErrAuxPowHeaderDuplicated, true
	case wire.IsAuxPowHashNotAfterHeader(err):
		return ErrAuxPowHashNotAfterHeader, true
	case wire.IsAuxPowLegacyOffset(err):
		return ErrAuxPowLegacyOffset, true
	case wire.IsAuxPowSizeMismatch(err):
		return ErrAuxPowSizeMismatch, true
	case wire.IsAuxPowMaskMismatch(err):
		return ErrAuxPowMaskMismatch, true
	default:
		return 0, false
	}
}

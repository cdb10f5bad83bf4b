// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/havenchain/havencore/chaincfg/chainhash"
)

// CoinbaseOutpointIndex is the index value of the single, reserved previous
// output used by every coinbase transaction's input.
const CoinbaseOutpointIndex = 0xffffffff

// OutPoint defines a source transaction output that a transaction input
// references.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// IsNull reports whether the outpoint is the reserved coinbase placeholder:
// a zero hash and the maximum index value.
func (o OutPoint) IsNull() bool {
	return o.Index == CoinbaseOutpointIndex && o.Hash == (chainhash.Hash{})
}

// TxIn defines a transaction input. Full signature/witness validation is out
// of scope for this module (spec.md §1 Non-goals); only the coinbase input
// script, consumed by AuxPoW parsing, and the previous outpoint matter here.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// MsgTx is a minimal transaction representation exposing exactly the
// Transaction contract spec.md §6 requires of the core: a hash, a
// coinbase classification, and access to the first input's script for
// AuxPoW parsing. Script evaluation, fee/policy rules and the UTXO set are
// external collaborators per spec.md §1.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new transaction with the given version and no inputs
// or outputs.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}

// IsCoinBase reports whether tx is a coinbase transaction: exactly one
// input, whose previous outpoint is the null/reserved outpoint.
func (tx *MsgTx) IsCoinBase() bool {
	return len(tx.TxIn) == 1 && tx.TxIn[0].PreviousOutPoint.IsNull()
}

// TxHash computes H2 over the transaction's serialized form.
func (tx *MsgTx) TxHash() chainhash.Hash {
	return chainhash.DoubleHashRaw(func(w io.Writer) error {
		return tx.Serialize(w)
	})
}

// SerializeSize returns the number of bytes tx would occupy once serialized,
// used by the Block Size standardized-object field (spec.md §6).
func (tx *MsgTx) SerializeSize() int {
	n := 8 // version + locktime
	n += VarIntSerializeSize(uint64(len(tx.TxIn)))
	for _, in := range tx.TxIn {
		n += chainhash.HashSize + 4 // outpoint
		n += VarIntSerializeSize(uint64(len(in.SignatureScript)))
		n += len(in.SignatureScript)
		n += 4 // sequence
	}
	n += VarIntSerializeSize(uint64(len(tx.TxOut)))
	for _, out := range tx.TxOut {
		n += 8
		n += VarIntSerializeSize(uint64(len(out.PkScript)))
		n += len(out.PkScript)
	}
	return n
}

// Serialize writes the transaction to w in the wire's little-endian,
// var-int-prefixed form.
func (tx *MsgTx) Serialize(w io.Writer) error {
	if err := writeElement(w, tx.Version); err != nil {
		return err
	}
	if err := WriteVarInt(w, 0, uint64(len(tx.TxIn))); err != nil {
		return err
	}
	for _, in := range tx.TxIn {
		if err := writeElement(w, &in.PreviousOutPoint.Hash); err != nil {
			return err
		}
		if err := writeElement(w, in.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := WriteVarInt(w, 0, uint64(len(in.SignatureScript))); err != nil {
			return err
		}
		if _, err := w.Write(in.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, in.Sequence); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, 0, uint64(len(tx.TxOut))); err != nil {
		return err
	}
	for _, out := range tx.TxOut {
		if err := writeElement(w, uint64(out.Value)); err != nil {
			return err
		}
		if err := WriteVarInt(w, 0, uint64(len(out.PkScript))); err != nil {
			return err
		}
		if _, err := w.Write(out.PkScript); err != nil {
			return err
		}
	}
	return writeElement(w, tx.LockTime)
}

// Deserialize reads a transaction from r in the format written by Serialize.
func (tx *MsgTx) Deserialize(r io.Reader) error {
	if err := readElement(r, &tx.Version); err != nil {
		return err
	}

	inCount, err := ReadVarInt(r, 0)
	if err != nil {
		return err
	}
	tx.TxIn = make([]*TxIn, inCount)
	for i := range tx.TxIn {
		in := new(TxIn)
		if err := readElement(r, &in.PreviousOutPoint.Hash); err != nil {
			return err
		}
		if err := readElement(r, &in.PreviousOutPoint.Index); err != nil {
			return err
		}
		scriptLen, err := ReadVarInt(r, 0)
		if err != nil {
			return err
		}
		in.SignatureScript = make([]byte, scriptLen)
		if _, err := io.ReadFull(r, in.SignatureScript); err != nil {
			return err
		}
		if err := readElement(r, &in.Sequence); err != nil {
			return err
		}
		tx.TxIn[i] = in
	}

	outCount, err := ReadVarInt(r, 0)
	if err != nil {
		return err
	}
	tx.TxOut = make([]*TxOut, outCount)
	for i := range tx.TxOut {
		out := new(TxOut)
		var value uint64
		if err := readElement(r, &value); err != nil {
			return err
		}
		out.Value = int64(value)
		scriptLen, err := ReadVarInt(r, 0)
		if err != nil {
			return err
		}
		out.PkScript = make([]byte, scriptLen)
		if _, err := io.ReadFull(r, out.PkScript); err != nil {
			return err
		}
		tx.TxOut[i] = out
	}

	return readElement(r, &tx.LockTime)
}

// Bytes returns the serialized transaction.
func (tx *MsgTx) Bytes() []byte {
	var buf bytes.Buffer
	_ = tx.Serialize(&buf)
	return buf.Bytes()
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/havenchain/havencore/chaincfg/chainhash"
	"github.com/havenchain/havencore/wire"
)

func unixTime(seconds uint32) time.Time {
	return time.Unix(int64(seconds), 0)
}

// genesisCoinbaseTx builds the genesis coinbase, embedding an immutable
// timestamp message in its input script, the same convention the teacher's
// generateGenesisCoinbaseTx uses (a length-prefixed ASCII string appended
// to a fixed script prefix).
func genesisCoinbaseTx(message string) *wire.MsgTx {
	msg := []byte(message)
	sig := append([]byte{0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04}, append([]byte{byte(len(msg))}, msg...)...)

	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{
			{
				PreviousOutPoint: wire.OutPoint{Index: wire.CoinbaseOutpointIndex},
				SignatureScript:  sig,
				Sequence:         0xffffffff,
			},
		},
		TxOut: []*wire.TxOut{
			{
				Value:    50 * 1e8,
				PkScript: []byte{0x51}, // OP_TRUE placeholder; full script validation is out of scope
			},
		},
	}
}

func genesisHeader(message string, timestamp, bits, nonce uint32) *wire.BlockHeader {
	coinbase := genesisCoinbaseTx(message)
	root := coinbase.TxHash()
	return &wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: root,
		Timestamp:  unixTime(timestamp),
		Bits:       bits,
		Nonce:      nonce,
	}
}

var (
	mainNetGenesisHeader = genesisHeader("Haven mainnet genesis", 1735689600, 0x1d00ffff, 0)
	testNetGenesisHeader = genesisHeader("Haven testnet genesis", 1735689600, 0x1e0fffff, 0)
)

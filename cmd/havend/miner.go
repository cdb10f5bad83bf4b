// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math/big"

	"github.com/havenchain/havencore/blockchain"
	"github.com/havenchain/havencore/wire"
)

// bruteForceMiner is a reference Miner: it simply walks the nonce space in
// order. It exists to exercise mining.Builder end to end; a production
// deployment would substitute a faster search strategy (or external ASIC
// firmware) behind the same interface.
type bruteForceMiner struct {
	maxAttempts uint32
}

func (m *bruteForceMiner) Solve(ctx context.Context, header *wire.BlockHeader, target []byte) (uint32, bool, error) {
	targetNum := new(big.Int).SetBytes(target)

	attempts := m.maxAttempts
	if attempts == 0 {
		attempts = 1 << 20
	}

	for nonce := uint32(0); nonce < attempts; nonce++ {
		select {
		case <-ctx.Done():
			return 0, false, ctx.Err()
		default:
		}

		header.Nonce = nonce
		hash := header.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(targetNum) <= 0 {
			return nonce, true, nil
		}
	}

	return 0, false, nil
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "math/big"

// CompareWork reports whether a represents more accumulated work than b, the
// comparison spec.md §3 names as the tie-breaker for fork choice (a chain
// extends if and only if its tip's chain work exceeds the current tip's).
func CompareWork(a, b *big.Int) int {
	return a.Cmp(b)
}

// IsBetterChain reports whether candidate's chain work strictly exceeds
// current's, the fork-choice predicate an operation attaching a new block
// evaluates before reorganizing its tip.
func IsBetterChain(candidate, current *big.Int) bool {
	return CompareWork(candidate, current) > 0
}

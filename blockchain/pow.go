// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dowscoin/dows/chaincfg"
)

// hashToBig converts a chainhash.Hash into a big.Int treating the hash as
// a 256-bit number. chainhash.Hash stores its bytes in the reverse of the
// order they're displayed/serialized in, so the bytes must be reversed
// before being interpreted as a big-endian integer.
func hashToBig(hash chainhash.Hash) *big.Int {
	var buf [chainhash.HashSize]byte
	for i := 0; i < chainhash.HashSize; i++ {
		buf[i] = hash[chainhash.HashSize-1-i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// CheckProofOfWork reports whether hash satisfies the target encoded by
// bits, under the constraints params imposes on valid targets.
//
// This is a kind-1 (invalid input) check in the error-handling taxonomy:
// a target that decodes to zero, negative, or above the network's pow
// limit is simply rejected (false), the same way the ancestor
// implementation's CheckProofOfWork rejects out-of-range targets before
// ever comparing the hash.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, params *chaincfg.Params) bool {
	target := CompactToBig(bits)

	if target.Sign() <= 0 {
		return false
	}
	if target.Cmp(params.PowLimit) > 0 {
		return false
	}

	return hashToBig(hash).Cmp(target) <= 0
}

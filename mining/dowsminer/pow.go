// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dowsminer drives DowsHash nonce search over a candidate block
// header: given a header with every field but Nonce already filled in, it
// searches for a nonce that satisfies the header's target, the same way a
// miner evaluating a block template would. Block template construction,
// transaction selection, and block submission are a different
// subsystem's job; this package only ever touches the 80-byte header.
package dowsminer

import (
	"bytes"
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/dowscoin/dows/dowshash"
)

// HeaderPoWHash computes the proof-of-work hash of a block header: the
// header is serialized, compressed with double-SHA-256 the way any
// Bitcoin-family header digest is taken, and the result is run through
// DowsHash.
func HeaderPoWHash(header *wire.BlockHeader) (chainhash.Hash, error) {
	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		return chainhash.Hash{}, err
	}
	first := sha256.Sum256(buf.Bytes())
	second := sha256.Sum256(first[:])
	return dowshash.Hash(chainhash.Hash(second)), nil
}

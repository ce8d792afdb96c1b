// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Hash computes DowsHash over a 32-byte input, typically the
// double-SHA-256 of a serialized block header. The pipeline is:
//
//  1. copy the input into a scratch buffer;
//  2. derive a (seed, incr) pair from the buffer;
//  3. synthesize a mixing program from that pair (component D);
//  4. run the program over the buffer (component F, the shuffler);
//  5. compress with double-SHA-256;
//  6. derive a fresh (seed, incr) pair from the compressed result;
//  7. fold in hashBaseUseCount chunks drawn from the shared mixing table,
//     keyed by that second PCG32 stream, and compress once more.
//
// Hash keeps its 32-byte working buffer local to the call. Beyond that it
// reads the read-only mixing table, and Synthesize may hand it a Program
// from the package-wide memoization cache, which is guarded by a mutex.
func Hash(result chainhash.Hash) chainhash.Hash {
	buf := [32]byte(result)

	seed, incr := deriveSeedIncr(buf, 0)
	prog := Synthesize(seed, incr)
	buf = shuffleHash256(prog, buf)
	buf = sha256d(buf)

	seed, incr = deriveSeedIncr(buf, 8)
	buf = finalizeWithTable(buf, seed, incr)

	return chainhash.Hash(buf)
}

// getUint64 reads an 8-byte big-endian word starting at offset, with each
// byte address taken modulo 32 independently so the read wraps cleanly
// near the end of the buffer.
func getUint64(buf [32]byte, offset int) uint64 {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = buf[(offset+i)%32]
	}
	return binary.BigEndian.Uint64(b[:])
}

// deriveSeedIncr reads seed from the 8 bytes of buf at base and incr from
// the 8 bytes at base+16 (each read wrapping modulo 32), then XORs each
// with 64 bits built from two draws of a PCG32 stream seeded on that pair.
// The result depends only on those 16 bytes of buf; the other 16 bytes do
// not enter it.
func deriveSeedIncr(buf [32]byte, base int) (seed, incr uint64) {
	seed = getUint64(buf, base)
	incr = getUint64(buf, base+16)
	g := newPCG32(seed, incr)
	seed ^= uint64(g.next())<<32 | uint64(g.next())
	incr ^= uint64(g.next())<<32 | uint64(g.next())
	return seed, incr
}

// finalizeWithTable XORs hashBaseUseCount pseudo-random 32-byte chunks of
// the shared mixing table into buf, the chunk offsets drawn from a PCG32
// stream seeded with (seed, incr), then compresses the result with
// double-SHA-256. This is what ties the final digest back to the shared
// table even though the interpreter (component E) already depends on it
// indirectly through every mixer call.
func finalizeWithTable(buf [32]byte, seed, incr uint64) [32]byte {
	g := newPCG32(seed, incr)
	out := buf
	for i := 0; i < hashBaseUseCount; i++ {
		chunk := tableChunk(g.next())
		for j := range out {
			out[j] ^= chunk[j]
		}
	}
	return sha256d(out)
}

// sha256d is double-SHA-256, the compression step used throughout this
// package and the conventional Bitcoin-family block-hash primitive.
func sha256d(b [32]byte) [32]byte {
	first := sha256.Sum256(b[:])
	return sha256.Sum256(first[:])
}

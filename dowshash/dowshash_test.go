// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

import (
	"crypto/sha256"
	"math/bits"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestHashDeterministic checks that Hash is a pure function of its input.
func TestHashDeterministic(t *testing.T) {
	var in chainhash.Hash
	a := Hash(in)
	b := Hash(in)
	require.Equal(t, a, b)
}

// TestHashDistinctInputs checks that a single flipped input byte does not
// collide to the same output for a handful of representative inputs.
func TestHashDistinctInputs(t *testing.T) {
	var zero, one chainhash.Hash
	one[0] = 1

	hz := Hash(zero)
	ho := Hash(one)
	require.NotEqual(t, hz, ho)

	var dbl chainhash.Hash
	copy(dbl[:], hz[:])
	hd := Hash(dbl)
	require.NotEqual(t, hz, hd)
	require.NotEqual(t, ho, hd)
}

// TestHashNoPanic property-tests Hash across the full input space.
func TestHashNoPanic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var in chainhash.Hash
		bs := rapid.SliceOfN(rapid.Uint8(), 32, 32).Draw(rt, "in")
		copy(in[:], bs)
		Hash(in)
	})
}

// hammingDistance32 counts differing bits between two 32-byte arrays.
func hammingDistance32(a, b [32]byte) int {
	n := 0
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n
}

// TestHashAvalanche checks that flipping a single input bit changes, on
// average across many trials, roughly half of the 256 output bits. A
// healthy hash keeps the average well clear of the extremes; this does
// not pin an exact figure, only a broad, hard-to-satisfy-by-accident band.
func TestHashAvalanche(t *testing.T) {
	const trials = 256
	total := 0
	for i := 0; i < trials; i++ {
		var in chainhash.Hash
		in[i%32] = byte(i)
		flipped := in
		flipped[i%32] ^= 1 << uint(i%8)

		a := Hash(in)
		b := Hash(flipped)
		total += hammingDistance32([32]byte(a), [32]byte(b))
	}
	avg := float64(total) / float64(trials)
	require.Greater(t, avg, 96.0, "avalanche average too low: %f", avg)
	require.Less(t, avg, 160.0, "avalanche average too high: %f", avg)
}

// TestGetUint64Wraparound checks getUint64's wraparound read against
// a hand-computed expectation near the end of the buffer.
func TestGetUint64Wraparound(t *testing.T) {
	var buf [32]byte
	for i := range buf {
		buf[i] = byte(i + 1)
	}
	got := getUint64(buf, 28)
	want := uint64(buf[28])<<56 | uint64(buf[29])<<48 | uint64(buf[30])<<40 |
		uint64(buf[31])<<32 | uint64(buf[0])<<24 | uint64(buf[1])<<16 |
		uint64(buf[2])<<8 | uint64(buf[3])
	require.Equal(t, want, got)
}

// TestSHA256dMatchesDoubleApplication checks sha256d against two
// successive calls to crypto/sha256.Sum256 done by hand in the test.
func TestSHA256dMatchesDoubleApplication(t *testing.T) {
	var in [32]byte
	for i := range in {
		in[i] = byte(i * 3)
	}
	got := sha256d(in)

	first := sha256.Sum256(in[:])
	want := sha256.Sum256(first[:])
	require.Equal(t, want, got)
}

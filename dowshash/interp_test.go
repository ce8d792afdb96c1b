// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestCallDeterministic checks that Call is a pure function of its inputs.
func TestCallDeterministic(t *testing.T) {
	p := Synthesize(7, 11)
	x1, y1 := p.Call(0, 1, 2, 0)
	x2, y2 := p.Call(0, 1, 2, 0)
	require.Equal(t, x1, x2)
	require.Equal(t, y1, y2)
}

// TestCallOutOfRangeIsIdentity checks that calling a function index
// outside [0, funcCount) falls back to returning the input unchanged,
// per the interpreter's error-swallowing contract.
func TestCallOutOfRangeIsIdentity(t *testing.T) {
	p := Synthesize(7, 11)
	x, y := p.Call(funcCount, 0x1111, 0x2222, 0)
	require.Equal(t, uint32(0x1111), x)
	require.Equal(t, uint32(0x2222), y)

	x, y = p.Call(-1, 0x3333, 0x4444, 0)
	require.Equal(t, uint32(0x3333), x)
	require.Equal(t, uint32(0x4444), y)
}

// TestCallDepthLimitIsIdentity checks that exceeding the call-depth
// budget also falls back to the identity, rather than recursing further.
func TestCallDepthLimitIsIdentity(t *testing.T) {
	p := Synthesize(7, 11)
	x, y := p.Call(0, 0x5555, 0x6666, maxCallDepth)
	require.Equal(t, uint32(0x5555), x)
	require.Equal(t, uint32(0x6666), y)
}

// TestCallNeverPanicsAcrossPrograms property-tests that Call never panics
// for any synthesized program and any starting state, across the full
// depth range.
func TestCallNeverPanicsAcrossPrograms(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		incr := rapid.Uint64().Draw(rt, "incr")
		idx := rapid.IntRange(0, funcCount-1).Draw(rt, "idx")
		x := rapid.Uint32().Draw(rt, "x")
		y := rapid.Uint32().Draw(rt, "y")
		depth := uint8(rapid.IntRange(0, int(maxCallDepth)).Draw(rt, "depth"))

		p := Synthesize(seed, incr)
		p.Call(idx, x, y, depth)
	})
}

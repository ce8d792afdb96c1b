// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSynthesizeStability is the synthesizer-stability property: the same
// (seed, incr) pair always yields byte-for-byte identical program text,
// whether or not the memoization cache is warm.
func TestSynthesizeStability(t *testing.T) {
	a := Synthesize(1, 2)
	b := Synthesize(1, 2)
	require.Equal(t, a.Text(), b.Text())

	fresh := newSynthCache(4096)
	old := programCache
	programCache = fresh
	defer func() { programCache = old }()

	c := Synthesize(1, 2)
	require.Equal(t, a.Text(), c.Text())
}

// TestSynthesizeVaries checks that different inputs produce different
// programs; a synthesizer that ignored its seed would pass every other
// test in this file while being useless.
func TestSynthesizeVaries(t *testing.T) {
	a := Synthesize(1, 2)
	b := Synthesize(1, 3)
	require.NotEqual(t, a.Text(), b.Text())
}

// TestSynthesizeShape checks the structural invariants every synthesized
// program must hold regardless of seed: exactly funcCount functions, each
// within [minStmtNum, maxStmtNum] statements, and every call target and
// mixer letter in range.
func TestSynthesizeShape(t *testing.T) {
	p := Synthesize(0xabc, 0xdef)
	require.Len(t, p.funcs, funcCount)
	for _, f := range p.funcs {
		require.GreaterOrEqual(t, len(f.stmts), minStmtNum)
		require.LessOrEqual(t, len(f.stmts), maxStmtNum)
		for _, s := range f.stmts {
			if s.isCall {
				require.Less(t, int(s.target), funcCount)
				continue
			}
			require.Less(t, int(s.letter), len(mixers))
		}
	}
}

// TestSynthCacheHonorsHit checks that a cache hit returns the exact same
// Program pointer rather than resynthesizing.
func TestSynthCacheHonorsHit(t *testing.T) {
	c := newSynthCache(16)
	p1 := Synthesize(123, 456)
	c.put(123, 456, p1)
	p2, ok := c.get(123, 456)
	require.True(t, ok)
	require.Same(t, p1, p2)

	_, ok = c.get(1, 1)
	require.False(t, ok)
}

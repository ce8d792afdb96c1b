// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/lru"
)

// stmt is one statement in a synthesized function body: either a call to
// one of the nine fixed mixer primitives, or a recursive call into another
// synthesized function.
type stmt struct {
	isCall bool
	target uint8
	letter mixerLetter
	m, n   uint32
}

// synFunc is one synthesized function: a fixed-order list of statements
// applied in sequence to the interpreter's running (x, y) pair, with the
// halves swapped on return (see Program.Call).
type synFunc struct {
	stmts []stmt
}

// Program is the immutable result of synthesizing mixing code for one
// (seed, incr) pair. A Program is safe for concurrent use: Call never
// mutates it.
type Program struct {
	seed, incr uint64
	funcs      [funcCount]synFunc
}

// Synthesize deterministically builds the family of funcCount functions
// for the given (seed, incr) pair. Synthesis reads only from a PCG32
// stream seeded with (seed, incr); it never touches the shared mixing
// table, so two calls with the same inputs are byte-for-byte identical
// (the synthesizer-stability property).
func Synthesize(seed, incr uint64) *Program {
	if p, ok := programCache.get(seed, incr); ok {
		return p
	}
	gen := newPCG32(seed, incr)
	p := &Program{seed: seed, incr: incr}
	for fi := 0; fi < funcCount; fi++ {
		n := gen.randint(minStmtNum, maxStmtNum)
		stmts := make([]stmt, n)
		for si := 0; si < n; si++ {
			draw := gen.boundedRand(opCount)
			if draw < opCount-1 {
				stmts[si] = stmt{
					isCall: false,
					letter: mixerLetter(draw),
					m:      primes[gen.boundedRand(uint32(len(primes)))],
					n:      primes[gen.boundedRand(uint32(len(primes)))],
				}
				continue
			}
			// Recursive descent: bias the target toward lower-indexed
			// functions by drawing callWeight candidates and keeping the
			// smallest, which keeps typical call depth shallow without
			// forbidding deep chains outright.
			best := funcCount - 1
			for w := 0; w < callWeight; w++ {
				if cand := int(gen.boundedRand(funcCount)); cand < best {
					best = cand
				}
			}
			stmts[si] = stmt{isCall: true, target: uint8(best)}
		}
		p.funcs[fi] = synFunc{stmts: stmts}
	}
	programCache.put(seed, incr, p)
	return p
}

// Text renders a deterministic, human-readable form of the synthesized
// program. Nothing downstream parses it; it exists for the
// synthesizer-stability test and for diagnostic logging.
func (p *Program) Text() string {
	var b strings.Builder
	for fi, f := range p.funcs {
		fmt.Fprintf(&b, "f[%d] {\n", fi)
		for _, s := range f.stmts {
			if s.isCall {
				fmt.Fprintf(&b, "  call f[%d]\n", s.target)
			} else {
				fmt.Fprintf(&b, "  %s(m=%d, n=%d)\n", s.letter, s.m, s.n)
			}
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// programCache memoizes Synthesize by (seed, incr). Synthesis is a pure
// function of its inputs, so caching is observationally identical to
// resynthesizing — unlike pooling a mutable interpreter instance, which
// would not be.
var programCache = newSynthCache(4096)

// synthCache pairs a decred/dcrd/lru membership tracker with a side map
// holding the cached values the lru.Cache itself does not store. The two
// are kept under one lock so the tracker's recently-used ordering and the
// map's contents never drift out of step within a single get/put pair.
type synthCache struct {
	mu    sync.Mutex
	seen  *lru.Cache
	store map[chainhash.Hash]*Program
	limit uint
}

func newSynthCache(limit uint) *synthCache {
	return &synthCache{
		limit: limit,
		seen:  lru.NewCache(limit),
		store: make(map[chainhash.Hash]*Program, limit),
	}
}

func synthCacheKey(seed, incr uint64) chainhash.Hash {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], incr)
	return chainhash.HashH(buf[:])
}

func (c *synthCache) get(seed, incr uint64) (*Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := synthCacheKey(seed, incr)
	if !c.seen.Contains(k) {
		return nil, false
	}
	p, ok := c.store[k]
	return p, ok
}

func (c *synthCache) put(seed, incr uint64, p *Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := synthCacheKey(seed, incr)
	c.seen.Add(k)
	c.store[k] = p
	// The lru.Cache evicts keys on its own; once the side map holds twice
	// the limit, drop the values whose keys it has evicted.
	if uint(len(c.store)) >= 2*c.limit {
		for key := range c.store {
			if !c.seen.Contains(key) {
				delete(c.store, key)
			}
		}
	}
}

// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

// pcg32 is a minimal, from-scratch reimplementation of O'Neill's pcg_basic
// generator (the PCG-XSH-RR variant): a 64-bit LCG state advanced with the
// fixed multiplier below, with a 32-bit xorshift-then-rotate output
// function. It is not used for anything security-sensitive on its own; it
// is the deterministic stream that drives mixing-table construction
// (component A) and program synthesis (component D), so its exact
// arithmetic is part of the wire contract.
type pcg32 struct {
	state uint64
	inc   uint64
}

// pcgMultiplier is the LCG multiplier used by pcg_basic.
const pcgMultiplier = 6364136223846793005

// newPCG32 seeds a generator the same way pcg_basic's pcg32_srandom_r does:
// the increment is forced odd, the state is stepped once, seed is folded
// in, and the state is stepped again before any output is produced.
func newPCG32(initState, initSeq uint64) *pcg32 {
	g := &pcg32{state: 0, inc: (initSeq << 1) | 1}
	g.step()
	g.state += initState
	g.step()
	return g
}

// step advances the LCG state by one step without producing output.
func (g *pcg32) step() {
	g.state = g.state*pcgMultiplier + g.inc
}

// next produces the next 32-bit output in the stream, advancing state.
func (g *pcg32) next() uint32 {
	oldState := g.state
	g.step()
	xorshifted := uint32(((oldState >> 18) ^ oldState) >> 27)
	rot := uint32(oldState >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// boundedRand returns a uniformly distributed value in [0, bound) using
// pcg_basic's rejection-sampling approach (pcg32_boundedrand_r): discard
// draws that fall in the partial final bucket so the distribution stays
// exactly uniform regardless of bound.
func (g *pcg32) boundedRand(bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	threshold := -bound % bound
	for {
		r := g.next()
		if r >= threshold {
			return r % bound
		}
	}
}

// randint mirrors the synthesizer's "pick an integer in [lo, hi]" helper:
// an inclusive range built on top of boundedRand.
func (g *pcg32) randint(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := uint32(hi-lo) + 1
	return lo + int(g.boundedRand(span))
}

// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

// maxCallDepth bounds recursive descent through synthesized functions.
// The ancestor scripting interpreter had no hard recursion limit and
// relied on the host's stack-overflow protection; a hand-written
// tree-walking evaluator cannot safely rely on recover() to catch a
// genuine Go stack overflow, so depth is capped explicitly and a
// function call beyond the cap is treated the same as any other
// interpreter fault: the pre-call (x, y) pair is returned unchanged.
const maxCallDepth = 32

// Call evaluates synthesized function idx against (x, y) and returns the
// resulting pair, halves swapped. Each fault exit — a panic recovered in
// this call, an out-of-range idx, or a depth at or past the call-depth
// budget — instead returns this call's untouched input pair, preserving
// the error-swallowing contract the ancestor interpreter had by
// construction.
func (p *Program) Call(idx int, x, y uint32, depth uint8) (rx, ry uint32) {
	rx, ry = x, y
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("program call recovered: %v", r)
			rx, ry = x, y
		}
	}()
	if depth >= maxCallDepth || idx < 0 || idx >= funcCount {
		return x, y
	}
	cx, cy := x, y
	for _, s := range p.funcs[idx].stmts {
		if s.isCall {
			cx, cy = p.Call(int(s.target), cx, cy, depth+1)
			continue
		}
		cx, cy = mixers[s.letter](cx, cy, s.m, s.n)
	}
	// Every synthesized function returns with its halves swapped, matching
	// the ancestor's "return y, x" convention.
	return cy, cx
}

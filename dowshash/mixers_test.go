// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestMixersAreDeterministic checks that every primitive is a pure
// function of its four inputs.
func TestMixersAreDeterministic(t *testing.T) {
	for letter, fn := range mixers {
		fn := fn
		t.Run(mixerLetter(letter).String(), func(t *testing.T) {
			x1, y1 := fn(0xdeadbeef, 0x1337c0de, 11, 22)
			x2, y2 := fn(0xdeadbeef, 0x1337c0de, 11, 22)
			require.Equal(t, x1, x2)
			require.Equal(t, y1, y2)
		})
	}
}

// TestMixersChangeInput checks that, outside of pathological fixed points,
// each primitive actually moves the state: a mixer that was silently the
// identity function would defeat the whole interpreter.
func TestMixersChangeInput(t *testing.T) {
	for letter, fn := range mixers {
		fn := fn
		t.Run(mixerLetter(letter).String(), func(t *testing.T) {
			x, y := fn(0x01234567, 0x89abcdef, 3, 5)
			require.False(t, x == 0x01234567 && y == 0x89abcdef,
				"mixer left the state unchanged")
		})
	}
}

// TestMixersNoPanic property-tests every primitive across the full input
// domain: none of them should ever panic, since they run on the hot path
// of an interpreter that must never crash on attacker-influenced data.
func TestMixersNoPanic(t *testing.T) {
	for letter, fn := range mixers {
		fn := fn
		t.Run(mixerLetter(letter).String(), func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				x := rapid.Uint32().Draw(rt, "x")
				y := rapid.Uint32().Draw(rt, "y")
				m := rapid.Uint32().Draw(rt, "m")
				n := rapid.Uint32().Draw(rt, "n")
				fn(x, y, m, n)
			})
		})
	}
}

// mixerVector pins one primitive's output for a fixed (x, y, m, n) input,
// derived from an independent re-implementation of the ancestor's nine Lua
// C-functions (hash.cpp's NotShift/AndXor/AndXorOr/ShiftMix8/ShiftMix16/
// ShiftXor/SwapShift/PrimeMix/PrimeMix2) run against this package's own
// mixing table. A mismatch here means a primitive has drifted from the
// bit-exact operations the wire format requires.
type mixerVector struct {
	x, y, m, n uint32
	wantX      uint32
	wantY      uint32
}

// TestMixersMatchGoldenVectors checks each primitive against golden
// vectors computed independently from the ancestor's operations.
func TestMixersMatchGoldenVectors(t *testing.T) {
	ensureHashBase()

	cases := map[mixerLetter][]mixerVector{
		letterA: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0x887bfb75, 0x0baec403},
			{0x00000000, 0x00000000, 1, 1, 0xe90cdb75, 0x5c6e7837},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0x19a2dfc4, 0x371a6cd8},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0x47749fad, 0x97bf7a2d},
		},
		letterB: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0x2775e8d9, 0x34113a63},
			{0x00000000, 0x00000000, 1, 1, 0x918736f3, 0x6e7a36f3},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0xdd3cde18, 0xaf96d08f},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0xfdf0b281, 0x4632438e},
		},
		letterC: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0x51fa9b3c, 0x4565cc70},
			{0x00000000, 0x00000000, 1, 1, 0x7c7e7c6f, 0x04d904c8},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0x94600084, 0xa95b0cb9},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0xd98952e1, 0xe4f774b8},
		},
		letterD: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0xf2d35a94, 0x476ba7a7},
			{0x00000000, 0x00000000, 1, 1, 0x00000000, 0xfffffffe},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0x4e8f57f3, 0xc7e57eba},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0x7129102f, 0x3231f156},
		},
		letterE: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0xb67d4646, 0x2a8cb619},
			{0x00000000, 0x00000000, 1, 1, 0xfffffffe, 0x00000000},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0xfa5c5ad1, 0xf8099a6c},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0x396e6b40, 0xc0926579},
		},
		letterF: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0xb6358d16, 0x47fe6470},
			{0x00000000, 0x00000000, 1, 1, 0xa31d1362, 0xeca62f80},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0x9ea40dda, 0xcb5f7e50},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0x1c7a2dd6, 0xbea40b7a},
		},
		letterG: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0xfb9ae900, 0xb36ae7bc},
			{0x00000000, 0x00000000, 1, 1, 0xfbffffff, 0x1ffffffd},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0x2ec7b091, 0x7fa10116},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0x13894948, 0x1ff461f2},
		},
		letterH: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0x38db9c9a, 0xa0ac0f61},
			{0x00000000, 0x00000000, 1, 1, 0xf7eaf6ea, 0x07262680},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0x1cfafa1f, 0x6fc30263},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0xff6a2ef7, 0x3d7571f1},
		},
		letterI: {
			{0x12345678, 0x9abcdef0, 145403341, 66068741, 0xc6d66447, 0xc4317adb},
			{0x00000000, 0x00000000, 1, 1, 0x433c530a, 0x3b20b16b},
			{0xffffffff, 0x00000001, 27290089, 34185863, 0x828b028d, 0x6c8495dc},
			{0xdeadbeef, 0xcafebabe, 97026073, 7368631, 0x90a89930, 0x96ed6a97},
		},
	}

	for letter, vectors := range cases {
		letter, vectors := letter, vectors
		t.Run(letter.String(), func(t *testing.T) {
			fn := mixers[letter]
			for _, v := range vectors {
				gotX, gotY := fn(v.x, v.y, v.m, v.n)
				require.Equal(t, v.wantX, gotX, "x mismatch for input (%#x,%#x,%d,%d)", v.x, v.y, v.m, v.n)
				require.Equal(t, v.wantY, gotY, "y mismatch for input (%#x,%#x,%d,%d)", v.x, v.y, v.m, v.n)
			}
		})
	}
}

// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dowshash implements DowsHash, the chain's proof-of-work hash
// function: double-SHA-256 composed with a per-input synthesized
// bit-mixing program run over a large shared mixing table.
package dowshash

const (
	// tableSizeInBytes is the size of the process-wide mixing table.
	// Every table index is taken modulo this constant; wrap-around is
	// load-bearing.
	tableSizeInBytes = 65536

	// hashBaseUseCount is the number of 32-byte chunks drawn from the
	// mixing table during the orchestrator's finalization pass.
	hashBaseUseCount = 64

	// funcCount is the number of synthesized functions f[0]..f[funcCount-1].
	funcCount = 16

	// minStmtNum and maxStmtNum bound the number of statements a
	// synthesized function body contains.
	minStmtNum = 8
	maxStmtNum = 12

	// opCount and callWeight drive statement synthesis. A statement's
	// kind is drawn from [0, opCount): a draw in [0, opCount-2] selects
	// one of the nine mixer primitives, and the one remaining value,
	// opCount-1, makes it a recursive descent. callWeight does not enter
	// that draw; it is the number of candidate targets drawn for a
	// recursive descent, of which the lowest index is kept.
	opCount    = 10
	callWeight = 2
)

// tableSeedState and tableSeedIncrement are the literal PCG32 seed/sequence
// constants used to fill the mixing table. Part of the wire contract: any
// divergence here forks the chain.
const (
	tableSeedState     = 599128178199824553
	tableSeedIncrement = 2055286011627441373
)

// primes is the fixed 97-entry prime table indexed by each mixer call's
// auxiliary arguments. Reproduced verbatim from the ancestor implementation.
var primes = [97]uint32{
	145403341, 66068741, 2749919, 27290089, 34185863, 37667459, 95188969,
	13833949, 67867831, 71479897, 78736303, 55316783, 162373177, 141650737,
	149163137, 82375961, 22182247, 126673831, 23879353, 12195067, 108092819,
	109938481, 18815059, 60677941, 41161511, 171834121, 177525619, 143522779,
	160481023, 62472941, 80556551, 20495749, 10570697, 98866763, 69672541,
	25582019, 53533379, 32452657, 84200113, 48210583, 30723547, 75103313,
	113648273, 179424551, 91518881, 147280787, 97026073, 46441099, 121086289,
	168048611, 7368631, 137896123, 64268657, 8960299, 139772119, 76918057,
	122949667, 87857347, 130408657, 104395003, 158594087, 166158541, 29005411,
	5799961, 73289599, 154819559, 134150869, 128541643, 106244773, 102551369,
	175628303, 117363863, 169941001, 164262793, 111794677, 100711231, 58885829,
	93354587, 1299553, 132276563, 57099149, 115507703, 152935751, 15485761,
	136023631, 49979591, 39410737, 44680193, 119226883, 86027987, 173729729,
	51754847, 156703873, 124811003, 42919973, 89687537, 35926171,
}

// mixerLetter identifies one of the nine bit-mixer primitives, in the order
// the synthesizer draws them (A..I).
type mixerLetter uint8

const (
	letterA mixerLetter = iota // NotShift
	letterB                    // AndXor
	letterC                    // AndXorOr
	letterD                    // ShiftMix8
	letterE                    // ShiftMix16
	letterF                    // ShiftXor
	letterG                    // SwapShift
	letterH                    // PrimeMix
	letterI                    // PrimeMix2
)

func (l mixerLetter) String() string {
	return string(rune('A') + rune(l))
}

// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "math/big"

// CompactToBig converts a compact-encoded difficulty representation (the
// `nBits` wire field) into a *big.Int target. The encoding is a base-256
// exponent/mantissa pair: the low 3 bytes are the mantissa, the high byte
// is the exponent (as a count of mantissa bytes, including itself), and
// bit 0x00800000 of the mantissa, if set, makes the value negative.
//
// Ported from the ancestor's CompactToBig (mining/auxpow), extended to
// report negative targets the way Bitcoin's SetCompact does rather than
// silently dropping the sign bit.
func CompactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	exponent := uint(compact >> 24)
	isNegative := compact&0x00800000 != 0

	var result *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		result = big.NewInt(int64(mantissa))
	} else {
		result = big.NewInt(int64(mantissa))
		result.Lsh(result, 8*(exponent-3))
	}

	if isNegative {
		result.Neg(result)
	}
	return result
}

// BigToCompact converts a *big.Int target into its compact-encoded
// representation. The encoding is lossy above 24 significant mantissa
// bits: excess precision is rounded off by shifting the exponent up,
// matching Bitcoin's GetCompact. Re-encoding BigToCompact(CompactToBig(c))
// is not guaranteed to reproduce c exactly (a denormalized mantissa can
// have more than one compact encoding), but is guaranteed to decode back
// to the same target.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	isNegative := n.Sign() < 0
	mag := new(big.Int).Abs(n)

	// exponent is the number of bytes needed to hold the magnitude.
	exponent := uint((mag.BitLen() + 7) / 8)

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(mag.Int64())
		mantissa <<= 8 * (3 - exponent)
	} else {
		shifted := new(big.Int).Rsh(mag, 8*(exponent-3))
		mantissa = uint32(shifted.Int64())
	}

	// The mantissa's sign bit (0x00800000) would otherwise be
	// misinterpreted as the encoding's negative flag; push it into the
	// next higher exponent byte when it collides.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent)<<24 | mantissa
	if isNegative {
		compact |= 0x00800000
	}
	return compact
}

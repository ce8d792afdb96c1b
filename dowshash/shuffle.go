// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dowshash

import "encoding/binary"

// shuffleHash256 runs the synthesized program over the 32-byte working
// buffer in two passes of eight positions each. Each position reads a
// big-endian word for x and a little-endian word for y from opposite ends
// of the buffer, derives which synthesized function to call and how many
// times from bytes elsewhere in the buffer, and writes the mixed pair
// back in place before the next position is processed.
func shuffleHash256(prog *Program, h [32]byte) [32]byte {
	buf := h
	for pass := 0; pass < 2; pass++ {
		for k := 0; k < 8; k++ {
			xOff := k * 4
			yOff := 28 - k*4

			x := binary.BigEndian.Uint32(buf[xOff : xOff+4])
			y := binary.LittleEndian.Uint32(buf[yOff : yOff+4])

			funcIdx := int(buf[k]) % funcCount
			depth := uint8(buf[(k+16)%32]) % maxCallDepth
			callCount := int(buf[(k+8)%32])%4 + 1

			for c := 0; c < callCount; c++ {
				x, y = prog.Call(funcIdx, x, y, depth)
			}

			binary.BigEndian.PutUint32(buf[xOff:xOff+4], x)
			binary.LittleEndian.PutUint32(buf[yOff:yOff+4], y)
		}
	}
	return buf
}

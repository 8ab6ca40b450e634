package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per playable square.
// Bit 0 = a1, bit 7 = h1, bit 56 = a8, bit 63 = h8.
type Bitboard uint64

// Set sets the bit for the 64-based square index.
func (b *Bitboard) Set(sq64 int) {
	*b |= 1 << uint(sq64)
}

// Clear clears the bit for the 64-based square index.
func (b *Bitboard) Clear(sq64 int) {
	*b &^= 1 << uint(sq64)
}

// Test reports whether the bit for the 64-based square index is set.
func (b Bitboard) Test(sq64 int) bool {
	return b&(1<<uint(sq64)) != 0
}

// Count returns the number of set bits.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Pop clears and returns the index of the lowest set bit.
// It must not be called on an empty bitboard.
func (b *Bitboard) Pop() int {
	sq64 := bits.TrailingZeros64(uint64(*b))
	*b &= *b - 1
	return sq64
}

// String renders the bitboard as an 8x8 grid, rank 8 at the top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Test(int(r)*8 + int(f)) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package board

import "math/bits"

// A Bitboard is a 64-bit set of squares; bit i corresponds to Square(i).
type Bitboard uint64

const (
	// FileA masks the a-file (x = 0).
	FileA Bitboard = 0x0101010101010101
	// FileH masks the h-file (x = 7).
	FileH Bitboard = 0x8080808080808080

	// Corners masks the four corner squares.
	Corners Bitboard = 0x8100000000000081
)

// Count returns the number of set squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Has reports whether the square is in the set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bit() != 0
}

// Lowest returns the lowest set square. It must not be called on an
// empty bitboard.
func (b Bitboard) Lowest() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares returns the set squares in ascending index order.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.Count())
	for b != 0 {
		sqs = append(sqs, b.Lowest())
		b &= b - 1
	}
	return sqs
}

// Nth returns the n-th lowest set square (0-based). It must be called
// with n < b.Count().
func (b Bitboard) Nth(n int) Square {
	for ; n > 0; n-- {
		b &= b - 1
	}
	return b.Lowest()
}

// A Direction describes one of the 8 ray directions as a bit shift. The
// mask clears the file that would otherwise wrap to the far side of
// the board; rank overflow falls off the ends of the 64-bit word.
type Direction struct {
	name  string
	shift uint
	left  bool
	mask  Bitboard
}

// Directions lists the 8 ray directions used by move generation.
var Directions = [8]Direction{
	{"e", 1, true, ^FileH},
	{"w", 1, false, ^FileA},
	{"n", 8, true, ^Bitboard(0)},
	{"s", 8, false, ^Bitboard(0)},
	{"ne", 9, true, ^FileH},
	{"nw", 7, true, ^FileA},
	{"se", 7, false, ^FileH},
	{"sw", 9, false, ^FileA},
}

// Shift moves every square of bb one step along the direction,
// dropping squares that leave the board.
func (d Direction) Shift(bb Bitboard) Bitboard {
	bb &= d.mask
	if d.left {
		return bb << d.shift
	}
	return bb >> d.shift
}

package board

import (
	"fmt"
	"strings"
)

// BoardDim is the side length of the board.
const BoardDim = 8

// NumSquares is the total number of cells on the board.
const NumSquares = BoardDim * BoardDim

// Color is the color of a disc (and of the side to move).
type Color uint8

const (
	Black Color = iota
	White
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// A Square is a cell index in [0, 64), row-major: index = y*8 + x.
// In algebraic notation, files a-h map to x and ranks 1-8 to y, so
// a1 is square 0 and h8 is square 63.
type Square uint8

// SquareFromXY converts board coordinates to a Square. The second
// return value is false if either coordinate is off the board.
func SquareFromXY(x, y int) (Square, bool) {
	if x < 0 || x >= BoardDim || y < 0 || y >= BoardDim {
		return 0, false
	}
	return Square(y*BoardDim + x), true
}

// ParseSquare converts algebraic notation such as "d3" to a Square.
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	x := int(s[0] - 'a')
	y := int(s[1] - '1')
	sq, ok := SquareFromXY(x, y)
	if !ok {
		return 0, fmt.Errorf("square %q is off the board", s)
	}
	return sq, nil
}

// X returns the file (0-7).
func (s Square) X() int {
	return int(s) % BoardDim
}

// Y returns the rank (0-7).
func (s Square) Y() int {
	return int(s) / BoardDim
}

// Bit returns the bitboard with only this square set.
func (s Square) Bit() Bitboard {
	return Bitboard(1) << s
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.X()), s.Y()+1)
}

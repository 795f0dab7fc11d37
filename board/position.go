// Package board contains the bitboard representation of a Reversi
// position: squares, colors, directional shifts, and the Position
// value type. Move generation lives in the movegen package.
package board

import "strings"

// Initial disc placement: Black on e4 and d5, White on d4 and e5,
// Black to move.
const (
	startBlack Bitboard = 1<<28 | 1<<35
	startWhite Bitboard = 1<<27 | 1<<36
)

// A Position is one board state: the two disc sets and whose turn it
// is. It is a plain value; applying a move produces a new Position.
type Position struct {
	black      Bitboard
	white      Bitboard
	sideToMove Color
}

// StartingPosition returns the standard initial layout.
func StartingPosition() Position {
	return Position{black: startBlack, white: startWhite, sideToMove: Black}
}

// NewPosition builds a position from raw bitboards. The two sets must
// be disjoint; the caller is responsible for reachability.
func NewPosition(black, white Bitboard, sideToMove Color) Position {
	if black&white != 0 {
		panic("board: black and white bitboards overlap")
	}
	return Position{black: black, white: white, sideToMove: sideToMove}
}

// Black returns the black disc set.
func (p Position) Black() Bitboard { return p.black }

// White returns the white disc set.
func (p Position) White() Bitboard { return p.white }

// SideToMove returns whose turn it is.
func (p Position) SideToMove() Color { return p.sideToMove }

// Occupied returns the union of both disc sets.
func (p Position) Occupied() Bitboard { return p.black | p.white }

// Empties returns the number of empty squares.
func (p Position) Empties() int { return NumSquares - p.Occupied().Count() }

// Counts returns the black and white disc counts.
func (p Position) Counts() (blackCount, whiteCount int) {
	return p.black.Count(), p.white.Count()
}

// CountFor returns the disc count for one color.
func (p Position) CountFor(c Color) int {
	if c == Black {
		return p.black.Count()
	}
	return p.white.Count()
}

// Discs returns the side-to-move's discs and the opponent's discs,
// in that order.
func (p Position) Discs() (own, opp Bitboard) {
	return p.DiscsFor(p.sideToMove)
}

// DiscsFor returns the given color's discs and its opponent's discs.
func (p Position) DiscsFor(c Color) (own, opp Bitboard) {
	if c == Black {
		return p.black, p.white
	}
	return p.white, p.black
}

// PieceAt returns the color of the disc on sq, if any.
func (p Position) PieceAt(sq Square) (Color, bool) {
	switch {
	case p.black.Has(sq):
		return Black, true
	case p.white.Has(sq):
		return White, true
	}
	return 0, false
}

// Pass returns the same board with the turn handed to the opponent.
func (p Position) Pass() Position {
	p.sideToMove = p.sideToMove.Opponent()
	return p
}

// WithDiscs returns a position with the side-to-move's discs replaced
// by own and the opponent's by opp. Used by movegen when applying moves.
func (p Position) WithDiscs(own, opp Bitboard) Position {
	next := Position{sideToMove: p.sideToMove.Opponent()}
	if p.sideToMove == Black {
		next.black, next.white = own, opp
	} else {
		next.white, next.black = own, opp
	}
	return next
}

// ToDisplayText returns a human-readable grid, X for black and O for
// white, with file letters and rank numbers on the margins.
func (p Position) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h\n")
	for y := BoardDim - 1; y >= 0; y-- {
		sb.WriteByte(byte('1' + y))
		sb.WriteString("  ")
		for x := 0; x < BoardDim; x++ {
			sq, _ := SquareFromXY(x, y)
			switch c, ok := p.PieceAt(sq); {
			case ok && c == Black:
				sb.WriteString("X ")
			case ok:
				sb.WriteString("O ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte(byte('1' + y))
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

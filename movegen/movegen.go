// Package movegen contains the move-generating functions. It computes
// legal squares and flip sets with bit-parallel Kogge-Stone fills: each
// of the 8 directions is processed for the whole board at once by
// repeated shift-and-mask, instead of scanning every ray per square.
package movegen

import (
	"errors"

	"github.com/mwilbur/iago/board"
)

// ErrIllegalMove is returned when a square is not in the legal set for
// the position's side to move.
var ErrIllegalMove = errors.New("movegen: illegal move")

// A ray can cross at most 6 opponent discs before hitting an edge.
const spreadSteps = 5

// Legal returns the legal-move set for the side to move.
func Legal(p board.Position) board.Bitboard {
	own, opp := p.Discs()
	return legalMoves(own, opp)
}

// LegalFor returns the legal-move set for the given color, regardless
// of whose turn it is.
func LegalFor(p board.Position, c board.Color) board.Bitboard {
	own, opp := p.DiscsFor(c)
	return legalMoves(own, opp)
}

// HasLegal reports whether the side to move has any legal move.
func HasLegal(p board.Position) bool {
	return Legal(p) != 0
}

// Apply plays sq for the side to move and returns the successor
// position along with the set of flipped discs. The position is
// unchanged (and the error is ErrIllegalMove) if sq is not legal.
// Either every valid-direction flip is applied or none are.
func Apply(p board.Position, sq board.Square) (board.Position, board.Bitboard, error) {
	if !Legal(p).Has(sq) {
		return p, 0, ErrIllegalMove
	}
	own, opp := p.Discs()
	flipped := flips(own, opp, sq.Bit())
	next := p.WithDiscs(own|sq.Bit()|flipped, opp&^flipped)
	return next, flipped, nil
}

func legalMoves(own, opp board.Bitboard) board.Bitboard {
	empty := ^(own | opp)
	var moves board.Bitboard
	for _, d := range board.Directions {
		moves |= movesInDir(own, opp, empty, d)
	}
	return moves
}

func flips(own, opp, mv board.Bitboard) board.Bitboard {
	var flipped board.Bitboard
	for _, d := range board.Directions {
		flipped |= flipsInDir(own, opp, mv, d)
	}
	return flipped
}

// movesInDir finds the empty squares that terminate an own-disc ray
// through at least one opponent disc, for a single direction.
func movesInDir(own, opp, empty board.Bitboard, d board.Direction) board.Bitboard {
	x := d.Shift(own) & opp
	if x == 0 {
		return 0
	}
	x = spread(x, opp, d)
	return d.Shift(x) & empty
}

// flipsInDir returns the opponent discs flipped by mv along a single
// direction, or 0 if the chain is not capped by an own disc.
func flipsInDir(own, opp, mv board.Bitboard, d board.Direction) board.Bitboard {
	x := d.Shift(mv) & opp
	if x == 0 {
		return 0
	}
	x = spread(x, opp, d)
	if d.Shift(x)&own != 0 {
		return x
	}
	return 0
}

// spread extends x along the direction while it keeps landing on
// opponent discs (the Kogge-Stone fill).
func spread(x, opp board.Bitboard, d board.Direction) board.Bitboard {
	for i := 0; i < spreadSteps; i++ {
		x |= d.Shift(x) & opp
	}
	return x
}

// Package ai defines the capability shared by the move-selecting
// strategies: given a position, pick one move.
package ai

import "github.com/mwilbur/iago/board"

// A Move is a strategy's decision: a placement on a square, or a pass
// when the side to move has no legal move.
type Move struct {
	Square board.Square
	Pass   bool
}

// Place returns a placement move.
func Place(sq board.Square) Move {
	return Move{Square: sq}
}

// PassMove returns a pass.
func PassMove() Move {
	return Move{Pass: true}
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return m.Square.String()
}

// A Strategy selects the next move for the side to move. A strategy
// returns a pass if and only if the position has no legal move.
// Implementations may carry mutable state (RNG state, transposition
// table); each game must own its own instances, and none of them are
// safe for concurrent use.
type Strategy interface {
	SelectMove(p board.Position) Move
}

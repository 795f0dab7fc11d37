package alphabeta

import (
	"math"
	"testing"

	"github.com/matryer/is"

	"github.com/mwilbur/iago/ai/random"
	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/movegen"
)

// plainNegamax is the reference: full-width, no pruning, no table, no
// ordering. Alpha-beta must compute the same root value.
func plainNegamax(p board.Position, depth int) int {
	legal := movegen.Legal(p)
	if legal == 0 {
		if movegen.LegalFor(p, p.SideToMove().Opponent()) == 0 {
			return terminalScore(p)
		}
		if depth == 0 {
			return evaluate(p)
		}
		return -plainNegamax(p.Pass(), depth-1)
	}
	if depth == 0 {
		return evaluate(p)
	}
	best := -inf
	for _, sq := range legal.Squares() {
		next, _, _ := movegen.Apply(p, sq)
		if score := -plainNegamax(next, depth-1); score > best {
			best = score
		}
	}
	return best
}

// midgamePositions returns the start position plus a few positions
// reached by reproducible random play.
func midgamePositions() []board.Position {
	positions := []board.Position{board.StartingPosition()}
	p := board.StartingPosition()
	rng := random.New(7)
	for plies := 0; plies < 24; plies++ {
		mv := rng.SelectMove(p)
		if mv.Pass {
			p = p.Pass()
		} else {
			p, _, _ = movegen.Apply(p, mv.Square)
		}
		if plies%8 == 7 {
			positions = append(positions, p)
		}
	}
	return positions
}

func TestPruningMatchesPlainNegamax(t *testing.T) {
	is := is.New(t)

	for _, p := range midgamePositions() {
		for depth := uint8(1); depth <= 3; depth++ {
			s := New(int(depth))
			s.activeBudget = math.MaxUint64
			legal := movegen.Legal(p)
			if legal == 0 {
				continue
			}
			_, score, err := s.rootSearch(p, legal, depth, false)
			is.NoErr(err)
			is.Equal(score, plainNegamax(p, int(depth)))
		}
	}
}

func TestSelectMoveIsLegal(t *testing.T) {
	is := is.New(t)

	s := New(3)
	p := board.StartingPosition()
	for plies := 0; plies < 16; plies++ {
		legal := movegen.Legal(p)
		if legal == 0 {
			break
		}
		mv := s.SelectMove(p)
		is.True(!mv.Pass)
		is.True(legal.Has(mv.Square))
		p, _, _ = movegen.Apply(p, mv.Square)
	}
}

func TestSelectMovePassesWithoutLegalMoves(t *testing.T) {
	is := is.New(t)

	// Black a1, White b1, White to move: no legal White move.
	p := board.NewPosition(board.Square(0).Bit(), board.Square(1).Bit(), board.White)
	s := New(5)
	is.True(s.SelectMove(p).Pass)
}

// endgamePosition has three empties and exactly one legal Black move.
// Row 1 holds the empties a1, b1, c1 and a lone White disc on d1; the
// rest of the board is Black.
func endgamePosition() board.Position {
	empties := board.Square(0).Bit() | board.Square(1).Bit() | board.Square(2).Bit()
	white := board.Square(3).Bit()
	black := ^(empties | white)
	return board.NewPosition(black, white, board.Black)
}

func TestEndgameReadout(t *testing.T) {
	is := is.New(t)

	p := endgamePosition()
	is.True(p.Empties() <= endgameEmptyThreshold)
	is.Equal(movegen.Legal(p).Squares(), []board.Square{2})

	s := New(1) // shallow config; the readout overrides the depth
	mv := s.SelectMove(p)
	is.True(!mv.Pass)
	is.Equal(mv.Square, board.Square(2))
}

func TestNodeBudgetStillYieldsLegalMove(t *testing.T) {
	is := is.New(t)

	s := New(8)
	s.SetNodeBudget(10)
	p := board.StartingPosition()
	mv := s.SelectMove(p)
	is.True(!mv.Pass)
	is.True(movegen.Legal(p).Has(mv.Square))
}

func TestDepthClamp(t *testing.T) {
	is := is.New(t)

	is.Equal(New(0).Depth(), 1)
	is.Equal(New(-3).Depth(), 1)
	is.Equal(New(6).Depth(), 6)
}

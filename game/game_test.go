package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mwilbur/iago/board"
)

func TestNewGame(t *testing.T) {
	is := is.New(t)

	g := NewGame()
	is.Equal(g.SideToMove(), board.Black)
	is.Equal(g.Status(), InProgress)
	is.True(!g.IsOver())
	is.Equal(g.LegalMoves().Count(), 4)
}

func TestPlayResetsAndAlternates(t *testing.T) {
	is := is.New(t)

	g := NewGame()
	d3, err := board.ParseSquare("d3")
	is.NoErr(err)
	flipped, err := g.Play(d3)
	is.NoErr(err)
	is.Equal(flipped.Squares(), []board.Square{27})
	is.Equal(g.SideToMove(), board.White)
	is.Equal(g.CountFor(board.Black), 4)
	is.Equal(g.CountFor(board.White), 1)
}

func TestPlayIllegalLeavesStateUnchanged(t *testing.T) {
	is := is.New(t)

	g := NewGame()
	before := g.Position()
	_, err := g.Play(0)
	is.Equal(err, ErrIllegalMove)
	is.Equal(g.Position(), before)
	is.Equal(g.Status(), InProgress)
}

func TestPassOnlyWithNoLegalMoves(t *testing.T) {
	is := is.New(t)

	g := NewGame()
	is.Equal(g.PlayPass(), ErrIllegalPass)

	// Black a1, White b1, White to move: White has no legal move,
	// Black can play c1.
	p := board.NewPosition(board.Square(0).Bit(), board.Square(1).Bit(), board.White)
	g = NewGameFrom(p)
	is.True(!g.IsOver())
	is.NoErr(g.PlayPass())
	is.Equal(g.SideToMove(), board.Black)
	is.Equal(g.PlayPass(), ErrIllegalPass)

	flipped, err := g.Play(2)
	is.NoErr(err)
	is.Equal(flipped.Squares(), []board.Square{1})
	// White is wiped out and neither side can move.
	is.True(g.IsOver())
	is.Equal(g.Status(), BlackWins)
}

func TestFinishedGameRejectsMutation(t *testing.T) {
	is := is.New(t)

	full := ^board.Bitboard(0)
	g := NewGameFrom(board.NewPosition(full, 0, board.Black))
	is.True(g.IsOver())
	is.Equal(g.Status(), BlackWins)

	_, err := g.Play(0)
	is.Equal(err, ErrGameOver)
	is.Equal(g.PlayPass(), ErrGameOver)
}

func TestStatusScoring(t *testing.T) {
	is := is.New(t)

	half := board.Bitboard(0x00000000FFFFFFFF)
	g := NewGameFrom(board.NewPosition(half, ^half, board.Black))
	is.True(g.IsOver())
	is.Equal(g.Status(), Draw)

	// Full board, 31 black to 33 white.
	g = NewGameFrom(board.NewPosition(half&^board.Square(0).Bit(), ^half|board.Square(0).Bit(), board.White))
	is.True(g.IsOver())
	is.Equal(g.Status(), WhiteWins)
}

// Package game encapsulates the main mechanics of one Reversi game:
// the turn/pass/termination state machine wrapping a board.Position.
// A Game doesn't care how it is played; AI and human controllers live
// outside this package.
package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/movegen"
)

// Status is the derived state of a game. It is always recomputed from
// the position and pass counter, never cached.
type Status int

const (
	InProgress Status = iota
	BlackWins
	WhiteWins
	Draw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	}
	return "draw"
}

var (
	// ErrIllegalMove means the square is not in the legal set.
	ErrIllegalMove = errors.New("game: illegal move")
	// ErrIllegalPass means legal moves exist; passing is never
	// optional when a move is available.
	ErrIllegalPass = errors.New("game: pass not allowed, legal moves exist")
	// ErrGameOver means a mutating call was made on a finished game.
	ErrGameOver = errors.New("game: the game is over")
	// ErrInvalidCoordinate means a coordinate outside the board was
	// supplied. This is a boundary-input error, not a rule error.
	ErrInvalidCoordinate = errors.New("game: coordinate is off the board")
)

// Game owns the authoritative state of a single playthrough. Two
// consecutive passes end the game; the pass counter is the only state
// beyond the position needed to detect that.
type Game struct {
	position          board.Position
	consecutivePasses int
}

// NewGame starts a game from the standard initial layout, Black to move.
func NewGame() *Game {
	return &Game{position: board.StartingPosition()}
}

// NewGameFrom starts a game from an arbitrary position, for analysis
// or endgame setups. The pass counter starts at zero.
func NewGameFrom(p board.Position) *Game {
	return &Game{position: p}
}

// Position returns the current position.
func (g *Game) Position() board.Position { return g.position }

// SideToMove returns whose turn it is. Meaningless once the game is
// over; callers should check IsOver first.
func (g *Game) SideToMove() board.Color { return g.position.SideToMove() }

// LegalMoves returns the legal-move set for the side to move.
func (g *Game) LegalMoves() board.Bitboard { return movegen.Legal(g.position) }

// IsOver reports whether the game has ended: two consecutive passes,
// or no legal move for either side.
func (g *Game) IsOver() bool {
	if g.consecutivePasses >= 2 {
		return true
	}
	if movegen.HasLegal(g.position) {
		return false
	}
	return movegen.LegalFor(g.position, g.position.SideToMove().Opponent()) == 0
}

// Status derives the game status from the current state. A finished
// game is scored by disc comparison.
func (g *Game) Status() Status {
	if !g.IsOver() {
		return InProgress
	}
	blackCount, whiteCount := g.position.Counts()
	switch {
	case blackCount > whiteCount:
		return BlackWins
	case whiteCount > blackCount:
		return WhiteWins
	}
	return Draw
}

// Counts returns the black and white disc counts. Valid at any time.
func (g *Game) Counts() (blackCount, whiteCount int) {
	return g.position.Counts()
}

// CountFor returns the disc count for one color.
func (g *Game) CountFor(c board.Color) int { return g.position.CountFor(c) }

// Play applies a move for the side to move and returns the flipped
// disc set. On failure the game state is unchanged.
func (g *Game) Play(sq board.Square) (board.Bitboard, error) {
	if g.IsOver() {
		return 0, ErrGameOver
	}
	next, flipped, err := movegen.Apply(g.position, sq)
	if err != nil {
		return 0, ErrIllegalMove
	}
	g.position = next
	g.consecutivePasses = 0
	log.Debug().
		Stringer("square", sq).
		Int("flipped", flipped.Count()).
		Stringer("status", g.Status()).
		Msg("played-move")
	return flipped, nil
}

// PlayPass passes the turn. Only valid when the side to move has no
// legal move.
func (g *Game) PlayPass() error {
	if g.IsOver() {
		return ErrGameOver
	}
	if movegen.HasLegal(g.position) {
		return ErrIllegalPass
	}
	g.position = g.position.Pass()
	g.consecutivePasses++
	log.Debug().
		Int("consecutive-passes", g.consecutivePasses).
		Stringer("side-to-move", g.position.SideToMove()).
		Msg("passed")
	return nil
}

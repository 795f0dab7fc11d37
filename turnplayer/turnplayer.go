// Package turnplayer binds one controller per color (human, random, or
// alpha-beta) to a single game, and advances AI turns on request. It
// is the only surface the front ends talk to.
package turnplayer

import (
	"github.com/rs/zerolog/log"

	"github.com/mwilbur/iago/ai"
	"github.com/mwilbur/iago/ai/alphabeta"
	"github.com/mwilbur/iago/ai/random"
	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/game"
)

// A Controller decides moves for one color. A human controller has no
// strategy; its moves arrive through AttemptMove. Replacing a
// controller discards any strategy state it carried.
type Controller struct {
	strategy ai.Strategy
	name     string
}

// Human returns a controller whose moves are supplied by the caller.
func Human() Controller {
	return Controller{name: "human"}
}

// Random returns an AI controller picking uniformly with the given seed.
func Random(seed uint64) Controller {
	return Controller{strategy: random.New(seed), name: "random"}
}

// AlphaBeta returns an AI controller searching depth plies.
func AlphaBeta(depth int) Controller {
	return Controller{strategy: alphabeta.New(depth), name: "alphabeta"}
}

// IsHuman reports whether moves come from the caller.
func (c Controller) IsHuman() bool {
	return c.strategy == nil
}

func (c Controller) String() string {
	return c.name
}

// A CellObserver is notified of the placed square and every flipped
// square of each applied move, with the color the cell now shows. It
// is a rendering hook and carries no game logic.
type CellObserver func(sq board.Square, c board.Color)

// Session is one playthrough: a game plus a controller per color.
type Session struct {
	*game.Game
	controllers [2]Controller
	observer    CellObserver
}

// NewSession starts a game from the standard initial layout with both
// sides human-controlled.
func NewSession() *Session {
	return &Session{
		Game:        game.NewGame(),
		controllers: [2]Controller{Human(), Human()},
	}
}

// SetController replaces the controller for one color.
func (s *Session) SetController(c board.Color, ctrl Controller) {
	s.controllers[c] = ctrl
	log.Debug().Stringer("color", c).Stringer("controller", ctrl).Msg("controller-set")
}

// Controller returns the controller bound to a color.
func (s *Session) Controller(c board.Color) Controller {
	return s.controllers[c]
}

// SetCellObserver installs the drawing callback. A nil observer
// disables notifications.
func (s *Session) SetCellObserver(obs CellObserver) {
	s.observer = obs
}

// SideToMove returns whose turn it is; ok is false once the game is
// over.
func (s *Session) SideToMove() (c board.Color, ok bool) {
	if s.Game.IsOver() {
		return 0, false
	}
	return s.Game.SideToMove(), true
}

// TryMove attempts a move at board coordinates, reporting why it was
// rejected: game.ErrInvalidCoordinate for off-board input,
// game.ErrIllegalMove or game.ErrGameOver otherwise.
func (s *Session) TryMove(x, y int) error {
	sq, ok := board.SquareFromXY(x, y)
	if !ok {
		return game.ErrInvalidCoordinate
	}
	mover := s.Game.SideToMove()
	flipped, err := s.Game.Play(sq)
	if err != nil {
		return err
	}
	s.notify(sq, flipped, mover)
	return nil
}

// AttemptMove is TryMove reduced to the boolean the front ends want.
// The game state is unchanged when it returns false.
func (s *Session) AttemptMove(x, y int) bool {
	return s.TryMove(x, y) == nil
}

// AttemptPass passes the turn; true only if no legal move exists.
func (s *Session) AttemptPass() bool {
	return s.Game.PlayPass() == nil
}

// AdvanceOneAIPly plays a single ply if the side to move is
// AI-controlled and the game is in progress, returning the number of
// plies advanced (0 or 1). Pacing between AI moves is up to the caller.
func (s *Session) AdvanceOneAIPly() int {
	if s.Game.IsOver() {
		return 0
	}
	side := s.Game.SideToMove()
	ctrl := s.controllers[side]
	if ctrl.IsHuman() {
		return 0
	}

	if s.Game.LegalMoves() == 0 {
		if err := s.Game.PlayPass(); err != nil {
			log.Err(err).Msg("ai-pass-rejected")
			return 0
		}
		return 1
	}

	mv := ctrl.strategy.SelectMove(s.Game.Position())
	if mv.Pass {
		log.Error().Stringer("controller", ctrl).Msg("strategy-passed-with-legal-moves")
		return 0
	}
	flipped, err := s.Game.Play(mv.Square)
	if err != nil {
		log.Err(err).Stringer("square", mv.Square).Msg("ai-move-rejected")
		return 0
	}
	s.notify(mv.Square, flipped, side)
	return 1
}

// AdvanceAIPlies advances while the side to move is AI-controlled and
// the game is in progress, up to maxSteps plies, and returns the
// number actually advanced.
func (s *Session) AdvanceAIPlies(maxSteps int) int {
	n := 0
	for n < maxSteps && s.AdvanceOneAIPly() == 1 {
		n++
	}
	return n
}

func (s *Session) notify(placed board.Square, flipped board.Bitboard, mover board.Color) {
	if s.observer == nil {
		return
	}
	s.observer(placed, mover)
	for _, sq := range flipped.Squares() {
		s.observer(sq, mover)
	}
}

package alphabeta

import (
	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/movegen"
)

const (
	// discScale converts a final disc differential into terminal
	// scores: one disc of difference is worth 100 points.
	discScale = 100

	inf = 1_000_000_000

	// endgameEmptyThreshold is the empty-square count at which the
	// search reads out to the end of the game instead of using the
	// heuristic evaluation.
	endgameEmptyThreshold = 14

	// DefaultNodeBudget bounds the nodes visited across one full
	// iterative-deepening run.
	DefaultNodeBudget = 250_000

	defaultTableSize = 1 << 16
)

// evaluate scores a non-terminal position from the side to move's
// point of view. Corner occupancy and mobility dominate the opening
// and midgame; material takes over as the board fills up.
func evaluate(p board.Position) int {
	own, opp := p.Discs()
	side := p.SideToMove()

	material := own.Count() - opp.Count()
	corners := (own & board.Corners).Count() - (opp & board.Corners).Count()
	mobility := movegen.LegalFor(p, side).Count() -
		movegen.LegalFor(p, side.Opponent()).Count()

	var wCorner, wMobility, wMaterial int
	switch empties := p.Empties(); {
	case empties > 44:
		wCorner, wMobility, wMaterial = 30, 5, 0
	case empties > 20:
		wCorner, wMobility, wMaterial = 30, 3, 1
	default:
		wCorner, wMobility, wMaterial = 20, 1, 5
	}

	return corners*wCorner + mobility*wMobility + material*wMaterial
}

// terminalScore scores a finished game (both sides stuck) from the
// side to move's point of view.
func terminalScore(p board.Position) int {
	own, opp := p.Discs()
	return (own.Count() - opp.Count()) * discScale
}

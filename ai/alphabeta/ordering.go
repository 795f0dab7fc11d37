package alphabeta

import (
	"sort"

	"github.com/samber/lo"

	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/movegen"
)

// X-squares are diagonal corner neighbors; C-squares are the
// orthogonal ones. Playing either hands the adjacent corner to the
// opponent while that corner is still empty.
var xSquareCorner = map[board.Square]board.Square{
	9: 0, 14: 7, 49: 56, 54: 63,
}

var cSquareCorner = map[board.Square]board.Square{
	1: 0, 8: 0,
	6: 7, 15: 7,
	48: 56, 57: 56,
	55: 63, 62: 63,
}

type scoredMove struct {
	sq    board.Square
	score int
}

// orderMoves sorts the legal squares best-first for the alpha-beta
// loop: the table move leads, then corners; X- and C-squares next to
// unowned corners sink. The cheap tail heuristic prefers moves that
// leave the opponent the fewest replies. Ties break on ascending
// square index so the search stays deterministic.
func orderMoves(p board.Position, legal board.Bitboard, ttMove board.Square, haveTTMove bool) []board.Square {
	own, _ := p.Discs()
	scored := make([]scoredMove, 0, legal.Count())
	for bb := legal; bb != 0; bb &= bb - 1 {
		sq := bb.Lowest()
		score := 0
		if haveTTMove && sq == ttMove {
			score += 1_000_000
		}
		if board.Corners.Has(sq) {
			score += 100_000
		} else if corner, ok := xSquareCorner[sq]; ok && !own.Has(corner) {
			score -= 50_000
		} else if corner, ok := cSquareCorner[sq]; ok && !own.Has(corner) {
			score -= 20_000
		}
		if next, _, err := movegen.Apply(p, sq); err == nil {
			score -= movegen.Legal(next).Count()
		}
		scored = append(scored, scoredMove{sq: sq, score: score})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].sq < scored[j].sq
	})
	return lo.Map(scored, func(m scoredMove, _ int) board.Square {
		return m.sq
	})
}

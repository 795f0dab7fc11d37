// Package alphabeta implements depth-bounded negamax search with
// alpha-beta pruning, iterative deepening, a transposition table, and
// heuristic move ordering. Pruning is an optimization only: the root
// value always equals what an unpruned minimax of the same depth would
// compute.
//
// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    childNodes := orderMoves(childNodes)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
*/
package alphabeta

import (
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mwilbur/iago/ai"
	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/movegen"
	"github.com/mwilbur/iago/zobrist"
)

var errSearchAbort = errors.New("alphabeta: node budget exhausted")

type searchStats struct {
	nodes    uint64
	cutoffs  uint64
	ttStores uint64
}

// Strategy searches to a fixed depth in plies. A pass ply consumes one
// depth unit like any other. With at most endgameEmptyThreshold
// empties left it reads out to the end of the game instead.
type Strategy struct {
	depth      uint8
	nodeBudget uint64

	tt      *transpositionTable
	zobrist zobrist.Zobrist

	// per-search state
	stats        searchStats
	activeBudget uint64
}

// New creates a strategy searching depth plies. A depth below 1 is
// treated as 1.
func New(depth int) *Strategy {
	if depth < 1 {
		depth = 1
	}
	if depth > math.MaxUint8 {
		depth = math.MaxUint8
	}
	s := &Strategy{
		depth:      uint8(depth),
		nodeBudget: DefaultNodeBudget,
		tt:         newTranspositionTable(defaultTableSize),
	}
	s.zobrist.Initialize()
	return s
}

// Depth returns the configured search depth.
func (s *Strategy) Depth() int {
	return int(s.depth)
}

// SetNodeBudget bounds the nodes visited per SelectMove call. The
// endgame readout ignores the budget.
func (s *Strategy) SetNodeBudget(n uint64) {
	s.nodeBudget = n
}

// SelectMove runs the search and returns the best move found, or a
// pass when there is no legal move.
func (s *Strategy) SelectMove(p board.Position) ai.Move {
	legal := movegen.Legal(p)
	if legal == 0 {
		return ai.PassMove()
	}

	start := time.Now()
	s.stats = searchStats{}

	var mv ai.Move
	if p.Empties() <= endgameEmptyThreshold {
		mv = s.endgameRoot(p, legal)
	} else {
		mv = s.iterativelyDeepen(p, legal)
	}

	log.Debug().
		Uint64("nodes", s.stats.nodes).
		Uint64("cutoffs", s.stats.cutoffs).
		Uint64("ttable-created", s.tt.created).
		Uint64("ttable-lookups", s.tt.lookups).
		Uint64("ttable-hits", s.tt.hits).
		Uint64("ttable-stores", s.stats.ttStores).
		Float64("time-elapsed-sec", time.Since(start).Seconds()).
		Stringer("move", mv).
		Msg("search-returning")
	return mv
}

// iterativelyDeepen searches depth 1, 2, ... up to the configured
// depth, keeping the best move of the last fully completed depth when
// the node budget runs out mid-iteration.
func (s *Strategy) iterativelyDeepen(p board.Position, legal board.Bitboard) ai.Move {
	s.activeBudget = s.nodeBudget
	best := ai.Place(legal.Lowest())
	for depth := uint8(1); depth <= s.depth; depth++ {
		mv, score, err := s.rootSearch(p, legal, depth, false)
		if err != nil {
			log.Debug().Uint8("depth", depth).Msg("abort-deepening")
			break
		}
		log.Debug().Uint8("depth", depth).Int("score", score).
			Stringer("move", mv).Msg("deepening-iteratively")
		best = mv
	}
	return best
}

// endgameRoot reads the position out to the end of the game. Passes
// are possible, so the ply count leaves slack beyond the empty count.
func (s *Strategy) endgameRoot(p board.Position, legal board.Bitboard) ai.Move {
	s.activeBudget = math.MaxUint64
	// Entries scored with the midgame heuristic are on a different
	// scale and must not leak into the exact readout.
	s.tt = newTranspositionTable(defaultTableSize)
	plies := p.Empties()*2 + 2
	if plies > math.MaxUint8 {
		plies = math.MaxUint8
	}
	mv, score, err := s.rootSearch(p, legal, uint8(plies), true)
	if err != nil {
		// unreachable with an unlimited budget
		return ai.Place(legal.Lowest())
	}
	log.Debug().Int("plies", plies).Int("score", score).
		Stringer("move", mv).Msg("endgame-solved")
	return mv
}

func (s *Strategy) rootSearch(p board.Position, legal board.Bitboard, depth uint8, exact bool) (ai.Move, int, error) {
	key := s.zobrist.Hash(p)
	ttMove, haveTTMove := s.tt.bestMove(key)
	moves := orderMoves(p, legal, ttMove, haveTTMove)

	alpha, beta := -inf, inf
	bestScore := -inf
	best := ai.Place(moves[0])

	for _, sq := range moves {
		next, flipped, err := movegen.Apply(p, sq)
		if err != nil {
			continue
		}
		childKey := s.zobrist.AddMove(key, sq, flipped, p.SideToMove())
		score, err := s.negamax(next, childKey, depth-1, -beta, -alpha, exact)
		if err != nil {
			return best, bestScore, err
		}
		score = -score
		if score > bestScore {
			bestScore = score
			best = ai.Place(sq)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best, bestScore, nil
}

func (s *Strategy) negamax(p board.Position, key uint64, depth uint8, alpha, beta int, exact bool) (int, error) {
	s.stats.nodes++
	if s.stats.nodes >= s.activeBudget {
		return 0, errSearchAbort
	}

	alphaOrig := alpha
	if entry, ok := s.tt.lookup(key, depth); ok {
		switch entry.flag {
		case ttExact:
			return entry.score, nil
		case ttLower:
			if entry.score >= beta {
				return entry.score, nil
			}
			if entry.score > alpha {
				alpha = entry.score
			}
		case ttUpper:
			if entry.score <= alpha {
				return entry.score, nil
			}
			if entry.score < beta {
				beta = entry.score
			}
		}
		if alpha >= beta {
			return entry.score, nil
		}
	}

	legal := movegen.Legal(p)
	if legal == 0 {
		opp := p.SideToMove().Opponent()
		if movegen.LegalFor(p, opp) == 0 {
			return terminalScore(p), nil
		}
		if depth == 0 {
			return s.leafScore(p, exact), nil
		}
		// A forced pass still costs one ply of depth.
		score, err := s.negamax(p.Pass(), s.zobrist.AddPass(key), depth-1, -beta, -alpha, exact)
		if err != nil {
			return 0, err
		}
		return -score, nil
	}

	if depth == 0 {
		return s.leafScore(p, exact), nil
	}

	ttMove, haveTTMove := s.tt.bestMove(key)
	moves := orderMoves(p, legal, ttMove, haveTTMove)

	best := -inf
	var bestSq board.Square
	haveBest := false

	for _, sq := range moves {
		next, flipped, err := movegen.Apply(p, sq)
		if err != nil {
			continue
		}
		childKey := s.zobrist.AddMove(key, sq, flipped, p.SideToMove())
		score, err := s.negamax(next, childKey, depth-1, -beta, -alpha, exact)
		if err != nil {
			return 0, err
		}
		score = -score
		if score > best {
			best = score
			bestSq = sq
			haveBest = true
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			s.stats.cutoffs++
			break
		}
	}

	flag := uint8(ttExact)
	if best <= alphaOrig {
		flag = ttUpper
	} else if best >= beta {
		flag = ttLower
	}
	s.tt.store(key, depth, best, flag, bestSq, haveBest)
	s.stats.ttStores++

	return best, nil
}

// leafScore evaluates a depth-0 node. The endgame readout should never
// actually reach depth 0, but scores the board exactly if it does.
func (s *Strategy) leafScore(p board.Position, exact bool) int {
	if exact {
		return terminalScore(p)
	}
	return evaluate(p)
}

// Package zobrist hashes Reversi positions for the transposition table.
// https://en.wikipedia.org/wiki/Zobrist_hashing
package zobrist

import (
	"lukechampine.com/frand"

	"github.com/mwilbur/iago/board"
)

const bignum = 1<<63 - 2

// Zobrist holds one random key per (square, color) plus a
// side-to-move key. Keys are never zero so a zero hash can act as an
// empty-slot marker.
type Zobrist struct {
	black       [board.NumSquares]uint64
	white       [board.NumSquares]uint64
	blackToMove uint64
}

// Initialize fills the key tables.
func (z *Zobrist) Initialize() {
	for i := 0; i < board.NumSquares; i++ {
		z.black[i] = frand.Uint64n(bignum) + 1
		z.white[i] = frand.Uint64n(bignum) + 1
	}
	z.blackToMove = frand.Uint64n(bignum) + 1
}

// Hash computes the key of a position from scratch.
func (z *Zobrist) Hash(p board.Position) uint64 {
	var key uint64
	for bb := p.Black(); bb != 0; bb &= bb - 1 {
		key ^= z.black[bb.Lowest()]
	}
	for bb := p.White(); bb != 0; bb &= bb - 1 {
		key ^= z.white[bb.Lowest()]
	}
	if p.SideToMove() == board.Black {
		key ^= z.blackToMove
	}
	return key
}

// AddMove advances a parent key by one placement: the mover's disc
// appears on sq, every flipped square changes color, and the turn
// toggles. Must produce the same key as hashing the child position.
func (z *Zobrist) AddMove(key uint64, sq board.Square, flipped board.Bitboard, mover board.Color) uint64 {
	moverTable := &z.black
	if mover == board.White {
		moverTable = &z.white
	}
	key ^= moverTable[sq]
	for bb := flipped; bb != 0; bb &= bb - 1 {
		fsq := bb.Lowest()
		key ^= z.black[fsq] ^ z.white[fsq]
	}
	return key ^ z.blackToMove
}

// AddPass advances a parent key by a pass: only the turn toggles.
func (z *Zobrist) AddPass(key uint64) uint64 {
	return key ^ z.blackToMove
}

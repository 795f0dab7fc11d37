package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/movegen"
)

func TestHashDistinguishesSideToMove(t *testing.T) {
	is := is.New(t)

	var z Zobrist
	z.Initialize()
	p := board.StartingPosition()
	is.True(z.Hash(p) != z.Hash(p.Pass()))
	is.Equal(z.Hash(p), z.Hash(p)) // deterministic per table
}

func TestAddPassMatchesFullHash(t *testing.T) {
	is := is.New(t)

	var z Zobrist
	z.Initialize()
	p := board.StartingPosition()
	is.Equal(z.AddPass(z.Hash(p)), z.Hash(p.Pass()))
	// Two passes round-trip.
	is.Equal(z.AddPass(z.AddPass(z.Hash(p))), z.Hash(p))
}

// Incremental keys must agree with from-scratch hashing along a whole
// playout, otherwise the transposition table would silently mix
// positions.
func TestAddMoveMatchesFullHash(t *testing.T) {
	is := is.New(t)

	var z Zobrist
	z.Initialize()
	p := board.StartingPosition()
	key := z.Hash(p)
	for plies := 0; plies < 120; plies++ {
		legal := movegen.Legal(p)
		if legal == 0 {
			if movegen.LegalFor(p, p.SideToMove().Opponent()) == 0 {
				break
			}
			p = p.Pass()
			key = z.AddPass(key)
			is.Equal(key, z.Hash(p))
			continue
		}
		mover := p.SideToMove()
		sq := legal.Lowest()
		next, flipped, err := movegen.Apply(p, sq)
		is.NoErr(err)
		key = z.AddMove(key, sq, flipped, mover)
		is.Equal(key, z.Hash(next))
		p = next
	}
}

func TestKeysAreNonZero(t *testing.T) {
	is := is.New(t)

	var z Zobrist
	z.Initialize()
	for i := 0; i < board.NumSquares; i++ {
		is.True(z.black[i] != 0)
		is.True(z.white[i] != 0)
	}
	is.True(z.blackToMove != 0)
}

// Package random implements uniform-random move selection driven by a
// seeded 64-bit linear congruential generator. A fixed seed reproduces
// an identical move sequence, which the self-play tests rely on.
package random

import (
	"github.com/mwilbur/iago/ai"
	"github.com/mwilbur/iago/board"
	"github.com/mwilbur/iago/movegen"
)

// LCG recurrence constants: the Knuth MMIX multiplier/increment pair
// also used by the PCG family. These are part of the reproducibility
// contract and must not change.
const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
	seedScramble  uint64 = 0x9E3779B97F4A7C15
)

type lcg64 struct {
	state uint64
}

// The scramble keeps seed 0 from starting at the all-zero state.
func newLCG(seed uint64) lcg64 {
	return lcg64{state: seed ^ seedScramble}
}

// next32 advances the state exactly one step and returns the top 32
// bits of the new state (the low bits of an LCG mix poorly).
func (l *lcg64) next32() uint32 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return uint32(l.state >> 32)
}

// Strategy picks uniformly among the legal moves. It owns its
// generator state; nothing is shared between instances.
type Strategy struct {
	seed uint64
	rng  lcg64
}

// New creates a strategy from a 64-bit seed.
func New(seed uint64) *Strategy {
	return &Strategy{seed: seed, rng: newLCG(seed)}
}

// Seed returns the seed this strategy was created with.
func (s *Strategy) Seed() uint64 {
	return s.seed
}

// SelectMove draws once from the generator and returns the k-th legal
// square in ascending index order, k obtained by Lemire multiply-shift
// reduction of the draw. Exactly one draw per call, never more.
func (s *Strategy) SelectMove(p board.Position) ai.Move {
	moves := movegen.Legal(p)
	if moves == 0 {
		return ai.PassMove()
	}
	draw := s.rng.next32()
	k := int(uint64(draw) * uint64(moves.Count()) >> 32)
	return ai.Place(moves.Nth(k))
}

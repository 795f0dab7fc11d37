package alphabeta

import "github.com/mwilbur/iago/board"

const (
	ttExact = 0x01
	ttLower = 0x02
	ttUpper = 0x03
)

type tableEntry struct {
	key      uint64
	score    int
	sq       board.Square
	haveMove bool
	depth    uint8
	flag     uint8
}

func (e tableEntry) valid() bool {
	return e.flag != 0
}

// transpositionTable is a fixed-size power-of-two direct-mapped table.
// Deeper entries win on replacement; unrelated keys just overwrite.
type transpositionTable struct {
	table    []tableEntry
	sizeMask uint64

	created uint64
	lookups uint64
	hits    uint64
}

func newTranspositionTable(size int) *transpositionTable {
	n := 1
	for n < size {
		n <<= 1
	}
	return &transpositionTable{
		table:    make([]tableEntry, n),
		sizeMask: uint64(n - 1),
	}
}

// index folds the top bits down so 32-bit platforms hash identically.
func (t *transpositionTable) index(key uint64) uint64 {
	return (key ^ key>>32) & t.sizeMask
}

// lookup returns the entry for key if it was stored at sufficient depth.
func (t *transpositionTable) lookup(key uint64, depth uint8) (tableEntry, bool) {
	t.lookups++
	entry := t.table[t.index(key)]
	if !entry.valid() || entry.key != key || entry.depth < depth {
		return tableEntry{}, false
	}
	t.hits++
	return entry, true
}

// bestMove returns the stored move for key at any depth.
func (t *transpositionTable) bestMove(key uint64) (board.Square, bool) {
	entry := t.table[t.index(key)]
	if !entry.valid() || entry.key != key || !entry.haveMove {
		return 0, false
	}
	return entry.sq, true
}

func (t *transpositionTable) store(key uint64, depth uint8, score int, flag uint8, sq board.Square, haveMove bool) {
	idx := t.index(key)
	old := t.table[idx]
	if old.valid() && old.key == key && depth < old.depth {
		return
	}
	t.table[idx] = tableEntry{
		key:      key,
		score:    score,
		sq:       sq,
		haveMove: haveMove,
		depth:    depth,
		flag:     flag,
	}
	t.created++
}

// Package engine implements the iterative-deepening alpha-beta search, the
// transposition table and the static evaluator.
package engine

import (
	"unsafe"

	"github.com/exo-shinigami/gambit/internal/board"
)

// TTFlag indicates the type of bound stored in a transposition table entry.
type TTFlag uint8

const (
	TTNone  TTFlag = iota
	TTAlpha        // score failed low, an upper bound
	TTBeta         // score failed high, a lower bound
	TTExact        // score is exact for the node
)

// TTEntry is one slot of the transposition table.
type TTEntry struct {
	Key   uint64
	Move  board.Move
	Score int32
	Depth int16
	Flag  TTFlag
}

// Table size limits in megabytes. The allocator gives no recoverable
// out-of-memory signal, so oversized requests are clamped rather than
// retried.
const (
	MinHashMB     = 1
	MaxHashMB     = 1024
	DefaultHashMB = 64
)

// Table is a fixed-size transposition table indexed by key modulo entry
// count. Each key maps to exactly one slot and stores overwrite
// unconditionally, so the table never needs eviction bookkeeping.
type Table struct {
	entries []TTEntry

	// Diagnostics, reset by Clear.
	NewWrites  uint64
	OverWrites uint64
	Hits       uint64
	Cuts       uint64
}

// NewTable creates a transposition table with the given size budget in MB.
func NewTable(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table for a new size budget, discarding all
// entries. The budget is clamped to [MinHashMB, MaxHashMB].
func (t *Table) Resize(sizeMB int) {
	if sizeMB < MinHashMB {
		sizeMB = MinHashMB
	}
	if sizeMB > MaxHashMB {
		sizeMB = MaxHashMB
	}

	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	count := uint64(sizeMB) * 1024 * 1024 / entrySize

	t.entries = make([]TTEntry, count)
	t.resetStats()
}

// Clear wipes every entry and the statistics, keeping the allocation.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = TTEntry{}
	}
	t.resetStats()
}

func (t *Table) resetStats() {
	t.NewWrites = 0
	t.OverWrites = 0
	t.Hits = 0
	t.Cuts = 0
}

// Count returns the number of slots.
func (t *Table) Count() int {
	return len(t.entries)
}

func (t *Table) slot(key uint64) *TTEntry {
	return &t.entries[key%uint64(len(t.entries))]
}

// Store records the search result for key. Mate scores are stored relative
// to the node by removing the root distance, so a later probe at a
// different ply can re-anchor them.
func (t *Table) Store(key uint64, m board.Move, score, depth, ply int, flag TTFlag) {
	e := t.slot(key)

	if e.Flag == TTNone {
		t.NewWrites++
	} else {
		t.OverWrites++
	}

	if score > isMate {
		score += ply
	} else if score < -isMate {
		score -= ply
	}

	e.Key = key
	e.Move = m
	e.Score = int32(score)
	e.Depth = int16(depth)
	e.Flag = flag
}

// Probe looks up key. When the stored entry is deep enough and its bound is
// conclusive against the [alpha, beta] window, Probe returns a usable score;
// otherwise it returns ok=false, with the stored move still available for
// ordering via PvMove.
func (t *Table) Probe(key uint64, alpha, beta, depth, ply int) (m board.Move, score int, ok bool) {
	e := t.slot(key)
	if e.Key != key || e.Flag == TTNone {
		return board.NoMove, 0, false
	}

	m = e.Move
	if int(e.Depth) < depth {
		return m, 0, false
	}

	t.Hits++

	score = int(e.Score)
	if score > isMate {
		score -= ply
	} else if score < -isMate {
		score += ply
	}

	switch e.Flag {
	case TTAlpha:
		if score <= alpha {
			return m, alpha, true
		}
	case TTBeta:
		if score >= beta {
			return m, beta, true
		}
	case TTExact:
		return m, score, true
	}

	return m, 0, false
}

// PvMove returns the move stored for key, NoMove when the slot belongs to a
// different position.
func (t *Table) PvMove(key uint64) board.Move {
	e := t.slot(key)
	if e.Key == key {
		return e.Move
	}
	return board.NoMove
}

package engine

import (
	"testing"

	"github.com/exo-shinigami/gambit/internal/board"
)

func TestTableSizing(t *testing.T) {
	tt := NewTable(2)
	if tt.Count() <= 0 {
		t.Fatal("empty table")
	}

	// Clamped, never zero or absurd.
	small := NewTable(-5)
	if small.Count() <= 0 {
		t.Error("undersized request produced an empty table")
	}

	was := tt.Count()
	tt.Resize(4)
	if tt.Count() <= was {
		t.Error("resize to a larger budget did not grow the table")
	}
}

// TestTableBoundSoundness stores each bound type and checks Probe only
// returns usable scores when the bound is conclusive for the window.
func TestTableBoundSoundness(t *testing.T) {
	tt := NewTable(1)
	key := uint64(0xDEADBEEFCAFE)
	m := board.NewMove(board.E2, board.E4, board.Empty, board.Empty, board.FlagPawnStart)

	// Exact score: usable against any window.
	tt.Store(key, m, 42, 6, 0, TTExact)
	if _, score, ok := tt.Probe(key, -100, 100, 6, 0); !ok || score != 42 {
		t.Errorf("exact probe = (%d, %v), want (42, true)", score, ok)
	}

	// Upper bound 42: conclusive only when it cannot raise alpha.
	tt.Store(key, m, 42, 6, 0, TTAlpha)
	if _, score, ok := tt.Probe(key, 50, 100, 6, 0); !ok || score != 50 {
		t.Errorf("upper bound probe above alpha = (%d, %v), want (50, true)", score, ok)
	}
	if _, _, ok := tt.Probe(key, 0, 100, 6, 0); ok {
		t.Error("upper bound 42 usable with alpha 0; it is not conclusive there")
	}

	// Lower bound 42: conclusive only at or above beta.
	tt.Store(key, m, 42, 6, 0, TTBeta)
	if _, score, ok := tt.Probe(key, -100, 30, 6, 0); !ok || score != 30 {
		t.Errorf("lower bound probe below beta = (%d, %v), want (30, true)", score, ok)
	}
	if _, _, ok := tt.Probe(key, -100, 100, 6, 0); ok {
		t.Error("lower bound 42 usable with beta 100; it is not conclusive there")
	}
}

// TestTableDepthGate checks shallow entries only contribute their move.
func TestTableDepthGate(t *testing.T) {
	tt := NewTable(1)
	key := uint64(0x1234567890AB)
	m := board.NewMove(board.G1, board.F3, board.Empty, board.Empty, 0)

	tt.Store(key, m, 10, 3, 0, TTExact)

	if _, _, ok := tt.Probe(key, -100, 100, 5, 0); ok {
		t.Error("depth-3 entry satisfied a depth-5 probe")
	}
	gotMove, _, _ := tt.Probe(key, -100, 100, 5, 0)
	if gotMove != m {
		t.Errorf("move not returned from shallow entry: got %v", gotMove)
	}
	if got := tt.PvMove(key); got != m {
		t.Errorf("PvMove = %v, want %v", got, m)
	}
}

// TestTableMateScoreAdjustment checks mate scores re-anchor to the probing
// ply.
func TestTableMateScoreAdjustment(t *testing.T) {
	tt := NewTable(1)
	key := uint64(0xFEEDFACE)
	m := board.NewMove(board.D8, board.H4, board.Empty, board.Empty, 0)

	// Mate found at ply 4, scored from that node.
	mateAtNode := Infinity - 6
	tt.Store(key, m, mateAtNode, 8, 4, TTExact)

	// Probed at ply 2 the same mate is two plies farther away.
	_, score, ok := tt.Probe(key, -Infinity, Infinity, 8, 2)
	if !ok {
		t.Fatal("exact mate entry not usable")
	}
	if want := mateAtNode + 4 - 2; score != want {
		t.Errorf("mate score = %d, want %d", score, want)
	}
}

func TestTableOverwriteAndClear(t *testing.T) {
	tt := NewTable(1)
	key := uint64(42)
	m1 := board.NewMove(board.E2, board.E4, board.Empty, board.Empty, board.FlagPawnStart)
	m2 := board.NewMove(board.D2, board.D4, board.Empty, board.Empty, board.FlagPawnStart)

	tt.Store(key, m1, 1, 9, 0, TTExact)
	// Same slot, shallower depth: still replaces.
	tt.Store(key, m2, 2, 1, 0, TTExact)

	if got := tt.PvMove(key); got != m2 {
		t.Errorf("always-overwrite violated: got %v, want %v", got, m2)
	}

	tt.Clear()
	if got := tt.PvMove(key); got != board.NoMove {
		t.Errorf("entry survived Clear: %v", got)
	}
}

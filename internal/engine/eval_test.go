package engine

import (
	"testing"

	"github.com/exo-shinigami/gambit/internal/board"
)

func testBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen, board.NewTables())
	if err != nil {
		t.Fatalf("Failed to parse FEN %q: %v", fen, err)
	}
	b.Checked = true
	return b
}

// TestEvaluateMirrorSymmetry checks that mirroring a position never changes
// its score from the mover's perspective.
func TestEvaluateMirrorSymmetry(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/p6k/6p1/5p2/P4K2/8/5pB1/8 b - - 2 62",
		"2rr2k1/pp3ppp/2n1b3/q7/8/1QN1PN2/PP3PPP/3RR1K1 w - - 0 1",
	}

	for _, fen := range fens {
		b := testBoard(t, fen)
		before := Evaluate(b)
		b.Mirror()
		after := Evaluate(b)
		if before != after {
			t.Errorf("mirror of %s: %d vs %d", fen, before, after)
		}
	}
}

// TestEvaluateDeterministic checks repeated evaluation of the same position
// gives the same score.
func TestEvaluateDeterministic(t *testing.T) {
	b := testBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	first := Evaluate(b)
	for i := 0; i < 10; i++ {
		if got := Evaluate(b); got != first {
			t.Fatalf("evaluation drifted from %d to %d", first, got)
		}
	}
}

// TestEvaluateSideToMove checks the score flips sign with the side to move.
func TestEvaluateSideToMove(t *testing.T) {
	white := testBoard(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	black := testBoard(t, "4k3/8/8/8/8/8/4P3/4K3 b - - 0 1")

	if Evaluate(white) != -Evaluate(black) {
		t.Errorf("white view %d, black view %d; want negations", Evaluate(white), Evaluate(black))
	}
	if Evaluate(white) <= 0 {
		t.Errorf("white is a pawn up but evaluates to %d", Evaluate(white))
	}
}

func TestMaterialDraw(t *testing.T) {
	tests := []struct {
		fen  string
		draw bool
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},      // bare kings
		{"4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},     // lone knight
		{"4kb2/8/8/8/8/8/8/4KB2 w - - 0 1", true},    // bishop each
		{"3rk3/8/8/8/8/8/8/3RK3 w - - 0 1", true},    // rook each
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", false},    // queen
		{"4k3/8/8/8/8/8/8/2NNK1B1 w - - 0 1", false}, // two knights and bishop
	}

	for _, tc := range tests {
		b := testBoard(t, tc.fen)
		if got := materialDraw(b); got != tc.draw {
			t.Errorf("materialDraw(%s) = %v, want %v", tc.fen, got, tc.draw)
		}
	}
}

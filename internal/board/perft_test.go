package board

import "testing"

func newTestBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := ParseFEN(fen, NewTables())
	if err != nil {
		t.Fatalf("Failed to parse FEN %q: %v", fen, err)
	}
	b.Checked = true
	return b
}

// TestPerftStartingPosition tests move generation from the starting position.
func TestPerftStartingPosition(t *testing.T) {
	b := newTestBoard(t, StartFEN)

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := b.Perft(tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftStartingPositionDeep verifies the depth-5 reference count.
func TestPerftStartingPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-5 perft in short mode")
	}

	b := newTestBoard(t, StartFEN)
	b.Checked = false // checked mode makes depth 5 too slow

	if got := b.Perft(5); got != 4865609 {
		t.Errorf("perft(5) = %d, want 4865609", got)
	}
}

// TestPerftKiwipete tests the famous Kiwipete position with many edge cases:
// castling through attacks, en passant, promotions and pins.
func TestPerftKiwipete(t *testing.T) {
	b := newTestBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := b.Perft(tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftKiwipeteDeep verifies the depth-4 Kiwipete count.
func TestPerftKiwipeteDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-4 Kiwipete perft in short mode")
	}

	b := newTestBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	b.Checked = false

	if got := b.Perft(4); got != 4085603 {
		t.Errorf("perft(4) = %d, want 4085603", got)
	}
}

// TestPerftPosition3 tests en passant edge cases.
func TestPerftPosition3(t *testing.T) {
	b := newTestBoard(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := b.Perft(tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassantPin tests the en passant horizontal pin edge case.
// The black pawn on e4 may not capture d3 en passant: removing both pawns
// from the fourth rank exposes the black king on a4 to the rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	b := newTestBoard(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")

	var ml MoveList
	b.GenerateAllMoves(&ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if !m.IsEnPassant() {
			continue
		}
		if b.MakeMove(m) {
			b.TakeMove()
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := b.Perft(tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftDivideTotal checks that the per-move breakdown sums to the plain
// perft count.
func TestPerftDivideTotal(t *testing.T) {
	b := newTestBoard(t, StartFEN)

	results, total := b.PerftDivide(3)
	if len(results) != 20 {
		t.Errorf("expected 20 root moves, got %d", len(results))
	}
	if want := b.Perft(3); total != want {
		t.Errorf("divide total = %d, perft = %d", total, want)
	}
}

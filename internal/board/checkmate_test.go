package board

import "testing"

func TestCheckmate(t *testing.T) {
	// Back rank mate: white Ra8 checks the black king on h8, own pawns
	// block the escape squares. Black to move has nothing.
	b := newTestBoard(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	if !b.InCheck() {
		t.Error("expected black to be in check")
	}
	if b.HasLegalMoves() {
		t.Error("expected checkmate but black has legal moves")
	}
}

func TestNotCheckmate(t *testing.T) {
	// The checking rook on g8 is undefended; the king captures it.
	b := newTestBoard(t, "6Rk/8/8/8/8/8/8/K7 b - - 0 1")

	if !b.InCheck() {
		t.Error("expected black to be in check")
	}
	if !b.HasLegalMoves() {
		t.Error("expected an escape but black has no legal moves")
	}
}

func TestStalemate(t *testing.T) {
	// Black king on a8 is not in check but every square it could reach is
	// covered.
	b := newTestBoard(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")

	if b.InCheck() {
		t.Error("expected black not to be in check")
	}
	if b.HasLegalMoves() {
		t.Error("expected stalemate but black has legal moves")
	}
}

// TestFoolsMate plays the fastest checkmate move by move and checks the
// final position is a mate for black.
func TestFoolsMate(t *testing.T) {
	b := newTestBoard(t, StartFEN)

	for _, ms := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := b.ParseMove(ms)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", ms, err)
		}
		if !b.MakeMove(m) {
			t.Fatalf("MakeMove(%s) rejected a legal move", ms)
		}
	}

	if !b.InCheck() {
		t.Error("expected white to be in check after Qh4#")
	}
	if b.HasLegalMoves() {
		t.Error("expected checkmate but white has legal moves")
	}
}

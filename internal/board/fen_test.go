package board

import "testing"

// TestFENRoundTrip parses positions and serializes them back.
func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"r3k3/8/8/8/8/8/8/4K3 b q - 12 34",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b := newTestBoard(t, fen)
			if got := b.FEN(); got != fen {
				t.Errorf("round trip:\n in  %s\n out %s", fen, got)
			}
		})
	}
}

// TestHighFullMoveCounter plays moves on a position deep into a long game.
// The full-move counter must only affect FEN output, never the undo history
// index, so a late position leaves the full history capacity available.
func TestHighFullMoveCounter(t *testing.T) {
	b := newTestBoard(t, "7k/8/8/8/8/8/8/K7 w - - 0 1023")

	if b.HisPly != 0 {
		t.Fatalf("HisPly = %d after setup, want 0", b.HisPly)
	}

	line := []string{"a1b1", "h8g8", "b1a1", "g8h8", "a1b1", "h8g8"}
	for _, ms := range line {
		m, err := b.ParseMove(ms)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", ms, err)
		}
		if !b.MakeMove(m) {
			t.Fatalf("MakeMove(%s) rejected", ms)
		}
	}

	// Three full moves in: white to move again, counter advanced by three.
	if got := b.FEN(); got != "6k1/8/8/8/8/8/8/1K6 w - - 6 1026" {
		t.Errorf("FEN after line = %s", got)
	}

	for range line {
		b.TakeMove()
	}
	if got := b.FEN(); got != "7k/8/8/8/8/8/8/K7 w - - 0 1023" {
		t.Errorf("FEN after unwind = %s", got)
	}
}

// TestParseFENErrors checks malformed input is rejected and the target board
// of LoadFEN is untouched.
func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",               // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",           // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",  // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", // bad ep square
		"znbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // bad piece
		"8/8/8/8/8/8/8/8 w - - 0 1",                                 // no kings
	}

	tbl := NewTables()
	for _, fen := range bad {
		if _, err := ParseFEN(fen, tbl); err == nil {
			t.Errorf("ParseFEN(%q) succeeded, want error", fen)
		}
	}

	b := NewBoard(tbl)
	key := b.PosKey
	if err := b.LoadFEN("not a fen"); err == nil {
		t.Fatal("LoadFEN accepted garbage")
	}
	if b.PosKey != key {
		t.Error("board modified by failed LoadFEN")
	}
}

// TestStartPosition spot checks the derived state of the initial position.
func TestStartPosition(t *testing.T) {
	b := NewBoard(NewTables())

	if b.Side != White {
		t.Errorf("side = %v, want White", b.Side)
	}
	if b.CastlePerm != AllCastling {
		t.Errorf("castling = %v, want KQkq", b.CastlePerm)
	}
	if b.EnPas != NoSquare {
		t.Errorf("enPas = %v, want none", b.EnPas)
	}
	if b.KingSq[White] != E1 || b.KingSq[Black] != E8 {
		t.Errorf("king squares = %v/%v, want e1/e8", b.KingSq[White], b.KingSq[Black])
	}
	if b.PieceCount[WhitePawn] != 8 || b.PieceCount[BlackPawn] != 8 {
		t.Error("expected 8 pawns per side")
	}
	if b.Material[White] != b.Material[Black] {
		t.Error("expected equal starting material")
	}
	if b.Pawns[Both].Count() != 16 {
		t.Errorf("combined pawn bitboard has %d bits, want 16", b.Pawns[Both].Count())
	}
	if err := b.Check(); err != nil {
		t.Errorf("consistency: %v", err)
	}
}

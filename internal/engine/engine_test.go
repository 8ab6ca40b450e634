package engine

import (
	"testing"
	"time"

	"github.com/exo-shinigami/gambit/internal/board"
)

// TestSearchReturnsLegalMove checks a depth-1 search of the starting
// position produces one of the twenty legal opening moves.
func TestSearchReturnsLegalMove(t *testing.T) {
	b := testBoard(t, board.StartFEN)
	s := NewSearcher(NewTable(16))

	m, _ := s.Search(b, Limits{Depth: 1})
	if m == board.NoMove {
		t.Fatal("search returned no move")
	}
	if !b.MoveExists(m) {
		t.Fatalf("search returned illegal move %v", m)
	}
}

// TestSearchFindsMateInOne checks the search reports the mating move and a
// mate score.
func TestSearchFindsMateInOne(t *testing.T) {
	// White mates with Ra8.
	b := testBoard(t, "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	s := NewSearcher(NewTable(16))

	m, score := s.Search(b, Limits{Depth: 4})
	if got := m.String(); got != "a1a8" {
		t.Errorf("best move = %s, want a1a8", got)
	}
	if score <= isMate {
		t.Errorf("score = %d, want a mate score above %d", score, isMate)
	}
	if want := "mate 1"; ScoreString(score) != want {
		t.Errorf("ScoreString(%d) = %s, want %s", score, ScoreString(score), want)
	}
}

// TestSearchAvoidsIllegalReply runs a deeper search and replays the full
// principal variation to check every move of it is legal in sequence.
func TestSearchPVPlayable(t *testing.T) {
	b := testBoard(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	s := NewSearcher(NewTable(16))

	var last Info
	s.OnIter = func(info Info) { last = info }

	if m, _ := s.Search(b, Limits{Depth: 4}); m == board.NoMove {
		t.Fatal("search returned no move")
	}
	if len(last.PV) == 0 {
		t.Fatal("no principal variation reported")
	}

	made := 0
	for _, m := range last.PV {
		if !b.MoveExists(m) {
			t.Fatalf("PV move %v illegal after %d plies", m, made)
		}
		b.MakeMove(m)
		made++
	}
	for i := 0; i < made; i++ {
		b.TakeMove()
	}
}

// TestSearchRestoresBoard checks the searched board comes back in its
// pre-search state.
func TestSearchRestoresBoard(t *testing.T) {
	b := testBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	key := b.PosKey
	fen := b.FEN()

	s := NewSearcher(NewTable(16))
	s.Search(b, Limits{Depth: 3})

	if b.PosKey != key || b.FEN() != fen {
		t.Errorf("board changed by search:\n before %s\n after  %s", fen, b.FEN())
	}
	if err := b.Check(); err != nil {
		t.Errorf("board inconsistent after search: %v", err)
	}
}

// TestSearchStops checks a move-time limit terminates an otherwise
// unbounded search.
func TestSearchStops(t *testing.T) {
	b := testBoard(t, board.StartFEN)
	b.Checked = false
	s := NewSearcher(NewTable(16))

	done := make(chan struct{})
	go func() {
		s.Search(b, Limits{MoveTime: 50 * time.Millisecond})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed search did not stop")
	}
}

// TestSearchReportsProgress checks each completed iteration reports its
// depth and node count through the callback.
func TestSearchReportsProgress(t *testing.T) {
	b := testBoard(t, board.StartFEN)
	b.Checked = false
	s := NewSearcher(NewTable(16))

	depths := []int{}
	s.OnIter = func(info Info) {
		depths = append(depths, info.Depth)
		if info.Nodes <= 0 {
			t.Errorf("depth %d reported %d nodes", info.Depth, info.Nodes)
		}
	}

	s.Search(b, Limits{Depth: 5})

	if len(depths) != 5 {
		t.Fatalf("expected 5 iteration reports, got %d", len(depths))
	}
	for i, d := range depths {
		if d != i+1 {
			t.Errorf("iteration %d reported depth %d", i, d)
		}
	}
}

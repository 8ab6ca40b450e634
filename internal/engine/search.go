package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/exo-shinigami/gambit/internal/board"
)

// Search score bounds. Mate scores are encoded as distance from Infinity so
// the search prefers the shortest mate; anything beyond isMate is a forced
// mate line.
const (
	Infinity = 30000
	isMate   = Infinity - board.MaxDepth
)

// Search polls the clock and the stop flag every checkupNodes nodes.
const checkupNodes = 2048

// The TT move outranks every generated ordering score.
const pvMoveScore = 2000000

// Limits bounds a search. Zero values leave the dimension unbounded; an
// unbounded search runs until Stop is called or MaxDepth is reached.
type Limits struct {
	Depth    int
	MoveTime time.Duration
	Infinite bool
}

// Info reports the state of the search after each completed iteration.
type Info struct {
	Depth int
	Score int
	Nodes int64
	Time  time.Duration
	PV    []board.Move
}

// Searcher runs iterative-deepening alpha-beta searches. A Searcher is
// single-threaded; Stop is the only method safe to call concurrently with
// Search.
type Searcher struct {
	tt *Table

	// OnIter, when set, receives an Info after every completed depth.
	OnIter func(Info)

	nodes    int64
	stopped  bool
	stopFlag atomic.Bool

	timed    bool
	deadline time.Time

	// fail high / fail high first, for move ordering diagnostics.
	fh  float64
	fhf float64
}

// NewSearcher creates a searcher sharing the given transposition table.
func NewSearcher(tt *Table) *Searcher {
	return &Searcher{tt: tt}
}

// Stop makes the running search unwind and return its best result so far.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Nodes returns the node count of the last search.
func (s *Searcher) Nodes() int64 {
	return s.nodes
}

// Ordering returns the fraction of beta cutoffs found on the first move
// tried, a measure of move ordering quality. Valid after a search.
func (s *Searcher) Ordering() float64 {
	if s.fh == 0 {
		return 0
	}
	return s.fhf / s.fh
}

// clearForSearch resets the per-search state on the searcher and the board.
// The transposition table carries over between searches on purpose.
func (s *Searcher) clearForSearch(b *board.Board) {
	for i := range b.SearchHistory {
		for j := range b.SearchHistory[i] {
			b.SearchHistory[i][j] = 0
		}
	}
	for i := range b.SearchKillers {
		for j := range b.SearchKillers[i] {
			b.SearchKillers[i][j] = board.NoMove
		}
	}

	b.Ply = 0

	s.nodes = 0
	s.stopped = false
	s.stopFlag.Store(false)
	s.fh = 0
	s.fhf = 0
}

// Search runs iterative deepening within limits and returns the best move
// with its score from the side to move's perspective. The board is returned
// in its initial state.
func (s *Searcher) Search(b *board.Board, limits Limits) (board.Move, int) {
	s.clearForSearch(b)

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > board.MaxDepth {
		maxDepth = board.MaxDepth
	}

	s.timed = limits.MoveTime > 0 && !limits.Infinite
	start := time.Now()
	if s.timed {
		s.deadline = start.Add(limits.MoveTime)
	}

	bestMove := board.NoMove
	bestScore := -Infinity

	for depth := 1; depth <= maxDepth; depth++ {
		score := s.alphaBeta(b, -Infinity, Infinity, depth, true)

		if s.stopped {
			break
		}

		bestScore = score
		pv := s.pvLine(b, depth)
		if len(pv) > 0 {
			bestMove = pv[0]
		}

		if s.OnIter != nil {
			s.OnIter(Info{
				Depth: depth,
				Score: bestScore,
				Nodes: s.nodes,
				Time:  time.Since(start),
				PV:    pv,
			})
		}
	}

	if bestMove == board.NoMove {
		// Stopped before depth 1 finished; fall back to the TT move.
		bestMove = s.tt.PvMove(b.PosKey)
	}

	return bestMove, bestScore
}

// BestMove is the headless variant of Search: no iteration reports, just the
// move to play.
func (s *Searcher) BestMove(b *board.Board, limits Limits) board.Move {
	m, _ := s.Search(b, limits)
	return m
}

// checkUp polls the deadline and the external stop flag.
func (s *Searcher) checkUp() {
	if s.timed && time.Now().After(s.deadline) {
		s.stopped = true
	}
	if s.stopFlag.Load() {
		s.stopped = true
	}
}

// pickNextMove selects the highest-scored remaining move and swaps it into
// slot i, so the move loop sees moves in descending score order without a
// full sort.
func pickNextMove(moves []board.ScoredMove, i int) {
	best := i
	for j := i + 1; j < len(moves); j++ {
		if moves[j].Score > moves[best].Score {
			best = j
		}
	}
	moves[i], moves[best] = moves[best], moves[i]
}

// alphaBeta searches to depth with the window [alpha, beta]. doNull permits
// a null move at this node; it is cleared for the child of a null move so
// two passes in a row cannot happen.
func (s *Searcher) alphaBeta(b *board.Board, alpha, beta, depth int, doNull bool) int {
	if depth <= 0 {
		return s.quiescence(b, alpha, beta)
	}

	if s.nodes&(checkupNodes-1) == 0 {
		s.checkUp()
	}
	s.nodes++

	if (b.IsRepetition() || b.FiftyMove >= 100) && b.Ply > 0 {
		return 0
	}

	if b.Ply > board.MaxDepth-1 {
		return Evaluate(b)
	}

	inCheck := b.InCheck()
	if inCheck {
		depth++
	}

	pvMove, score, ok := s.tt.Probe(b.PosKey, alpha, beta, depth, b.Ply)
	if ok && b.Ply > 0 {
		s.tt.Cuts++
		return score
	}

	if doNull && !inCheck && b.Ply > 0 && b.BigPieces[b.Side] > 0 && depth >= 4 {
		b.MakeNullMove()
		score := -s.alphaBeta(b, -beta, -beta+1, depth-4, false)
		b.TakeNullMove()
		if s.stopped {
			return 0
		}
		if score >= beta && score < isMate && score > -isMate {
			return beta
		}
	}

	var ml board.MoveList
	b.GenerateAllMoves(&ml)
	moves := ml.Slice()

	if pvMove != board.NoMove {
		for i := range moves {
			if moves[i].Move == pvMove {
				moves[i].Score = pvMoveScore
				break
			}
		}
	}

	legal := 0
	oldAlpha := alpha
	bestMove := board.NoMove
	bestScore := -Infinity

	for i := range moves {
		pickNextMove(moves, i)
		m := moves[i].Move

		if !b.MakeMove(m) {
			continue
		}
		legal++
		score := -s.alphaBeta(b, -beta, -alpha, depth-1, true)
		b.TakeMove()

		if s.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}

		if score <= alpha {
			continue
		}

		if score >= beta {
			if legal == 1 {
				s.fhf++
			}
			s.fh++

			if !m.IsCapture() {
				b.SearchKillers[1][b.Ply] = b.SearchKillers[0][b.Ply]
				b.SearchKillers[0][b.Ply] = m
			}

			s.tt.Store(b.PosKey, m, beta, depth, b.Ply, TTBeta)
			return beta
		}

		alpha = score
		if !m.IsCapture() {
			b.SearchHistory[b.Squares[m.From()]][m.To()] += depth
		}
	}

	if legal == 0 {
		if inCheck {
			return -Infinity + b.Ply
		}
		return 0
	}

	if alpha != oldAlpha {
		s.tt.Store(b.PosKey, bestMove, bestScore, depth, b.Ply, TTExact)
	} else {
		s.tt.Store(b.PosKey, bestMove, alpha, depth, b.Ply, TTAlpha)
	}

	return alpha
}

// quiescence searches only captures until the position is quiet, so the
// static evaluation is never taken in the middle of an exchange. Recursion
// is bounded by the shared ply ceiling: every capture deepens the ply and
// capture chains exhaust themselves well before it.
func (s *Searcher) quiescence(b *board.Board, alpha, beta int) int {
	if s.nodes&(checkupNodes-1) == 0 {
		s.checkUp()
	}
	s.nodes++

	if (b.IsRepetition() || b.FiftyMove >= 100) && b.Ply > 0 {
		return 0
	}

	if b.Ply > board.MaxDepth-1 {
		return Evaluate(b)
	}

	score := Evaluate(b)
	if score >= beta {
		return beta
	}
	if score > alpha {
		alpha = score
	}

	var ml board.MoveList
	b.GenerateCaptures(&ml)
	moves := ml.Slice()

	legal := 0
	for i := range moves {
		pickNextMove(moves, i)

		if !b.MakeMove(moves[i].Move) {
			continue
		}
		legal++
		score := -s.quiescence(b, -beta, -alpha)
		b.TakeMove()

		if s.stopped {
			return 0
		}

		if score <= alpha {
			continue
		}
		if score >= beta {
			if legal == 1 {
				s.fhf++
			}
			s.fh++
			return beta
		}
		alpha = score
	}

	return alpha
}

// pvLine recovers the principal variation by walking the transposition
// table's best moves forward and unwinding afterwards.
func (s *Searcher) pvLine(b *board.Board, depth int) []board.Move {
	pv := make([]board.Move, 0, depth)

	m := s.tt.PvMove(b.PosKey)
	for m != board.NoMove && len(pv) < depth {
		if !b.MoveExists(m) {
			break
		}
		b.MakeMove(m)
		pv = append(pv, m)
		m = s.tt.PvMove(b.PosKey)
	}

	for range pv {
		b.TakeMove()
	}
	return pv
}

// ScoreString formats a score for protocol output: "mate N" for forced
// mates, "cp N" otherwise.
func ScoreString(score int) string {
	if score > isMate {
		return fmt.Sprintf("mate %d", (Infinity-score)/2+1)
	}
	if score < -isMate {
		return fmt.Sprintf("mate %d", -((Infinity+score)/2 + 1))
	}
	return fmt.Sprintf("cp %d", score)
}

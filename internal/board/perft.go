package board

// Perft counts the leaf nodes of the full legal move tree to the given
// depth. Used to validate move generation and make/unmake.
func (b *Board) Perft(depth int) int64 {
	if depth <= 0 {
		return 1
	}

	var ml MoveList
	b.GenerateAllMoves(&ml)

	var nodes int64
	for i := 0; i < ml.Len(); i++ {
		if !b.MakeMove(ml.Get(i)) {
			continue
		}
		nodes += b.Perft(depth - 1)
		b.TakeMove()
	}
	return nodes
}

// PerftResult pairs a legal root move with the leaf count of its subtree.
type PerftResult struct {
	Move  Move
	Nodes int64
}

// PerftDivide returns the per-root-move leaf counts and the total. The
// breakdown pinpoints which root move a generator disagreement hides under.
func (b *Board) PerftDivide(depth int) ([]PerftResult, int64) {
	var ml MoveList
	b.GenerateAllMoves(&ml)

	var results []PerftResult
	var total int64
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if !b.MakeMove(m) {
			continue
		}
		n := b.Perft(depth - 1)
		b.TakeMove()
		results = append(results, PerftResult{Move: m, Nodes: n})
		total += n
	}
	return results, total
}

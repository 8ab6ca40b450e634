package board

// Zobrist keys come from a PRNG with a fixed seed so that position hashes are
// reproducible across runs.

// prng implements xorshift64*.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// GeneratePositionKey recomputes the Zobrist hash of the position from
// scratch. MakeMove and TakeMove maintain PosKey incrementally; the full
// recompute is used at setup time and by consistency checks.
func (b *Board) GeneratePositionKey() uint64 {
	var key uint64

	for sq := Square(0); sq < SquareCount; sq++ {
		p := b.Squares[sq]
		if p != Empty && p != OffBoard {
			key ^= b.tbl.pieceKeys[p][sq]
		}
	}

	if b.Side == White {
		key ^= b.tbl.sideKey
	}

	if b.EnPas != NoSquare {
		key ^= b.tbl.pieceKeys[Empty][b.EnPas]
	}

	key ^= b.tbl.castleKeys[b.CastlePerm]

	return key
}

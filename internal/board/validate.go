package board

import "fmt"

// Check verifies that every redundant view of the position agrees with the
// mailbox array: piece lists, piece counters, material and piece-class
// counts, pawn bitboards, king squares and the incremental hash. It returns
// the first inconsistency found.
func (b *Board) Check() error {
	var (
		count    [PieceKinds]int
		big      [2]int
		major    [2]int
		minor    [2]int
		material [2]int
	)

	for p := WhitePawn; p <= BlackKing; p++ {
		for i := 0; i < b.PieceCount[p]; i++ {
			sq := b.PieceList[p][i]
			if b.Squares[sq] != p {
				return fmt.Errorf("piece list: %s listed on %s but square holds %s", p, sq, b.Squares[sq])
			}
		}
	}

	for sq64 := 0; sq64 < 64; sq64++ {
		sq := b.tbl.Sq120(sq64)
		p := b.Squares[sq]
		if p == Empty {
			continue
		}
		if p == OffBoard || p > BlackKing {
			return fmt.Errorf("mailbox: invalid piece %d on %s", p, sq)
		}
		count[p]++
		color := p.Color()
		if p.IsBig() {
			big[color]++
		}
		if p.IsMajor() {
			major[color]++
		}
		if p.IsMinor() {
			minor[color]++
		}
		material[color] += p.Value()
	}

	for p := WhitePawn; p <= BlackKing; p++ {
		if count[p] != b.PieceCount[p] {
			return fmt.Errorf("piece count: %s is %d, expected %d", p, b.PieceCount[p], count[p])
		}
	}

	for c := White; c <= Black; c++ {
		if big[c] != b.BigPieces[c] || major[c] != b.MajorPieces[c] || minor[c] != b.MinorPieces[c] {
			return fmt.Errorf("piece class counts wrong for %s", c)
		}
		if material[c] != b.Material[c] {
			return fmt.Errorf("material: %s is %d, expected %d", c, b.Material[c], material[c])
		}
	}

	if b.Pawns[White].Count() != b.PieceCount[WhitePawn] ||
		b.Pawns[Black].Count() != b.PieceCount[BlackPawn] ||
		b.Pawns[Both].Count() != b.PieceCount[WhitePawn]+b.PieceCount[BlackPawn] {
		return fmt.Errorf("pawn bitboard counts disagree with piece counts")
	}

	pawns := b.Pawns[White]
	for pawns != 0 {
		sq64 := pawns.Pop()
		if b.Squares[b.tbl.Sq120(sq64)] != WhitePawn {
			return fmt.Errorf("white pawn bitboard set on %s", b.tbl.Sq120(sq64))
		}
	}
	pawns = b.Pawns[Black]
	for pawns != 0 {
		sq64 := pawns.Pop()
		if b.Squares[b.tbl.Sq120(sq64)] != BlackPawn {
			return fmt.Errorf("black pawn bitboard set on %s", b.tbl.Sq120(sq64))
		}
	}
	pawns = b.Pawns[Both]
	for pawns != 0 {
		sq64 := pawns.Pop()
		if !b.Squares[b.tbl.Sq120(sq64)].IsPawn() {
			return fmt.Errorf("combined pawn bitboard set on %s", b.tbl.Sq120(sq64))
		}
	}

	if b.Side != White && b.Side != Black {
		return fmt.Errorf("invalid side %d", b.Side)
	}

	if b.EnPas != NoSquare {
		r := b.EnPas.Rank()
		if !(r == Rank6 && b.Side == White) && !(r == Rank3 && b.Side == Black) {
			return fmt.Errorf("en passant square %s impossible for %s to move", b.EnPas, b.Side)
		}
	}

	if b.Squares[b.KingSq[White]] != WhiteKing {
		return fmt.Errorf("white king square %s holds %s", b.KingSq[White], b.Squares[b.KingSq[White]])
	}
	if b.Squares[b.KingSq[Black]] != BlackKing {
		return fmt.Errorf("black king square %s holds %s", b.KingSq[Black], b.Squares[b.KingSq[Black]])
	}

	if key := b.GeneratePositionKey(); key != b.PosKey {
		return fmt.Errorf("position key %016X, recompute gives %016X", b.PosKey, key)
	}

	return nil
}

// mustConsistent panics with the board diagram when a checked-mode
// verification fails. An inconsistent board cannot be recovered from.
func (b *Board) mustConsistent() {
	if err := b.Check(); err != nil {
		panic(fmt.Sprintf("board: inconsistent position: %v\n%s", err, b))
	}
}

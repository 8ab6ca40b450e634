package board

import "fmt"

func (b *Board) hashPiece(p Piece, sq Square) {
	b.PosKey ^= b.tbl.pieceKeys[p][sq]
}

func (b *Board) hashCastle() {
	b.PosKey ^= b.tbl.castleKeys[b.CastlePerm]
}

func (b *Board) hashSide() {
	b.PosKey ^= b.tbl.sideKey
}

func (b *Board) hashEnPas() {
	b.PosKey ^= b.tbl.pieceKeys[Empty][b.EnPas]
}

// clearPiece removes the piece on sq, updating every redundant view and the
// hash.
func (b *Board) clearPiece(sq Square) {
	p := b.Squares[sq]
	color := p.Color()

	b.hashPiece(p, sq)
	b.Squares[sq] = Empty
	b.Material[color] -= p.Value()

	if p.IsBig() {
		b.BigPieces[color]--
		if p.IsMajor() {
			b.MajorPieces[color]--
		}
		if p.IsMinor() {
			b.MinorPieces[color]--
		}
	} else {
		b.Pawns[color].Clear(b.tbl.Sq64(sq))
		b.Pawns[Both].Clear(b.tbl.Sq64(sq))
	}

	idx := -1
	for i := 0; i < b.PieceCount[p]; i++ {
		if b.PieceList[p][i] == sq {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(fmt.Sprintf("board: piece %s not in list for %s", p, sq))
	}
	b.PieceCount[p]--
	b.PieceList[p][idx] = b.PieceList[p][b.PieceCount[p]]
}

// addPiece puts p on the empty square sq.
func (b *Board) addPiece(sq Square, p Piece) {
	color := p.Color()

	b.hashPiece(p, sq)
	b.Squares[sq] = p

	if p.IsBig() {
		b.BigPieces[color]++
		if p.IsMajor() {
			b.MajorPieces[color]++
		}
		if p.IsMinor() {
			b.MinorPieces[color]++
		}
	} else {
		b.Pawns[color].Set(b.tbl.Sq64(sq))
		b.Pawns[Both].Set(b.tbl.Sq64(sq))
	}

	b.Material[color] += p.Value()
	b.PieceList[p][b.PieceCount[p]] = sq
	b.PieceCount[p]++
}

// movePiece moves the piece on from to the empty square to.
func (b *Board) movePiece(from, to Square) {
	p := b.Squares[from]
	color := p.Color()

	b.hashPiece(p, from)
	b.Squares[from] = Empty
	b.hashPiece(p, to)
	b.Squares[to] = p

	if !p.IsBig() {
		b.Pawns[color].Clear(b.tbl.Sq64(from))
		b.Pawns[Both].Clear(b.tbl.Sq64(from))
		b.Pawns[color].Set(b.tbl.Sq64(to))
		b.Pawns[Both].Set(b.tbl.Sq64(to))
	}

	for i := 0; i < b.PieceCount[p]; i++ {
		if b.PieceList[p][i] == from {
			b.PieceList[p][i] = to
			return
		}
	}
	panic(fmt.Sprintf("board: piece %s not in list for %s", p, from))
}

// MakeMove applies m speculatively. If the move leaves the mover's own king
// attacked it is reverted and MakeMove returns false; the pseudo-legal
// generator relies on this as its legality filter.
func (b *Board) MakeMove(m Move) bool {
	from := m.From()
	to := m.To()
	side := b.Side

	b.History[b.HisPly].PosKey = b.PosKey

	if m.IsEnPassant() {
		if side == White {
			b.clearPiece(to - 10)
		} else {
			b.clearPiece(to + 10)
		}
	} else if m.IsCastle() {
		switch to {
		case C1:
			b.movePiece(A1, D1)
		case C8:
			b.movePiece(A8, D8)
		case G1:
			b.movePiece(H1, F1)
		case G8:
			b.movePiece(H8, F8)
		default:
			panic("board: bad castle move " + m.String())
		}
	}

	if b.EnPas != NoSquare {
		b.hashEnPas()
	}
	b.hashCastle()

	b.History[b.HisPly].Move = m
	b.History[b.HisPly].FiftyMove = b.FiftyMove
	b.History[b.HisPly].EnPas = b.EnPas
	b.History[b.HisPly].CastlePerm = b.CastlePerm

	b.CastlePerm &= b.tbl.castleMask[from]
	b.CastlePerm &= b.tbl.castleMask[to]
	b.EnPas = NoSquare

	b.hashCastle()

	b.FiftyMove++

	if captured := m.Captured(); captured != Empty {
		b.clearPiece(to)
		b.FiftyMove = 0
	}

	b.HisPly++
	b.Ply++

	if b.Squares[from].IsPawn() {
		b.FiftyMove = 0
		if m.IsPawnStart() {
			if side == White {
				b.EnPas = from + 10
			} else {
				b.EnPas = from - 10
			}
			b.hashEnPas()
		}
	}

	b.movePiece(from, to)

	if prom := m.Promoted(); prom != Empty {
		b.clearPiece(to)
		b.addPiece(to, prom)
	}

	if b.Squares[to].IsKing() {
		b.KingSq[side] = to
	}

	b.Side = side.Other()
	b.hashSide()

	if b.Checked {
		b.mustConsistent()
	}

	if b.SquareAttacked(b.KingSq[side], b.Side) {
		b.TakeMove()
		return false
	}

	return true
}

// TakeMove reverts the most recent MakeMove.
func (b *Board) TakeMove() {
	b.HisPly--
	b.Ply--

	h := b.History[b.HisPly]
	m := h.Move
	from := m.From()
	to := m.To()

	if b.EnPas != NoSquare {
		b.hashEnPas()
	}
	b.hashCastle()

	b.CastlePerm = h.CastlePerm
	b.FiftyMove = h.FiftyMove
	b.EnPas = h.EnPas

	if b.EnPas != NoSquare {
		b.hashEnPas()
	}
	b.hashCastle()

	b.Side = b.Side.Other()
	b.hashSide()

	if m.IsEnPassant() {
		if b.Side == White {
			b.addPiece(to-10, BlackPawn)
		} else {
			b.addPiece(to+10, WhitePawn)
		}
	} else if m.IsCastle() {
		switch to {
		case C1:
			b.movePiece(D1, A1)
		case C8:
			b.movePiece(D8, A8)
		case G1:
			b.movePiece(F1, H1)
		case G8:
			b.movePiece(F8, H8)
		default:
			panic("board: bad castle move " + m.String())
		}
	}

	b.movePiece(to, from)

	if b.Squares[from].IsKing() {
		b.KingSq[b.Side] = from
	}

	if captured := m.Captured(); captured != Empty {
		b.addPiece(to, captured)
	}

	if prom := m.Promoted(); prom != Empty {
		b.clearPiece(from)
		if prom.Color() == White {
			b.addPiece(from, WhitePawn)
		} else {
			b.addPiece(from, BlackPawn)
		}
	}

	if b.Checked {
		b.mustConsistent()
	}
}

// MakeNullMove passes the turn without moving. Used by null-move pruning;
// never called while in check.
func (b *Board) MakeNullMove() {
	b.Ply++
	b.History[b.HisPly].PosKey = b.PosKey
	b.History[b.HisPly].Move = NoMove
	b.History[b.HisPly].FiftyMove = b.FiftyMove
	b.History[b.HisPly].EnPas = b.EnPas
	b.History[b.HisPly].CastlePerm = b.CastlePerm
	b.HisPly++

	if b.EnPas != NoSquare {
		b.hashEnPas()
	}
	b.EnPas = NoSquare

	b.Side = b.Side.Other()
	b.hashSide()

	if b.Checked {
		b.mustConsistent()
	}
}

// TakeNullMove reverts MakeNullMove.
func (b *Board) TakeNullMove() {
	b.HisPly--
	b.Ply--

	h := b.History[b.HisPly]

	if b.EnPas != NoSquare {
		b.hashEnPas()
	}

	b.CastlePerm = h.CastlePerm
	b.FiftyMove = h.FiftyMove
	b.EnPas = h.EnPas

	if b.EnPas != NoSquare {
		b.hashEnPas()
	}

	b.Side = b.Side.Other()
	b.hashSide()

	if b.Checked {
		b.mustConsistent()
	}
}

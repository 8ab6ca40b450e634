package board

// Movement offsets in the 120-cell mailbox. Sliding pieces repeat the step
// until a piece or the padding ring stops them.
var (
	knightDirs = [8]Square{-8, -19, -21, -12, 8, 19, 21, 12}
	rookDirs   = [4]Square{-1, -10, 1, 10}
	bishopDirs = [4]Square{-9, -11, 11, 9}
	kingDirs   = [8]Square{-1, -10, 1, 10, -9, -11, 11, 9}
)

// SquareAttacked reports whether any piece of the given side attacks sq.
func (b *Board) SquareAttacked(sq Square, side Color) bool {
	if side == White {
		if b.Squares[sq-11] == WhitePawn || b.Squares[sq-9] == WhitePawn {
			return true
		}
	} else {
		if b.Squares[sq+11] == BlackPawn || b.Squares[sq+9] == BlackPawn {
			return true
		}
	}

	for _, d := range knightDirs {
		p := b.Squares[sq+d]
		if p != OffBoard && pieceKnight[p] && p.Color() == side {
			return true
		}
	}

	for _, d := range rookDirs {
		tsq := sq + d
		p := b.Squares[tsq]
		for p != OffBoard {
			if p != Empty {
				if pieceRookQueen[p] && p.Color() == side {
					return true
				}
				break
			}
			tsq += d
			p = b.Squares[tsq]
		}
	}

	for _, d := range bishopDirs {
		tsq := sq + d
		p := b.Squares[tsq]
		for p != OffBoard {
			if p != Empty {
				if pieceBishopQueen[p] && p.Color() == side {
					return true
				}
				break
			}
			tsq += d
			p = b.Squares[tsq]
		}
	}

	for _, d := range kingDirs {
		p := b.Squares[sq+d]
		if p != OffBoard && pieceKing[p] && p.Color() == side {
			return true
		}
	}

	return false
}

package board

import "fmt"

// Piece groups walked by the generator, per side.
var (
	slidingPieces  = [2][3]Piece{{WhiteBishop, WhiteRook, WhiteQueen}, {BlackBishop, BlackRook, BlackQueen}}
	steppingPieces = [2][2]Piece{{WhiteKnight, WhiteKing}, {BlackKnight, BlackKing}}

	pieceDirs = [PieceKinds][]Square{
		WhiteKnight: knightDirs[:],
		WhiteBishop: bishopDirs[:],
		WhiteRook:   rookDirs[:],
		WhiteQueen:  kingDirs[:],
		WhiteKing:   kingDirs[:],
		BlackKnight: knightDirs[:],
		BlackBishop: bishopDirs[:],
		BlackRook:   rookDirs[:],
		BlackQueen:  kingDirs[:],
		BlackKing:   kingDirs[:],
	}
)

// Move ordering scores assigned at generation time. Captures rank above every
// quiet move; killers rank above the history counters.
const (
	captureScoreBase  = 1000000
	killerScoreFirst  = 900000
	killerScoreSecond = 800000
)

func (b *Board) addQuietMove(ml *MoveList, m Move) {
	score := 0
	switch m {
	case b.SearchKillers[0][b.Ply]:
		score = killerScoreFirst
	case b.SearchKillers[1][b.Ply]:
		score = killerScoreSecond
	default:
		score = b.SearchHistory[b.Squares[m.From()]][m.To()]
	}
	ml.add(m, score)
}

func (b *Board) addCaptureMove(ml *MoveList, m Move) {
	ml.add(m, b.tbl.MvvLva(m.Captured(), b.Squares[m.From()])+captureScoreBase)
}

func (b *Board) addEnPassantMove(ml *MoveList, m Move) {
	// Pawn takes pawn, same ordering weight every time.
	ml.add(m, 105+captureScoreBase)
}

func (b *Board) addWhitePawnCapture(ml *MoveList, from, to Square, captured Piece) {
	if from.Rank() == Rank7 {
		for _, prom := range [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight} {
			b.addCaptureMove(ml, NewMove(from, to, captured, prom, 0))
		}
		return
	}
	b.addCaptureMove(ml, NewMove(from, to, captured, Empty, 0))
}

func (b *Board) addWhitePawnMove(ml *MoveList, from, to Square) {
	if from.Rank() == Rank7 {
		for _, prom := range [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight} {
			b.addQuietMove(ml, NewMove(from, to, Empty, prom, 0))
		}
		return
	}
	b.addQuietMove(ml, NewMove(from, to, Empty, Empty, 0))
}

func (b *Board) addBlackPawnCapture(ml *MoveList, from, to Square, captured Piece) {
	if from.Rank() == Rank2 {
		for _, prom := range [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight} {
			b.addCaptureMove(ml, NewMove(from, to, captured, prom, 0))
		}
		return
	}
	b.addCaptureMove(ml, NewMove(from, to, captured, Empty, 0))
}

func (b *Board) addBlackPawnMove(ml *MoveList, from, to Square) {
	if from.Rank() == Rank2 {
		for _, prom := range [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight} {
			b.addQuietMove(ml, NewMove(from, to, Empty, prom, 0))
		}
		return
	}
	b.addQuietMove(ml, NewMove(from, to, Empty, Empty, 0))
}

// GenerateAllMoves appends every pseudo-legal move for the side to move.
// Moves that leave the own king attacked are filtered later by MakeMove.
func (b *Board) GenerateAllMoves(ml *MoveList) {
	ml.Clear()

	side := b.Side

	if side == White {
		for i := 0; i < b.PieceCount[WhitePawn]; i++ {
			sq := b.PieceList[WhitePawn][i]

			if b.Squares[sq+10] == Empty {
				b.addWhitePawnMove(ml, sq, sq+10)
				if sq.Rank() == Rank2 && b.Squares[sq+20] == Empty {
					b.addQuietMove(ml, NewMove(sq, sq+20, Empty, Empty, FlagPawnStart))
				}
			}

			if p := b.Squares[sq+9]; p != OffBoard && p != Empty && p.Color() == Black {
				b.addWhitePawnCapture(ml, sq, sq+9, p)
			}
			if p := b.Squares[sq+11]; p != OffBoard && p != Empty && p.Color() == Black {
				b.addWhitePawnCapture(ml, sq, sq+11, p)
			}

			if b.EnPas != NoSquare {
				if sq+9 == b.EnPas || sq+11 == b.EnPas {
					b.addEnPassantMove(ml, NewMove(sq, b.EnPas, Empty, Empty, FlagEnPassant))
				}
			}
		}

		if b.CastlePerm&WhiteKingSideCastle != 0 {
			if b.Squares[F1] == Empty && b.Squares[G1] == Empty &&
				!b.SquareAttacked(E1, Black) && !b.SquareAttacked(F1, Black) {
				b.addQuietMove(ml, NewMove(E1, G1, Empty, Empty, FlagCastle))
			}
		}
		if b.CastlePerm&WhiteQueenSideCastle != 0 {
			if b.Squares[D1] == Empty && b.Squares[C1] == Empty && b.Squares[B1] == Empty &&
				!b.SquareAttacked(E1, Black) && !b.SquareAttacked(D1, Black) {
				b.addQuietMove(ml, NewMove(E1, C1, Empty, Empty, FlagCastle))
			}
		}
	} else {
		for i := 0; i < b.PieceCount[BlackPawn]; i++ {
			sq := b.PieceList[BlackPawn][i]

			if b.Squares[sq-10] == Empty {
				b.addBlackPawnMove(ml, sq, sq-10)
				if sq.Rank() == Rank7 && b.Squares[sq-20] == Empty {
					b.addQuietMove(ml, NewMove(sq, sq-20, Empty, Empty, FlagPawnStart))
				}
			}

			if p := b.Squares[sq-9]; p != OffBoard && p != Empty && p.Color() == White {
				b.addBlackPawnCapture(ml, sq, sq-9, p)
			}
			if p := b.Squares[sq-11]; p != OffBoard && p != Empty && p.Color() == White {
				b.addBlackPawnCapture(ml, sq, sq-11, p)
			}

			if b.EnPas != NoSquare {
				if sq-9 == b.EnPas || sq-11 == b.EnPas {
					b.addEnPassantMove(ml, NewMove(sq, b.EnPas, Empty, Empty, FlagEnPassant))
				}
			}
		}

		if b.CastlePerm&BlackKingSideCastle != 0 {
			if b.Squares[F8] == Empty && b.Squares[G8] == Empty &&
				!b.SquareAttacked(E8, White) && !b.SquareAttacked(F8, White) {
				b.addQuietMove(ml, NewMove(E8, G8, Empty, Empty, FlagCastle))
			}
		}
		if b.CastlePerm&BlackQueenSideCastle != 0 {
			if b.Squares[D8] == Empty && b.Squares[C8] == Empty && b.Squares[B8] == Empty &&
				!b.SquareAttacked(E8, White) && !b.SquareAttacked(D8, White) {
				b.addQuietMove(ml, NewMove(E8, C8, Empty, Empty, FlagCastle))
			}
		}
	}

	for _, piece := range slidingPieces[side] {
		dirs := pieceDirs[piece]
		for i := 0; i < b.PieceCount[piece]; i++ {
			sq := b.PieceList[piece][i]
			for _, d := range dirs {
				tsq := sq + d
				for b.Squares[tsq] != OffBoard {
					if p := b.Squares[tsq]; p != Empty {
						if p.Color() == side.Other() {
							b.addCaptureMove(ml, NewMove(sq, tsq, p, Empty, 0))
						}
						break
					}
					b.addQuietMove(ml, NewMove(sq, tsq, Empty, Empty, 0))
					tsq += d
				}
			}
		}
	}

	for _, piece := range steppingPieces[side] {
		dirs := pieceDirs[piece]
		for i := 0; i < b.PieceCount[piece]; i++ {
			sq := b.PieceList[piece][i]
			for _, d := range dirs {
				tsq := sq + d
				p := b.Squares[tsq]
				if p == OffBoard {
					continue
				}
				if p != Empty {
					if p.Color() == side.Other() {
						b.addCaptureMove(ml, NewMove(sq, tsq, p, Empty, 0))
					}
					continue
				}
				b.addQuietMove(ml, NewMove(sq, tsq, Empty, Empty, 0))
			}
		}
	}
}

// GenerateCaptures appends only capturing pseudo-legal moves, for the
// quiescence search.
func (b *Board) GenerateCaptures(ml *MoveList) {
	ml.Clear()

	side := b.Side

	if side == White {
		for i := 0; i < b.PieceCount[WhitePawn]; i++ {
			sq := b.PieceList[WhitePawn][i]

			if p := b.Squares[sq+9]; p != OffBoard && p != Empty && p.Color() == Black {
				b.addWhitePawnCapture(ml, sq, sq+9, p)
			}
			if p := b.Squares[sq+11]; p != OffBoard && p != Empty && p.Color() == Black {
				b.addWhitePawnCapture(ml, sq, sq+11, p)
			}

			if b.EnPas != NoSquare {
				if sq+9 == b.EnPas || sq+11 == b.EnPas {
					b.addEnPassantMove(ml, NewMove(sq, b.EnPas, Empty, Empty, FlagEnPassant))
				}
			}
		}
	} else {
		for i := 0; i < b.PieceCount[BlackPawn]; i++ {
			sq := b.PieceList[BlackPawn][i]

			if p := b.Squares[sq-9]; p != OffBoard && p != Empty && p.Color() == White {
				b.addBlackPawnCapture(ml, sq, sq-9, p)
			}
			if p := b.Squares[sq-11]; p != OffBoard && p != Empty && p.Color() == White {
				b.addBlackPawnCapture(ml, sq, sq-11, p)
			}

			if b.EnPas != NoSquare {
				if sq-9 == b.EnPas || sq-11 == b.EnPas {
					b.addEnPassantMove(ml, NewMove(sq, b.EnPas, Empty, Empty, FlagEnPassant))
				}
			}
		}
	}

	for _, piece := range slidingPieces[side] {
		dirs := pieceDirs[piece]
		for i := 0; i < b.PieceCount[piece]; i++ {
			sq := b.PieceList[piece][i]
			for _, d := range dirs {
				tsq := sq + d
				for b.Squares[tsq] != OffBoard {
					if p := b.Squares[tsq]; p != Empty {
						if p.Color() == side.Other() {
							b.addCaptureMove(ml, NewMove(sq, tsq, p, Empty, 0))
						}
						break
					}
					tsq += d
				}
			}
		}
	}

	for _, piece := range steppingPieces[side] {
		dirs := pieceDirs[piece]
		for i := 0; i < b.PieceCount[piece]; i++ {
			sq := b.PieceList[piece][i]
			for _, d := range dirs {
				tsq := sq + d
				p := b.Squares[tsq]
				if p == OffBoard || p == Empty {
					continue
				}
				if p.Color() == side.Other() {
					b.addCaptureMove(ml, NewMove(sq, tsq, p, Empty, 0))
				}
			}
		}
	}
}

// MoveExists reports whether m is legal in the current position.
func (b *Board) MoveExists(m Move) bool {
	var ml MoveList
	b.GenerateAllMoves(&ml)

	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i) != m {
			continue
		}
		if !b.MakeMove(m) {
			return false
		}
		b.TakeMove()
		return true
	}
	return false
}

// ParseMove resolves coordinate notation ("e2e4", "e7e8q") against the
// current position's legal moves. The board is left unchanged.
func (b *Board) ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("invalid move: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move: %s", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move: %s", s)
	}

	var ml MoveList
	b.GenerateAllMoves(&ml)

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if prom := m.Promoted(); prom != Empty {
			if len(s) != 5 {
				continue
			}
			var want byte
			switch prom {
			case WhiteKnight, BlackKnight:
				want = 'n'
			case WhiteBishop, BlackBishop:
				want = 'b'
			case WhiteRook, BlackRook:
				want = 'r'
			default:
				want = 'q'
			}
			if s[4] != want {
				continue
			}
		} else if len(s) == 5 {
			continue
		}
		if !b.MakeMove(m) {
			return NoMove, fmt.Errorf("illegal move: %s", s)
		}
		b.TakeMove()
		return m, nil
	}

	return NoMove, fmt.Errorf("illegal move: %s", s)
}

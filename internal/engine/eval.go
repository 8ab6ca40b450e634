package engine

import "github.com/exo-shinigami/gambit/internal/board"

// Evaluation terms in centipawns.
const (
	pawnIsolated     = -10
	rookOpenFile     = 10
	rookSemiOpenFile = 5
	queenOpenFile    = 5
	queenSemiOpen    = 3
	bishopPair       = 30
)

// Passed pawn bonus by rank, from the pawn's own perspective.
var pawnPassed = [8]int{0, 5, 10, 20, 35, 60, 100, 200}

// Piece-square tables from white's perspective, a1 at index 0. Black pieces
// read them through the vertical mirror.
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 0, -10, -10, 0, 10, 10,
	5, 0, 0, 5, 5, 0, 0, 5,
	0, 0, 10, 20, 20, 10, 0, 0,
	5, 5, 5, 10, 10, 5, 5, 5,
	10, 10, 10, 20, 20, 10, 10, 10,
	20, 20, 20, 30, 30, 20, 20, 20,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	0, -10, 0, 0, 0, 0, -10, 0,
	0, 0, 0, 5, 5, 0, 0, 0,
	0, 0, 10, 10, 10, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 5, 0,
	5, 10, 15, 20, 20, 15, 10, 5,
	5, 10, 10, 20, 20, 10, 10, 5,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var bishopTable = [64]int{
	0, 0, -10, 0, 0, -10, 0, 0,
	0, 0, 0, 10, 10, 0, 0, 0,
	0, 0, 10, 15, 15, 10, 0, 0,
	0, 10, 15, 20, 20, 15, 10, 0,
	0, 10, 15, 20, 20, 15, 10, 0,
	0, 0, 10, 15, 15, 10, 0, 0,
	0, 0, 0, 10, 10, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var rookTable = [64]int{
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	25, 25, 25, 25, 25, 25, 25, 25,
	0, 0, 5, 10, 10, 5, 0, 0,
}

// King tables for the middlegame (stay tucked away) and the endgame
// (centralize). Switched per king on the opponent's remaining material.
var kingOpening = [64]int{
	0, 5, 5, -10, -10, 0, 10, 5,
	-30, -30, -30, -30, -30, -30, -30, -30,
	-50, -50, -50, -50, -50, -50, -50, -50,
	-70, -70, -70, -70, -70, -70, -70, -70,
	-70, -70, -70, -70, -70, -70, -70, -70,
	-70, -70, -70, -70, -70, -70, -70, -70,
	-70, -70, -70, -70, -70, -70, -70, -70,
	-70, -70, -70, -70, -70, -70, -70, -70,
}

var kingEndgame = [64]int{
	-50, -10, 0, 0, 0, 0, -10, -50,
	-10, 0, 10, 10, 10, 10, 0, -10,
	0, 10, 20, 20, 20, 20, 10, 0,
	0, 10, 20, 40, 40, 20, 10, 0,
	0, 10, 20, 40, 40, 20, 10, 0,
	0, 10, 20, 20, 20, 20, 10, 0,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-50, -10, 0, 0, 0, 0, -10, -50,
}

// endgameMaterial is the threshold below which a side no longer threatens
// the enemy king: roughly a rook, two knights and two pawns plus the king.
var endgameMaterial = board.WhiteRook.Value() +
	2*board.WhiteKnight.Value() +
	2*board.WhitePawn.Value() +
	board.WhiteKing.Value()

// materialDraw recognizes piece configurations without pawns that cannot be
// won against reasonable play (after sjeng 11.2).
func materialDraw(b *board.Board) bool {
	wN := b.PieceCount[board.WhiteKnight]
	bN := b.PieceCount[board.BlackKnight]
	wB := b.PieceCount[board.WhiteBishop]
	bB := b.PieceCount[board.BlackBishop]
	wR := b.PieceCount[board.WhiteRook]
	bR := b.PieceCount[board.BlackRook]
	wQ := b.PieceCount[board.WhiteQueen]
	bQ := b.PieceCount[board.BlackQueen]

	if wR == 0 && bR == 0 && wQ == 0 && bQ == 0 {
		if wB == 0 && bB == 0 {
			if wN < 3 && bN < 3 {
				return true
			}
		} else if wN == 0 && bN == 0 {
			diff := wB - bB
			if diff < 0 {
				diff = -diff
			}
			if diff < 2 {
				return true
			}
		} else if (wN < 3 && wB == 0) || (wB == 1 && wN == 0) {
			if (bN < 3 && bB == 0) || (bB == 1 && bN == 0) {
				return true
			}
		}
	} else if wQ == 0 && bQ == 0 {
		if wR == 1 && bR == 1 {
			if wN+wB < 2 && bN+bB < 2 {
				return true
			}
		} else if wR == 1 && bR == 0 {
			if wN+wB == 0 && (bN+bB == 1 || bN+bB == 2) {
				return true
			}
		} else if bR == 1 && wR == 0 {
			if bN+bB == 0 && (wN+wB == 1 || wN+wB == 2) {
				return true
			}
		}
	}
	return false
}

// Evaluate scores the position in centipawns from the side to move's
// perspective. It is pure: two calls on the same position return the same
// score, and mirrored positions score identically.
func Evaluate(b *board.Board) int {
	tbl := b.Tables()

	score := b.Material[board.White] - b.Material[board.Black]

	if b.PieceCount[board.WhitePawn] == 0 && b.PieceCount[board.BlackPawn] == 0 && materialDraw(b) {
		return 0
	}

	for i := 0; i < b.PieceCount[board.WhitePawn]; i++ {
		sq := b.PieceList[board.WhitePawn][i]
		sq64 := tbl.Sq64(sq)
		score += pawnTable[sq64]

		if tbl.IsolatedMask(sq64)&b.Pawns[board.White] == 0 {
			score += pawnIsolated
		}
		if tbl.PassedMask(board.White, sq64)&b.Pawns[board.Black] == 0 {
			score += pawnPassed[tbl.RankOf(sq)]
		}
	}

	for i := 0; i < b.PieceCount[board.BlackPawn]; i++ {
		sq := b.PieceList[board.BlackPawn][i]
		sq64 := tbl.Sq64(sq)
		score -= pawnTable[tbl.MirrorSq64(sq64)]

		if tbl.IsolatedMask(sq64)&b.Pawns[board.Black] == 0 {
			score -= pawnIsolated
		}
		if tbl.PassedMask(board.Black, sq64)&b.Pawns[board.White] == 0 {
			score -= pawnPassed[7-tbl.RankOf(sq)]
		}
	}

	for i := 0; i < b.PieceCount[board.WhiteKnight]; i++ {
		score += knightTable[tbl.Sq64(b.PieceList[board.WhiteKnight][i])]
	}
	for i := 0; i < b.PieceCount[board.BlackKnight]; i++ {
		score -= knightTable[tbl.MirrorSq64(tbl.Sq64(b.PieceList[board.BlackKnight][i]))]
	}

	for i := 0; i < b.PieceCount[board.WhiteBishop]; i++ {
		score += bishopTable[tbl.Sq64(b.PieceList[board.WhiteBishop][i])]
	}
	for i := 0; i < b.PieceCount[board.BlackBishop]; i++ {
		score -= bishopTable[tbl.MirrorSq64(tbl.Sq64(b.PieceList[board.BlackBishop][i]))]
	}

	for i := 0; i < b.PieceCount[board.WhiteRook]; i++ {
		sq := b.PieceList[board.WhiteRook][i]
		score += rookTable[tbl.Sq64(sq)]

		fileBB := tbl.FileMask(tbl.FileOf(sq))
		if b.Pawns[board.Both]&fileBB == 0 {
			score += rookOpenFile
		} else if b.Pawns[board.White]&fileBB == 0 {
			score += rookSemiOpenFile
		}
	}
	for i := 0; i < b.PieceCount[board.BlackRook]; i++ {
		sq := b.PieceList[board.BlackRook][i]
		score -= rookTable[tbl.MirrorSq64(tbl.Sq64(sq))]

		fileBB := tbl.FileMask(tbl.FileOf(sq))
		if b.Pawns[board.Both]&fileBB == 0 {
			score -= rookOpenFile
		} else if b.Pawns[board.Black]&fileBB == 0 {
			score -= rookSemiOpenFile
		}
	}

	for i := 0; i < b.PieceCount[board.WhiteQueen]; i++ {
		fileBB := tbl.FileMask(tbl.FileOf(b.PieceList[board.WhiteQueen][i]))
		if b.Pawns[board.Both]&fileBB == 0 {
			score += queenOpenFile
		} else if b.Pawns[board.White]&fileBB == 0 {
			score += queenSemiOpen
		}
	}
	for i := 0; i < b.PieceCount[board.BlackQueen]; i++ {
		fileBB := tbl.FileMask(tbl.FileOf(b.PieceList[board.BlackQueen][i]))
		if b.Pawns[board.Both]&fileBB == 0 {
			score -= queenOpenFile
		} else if b.Pawns[board.Black]&fileBB == 0 {
			score -= queenSemiOpen
		}
	}

	wKing64 := tbl.Sq64(b.KingSq[board.White])
	if b.Material[board.Black] <= endgameMaterial {
		score += kingEndgame[wKing64]
	} else {
		score += kingOpening[wKing64]
	}

	bKing64 := tbl.MirrorSq64(tbl.Sq64(b.KingSq[board.Black]))
	if b.Material[board.White] <= endgameMaterial {
		score -= kingEndgame[bKing64]
	} else {
		score -= kingOpening[bKing64]
	}

	if b.PieceCount[board.WhiteBishop] >= 2 {
		score += bishopPair
	}
	if b.PieceCount[board.BlackBishop] >= 2 {
		score -= bishopPair
	}

	if b.Side == board.White {
		return score
	}
	return -score
}

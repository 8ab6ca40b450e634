package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

const (
	// MaxGameMoves bounds the half-move history of a single game.
	MaxGameMoves = 2048
	// MaxDepth bounds the selective search depth.
	MaxDepth = 64
)

// Undo records the state a move destroys, so TakeMove can restore it.
type Undo struct {
	Move       Move
	CastlePerm CastlingRights
	EnPas      Square
	FiftyMove  int
	PosKey     uint64
}

// Board is a complete chess position. The mailbox array is the primary
// representation; the pawn bitboards, piece lists and material counters are
// redundant views kept in lockstep by MakeMove/TakeMove for fast generation
// and evaluation.
type Board struct {
	Squares [SquareCount]Piece
	Pawns   [3]Bitboard
	KingSq  [2]Square

	Side       Color
	EnPas      Square
	FiftyMove  int
	CastlePerm CastlingRights

	// Ply counts half moves from the search root, HisPly from the position
	// the board was set up with; HisPly indexes History. gamePly carries the
	// half moves implied by the setup FEN's full-move counter, so FEN output
	// round-trips without History having to span a whole game.
	Ply     int
	HisPly  int
	gamePly int

	PosKey uint64

	PieceCount  [PieceKinds]int
	PieceList   [PieceKinds][10]Square
	BigPieces   [2]int
	MajorPieces [2]int
	MinorPieces [2]int
	Material    [2]int

	History [MaxGameMoves]Undo

	// Move ordering state written by the search.
	SearchHistory [PieceKinds][SquareCount]int
	SearchKillers [2][MaxDepth]Move

	// Checked enables full consistency verification after every make and
	// take. Expensive; meant for tests and debugging sessions.
	Checked bool

	tbl *Tables
}

// NewBoard returns a board set to the starting position sharing the given
// tables.
func NewBoard(t *Tables) *Board {
	b, err := ParseFEN(StartFEN, t)
	if err != nil {
		panic("board: start position: " + err.Error())
	}
	return b
}

// Tables returns the lookup tables the board was built with.
func (b *Board) Tables() *Tables {
	return b.tbl
}

// Reset empties the board, keeping the table reference and checked mode.
func (b *Board) Reset() {
	for i := range b.Squares {
		b.Squares[i] = OffBoard
	}
	for sq64 := 0; sq64 < 64; sq64++ {
		b.Squares[b.tbl.Sq120(sq64)] = Empty
	}

	for i := 0; i < 2; i++ {
		b.BigPieces[i] = 0
		b.MajorPieces[i] = 0
		b.MinorPieces[i] = 0
		b.Material[i] = 0
	}
	for i := range b.Pawns {
		b.Pawns[i] = 0
	}
	for i := range b.PieceCount {
		b.PieceCount[i] = 0
	}

	b.KingSq[White] = NoSquare
	b.KingSq[Black] = NoSquare

	b.Side = Both
	b.EnPas = NoSquare
	b.FiftyMove = 0
	b.Ply = 0
	b.HisPly = 0
	b.gamePly = 0
	b.CastlePerm = NoCastling
	b.PosKey = 0
}

// updateListsMaterial derives the piece lists, counters, bitboards and king
// squares from the mailbox array.
func (b *Board) updateListsMaterial() {
	for sq := Square(0); sq < SquareCount; sq++ {
		p := b.Squares[sq]
		if p == Empty || p == OffBoard {
			continue
		}

		color := p.Color()
		if p.IsBig() {
			b.BigPieces[color]++
		}
		if p.IsMajor() {
			b.MajorPieces[color]++
		}
		if p.IsMinor() {
			b.MinorPieces[color]++
		}
		b.Material[color] += p.Value()

		b.PieceList[p][b.PieceCount[p]] = sq
		b.PieceCount[p]++

		switch p {
		case WhiteKing:
			b.KingSq[White] = sq
		case BlackKing:
			b.KingSq[Black] = sq
		case WhitePawn:
			b.Pawns[White].Set(b.tbl.Sq64(sq))
			b.Pawns[Both].Set(b.tbl.Sq64(sq))
		case BlackPawn:
			b.Pawns[Black].Set(b.tbl.Sq64(sq))
			b.Pawns[Both].Set(b.tbl.Sq64(sq))
		}
	}
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return b.SquareAttacked(b.KingSq[b.Side], b.Side.Other())
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. When false the game is over: checkmate if in check, stalemate
// otherwise.
func (b *Board) HasLegalMoves() bool {
	var ml MoveList
	b.GenerateAllMoves(&ml)
	for i := 0; i < ml.Len(); i++ {
		if b.MakeMove(ml.Get(i)) {
			b.TakeMove()
			return true
		}
	}
	return false
}

// IsRepetition reports whether the current position occurred earlier within
// the fifty-move window. Positions before the last irreversible move cannot
// repeat, so the scan starts there.
func (b *Board) IsRepetition() bool {
	start := b.HisPly - b.FiftyMove
	if start < 0 {
		start = 0
	}
	for i := start; i < b.HisPly-1; i++ {
		if b.History[i].PosKey == b.PosKey {
			return true
		}
	}
	return false
}

// RepetitionCount returns how many earlier positions in the game share the
// current position key.
func (b *Board) RepetitionCount() int {
	n := 0
	for i := 0; i < b.HisPly; i++ {
		if b.History[i].PosKey == b.PosKey {
			n++
		}
	}
	return n
}

// FiftyMoveDraw reports whether the fifty-move rule applies.
func (b *Board) FiftyMoveDraw() bool {
	return b.FiftyMove >= 100
}

// InsufficientMaterial reports whether neither side has mating material:
// no pawns, rooks or queens, and at most one minor piece per side.
func (b *Board) InsufficientMaterial() bool {
	if b.PieceCount[WhitePawn] > 0 || b.PieceCount[BlackPawn] > 0 {
		return false
	}
	if b.PieceCount[WhiteQueen] > 0 || b.PieceCount[BlackQueen] > 0 ||
		b.PieceCount[WhiteRook] > 0 || b.PieceCount[BlackRook] > 0 {
		return false
	}
	if b.PieceCount[WhiteBishop] > 1 || b.PieceCount[BlackBishop] > 1 {
		return false
	}
	if b.PieceCount[WhiteKnight] > 1 || b.PieceCount[BlackKnight] > 1 {
		return false
	}
	if b.PieceCount[WhiteKnight] > 0 && b.PieceCount[WhiteBishop] > 0 {
		return false
	}
	if b.PieceCount[BlackKnight] > 0 && b.PieceCount[BlackBishop] > 0 {
		return false
	}
	return true
}

// Mirror flips the position vertically and swaps the colors of every piece,
// castling right and the side to move. Used to verify evaluation symmetry.
func (b *Board) Mirror() {
	var pieces [64]Piece
	swap := [PieceKinds]Piece{
		Empty,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
		WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	}

	side := b.Side.Other()

	var castle CastlingRights
	if b.CastlePerm&WhiteKingSideCastle != 0 {
		castle |= BlackKingSideCastle
	}
	if b.CastlePerm&WhiteQueenSideCastle != 0 {
		castle |= BlackQueenSideCastle
	}
	if b.CastlePerm&BlackKingSideCastle != 0 {
		castle |= WhiteKingSideCastle
	}
	if b.CastlePerm&BlackQueenSideCastle != 0 {
		castle |= WhiteQueenSideCastle
	}

	enPas := NoSquare
	if b.EnPas != NoSquare {
		enPas = b.tbl.Sq120(b.tbl.MirrorSq64(b.tbl.Sq64(b.EnPas)))
	}

	for sq64 := 0; sq64 < 64; sq64++ {
		pieces[sq64] = b.Squares[b.tbl.Sq120(b.tbl.MirrorSq64(sq64))]
	}

	gamePly := b.gamePly
	b.Reset()
	b.gamePly = gamePly
	for sq64 := 0; sq64 < 64; sq64++ {
		b.Squares[b.tbl.Sq120(sq64)] = swap[pieces[sq64]]
	}
	b.Side = side
	b.CastlePerm = castle
	b.EnPas = enPas
	b.updateListsMaterial()
	b.PosKey = b.GeneratePositionKey()

	if b.Checked {
		b.mustConsistent()
	}
}

// String renders the board with rank 8 at the top, followed by the game
// state fields.
func (b *Board) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		fmt.Fprintf(&sb, "%d  ", int(r)+1)
		for f := FileA; f <= FileH; f++ {
			fmt.Fprintf(&sb, " %s ", b.Squares[FR(f, r)])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n    a  b  c  d  e  f  g  h\n")
	fmt.Fprintf(&sb, "side: %s  enPas: %s  castle: %s  key: %016X\n",
		b.Side, b.EnPas, b.CastlePerm, b.PosKey)
	return sb.String()
}

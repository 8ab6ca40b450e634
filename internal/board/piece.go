package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	// Both addresses the combined pawn bitboard.
	Both Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Both"
	}
}

// Piece is the occupant of a mailbox square. Empty and the twelve colored
// piece kinds are playable values; OffBoard fills the padding cells so that
// ray walks terminate without bounds checks.
type Piece uint8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	OffBoard
)

// PieceKinds is the number of playable Piece values, Empty included.
const PieceKinds = 13

var (
	pieceBig   = [PieceKinds]bool{false, false, true, true, true, true, true, false, true, true, true, true, true}
	pieceMajor = [PieceKinds]bool{false, false, false, false, true, true, true, false, false, false, true, true, true}
	pieceMinor = [PieceKinds]bool{false, false, true, true, false, false, false, false, true, true, false, false, false}
	pieceValue = [PieceKinds]int{0, 100, 325, 325, 550, 1000, 50000, 100, 325, 325, 550, 1000, 50000}
	pieceColor = [PieceKinds]Color{Both, White, White, White, White, White, White, Black, Black, Black, Black, Black, Black}

	piecePawn        = [PieceKinds]bool{false, true, false, false, false, false, false, true, false, false, false, false, false}
	pieceKnight      = [PieceKinds]bool{false, false, true, false, false, false, false, false, true, false, false, false, false}
	pieceKing        = [PieceKinds]bool{false, false, false, false, false, false, true, false, false, false, false, false, true}
	pieceRookQueen   = [PieceKinds]bool{false, false, false, false, true, true, false, false, false, false, true, true, false}
	pieceBishopQueen = [PieceKinds]bool{false, false, false, true, false, true, false, false, false, true, false, true, false}
)

// Color returns the Color of the piece, or Both for Empty.
func (p Piece) Color() Color {
	return pieceColor[p]
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return pieceValue[p]
}

// IsBig reports whether the piece is anything other than a pawn.
func (p Piece) IsBig() bool {
	return pieceBig[p]
}

// IsMajor reports whether the piece is a rook, queen or king.
func (p Piece) IsMajor() bool {
	return pieceMajor[p]
}

// IsMinor reports whether the piece is a knight or bishop.
func (p Piece) IsMinor() bool {
	return pieceMinor[p]
}

// IsPawn reports whether the piece is a pawn of either color.
func (p Piece) IsPawn() bool {
	return piecePawn[p]
}

// IsKing reports whether the piece is a king.
func (p Piece) IsKing() bool {
	return pieceKing[p]
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p == Empty || p >= OffBoard {
		return "."
	}
	chars := ".PNBRQKpnbrqk"
	return string(chars[p])
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return Empty, false
	}
}

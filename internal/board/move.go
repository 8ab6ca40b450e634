package board

import (
	"fmt"
	"strings"
)

// Move encodes a chess move in 25 bits:
//
//	bits 0-6:   from square (mailbox index)
//	bits 7-13:  to square (mailbox index)
//	bits 14-17: captured piece
//	bit  18:    en passant capture
//	bit  19:    pawn double push
//	bits 20-23: promoted piece
//	bit  24:    castling
type Move uint32

// Move flags and field masks.
const (
	FlagEnPassant Move = 0x40000
	FlagPawnStart Move = 0x80000
	FlagCastle    Move = 0x1000000

	CaptureMask   Move = 0x7C000
	PromotionMask Move = 0xF00000
)

// NoMove represents an absent move.
const NoMove Move = 0

// NewMove packs a move. flags is zero or a combination of FlagEnPassant,
// FlagPawnStart and FlagCastle.
func NewMove(from, to Square, captured, promoted Piece, flags Move) Move {
	return Move(from) | Move(to)<<7 | Move(captured)<<14 | Move(promoted)<<20 | flags
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x7F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 7) & 0x7F)
}

// Captured returns the captured piece, Empty when the move is quiet.
// En passant captures record Empty here and set FlagEnPassant instead.
func (m Move) Captured() Piece {
	return Piece((m >> 14) & 0xF)
}

// Promoted returns the promotion piece, Empty for non-promotions.
func (m Move) Promoted() Piece {
	return Piece((m >> 20) & 0xF)
}

// IsCapture reports whether the move captures, en passant included.
func (m Move) IsCapture() bool {
	return m&CaptureMask != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m&PromotionMask != 0
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m&FlagEnPassant != 0
}

// IsPawnStart reports whether the move is a pawn double push.
func (m Move) IsPawnStart() bool {
	return m&FlagPawnStart != 0
}

// IsCastle reports whether the move castles.
func (m Move) IsCastle() bool {
	return m&FlagCastle != 0
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.Promoted() {
	case WhiteKnight, BlackKnight:
		s += "n"
	case WhiteBishop, BlackBishop:
		s += "b"
	case WhiteRook, BlackRook:
		s += "r"
	case WhiteQueen, BlackQueen:
		s += "q"
	}
	return s
}

// MaxPositionMoves bounds the number of pseudo-legal moves in any reachable
// position.
const MaxPositionMoves = 256

// ScoredMove pairs a move with its ordering score.
type ScoredMove struct {
	Move  Move
	Score int
}

// MoveList is a fixed-capacity list of scored moves. The zero value is an
// empty list.
type MoveList struct {
	moves [MaxPositionMoves]ScoredMove
	count int
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the i-th move.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i].Move
}

// Slice returns the populated portion of the list. The slice aliases the
// list's backing array, so callers may reorder or rescore entries in place.
func (ml *MoveList) Slice() []ScoredMove {
	return ml.moves[:ml.count]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

func (ml *MoveList) add(m Move, score int) {
	ml.moves[ml.count] = ScoredMove{Move: m, Score: score}
	ml.count++
}

// String lists the moves with their ordering scores, one per line.
func (ml *MoveList) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MoveList: %d moves\n", ml.count)
	for i := 0; i < ml.count; i++ {
		fmt.Fprintf(&sb, "  %2d: %s (score %d)\n", i+1, ml.moves[i].Move, ml.moves[i].Score)
	}
	return sb.String()
}

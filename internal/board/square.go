// Package board implements a mailbox chess board representation with
// pseudo-legal move generation and incremental Zobrist hashing.
package board

import "fmt"

// Square indexes the 120-cell mailbox. Playable squares occupy 21..98; the
// surrounding cells are padding so that movement offsets can run off the edge
// of the board without wrapping onto another rank.
type Square int

// SquareCount is the size of the mailbox.
const SquareCount = 120

// NoSquare marks an absent square, e.g. when no en passant capture is
// available.
const NoSquare Square = 99

const (
	A1 Square = 21 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = 31 + iota
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = 41 + iota
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = 51 + iota
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = 61 + iota
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = 71 + iota
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = 81 + iota
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = 91 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File is a board file (column), 0=a through 7=h.
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// Rank is a board rank (row), 0 = first rank.
type Rank int

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// FR builds the mailbox square for a file and rank.
func FR(f File, r Rank) Square {
	return Square(21 + int(f) + int(r)*10)
}

// File returns the file of sq, or FileNone for padding cells.
func (sq Square) File() File {
	f := File(int(sq)%10 - 1)
	if f < FileA || f > FileH || sq < A1 || sq > H8 {
		return FileNone
	}
	return f
}

// Rank returns the rank of sq, or RankNone for padding cells.
func (sq Square) Rank() Rank {
	if sq.File() == FileNone {
		return RankNone
	}
	return Rank(int(sq)/10 - 2)
}

// OnBoard reports whether sq is one of the 64 playable squares.
func (sq Square) OnBoard() bool {
	return sq.File() != FileNone
}

// String returns the coordinate notation for the square (e.g. "e4").
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	if !sq.OnBoard() {
		return "??"
	}
	return fmt.Sprintf("%c%c", 'a'+int(sq.File()), '1'+int(sq.Rank()))
}

// ParseSquare parses coordinate notation (e.g. "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return FR(File(file), Rank(rank)), nil
}

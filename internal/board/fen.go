package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a new Board sharing the given tables.
func ParseFEN(fen string, t *Tables) (*Board, error) {
	b := &Board{tbl: t}
	b.Reset()

	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		b.Side = White
	case "b":
		b.Side = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(b, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		b.EnPas = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		b.FiftyMove = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		// HisPly stays 0: History only needs to span the moves played from
		// here, not the whole game the full-move counter implies.
		b.gamePly = (fmn - 1) * 2
		if b.Side == Black {
			b.gamePly++
		}
	}

	b.updateListsMaterial()
	b.PosKey = b.GeneratePositionKey()

	if b.KingSq[White] == NoSquare || b.KingSq[Black] == NoSquare {
		return nil, fmt.Errorf("invalid FEN: missing king")
	}

	return b, nil
}

func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			p, ok := PieceFromChar(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			if f > FileH {
				return fmt.Errorf("too many squares on rank %d", int(r)+1)
			}
			b.Squares[FR(f, r)] = p
			f++
		}
		if f != FileH+1 {
			return fmt.Errorf("incomplete rank %d", int(r)+1)
		}
	}
	return nil
}

func parseCastlingRights(b *Board, s string) error {
	if s == "-" {
		return nil
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			b.CastlePerm |= WhiteKingSideCastle
		case 'Q':
			b.CastlePerm |= WhiteQueenSideCastle
		case 'k':
			b.CastlePerm |= BlackKingSideCastle
		case 'q':
			b.CastlePerm |= BlackQueenSideCastle
		default:
			return fmt.Errorf("invalid castling rights: %s", s)
		}
	}
	return nil
}

// LoadFEN replaces the board contents with the given position. On error the
// board is left unmodified.
func (b *Board) LoadFEN(fen string) error {
	nb, err := ParseFEN(fen, b.tbl)
	if err != nil {
		return err
	}
	nb.Checked = b.Checked
	*b = *nb
	if b.Checked {
		b.mustConsistent()
	}
	return nil
}

// FEN serializes the position. Parsing the result reproduces the board.
func (b *Board) FEN() string {
	var sb strings.Builder

	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := b.Squares[FR(f, r)]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > Rank1 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if b.Side == Black {
		side = "b"
	}

	fullMove := (b.gamePly+b.HisPly)/2 + 1

	fmt.Fprintf(&sb, " %s %s %s %d %d", side, b.CastlePerm, b.EnPas, b.FiftyMove, fullMove)
	return sb.String()
}

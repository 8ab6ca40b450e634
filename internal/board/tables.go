package board

// Tables bundles every lookup table the board machinery needs: mailbox/64
// square conversions, file and rank lookups, Zobrist keys, castling permission
// masks, pawn evaluation masks and capture ordering scores. A Tables value is
// built once, never mutated afterwards, and shared by reference between every
// Board that should agree on hashing.
type Tables struct {
	sq120To64 [SquareCount]int
	sq64To120 [64]Square

	files [SquareCount]File
	ranks [SquareCount]Rank

	pieceKeys  [PieceKinds][SquareCount]uint64
	sideKey    uint64
	castleKeys [16]uint64

	castleMask [SquareCount]CastlingRights

	fileMasks [8]Bitboard
	rankMasks [8]Bitboard

	isolatedMask    [64]Bitboard
	whitePassedMask [64]Bitboard
	blackPassedMask [64]Bitboard

	mvvLva [PieceKinds][PieceKinds]int
}

const zobristSeed = 0x98F107A2BEEF1234

// NewTables builds the immutable lookup tables.
func NewTables() *Tables {
	t := &Tables{}

	for i := range t.sq120To64 {
		t.sq120To64[i] = 64
		t.files[i] = FileNone
		t.ranks[i] = RankNone
	}
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			sq := FR(f, r)
			sq64 := int(r)*8 + int(f)
			t.sq64To120[sq64] = sq
			t.sq120To64[sq] = sq64
			t.files[sq] = f
			t.ranks[sq] = r
		}
	}

	rng := newPRNG(zobristSeed)
	for p := range t.pieceKeys {
		for sq := range t.pieceKeys[p] {
			t.pieceKeys[p][sq] = rng.next()
		}
	}
	t.sideKey = rng.next()
	for i := range t.castleKeys {
		t.castleKeys[i] = rng.next()
	}

	// Rights surviving a move touching the square. Only the king and rook
	// home squares take rights away.
	for i := range t.castleMask {
		t.castleMask[i] = 15
	}
	t.castleMask[A1] = 13
	t.castleMask[E1] = 12
	t.castleMask[H1] = 14
	t.castleMask[A8] = 7
	t.castleMask[E8] = 3
	t.castleMask[H8] = 11

	for sq64 := 0; sq64 < 64; sq64++ {
		f := sq64 & 7
		r := sq64 >> 3
		t.fileMasks[f].Set(sq64)
		t.rankMasks[r].Set(sq64)
	}

	for sq64 := 0; sq64 < 64; sq64++ {
		f := sq64 & 7
		r := sq64 >> 3

		if f > 0 {
			t.isolatedMask[sq64] |= t.fileMasks[f-1]
		}
		if f < 7 {
			t.isolatedMask[sq64] |= t.fileMasks[f+1]
		}

		for tr := r + 1; tr < 8; tr++ {
			t.whitePassedMask[sq64].Set(tr*8 + f)
			if f > 0 {
				t.whitePassedMask[sq64].Set(tr*8 + f - 1)
			}
			if f < 7 {
				t.whitePassedMask[sq64].Set(tr*8 + f + 1)
			}
		}
		for tr := r - 1; tr >= 0; tr-- {
			t.blackPassedMask[sq64].Set(tr*8 + f)
			if f > 0 {
				t.blackPassedMask[sq64].Set(tr*8 + f - 1)
			}
			if f < 7 {
				t.blackPassedMask[sq64].Set(tr*8 + f + 1)
			}
		}
	}

	// Most-valuable-victim / least-valuable-attacker capture scores.
	victimScore := [PieceKinds]int{0, 100, 200, 300, 400, 500, 600, 100, 200, 300, 400, 500, 600}
	for victim := WhitePawn; victim <= BlackKing; victim++ {
		for attacker := WhitePawn; attacker <= BlackKing; attacker++ {
			t.mvvLva[victim][attacker] = victimScore[victim] + 6 - victimScore[attacker]/100
		}
	}

	return t
}

// Sq64 converts a mailbox square to its 0..63 index. Padding cells map to 64.
func (t *Tables) Sq64(sq Square) int {
	return t.sq120To64[sq]
}

// Sq120 converts a 0..63 square index to its mailbox square.
func (t *Tables) Sq120(sq64 int) Square {
	return t.sq64To120[sq64]
}

// FileOf returns the file of a mailbox square, FileNone for padding.
func (t *Tables) FileOf(sq Square) File {
	return t.files[sq]
}

// RankOf returns the rank of a mailbox square, RankNone for padding.
func (t *Tables) RankOf(sq Square) Rank {
	return t.ranks[sq]
}

// FileMask returns the bitboard of all squares on file f.
func (t *Tables) FileMask(f File) Bitboard {
	return t.fileMasks[f]
}

// RankMask returns the bitboard of all squares on rank r.
func (t *Tables) RankMask(r Rank) Bitboard {
	return t.rankMasks[r]
}

// IsolatedMask returns the adjacent-file mask used to detect isolated pawns.
func (t *Tables) IsolatedMask(sq64 int) Bitboard {
	return t.isolatedMask[sq64]
}

// PassedMask returns the mask of squares an enemy pawn would have to occupy
// to stop a pawn of color c on sq64 from being passed.
func (t *Tables) PassedMask(c Color, sq64 int) Bitboard {
	if c == White {
		return t.whitePassedMask[sq64]
	}
	return t.blackPassedMask[sq64]
}

// MirrorSq64 flips a 0..63 square index vertically.
func (t *Tables) MirrorSq64(sq64 int) int {
	return sq64 ^ 56
}

// MvvLva returns the capture ordering score for taking victim with attacker.
func (t *Tables) MvvLva(victim, attacker Piece) int {
	return t.mvvLva[victim][attacker]
}

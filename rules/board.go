package rules

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color { return colorOf(p) }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Square represents a board position (0-63, a1=0, h8=63).
type Square int

const NoSquare Square = -1

// NewSquare builds a square from zero-based file and rank coordinates.
// Off-board coordinates yield ErrInvalidSquare.
func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, ErrInvalidSquare
	}
	return Square(rank*8 + file), nil
}

// File returns the zero-based file (0 = a-file).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the zero-based rank (0 = first rank).
func (s Square) Rank() int { return int(s) / 8 }

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// String renders the square in coordinate form, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// SquareFromString parses a coordinate like "e4" into a Square.
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, ErrInvalidSquare
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return NewSquare(file, rank)
}

// Board represents the full game state: piece placement, side to move,
// castling rights, the en-passant target, the move counters, and the parallel
// history logs that make Apply reversible.
type Board struct {
	// Piece placement for each square (0 = NoPiece, otherwise a Piece constant)
	pieces [64]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for the 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// King squares per color, kept in sync by makeMove/Undo so check probes
	// never have to scan the board.
	kings [2]Square

	// Parallel history logs indexed by ply. Entries are pushed together on
	// every makeMove and popped together on every Undo; their lengths are
	// always equal.
	moveLog      []Move
	enPassantLog []Square         // pre-move en-passant target
	castleLog    []CastlingRights // pre-move castling rights snapshot
	halfmoveLog  []int            // pre-move halfmove clock
}

// PieceAt returns the piece on a square.
// Off-board squares yield ErrInvalidSquare before board storage is touched.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if !sq.Valid() {
		return NoPiece, ErrInvalidSquare
	}
	return b.pieces[sq], nil
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the current castling rights bitmask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantTarget returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantTarget() Square { return b.enPassantSquare }

// HalfmoveClock accessor for consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// KingSquare returns the square of the given side's king.
func (b *Board) KingSquare(c Color) Square { return b.kings[int(c)] }

// Ply returns the number of applied moves currently on the history logs.
func (b *Board) Ply() int { return len(b.moveLog) }

// MoveLog returns a copy of the applied move history.
func (b *Board) MoveLog() []Move {
	return append([]Move(nil), b.moveLog...)
}

// LastMove returns the most recently applied move, or NoMove at ply zero.
func (b *Board) LastMove() Move {
	if len(b.moveLog) == 0 {
		return NoMove
	}
	return b.moveLog[len(b.moveLog)-1]
}

// Copy returns a deep copy of the board, including the history logs.
// Copies share nothing with the original; a search running on a copy can never
// disturb live game state.
func (b *Board) Copy() *Board {
	nb := *b
	nb.moveLog = append([]Move(nil), b.moveLog...)
	nb.enPassantLog = append([]Square(nil), b.enPassantLog...)
	nb.castleLog = append([]CastlingRights(nil), b.castleLog...)
	nb.halfmoveLog = append([]int(nil), b.halfmoveLog...)
	return &nb
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	pseudo := b.pseudoLegalMovesFor(b.sideToMove)
	for _, m := range pseudo {
		if b.isLegal(m) {
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsDrawByFiftyMoves reports a 50-move rule draw (halfmoveClock counts half-moves).
func (b *Board) IsDrawByFiftyMoves() bool {
	return b.halfmoveClock >= 100
}

// colorOf returns the color of a piece. NoPiece is treated as White.
func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// typeOf returns the piece type in [1..6] with color stripped.
func typeOf(p Piece) PieceType { return PieceType(p & 7) }

// Validate checks internal consistency: king-square tracking matches placement,
// exactly one king per side, and all history logs in lock-step.
// Returns true if consistent, false otherwise.
func (b *Board) Validate() bool {
	var kingCount [2]int
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p.Type() != PieceTypeKing {
			continue
		}
		c := colorOf(p)
		kingCount[int(c)]++
		if b.kings[int(c)] != sq {
			return false
		}
	}
	if kingCount[0] != 1 || kingCount[1] != 1 {
		return false
	}
	n := len(b.moveLog)
	if len(b.enPassantLog) != n || len(b.castleLog) != n || len(b.halfmoveLog) != n {
		return false
	}
	return true
}

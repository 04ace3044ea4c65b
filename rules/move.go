package rules

// Move encodes a single ply in a 32-bit value.
type Move uint32

// NoMove is the zero Move, used where no move exists (empty history, errors).
const NoMove Move = 0

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 3 bits
)

// MoveFlag marks the special-move cases that need extra bookkeeping in
// makeMove and Undo.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	// FlagDoublePawn marks a two-square pawn advance (opens the en-passant window).
	FlagDoublePawn
	// FlagEnPassant marks an en-passant capture (the victim sits behind the destination).
	FlagEnPassant
	// FlagCastleKingside marks short castling (the rook hops h->f).
	FlagCastleKingside
	// FlagCastleQueenside marks long castling (the rook hops a->d).
	FlagCastleQueenside
	// (Promotion is indicated by a non-zero promotion piece)
)

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece, captured, promotion Piece, flag MoveFlag) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x7) << moveFlagShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece code that is moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the piece code that was captured (or NoPiece if none).
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece code (or NoPiece if not a promotion).
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// PromotionPieceType returns the colorless type of the promoted piece (or PieceTypeNone).
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }

// Flag returns the special move flag.
func (m Move) Flag() MoveFlag { return MoveFlag((uint32(m) >> moveFlagShift) & 0x7) }

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

// IsCastle reports whether the move is a castling move of either wing.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// String produces the coordinate representation of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	str := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		switch typeOf(promo) {
		case PieceTypeKnight:
			str += "n"
		case PieceTypeBishop:
			str += "b"
		case PieceTypeRook:
			str += "r"
		case PieceTypeQueen:
			str += "q"
		}
	}
	return str
}

// AutoPromote collapses promotion alternatives in a legal move list to the
// given default kind, leaving non-promotion moves untouched. Front ends that
// do not prompt for a promotion piece use this to resolve the choice up front;
// kind PieceTypeNone returns the list unchanged.
func AutoPromote(moves []Move, kind PieceType) []Move {
	if kind == PieceTypeNone {
		return moves
	}
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.IsPromotion() && m.PromotionPieceType() != kind {
			continue
		}
		out = append(out, m)
	}
	return out
}

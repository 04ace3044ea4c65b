package rules

import "fmt"

// Apply validates the move against the current legal move list and executes it.
// A move that is not legal in the current position returns ErrIllegalMove and
// leaves the board untouched; validation happens before any mutation, so apply
// is atomic.
func (b *Board) Apply(m Move) error {
	for _, legal := range b.LegalMoves() {
		if legal == m {
			b.makeMove(m)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrIllegalMove, m)
}

// MakeMove executes a move mechanically without re-validating legality.
// The move must have been produced by LegalMoves for the current side to move;
// search and simulation use this fast path. General callers should use Apply.
func (b *Board) MakeMove(m Move) { b.makeMove(m) }

// makeMove applies the move and pushes the pre-move en-passant target,
// castling rights and halfmove clock, plus the move itself, onto the history
// logs. Every sub-effect of Undo mirrors a sub-effect here exactly.
func (b *Board) makeMove(m Move) {
	b.moveLog = append(b.moveLog, m)
	b.enPassantLog = append(b.enPassantLog, b.enPassantSquare)
	b.castleLog = append(b.castleLog, b.castlingRights)
	b.halfmoveLog = append(b.halfmoveLog, b.halfmoveClock)

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	us := colorOf(moved)

	b.pieces[from] = NoPiece
	b.pieces[to] = moved

	switch m.Flag() {
	case FlagEnPassant:
		// The captured pawn sits behind the destination, not on it.
		b.pieces[epVictimSquare(to, us)] = NoPiece
	case FlagCastleKingside, FlagCastleQueenside:
		rookFrom, rookTo := rookCastleSquares(to)
		b.pieces[rookTo] = b.pieces[rookFrom]
		b.pieces[rookFrom] = NoPiece
	}

	if promo := m.PromotionPiece(); promo != NoPiece {
		b.pieces[to] = promo
	}

	if typeOf(moved) == PieceTypeKing {
		b.kings[int(us)] = to
	}

	// &^= only clears bits: a right lost on an earlier ply stays lost.
	b.castlingRights &^= rightsLost(moved, from)
	if cap := m.CapturedPiece(); cap != NoPiece && m.Flag() != FlagEnPassant {
		b.castlingRights &^= rightsLost(cap, to)
	}

	// The en-passant window lasts exactly one ply: cleared on every move,
	// re-opened only by a double pawn push.
	if m.Flag() == FlagDoublePawn {
		b.enPassantSquare = (from + to) / 2
	} else {
		b.enPassantSquare = NoSquare
	}

	if typeOf(moved) == PieceTypePawn || m.CapturedPiece() != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = us.Other()
}

// Undo reverses the most recent move and restores the pre-move en-passant
// target, castling rights and halfmove clock from the popped log entries.
// Undo with empty history is a no-op, not an error: the UI may call it
// speculatively.
func (b *Board) Undo() {
	n := len(b.moveLog)
	if n == 0 {
		return
	}
	m := b.moveLog[n-1]
	b.moveLog = b.moveLog[:n-1]
	b.enPassantSquare = b.enPassantLog[n-1]
	b.enPassantLog = b.enPassantLog[:n-1]
	b.castlingRights = b.castleLog[n-1]
	b.castleLog = b.castleLog[:n-1]
	b.halfmoveClock = b.halfmoveLog[n-1]
	b.halfmoveLog = b.halfmoveLog[:n-1]

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	us := colorOf(moved)

	// A promotion reverses to the original pawn because 'moved' recorded the pawn.
	b.pieces[from] = moved
	b.pieces[to] = NoPiece

	switch m.Flag() {
	case FlagEnPassant:
		b.pieces[epVictimSquare(to, us)] = m.CapturedPiece()
	case FlagCastleKingside, FlagCastleQueenside:
		rookFrom, rookTo := rookCastleSquares(to)
		b.pieces[rookFrom] = b.pieces[rookTo]
		b.pieces[rookTo] = NoPiece
	default:
		if cap := m.CapturedPiece(); cap != NoPiece {
			b.pieces[to] = cap
		}
	}

	if typeOf(moved) == PieceTypeKing {
		b.kings[int(us)] = from
	}
	if us == Black {
		b.fullmoveNumber--
	}
	b.sideToMove = us
}

// epVictimSquare returns the square of the pawn removed by an en-passant
// capture landing on 'to' by a pawn of color 'us'.
func epVictimSquare(to Square, us Color) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

// rookCastleSquares maps a castling king destination to the rook's hop.
func rookCastleSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case 6: // g1
		return 7, 5 // h1 -> f1
	case 2: // c1
		return 0, 3 // a1 -> d1
	case 62: // g8
		return 63, 61 // h8 -> f8
	case 58: // c8
		return 56, 59 // a8 -> d8
	}
	return NoSquare, NoSquare
}

// rightsLost returns the castling rights forfeited when piece p moves from or
// is captured on square sq: a king move drops both of its side's rights, a
// rook move or capture on a home corner drops that wing.
func rightsLost(p Piece, sq Square) CastlingRights {
	switch p {
	case WhiteKing:
		return CastlingWhiteK | CastlingWhiteQ
	case BlackKing:
		return CastlingBlackK | CastlingBlackQ
	case WhiteRook:
		switch sq {
		case 0: // a1
			return CastlingWhiteQ
		case 7: // h1
			return CastlingWhiteK
		}
	case BlackRook:
		switch sq {
		case 56: // a8
			return CastlingBlackQ
		case 63: // h8
			return CastlingBlackK
		}
	}
	return 0
}

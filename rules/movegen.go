package rules

// Direction deltas in (file, rank) form. Mailbox generation steps these with
// explicit bounds checks instead of precomputed attack tables; every table is
// fixed, so generation order is deterministic for a given position.
type delta struct{ df, dr int }

var (
	rookDirs    = [4]delta{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs  = [4]delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royalDirs   = [8]delta{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps = [8]delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// promotionOrder fixes the order promotion alternatives are emitted in.
var promotionOrder = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// shift returns the square displaced from sq by d, or NoSquare if off-board.
func shift(sq Square, d delta) Square {
	f := sq.File() + d.df
	r := sq.Rank() + d.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare
	}
	return Square(r*8 + f)
}

// PseudoLegalMoves generates moves consistent with each piece's movement
// pattern for the side to move, ignoring whether the mover's king is left in
// check. Castling candidates appear when rights allow and the squares between
// king and rook are empty; the attack-safety conditions are applied by the
// legal filter.
func (b *Board) PseudoLegalMoves() []Move {
	return b.pseudoLegalMovesFor(b.sideToMove)
}

func (b *Board) pseudoLegalMovesFor(us Color) []Move {
	moves := make([]Move, 0, 48)
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece || colorOf(p) != us {
			continue
		}
		switch typeOf(p) {
		case PieceTypePawn:
			moves = b.pawnMoves(moves, sq, us)
		case PieceTypeKnight:
			moves = b.stepperMoves(moves, sq, p, knightJumps[:])
		case PieceTypeBishop:
			moves = b.sliderMoves(moves, sq, p, bishopDirs[:])
		case PieceTypeRook:
			moves = b.sliderMoves(moves, sq, p, rookDirs[:])
		case PieceTypeQueen:
			moves = b.sliderMoves(moves, sq, p, royalDirs[:])
		case PieceTypeKing:
			moves = b.stepperMoves(moves, sq, p, royalDirs[:])
			moves = b.castleCandidates(moves, sq, us)
		}
	}
	return moves
}

// pawnMoves emits pushes, double pushes, diagonal captures, en-passant
// captures and promotion alternatives for the pawn on sq.
func (b *Board) pawnMoves(moves []Move, sq Square, us Color) []Move {
	pawn := b.pieces[sq]
	dir := 1
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -1
		startRank, promoRank = 6, 0
	}

	// Single and double push.
	if one := shift(sq, delta{0, dir}); one != NoSquare && b.pieces[one] == NoPiece {
		moves = appendPawnMove(moves, sq, one, pawn, NoPiece, FlagNone, promoRank, us)
		if sq.Rank() == startRank {
			two := shift(sq, delta{0, 2 * dir})
			if b.pieces[two] == NoPiece {
				moves = append(moves, NewMove(sq, two, pawn, NoPiece, NoPiece, FlagDoublePawn))
			}
		}
	}

	// Diagonal captures and en passant.
	for _, df := range [2]int{-1, 1} {
		to := shift(sq, delta{df, dir})
		if to == NoSquare {
			continue
		}
		target := b.pieces[to]
		if target != NoPiece && colorOf(target) != us {
			moves = appendPawnMove(moves, sq, to, pawn, target, FlagNone, promoRank, us)
		}
		if to == b.enPassantSquare && epTargetRankFor(us) == to.Rank() {
			victim := PieceFromType(us.Other(), PieceTypePawn)
			moves = append(moves, NewMove(sq, to, pawn, victim, NoPiece, FlagEnPassant))
		}
	}
	return moves
}

// epTargetRankFor returns the only rank an en-passant target can occupy for
// the capturing side. It gates generation for a color that is not on move
// (mobility probes) from misreading the window.
func epTargetRankFor(us Color) int {
	if us == White {
		return 5
	}
	return 2
}

// appendPawnMove expands a pawn move into its four promotion alternatives when
// it reaches the last rank, in Q,R,B,N order.
func appendPawnMove(moves []Move, from, to Square, pawn, captured Piece, flag MoveFlag, promoRank int, us Color) []Move {
	if to.Rank() != promoRank {
		return append(moves, NewMove(from, to, pawn, captured, NoPiece, flag))
	}
	for _, pt := range promotionOrder {
		moves = append(moves, NewMove(from, to, pawn, captured, PieceFromType(us, pt), flag))
	}
	return moves
}

// stepperMoves emits single-step moves for knights and kings.
func (b *Board) stepperMoves(moves []Move, sq Square, p Piece, dirs []delta) []Move {
	us := colorOf(p)
	for _, d := range dirs {
		to := shift(sq, d)
		if to == NoSquare {
			continue
		}
		target := b.pieces[to]
		if target == NoPiece || colorOf(target) != us {
			moves = append(moves, NewMove(sq, to, p, target, NoPiece, FlagNone))
		}
	}
	return moves
}

// sliderMoves emits ray moves for bishops, rooks and queens, stopping each ray
// at the first occupied square (inclusive if it holds an enemy piece).
func (b *Board) sliderMoves(moves []Move, sq Square, p Piece, dirs []delta) []Move {
	us := colorOf(p)
	for _, d := range dirs {
		for to := shift(sq, d); to != NoSquare; to = shift(to, d) {
			target := b.pieces[to]
			if target == NoPiece {
				moves = append(moves, NewMove(sq, to, p, NoPiece, NoPiece, FlagNone))
				continue
			}
			if colorOf(target) != us {
				moves = append(moves, NewMove(sq, to, p, target, NoPiece, FlagNone))
			}
			break
		}
	}
	return moves
}

// castleCandidates emits castling moves when the side still holds the right
// (tracked in castlingRights, never re-derived from history) and the squares
// between king and rook are empty. Kingside precedes queenside.
func (b *Board) castleCandidates(moves []Move, sq Square, us Color) []Move {
	king := b.pieces[sq]
	if us == White {
		if sq != 4 { // e1
			return moves
		}
		if b.castlingRights&CastlingWhiteK != 0 && b.pieces[5] == NoPiece && b.pieces[6] == NoPiece {
			moves = append(moves, NewMove(4, 6, king, NoPiece, NoPiece, FlagCastleKingside))
		}
		if b.castlingRights&CastlingWhiteQ != 0 && b.pieces[1] == NoPiece && b.pieces[2] == NoPiece && b.pieces[3] == NoPiece {
			moves = append(moves, NewMove(4, 2, king, NoPiece, NoPiece, FlagCastleQueenside))
		}
		return moves
	}
	if sq != 60 { // e8
		return moves
	}
	if b.castlingRights&CastlingBlackK != 0 && b.pieces[61] == NoPiece && b.pieces[62] == NoPiece {
		moves = append(moves, NewMove(60, 62, king, NoPiece, NoPiece, FlagCastleKingside))
	}
	if b.castlingRights&CastlingBlackQ != 0 && b.pieces[57] == NoPiece && b.pieces[58] == NoPiece && b.pieces[59] == NoPiece {
		moves = append(moves, NewMove(60, 58, king, NoPiece, NoPiece, FlagCastleQueenside))
	}
	return moves
}

// Mobility returns the pseudo-legal move count for a color, regardless of
// whose turn it is. Evaluation uses it as a cheap activity measure.
func (b *Board) Mobility(c Color) int {
	return len(b.pseudoLegalMovesFor(c))
}

// LegalMoves filters the pseudo-legal moves down to those that do not leave
// the mover's own king in check. Each candidate is simulated on this board
// with makeMove/Undo; the board is restored exactly on every path, so the
// shared history logs stay balanced for real gameplay.
func (b *Board) LegalMoves() []Move {
	pseudo := b.pseudoLegalMovesFor(b.sideToMove)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if b.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal simulates m and reports whether the mover's king survives.
// Castling additionally requires the king's start, transit and destination
// squares to be free of enemy attack, tested separately: the post-move probe
// alone would only cover the destination.
func (b *Board) isLegal(m Move) bool {
	us := b.sideToMove
	if m.IsCastle() && !b.castlePathSafe(m, us) {
		return false
	}
	b.makeMove(m)
	inCheck := b.InCheck(us)
	b.Undo()
	return !inCheck
}

// castlePathSafe runs the three attack tests castling needs: current king
// square, the square the king passes through, and the destination.
func (b *Board) castlePathSafe(m Move, us Color) bool {
	them := us.Other()
	transit := (m.From() + m.To()) / 2
	return !b.SquareAttacked(m.From(), them) &&
		!b.SquareAttacked(transit, them) &&
		!b.SquareAttacked(m.To(), them)
}

// SquareAttacked reports whether sq is attacked by any piece of color 'by'.
// It probes outward from sq: pawn and knight and king offsets, then sliding
// rays stopped at the first occupied square.
func (b *Board) SquareAttacked(sq Square, by Color) bool {
	// Pawns attack one rank toward the enemy, so look one rank back toward them.
	pawnDir := -1
	if by == Black {
		pawnDir = 1
	}
	pawn := PieceFromType(by, PieceTypePawn)
	for _, df := range [2]int{-1, 1} {
		if from := shift(sq, delta{df, pawnDir}); from != NoSquare && b.pieces[from] == pawn {
			return true
		}
	}

	knight := PieceFromType(by, PieceTypeKnight)
	for _, d := range knightJumps {
		if from := shift(sq, d); from != NoSquare && b.pieces[from] == knight {
			return true
		}
	}

	king := PieceFromType(by, PieceTypeKing)
	for _, d := range royalDirs {
		if from := shift(sq, d); from != NoSquare && b.pieces[from] == king {
			return true
		}
	}

	rook := PieceFromType(by, PieceTypeRook)
	queen := PieceFromType(by, PieceTypeQueen)
	for _, d := range rookDirs {
		for from := shift(sq, d); from != NoSquare; from = shift(from, d) {
			p := b.pieces[from]
			if p == NoPiece {
				continue
			}
			if p == rook || p == queen {
				return true
			}
			break
		}
	}

	bishop := PieceFromType(by, PieceTypeBishop)
	for _, d := range bishopDirs {
		for from := shift(sq, d); from != NoSquare; from = shift(from, d) {
			p := b.pieces[from]
			if p == NoPiece {
				continue
			}
			if p == bishop || p == queen {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether color's king square is attacked by the other side.
func (b *Board) InCheck(color Color) bool {
	return b.SquareAttacked(b.kings[int(color)], color.Other())
}

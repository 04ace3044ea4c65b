package rules

import (
	"fmt"
	"strings"
)

// pieceLetter returns the SAN letter for a piece type; pawns have none.
func pieceLetter(pt PieceType) string {
	switch pt {
	case PieceTypeKnight:
		return "N"
	case PieceTypeBishop:
		return "B"
	case PieceTypeRook:
		return "R"
	case PieceTypeQueen:
		return "Q"
	case PieceTypeKing:
		return "K"
	}
	return ""
}

// EncodeSAN renders a legal move in standard algebraic notation against the
// position before the move: piece letter, minimal disambiguation, "x" for
// captures (pawn captures keep the origin file), "O-O"/"O-O-O" for castling,
// "=Q" style promotions and a "+"/"#" suffix. The board is restored before
// returning. A move that is not legal in the position yields ErrIllegalMove.
func EncodeSAN(b *Board, m Move) (string, error) {
	legal := b.LegalMoves()
	found := false
	for _, lm := range legal {
		if lm == m {
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	var sb strings.Builder
	switch m.Flag() {
	case FlagCastleKingside:
		sb.WriteString("O-O")
	case FlagCastleQueenside:
		sb.WriteString("O-O-O")
	default:
		pt := typeOf(m.MovedPiece())
		if pt == PieceTypePawn {
			if m.IsCapture() {
				sb.WriteByte('a' + byte(m.From().File()))
			}
		} else {
			sb.WriteString(pieceLetter(pt))
			sb.WriteString(disambiguation(legal, m))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To().String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteString(pieceLetter(m.PromotionPieceType()))
		}
	}
	sb.WriteString(b.checkSuffix(m))
	return sb.String(), nil
}

// disambiguation returns the minimal origin qualifier needed when another
// piece of the same type can reach the same destination: file if it settles
// the ambiguity, else rank, else the full origin square.
func disambiguation(legal []Move, m Move) string {
	ambiguous, sameFile, sameRank := false, false, false
	for _, o := range legal {
		if o.From() == m.From() || o.To() != m.To() || o.MovedPiece() != m.MovedPiece() {
			continue
		}
		ambiguous = true
		if o.From().File() == m.From().File() {
			sameFile = true
		}
		if o.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	from := m.From()
	switch {
	case !sameFile:
		return string([]byte{'a' + byte(from.File())})
	case !sameRank:
		return string([]byte{'1' + byte(from.Rank())})
	default:
		return from.String()
	}
}

// checkSuffix simulates the move and reports "#" for mate, "+" for check.
func (b *Board) checkSuffix(m Move) string {
	b.makeMove(m)
	suffix := ""
	if b.InCheck(b.sideToMove) {
		if b.HasLegalMoves() {
			suffix = "+"
		} else {
			suffix = "#"
		}
	}
	b.Undo()
	return suffix
}

// ParseCoordinateMove resolves a coordinate move string such as "e2e4" or
// "e7e8q" against the legal moves of the position. Castling is written as the
// king's two-square hop ("e1g1"). Returns ErrNoMatchingMove if no legal move
// matches.
func ParseCoordinateMove(b *Board, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrNoMatchingMove, s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q", ErrNoMatchingMove, s)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q", ErrNoMatchingMove, s)
	}
	promo := PieceTypeNone
	if len(s) == 5 {
		switch s[4] {
		case 'n', 'N':
			promo = PieceTypeKnight
		case 'b', 'B':
			promo = PieceTypeBishop
		case 'r', 'R':
			promo = PieceTypeRook
		case 'q', 'Q':
			promo = PieceTypeQueen
		default:
			return NoMove, fmt.Errorf("%w: bad promotion in %q", ErrNoMatchingMove, s)
		}
	}
	for _, m := range b.LegalMoves() {
		if m.From() == from && m.To() == to && m.PromotionPieceType() == promo {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %q", ErrNoMatchingMove, s)
}

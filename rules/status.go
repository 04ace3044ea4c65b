package rules

// GameStatus classifies the position from the side to move's point of view.
type GameStatus uint8

const (
	// Ongoing indicates a playable position with the king safe.
	Ongoing GameStatus = iota
	// Check indicates the side to move is in check but has legal moves.
	Check
	// Checkmate indicates the side to move is in check with no legal moves.
	Checkmate
	// Stalemate indicates the side to move has no legal moves and is not in check.
	Stalemate
	// DrawByFiftyMoves indicates 100 half-moves elapsed without a pawn move or capture.
	DrawByFiftyMoves
)

// String implements the fmt.Stringer interface.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByFiftyMoves:
		return "draw by fifty-move rule"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the game.
func (s GameStatus) Terminal() bool {
	return s == Checkmate || s == Stalemate || s == DrawByFiftyMoves
}

// Status classifies the current position. Checkmate and stalemate take
// precedence over the fifty-move draw.
func (b *Board) Status() GameStatus {
	inCheck := b.InCheck(b.sideToMove)
	if !b.HasLegalMoves() {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if b.IsDrawByFiftyMoves() {
		return DrawByFiftyMoves
	}
	if inCheck {
		return Check
	}
	return Ongoing
}

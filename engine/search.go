package engine

import (
	"errors"

	"chess-core/rules"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore bounds every reachable score; used as the search sentinel.
	MaxScore int32 = 32500
	// CheckmateScore is the base mate score, offset by ply so nearer mates win.
	CheckmateScore int32 = 20000
	// DrawScore is the value of stalemate and fifty-move draws.
	DrawScore int32 = 0
)

// ErrNoLegalMoves reports BestMove being asked for a move in a finished game.
// Callers should classify the position first.
var ErrNoLegalMoves = errors.New("engine: no legal moves in position")

// BestMove runs a depth-limited minimax from the given position and returns
// the strongest move for cfg.AIColor. Ties are broken by generation order, so
// identical inputs always return the identical move. The search simulates on
// the caller's board with strictly paired make/undo calls; on return the board
// is exactly as it was passed in.
func BestMove(b *rules.Board, cfg Config) (rules.Move, error) {
	if err := cfg.Validate(); err != nil {
		return rules.NoMove, err
	}
	moves := b.LegalMoves()
	moves = rules.AutoPromote(moves, cfg.AutoPromotion)
	if len(moves) == 0 {
		return rules.NoMove, ErrNoLegalMoves
	}

	best := moves[0]
	bestScore := -MaxScore
	for _, m := range moves {
		b.MakeMove(m)
		score := minimax(b, cfg.Depth-1, 1, cfg.AIColor)
		b.Undo()
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best, nil
}

// minimax explores every legal move to the depth horizon and scores leaves
// with the static evaluation, always from the AI's perspective. Nodes where
// the AI is on move maximize; opponent nodes minimize. Terminal positions
// score as mate (offset by ply) or draw without recursing further. Every
// MakeMove pairs with exactly one Undo on the single shared board.
func minimax(b *rules.Board, depth, ply int, ai rules.Color) int32 {
	if depth <= 0 {
		return evaluateFor(b, ai)
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove()) {
			// The side to move here is checkmated.
			mate := CheckmateScore - int32(ply)
			if b.SideToMove() == ai {
				return -mate
			}
			return mate
		}
		return DrawScore
	}
	if b.IsDrawByFiftyMoves() {
		return DrawScore
	}

	maximizing := b.SideToMove() == ai
	best := -MaxScore
	if !maximizing {
		best = MaxScore
	}
	for _, m := range moves {
		b.MakeMove(m)
		score := minimax(b, depth-1, ply+1, ai)
		b.Undo()
		if maximizing {
			if score > best {
				best = score
			}
		} else {
			if score < best {
				best = score
			}
		}
	}
	return best
}

// evaluateFor flips the White-perspective evaluation to the AI's perspective.
func evaluateFor(b *rules.Board, ai rules.Color) int32 {
	if ai == rules.White {
		return Evaluate(b)
	}
	return -Evaluate(b)
}

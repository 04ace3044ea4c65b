package engine

import (
	"fmt"

	"chess-core/rules"
)

// Depth bounds accepted by BestMove. Depth grows the tree by the full
// branching factor per ply; callers pick latency via this knob.
const (
	MinDepth = 1
	MaxDepth = 10
)

// Config carries the search settings the surrounding application owns: the
// depth limit, which side the computer plays, and an optional default
// promotion piece. It is passed explicitly into BestMove, never read from
// package state.
type Config struct {
	// Depth is the fixed search horizon in plies, in [MinDepth, MaxDepth].
	Depth int
	// AIColor is the side the engine maximizes for.
	AIColor rules.Color
	// AutoPromotion, when not PieceTypeNone, resolves promotion moves to this
	// kind at the root without prompting the user.
	AutoPromotion rules.PieceType
}

// Validate checks the config against the accepted ranges.
func (c Config) Validate() error {
	if c.Depth < MinDepth || c.Depth > MaxDepth {
		return fmt.Errorf("engine: depth %d outside [%d,%d]", c.Depth, MinDepth, MaxDepth)
	}
	switch c.AutoPromotion {
	case rules.PieceTypeNone, rules.PieceTypeKnight, rules.PieceTypeBishop,
		rules.PieceTypeRook, rules.PieceTypeQueen:
	default:
		return fmt.Errorf("engine: %d is not a promotion piece type", c.AutoPromotion)
	}
	return nil
}

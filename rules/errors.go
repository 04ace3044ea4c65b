package rules

import "errors"

var (
	// ErrInvalidSquare reports file/rank coordinates outside the 8x8 board.
	ErrInvalidSquare = errors.New("rules: square off the board")

	// ErrIllegalMove reports a move that is not legal in the current position.
	ErrIllegalMove = errors.New("rules: illegal move")

	// ErrInvalidFEN reports a FEN string that cannot describe a position.
	ErrInvalidFEN = errors.New("rules: invalid FEN")

	// ErrNoMatchingMove reports a coordinate move string that matches no legal move.
	ErrNoMatchingMove = errors.New("rules: no matching legal move")
)

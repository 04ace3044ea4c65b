package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chess-core/engine"
	"chess-core/rules"
)

func parse(t *testing.T, fen string) *rules.Board {
	t.Helper()
	b, err := rules.ParseFEN(fen)
	require.NoError(t, err)
	return b
}

func TestEvaluate_StartPositionIsBalanced(t *testing.T) {
	b := rules.StartingBoard()
	require.Zero(t, engine.Evaluate(b), "symmetric position must evaluate to zero")
}

func TestEvaluate_MaterialSign(t *testing.T) {
	// Starting position without the black queen.
	up := parse(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Positive(t, engine.Evaluate(up), "white up a queen must score positive")

	// Starting position without the white queen.
	down := parse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	require.Negative(t, engine.Evaluate(down), "white down a queen must score negative")
}

func TestEvaluate_MirroredPositionsNegate(t *testing.T) {
	white := parse(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	black := parse(t, "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
	require.Equal(t, engine.Evaluate(white), -engine.Evaluate(black))
}

func TestEvaluate_DoesNotMutate(t *testing.T) {
	b := parse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := b.ToFEN()
	engine.Evaluate(b)
	require.Equal(t, before, b.ToFEN())
}

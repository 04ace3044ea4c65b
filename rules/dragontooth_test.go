package rules_test

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"chess-core/rules"
)

// Cross-checks move generation against an independent bitboard generator.
var differentialFENs = []string{
	rules.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
}

func moveStrings(moves []rules.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func oracleMoveStrings(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth <= 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestLegalMoves_MatchesIndependentGenerator(t *testing.T) {
	for _, fen := range differentialFENs {
		b := mustParse(t, fen)
		oracle := dragontoothmg.ParseFen(fen)

		got := moveStrings(b.LegalMoves())
		want := oracleMoveStrings(&oracle)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: move list disagrees (-oracle +got):\n%s", fen, diff)
		}
	}
}

func TestPerft_MatchesIndependentGenerator(t *testing.T) {
	if testing.Short() {
		t.Skip("differential perft is slow")
	}
	for _, fen := range differentialFENs {
		b := mustParse(t, fen)
		oracle := dragontoothmg.ParseFen(fen)
		for depth := 1; depth <= 3; depth++ {
			got := rules.Perft(b, depth)
			want := oraclePerft(&oracle, depth)
			if got != want {
				t.Errorf("%s depth %d: got %d nodes, oracle %d", fen, depth, got, want)
			}
		}
	}
}

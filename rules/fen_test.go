package rules_test

import (
	"errors"
	"testing"

	"chess-core/rules"
)

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		rules.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"4k3/8/8/8/8/8/8/4K3 b - - 42 99",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip: got %q want %q", got, fen)
		}
		if !b.Validate() {
			t.Errorf("parsed board fails validation: %q", fen)
		}
	}
}

func TestParseFEN_DefaultsClocksWhenOmitted(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - -")
	if b.HalfmoveClock() != 0 {
		t.Fatalf("default halfmove clock: got %d want 0", b.HalfmoveClock())
	}
	if b.FullmoveNumber() != 1 {
		t.Fatalf("default fullmove number: got %d want 1", b.FullmoveNumber())
	}
}

func TestParseFEN_Rejects(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",          // seven ranks
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // nine files
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad ep square
		"rnbqxbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // bad piece letter
		"8/8/8/8/8/8/8/8 w - - 0 1",                                 // no kings
		"4k2k/8/8/8/8/8/8/4K3 w - - 0 1",                            // two black kings
	}
	for _, fen := range bad {
		if _, err := rules.ParseFEN(fen); !errors.Is(err, rules.ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q): got %v want ErrInvalidFEN", fen, err)
		}
	}
}

package rules_test

import (
	"errors"
	"testing"

	"chess-core/rules"
)

func mustParse(t *testing.T, fen string) *rules.Board {
	t.Helper()
	b, err := rules.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func mustMove(t *testing.T, b *rules.Board, coord string) rules.Move {
	t.Helper()
	m, err := rules.ParseCoordinateMove(b, coord)
	if err != nil {
		t.Fatalf("ParseCoordinateMove(%q): %v", coord, err)
	}
	return m
}

func TestApplyUndo_NormalMove(t *testing.T) {
	b := rules.StartingBoard()
	startFEN := b.ToFEN()

	m := mustMove(t, b, "e2e4")
	if err := b.Apply(m); err != nil {
		t.Fatalf("Apply failed for normal move: %v", err)
	}
	if !b.Validate() {
		t.Fatalf("board invalid after Apply")
	}
	if b.Ply() != 1 {
		t.Fatalf("ply after one move: got %d want 1", b.Ply())
	}

	b.Undo()
	if !b.Validate() {
		t.Fatalf("board invalid after Undo")
	}
	if b.ToFEN() != startFEN {
		t.Fatalf("FEN mismatch after undo: got %q want %q", b.ToFEN(), startFEN)
	}
	if b.Ply() != 0 {
		t.Fatalf("ply after undo: got %d want 0", b.Ply())
	}
}

func TestApplyUndo_Capture(t *testing.T) {
	b := mustParse(t, "4k3/7r/8/8/8/8/8/R3K3 w - - 0 1")
	startFEN := b.ToFEN()

	m := mustMove(t, b, "a1a7")
	if err := b.Apply(m); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	m2 := mustMove(t, b, "h7a7")
	if err := b.Apply(m2); err != nil {
		t.Fatalf("Apply capture: %v", err)
	}
	if m2.CapturedPiece() != rules.WhiteRook {
		t.Fatalf("captured piece: got %v want white rook", m2.CapturedPiece())
	}

	b.Undo()
	b.Undo()
	if b.ToFEN() != startFEN {
		t.Fatalf("FEN mismatch after double undo: got %q want %q", b.ToFEN(), startFEN)
	}
}

func TestApplyUndo_EnPassant(t *testing.T) {
	// Position where white can capture en passant on d6
	b := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	startFEN := b.ToFEN()

	m := mustMove(t, b, "e5d6")
	if m.Flag() != rules.FlagEnPassant {
		t.Fatalf("expected en passant flag, got %v", m.Flag())
	}
	if err := b.Apply(m); err != nil {
		t.Fatalf("Apply en passant: %v", err)
	}
	// The captured pawn was behind the destination.
	if p, _ := b.PieceAt(35); p != rules.NoPiece { // d5
		t.Fatalf("expected d5 empty after en passant, got %v", p)
	}
	if p, _ := b.PieceAt(43); p != rules.WhitePawn { // d6
		t.Fatalf("expected white pawn on d6, got %v", p)
	}

	b.Undo()
	if b.ToFEN() != startFEN {
		t.Fatalf("FEN mismatch after en passant undo: got %q want %q", b.ToFEN(), startFEN)
	}
}

func TestApplyUndo_Castling(t *testing.T) {
	// Castle-ready for white: king e1, rook h1, rights K.
	b := mustParse(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	startFEN := b.ToFEN()

	m := mustMove(t, b, "e1g1")
	if m.Flag() != rules.FlagCastleKingside {
		t.Fatalf("expected kingside castle flag, got %v", m.Flag())
	}
	if err := b.Apply(m); err != nil {
		t.Fatalf("Apply castling: %v", err)
	}
	// Rook should be on f1 (5)
	if got, _ := b.PieceAt(5); got != rules.WhiteRook {
		t.Fatalf("expected rook on f1 after castling, got %v", got)
	}
	if got, _ := b.PieceAt(6); got != rules.WhiteKing {
		t.Fatalf("expected king on g1 after castling, got %v", got)
	}
	if b.CastlingRights() != 0 {
		t.Fatalf("expected empty castling rights after castling, got %v", b.CastlingRights())
	}

	b.Undo()
	if b.ToFEN() != startFEN {
		t.Fatalf("FEN mismatch after castling undo: got %q want %q", b.ToFEN(), startFEN)
	}
	if b.KingSquare(rules.White) != 4 {
		t.Fatalf("king square not restored: got %v", b.KingSquare(rules.White))
	}
}

func TestApplyUndo_Promotion(t *testing.T) {
	b := mustParse(t, "8/4P3/8/8/8/8/8/k1K5 w - - 0 1")
	startFEN := b.ToFEN()

	m := mustMove(t, b, "e7e8q")
	if err := b.Apply(m); err != nil {
		t.Fatalf("Apply promotion: %v", err)
	}
	if got, _ := b.PieceAt(60); got != rules.WhiteQueen { // e8
		t.Fatalf("expected queen on e8 after promotion, got %v", got)
	}
	if b.LastMove().PromotionPiece() != rules.WhiteQueen {
		t.Fatalf("move log does not record the promotion piece")
	}

	b.Undo()
	if b.ToFEN() != startFEN {
		t.Fatalf("FEN mismatch after promotion undo: got %q want %q", b.ToFEN(), startFEN)
	}
	if got, _ := b.PieceAt(52); got != rules.WhitePawn { // e7
		t.Fatalf("expected pawn back on e7 after undo, got %v", got)
	}
}

func TestApply_RejectsIllegalMove(t *testing.T) {
	b := rules.StartingBoard()
	before := b.ToFEN()

	// e2e5 matches no movement pattern.
	bogus := rules.NewMove(12, 36, rules.WhitePawn, rules.NoPiece, rules.NoPiece, rules.FlagNone)
	err := b.Apply(bogus)
	if !errors.Is(err, rules.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if b.ToFEN() != before {
		t.Fatalf("board mutated by rejected move")
	}
	if b.Ply() != 0 {
		t.Fatalf("history grew for rejected move")
	}
}

func TestApply_RejectsSelfCheckMove(t *testing.T) {
	// White bishop on e2 is pinned by the rook on e6.
	b := mustParse(t, "4k3/8/4r3/8/8/8/4B3/4K3 w - - 0 1")
	pinned := rules.NewMove(12, 21, rules.WhiteBishop, rules.NoPiece, rules.NoPiece, rules.FlagNone) // e2f3
	if err := b.Apply(pinned); !errors.Is(err, rules.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove for pinned bishop, got %v", err)
	}
}

func TestUndo_EmptyHistoryIsNoop(t *testing.T) {
	b := rules.StartingBoard()
	before := b.ToFEN()
	b.Undo()
	b.Undo()
	if b.ToFEN() != before {
		t.Fatalf("undo on empty history changed the board")
	}
	if !b.Validate() {
		t.Fatalf("board invalid after speculative undo")
	}
}

func TestCastlingRights_RookMoveAndCapture(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	// a1 rook captures a8 rook: both queenside rights go at once.
	m := mustMove(t, b, "a1a8")
	if err := b.Apply(m); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := rules.CastlingWhiteK | rules.CastlingBlackK
	if got := b.CastlingRights(); got != want {
		t.Fatalf("rights after rook trade: got %04b want %04b", got, want)
	}

	b.Undo()
	if got := b.CastlingRights(); got != rules.CastlingWhiteK|rules.CastlingWhiteQ|rules.CastlingBlackK|rules.CastlingBlackQ {
		t.Fatalf("rights not restored by undo: got %04b", got)
	}
}

func TestCastlingRights_KingMoveClearsBoth(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err := b.Apply(mustMove(t, b, "e1e2")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := b.CastlingRights(); got&(rules.CastlingWhiteK|rules.CastlingWhiteQ) != 0 {
		t.Fatalf("white rights survive a king move: %04b", got)
	}
	// Rights stay lost after the king returns.
	if err := b.Apply(mustMove(t, b, "a8b8")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := b.Apply(mustMove(t, b, "e2e1")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := b.CastlingRights(); got&(rules.CastlingWhiteK|rules.CastlingWhiteQ) != 0 {
		t.Fatalf("white rights resurrected: %04b", got)
	}
}

func TestHalfmoveClock(t *testing.T) {
	b := rules.StartingBoard()
	if err := b.Apply(mustMove(t, b, "g1f3")); err != nil {
		t.Fatal(err)
	}
	if b.HalfmoveClock() != 1 {
		t.Fatalf("clock after quiet knight move: got %d want 1", b.HalfmoveClock())
	}
	if err := b.Apply(mustMove(t, b, "d7d5")); err != nil {
		t.Fatal(err)
	}
	if b.HalfmoveClock() != 0 {
		t.Fatalf("clock after pawn move: got %d want 0", b.HalfmoveClock())
	}
	b.Undo()
	if b.HalfmoveClock() != 1 {
		t.Fatalf("clock not restored by undo: got %d want 1", b.HalfmoveClock())
	}
}

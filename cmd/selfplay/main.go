// Command selfplay plays the engine against itself on the console and prints
// the game as SAN movetext, followed by the final status.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"chess-core/engine"
	"chess-core/rules"
)

func main() {
	depth := flag.Int("depth", 3, "search depth in plies for both sides")
	fen := flag.String("fen", rules.FENStartPos, "starting position")
	maxPlies := flag.Int("max-plies", 200, "stop after this many half-moves")
	autoPromote := flag.String("autopromote", "q", "default promotion piece (q, r, b, n, or empty to search all)")
	flag.Parse()

	promo, err := promotionFlag(*autoPromote)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	board, err := rules.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	var movetext strings.Builder
	status := board.Status()
	for ply := 0; ply < *maxPlies && !status.Terminal(); ply++ {
		cfg := engine.Config{
			Depth:         *depth,
			AIColor:       board.SideToMove(),
			AutoPromotion: promo,
		}
		move, err := engine.BestMove(board, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "search error: %v\n", err)
			os.Exit(1)
		}
		san, err := rules.EncodeSAN(board, move)
		if err != nil {
			fmt.Fprintf(os.Stderr, "notation error: %v\n", err)
			os.Exit(1)
		}
		if board.SideToMove() == rules.White {
			fmt.Fprintf(&movetext, "%d. %s", board.FullmoveNumber(), san)
		} else {
			fmt.Fprintf(&movetext, " %s ", san)
		}
		if err := board.Apply(move); err != nil {
			fmt.Fprintf(os.Stderr, "apply error: %v\n", err)
			os.Exit(1)
		}
		status = board.Status()
	}

	fmt.Println(strings.TrimSpace(movetext.String()))
	fmt.Printf("Result after %d plies: %s\n", board.Ply(), status)
	fmt.Printf("Final position: %s\n", board.ToFEN())
}

func promotionFlag(s string) (rules.PieceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return rules.PieceTypeNone, nil
	case "n":
		return rules.PieceTypeKnight, nil
	case "b":
		return rules.PieceTypeBishop, nil
	case "r":
		return rules.PieceTypeRook, nil
	case "q":
		return rules.PieceTypeQueen, nil
	}
	return rules.PieceTypeNone, fmt.Errorf("-autopromote must be one of q, r, b, n or empty, got %q", s)
}

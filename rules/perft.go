package rules

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It simulates on the same board with makeMove/Undo and leaves it unchanged.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.makeMove(m)
		nodes += Perft(b, depth-1)
		b.Undo()
	}
	return nodes
}

// PerftDivide returns the node count below each root move, the standard tool
// for localizing a generator discrepancy to one branch.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	res := make(map[Move]uint64)
	if depth <= 0 {
		return res
	}
	for _, m := range b.LegalMoves() {
		b.makeMove(m)
		res[m] = Perft(b, depth-1)
		b.Undo()
	}
	return res
}

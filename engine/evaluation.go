package engine

import "chess-core/rules"

// Material values in centipawns, indexed by rules.PieceType. The king carries
// no material value; losing it is expressed through mate scores, not material.
var pieceValues = [7]int32{0, 100, 320, 330, 500, 900, 0}

// mobilityWeight is the centipawn value of one extra pseudo-legal move.
const mobilityWeight int32 = 2

// Piece-square tables, midgame-flavored, written from White's point of view
// with rank 8 on the first line. White pieces index with sq^56, Black pieces
// with sq directly.
var pawnPST = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int32{
	0, 0, 5, 10, 10, 5, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 5, 15, 15, 5, 0, 0,
}

var queenPST = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 5, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 5, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPST = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -30, -30, -40, -40, -30, -30, -30,
	-20, -20, -20, -20, -20, -20, -20, -20,
	-10, -10, -10, -10, -10, -10, -10, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	30, 30, 10, 0, 0, 10, 30, 30,
	30, 40, 20, 0, 0, 20, 40, 30,
}

var pstByType = [7]*[64]int32{
	nil, &pawnPST, &knightPST, &bishopPST, &rookPST, &queenPST, &kingPST,
}

// Evaluate scores the position in centipawns from White's perspective:
// material plus piece-square placement plus a small mobility term.
// It never mutates the board.
func Evaluate(b *rules.Board) int32 {
	var score int32
	for sq := rules.Square(0); sq < 64; sq++ {
		p, _ := b.PieceAt(sq)
		if p == rules.NoPiece {
			continue
		}
		pt := p.Type()
		v := pieceValues[pt] + pstByType[pt][pstIndex(sq, p.Color())]
		if p.Color() == rules.White {
			score += v
		} else {
			score -= v
		}
	}
	score += mobilityWeight * int32(b.Mobility(rules.White)-b.Mobility(rules.Black))
	return score
}

// pstIndex maps a board square to the table index for the given side.
// Tables are written rank 8 first, so White mirrors vertically.
func pstIndex(sq rules.Square, c rules.Color) int {
	if c == rules.White {
		return int(sq) ^ 56
	}
	return int(sq)
}

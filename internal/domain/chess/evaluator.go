package chess

import "github.com/iamasit07/arcade/backend/internal/domain"

const (
	MobilityWeight = 5
	CheckBonus     = 50
)

var PieceValues = map[Kind]int{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// Piece-square tables from White's point of view (row 0 is rank 8);
// mirrored vertically for Black.
var pawnTable = [BoardSize][BoardSize]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [BoardSize][BoardSize]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

// Evaluate scores b for player from material, pawn and knight placement,
// legal mobility and check status.
func Evaluate(b Board, player domain.Side) int {
	opp := player.Opponent()
	score := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b[r][c]
			if p.IsEmpty() {
				continue
			}
			v := pieceScore(p, r, c)
			if p.Color == player {
				score += v
			} else {
				score -= v
			}
		}
	}

	score += MobilityWeight * (len(LegalMoves(b, player)) - len(LegalMoves(b, opp)))

	if InCheck(b, opp) {
		score += CheckBonus
	}
	if InCheck(b, player) {
		score -= CheckBonus
	}
	return score
}

func pieceScore(p Piece, row, col int) int {
	if p.Color == Black {
		row = BoardSize - 1 - row
	}
	v := PieceValues[p.Kind]
	switch p.Kind {
	case Pawn:
		v += pawnTable[row][col]
	case Knight:
		v += knightTable[row][col]
	}
	return v
}

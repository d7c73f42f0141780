package checkers

import "github.com/iamasit07/arcade/backend/internal/domain"

const (
	ManValue       = 100
	KingValue      = 200
	MobilityWeight = 4
)

// manTable is written from Black's side (row 0 is Black's home row) and
// rotated a half turn for Red, which keeps dark squares dark. It rewards
// advancement and a guarded back row.
var manTable = [BoardSize][BoardSize]int{
	{0, 6, 0, 6, 0, 6, 0, 6},
	{2, 0, 2, 0, 2, 0, 2, 0},
	{0, 4, 0, 5, 0, 5, 0, 4},
	{6, 0, 8, 0, 8, 0, 8, 0},
	{0, 10, 0, 12, 0, 12, 0, 10},
	{14, 0, 16, 0, 16, 0, 16, 0},
	{0, 20, 0, 22, 0, 22, 0, 20},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// kingTable favours the centre. Like manTable it only has values on dark
// squares and is symmetric under a half turn.
var kingTable = [BoardSize][BoardSize]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 2, 0, 2, 0, 0, 0},
	{0, 2, 0, 4, 0, 4, 0, 0},
	{2, 0, 6, 0, 8, 0, 2, 0},
	{0, 2, 0, 8, 0, 6, 0, 2},
	{0, 0, 4, 0, 4, 0, 2, 0},
	{0, 0, 0, 2, 0, 2, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// Evaluate scores b for player: material, advancement table and mobility.
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

	mobility := len(LegalMoves(b, player)) - len(LegalMoves(b, opp))
	return score + MobilityWeight*mobility
}

func pieceScore(p Piece, row, col int) int {
	if p.Color == Red {
		row, col = BoardSize-1-row, BoardSize-1-col
	}
	if p.Kind == King {
		return KingValue + kingTable[row][col]
	}
	return ManValue + manTable[row][col]
}

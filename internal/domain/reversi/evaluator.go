package reversi

import "github.com/iamasit07/arcade/backend/internal/domain"

const (
	MobilityWeight = 5
	DiscWeight     = 1
)

// CellHeuristics favours corners and punishes the squares next to them.
var CellHeuristics = [BoardSize][BoardSize]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// Evaluate scores b for player: positional table, mobility and disc difference.
func Evaluate(b Board, player domain.Side) int {
	own, opp := CellOf(player), CellOf(player.Opponent())

	positional, discs := 0, 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch b[r][c] {
			case own:
				positional += CellHeuristics[r][c]
				discs++
			case opp:
				positional -= CellHeuristics[r][c]
				discs--
			}
		}
	}

	mobility := len(LegalMoves(b, player)) - len(LegalMoves(b, player.Opponent()))
	return positional + MobilityWeight*mobility + DiscWeight*discs
}

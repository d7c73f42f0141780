package connectfour

import "github.com/iamasit07/arcade/backend/internal/domain"

const (
	TwoInRowWeight      = 10
	ThreeInRowWeight    = 50
	PlayableThreatBonus = 40
)

// positionTable counts how many four-cell lines pass through each square.
var positionTable = [Rows][Columns]int{
	{3, 4, 5, 7, 5, 4, 3},
	{4, 6, 8, 10, 8, 6, 4},
	{5, 8, 11, 13, 11, 8, 5},
	{5, 8, 11, 13, 11, 8, 5},
	{4, 6, 8, 10, 8, 6, 4},
	{3, 4, 5, 7, 5, 4, 3},
}

// Evaluate scores board from player's point of view. There is no material
// term, and mobility cancels out because both sides share the same columns.
func Evaluate(board Board, player domain.Side) int {
	own, opp := CellOf(player), CellOf(player.Opponent())
	return sideScore(board, own, opp) - sideScore(board, opp, own)
}

func sideScore(board Board, own, opp Cell) int {
	score := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if board[row][col] == own {
				score += positionTable[row][col]
			}
		}
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			for _, dir := range directions {
				score += scoreWindow(board, row, col, dir[0], dir[1], own, opp)
			}
		}
	}
	return score
}

// scoreWindow scores the four cells starting at (row, col) in direction (dRow, dCol).
func scoreWindow(board Board, row, col, dRow, dCol int, own, opp Cell) int {
	endRow, endCol := row+dRow*(ToWin-1), col+dCol*(ToWin-1)
	if !isInBounds(endRow, endCol) {
		return 0
	}

	owned, empty := 0, 0
	emptyRow, emptyCol := -1, -1
	for i := 0; i < ToWin; i++ {
		r, c := row+dRow*i, col+dCol*i
		switch board[r][c] {
		case own:
			owned++
		case opp:
			return 0
		default:
			empty++
			emptyRow, emptyCol = r, c
		}
	}

	switch {
	case owned == 3 && empty == 1:
		if isPlayableSpace(board, emptyRow, emptyCol) {
			return ThreeInRowWeight + PlayableThreatBonus
		}
		return ThreeInRowWeight
	case owned == 2 && empty == 2:
		return TwoInRowWeight
	}
	return 0
}

// isPlayableSpace reports whether a disc dropped in col would land on row.
func isPlayableSpace(board Board, row, col int) bool {
	if row == Rows-1 {
		return true
	}
	return board[row+1][col] != Empty
}

func isInBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

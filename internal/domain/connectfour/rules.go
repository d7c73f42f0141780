package connectfour

import (
	"fmt"
	"strconv"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

// Move targets a column; the landing row follows from gravity.
type Move struct {
	Column int
}

func (m Move) Notation() string {
	return strconv.Itoa(m.Column + 1)
}

func ParseMove(s string) (Move, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > Columns {
		return Move{}, fmt.Errorf("%w: %q", domain.ErrInvalidMove, s)
	}
	return Move{Column: n - 1}, nil
}

// columnOrder searches the center first; it improves alpha-beta cut-offs.
var columnOrder = [Columns]int{3, 2, 4, 1, 5, 0, 6}

// LegalMoves returns every non-full column, center first. Once a side has
// four in a row (or the board is full) there are no legal moves.
func LegalMoves(board Board, player domain.Side) []Move {
	if HasFour(board, RedDisc) || HasFour(board, YellowDisc) {
		return nil
	}
	moves := make([]Move, 0, Columns)
	for _, col := range columnOrder {
		if IsValidMove(board, col) {
			moves = append(moves, Move{Column: col})
		}
	}
	return moves
}

var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// HasFour scans the whole board for four consecutive discs of cell.
func HasFour(board Board, cell Cell) bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if board[row][col] != cell {
				continue
			}
			for _, dir := range directions {
				if 1+CountDiskInDirection(board, row, col, dir[0], dir[1], cell) >= ToWin {
					return true
				}
			}
		}
	}
	return false
}

func IsTerminal(board Board, player domain.Side) bool {
	return len(LegalMoves(board, player)) == 0
}

func Winner(board Board, player domain.Side) domain.Outcome {
	switch {
	case HasFour(board, RedDisc):
		return domain.FirstWins
	case HasFour(board, YellowDisc):
		return domain.SecondWins
	case IsBoardFull(board):
		return domain.Draw
	}
	return domain.Undecided
}

type GameState struct {
	Board         Board
	CurrentPlayer domain.Side
	Terminal      bool
	Winner        domain.Outcome
	MoveCount     int
}

func NewGame() GameState {
	return GameState{
		Board:         NewBoard(),
		CurrentPlayer: Red,
		Winner:        domain.Undecided,
	}
}

// Play validates move for the side to move and returns the next state.
func (g GameState) Play(move Move) (GameState, error) {
	if g.Terminal {
		return g, domain.ErrGameOver
	}
	if !IsValidMove(g.Board, move.Column) {
		return g, domain.ErrInvalidMove
	}

	next := g
	next.Board = ApplyMove(g.Board, move, g.CurrentPlayer)
	next.MoveCount++
	next.CurrentPlayer = g.CurrentPlayer.Opponent()
	next.Terminal = IsTerminal(next.Board, next.CurrentPlayer)
	next.Winner = Winner(next.Board, next.CurrentPlayer)
	return next, nil
}

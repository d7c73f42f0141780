package connectfour

import (
	"strings"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

const (
	Red    = domain.First
	Yellow = domain.Second
)

// Cell is the content of one board square
type Cell int8

const (
	Empty      Cell = 0
	RedDisc    Cell = 1
	YellowDisc Cell = 2
)

func CellOf(side domain.Side) Cell {
	return Cell(side)
}

func (c Cell) Side() domain.Side {
	return domain.Side(c)
}

func (c Cell) String() string {
	switch c {
	case RedDisc:
		return "R"
	case YellowDisc:
		return "Y"
	}
	return "."
}

// Board is indexed [row][column]; row 0 is the top row.
type Board [Rows][Columns]Cell

func NewBoard() Board {
	return Board{}
}

func IsValidMove(board Board, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	return board[0][column] == Empty
}

// LandingRow returns the lowest empty row of column, or -1 when the column is full.
func LandingRow(board Board, column int) int {
	if column < 0 || column >= Columns {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			return row
		}
	}
	return -1
}

// ApplyMove drops a disc of player into the move's column and returns the new board.
// The move must come from LegalMoves; dropping into a full column panics.
func ApplyMove(board Board, move Move, player domain.Side) Board {
	row := LandingRow(board, move.Column)
	if row < 0 {
		panic(domain.ErrColumnFull)
	}
	board[row][move.Column] = CellOf(player)
	return board
}

func IsBoardFull(board Board) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}
	return true
}

// CountDiskInDirection counts consecutive discs of cell starting one step away from (row, col).
func CountDiskInDirection(board Board, row, col, deltaRow, deltaCol int, cell Cell) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == cell {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func Cells(board Board) [][]string {
	out := make([][]string, Rows)
	for r := range board {
		out[r] = make([]string, Columns)
		for c := range board[r] {
			out[r][c] = board[r][c].String()
		}
	}
	return out
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			sb.WriteString(b[r][c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package reversi

import (
	"strings"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

const BoardSize = 8

const (
	Black = domain.First
	White = domain.Second
)

type Cell int8

const (
	Empty     Cell = 0
	BlackDisc Cell = 1
	WhiteDisc Cell = 2
)

func CellOf(side domain.Side) Cell {
	return Cell(side)
}

func (c Cell) Side() domain.Side {
	return domain.Side(c)
}

func (c Cell) String() string {
	switch c {
	case BlackDisc:
		return "B"
	case WhiteDisc:
		return "W"
	}
	return "."
}

type Board [BoardSize][BoardSize]Cell

// NewBoard returns the four-disc starting position
func NewBoard() Board {
	var b Board
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = WhiteDisc, WhiteDisc
	b[mid-1][mid], b[mid][mid-1] = BlackDisc, BlackDisc
	return b
}

func inBounds(p domain.Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (b Board) At(p domain.Position) Cell {
	return b[p.Row][p.Col]
}

// Count returns the number of black and white discs on the board.
func Count(b Board) (black, white int) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch b[r][c] {
			case BlackDisc:
				black++
			case WhiteDisc:
				white++
			}
		}
	}
	return black, white
}

func Cells(b Board) [][]string {
	out := make([][]string, BoardSize)
	for r := range b {
		out[r] = make([]string, BoardSize)
		for c := range b[r] {
			out[r][c] = b[r][c].String()
		}
	}
	return out
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sb.WriteString(b[r][c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package checkers

import (
	"strings"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

const BoardSize = 8

// Black moves first, starts on rows 0-2 and moves toward row 7.
const (
	Black = domain.First
	Red   = domain.Second
)

type Kind int8

const (
	Man Kind = iota
	King
)

// Piece is the content of a square; the zero value is an empty square.
type Piece struct {
	Color domain.Side
	Kind  Kind
}

func (p Piece) IsEmpty() bool {
	return p.Color == domain.NoSide
}

func (p Piece) String() string {
	var s string
	switch p.Color {
	case Black:
		s = "b"
	case Red:
		s = "r"
	default:
		return "."
	}
	if p.Kind == King {
		return strings.ToUpper(s)
	}
	return s
}

type Board [BoardSize][BoardSize]Piece

// NewBoard places twelve men per side on the dark squares.
func NewBoard() Board {
	var b Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if (r+c)%2 == 0 {
				continue
			}
			switch {
			case r < 3:
				b[r][c] = Piece{Color: Black, Kind: Man}
			case r > 4:
				b[r][c] = Piece{Color: Red, Kind: Man}
			}
		}
	}
	return b
}

func inBounds(p domain.Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (b Board) At(p domain.Position) Piece {
	return b[p.Row][p.Col]
}

// forward is the row direction a man of color advances in.
func forward(color domain.Side) int {
	if color == Black {
		return 1
	}
	return -1
}

// promotionRow is the far row where a man of color becomes a king.
func promotionRow(color domain.Side) int {
	if color == Black {
		return BoardSize - 1
	}
	return 0
}

// Count returns the number of men and kings color has on the board.
func Count(b Board, color domain.Side) (men, kings int) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b[r][c]
			if p.Color != color {
				continue
			}
			if p.Kind == King {
				kings++
			} else {
				men++
			}
		}
	}
	return men, kings
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

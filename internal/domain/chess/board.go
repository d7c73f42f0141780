package chess

import (
	"fmt"
	"strings"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

const (
	BoardSize   = 8
	StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
)

// White moves first and starts on rows 6-7; row 0 is rank 8.
const (
	White = domain.First
	Black = domain.Second
)

type Kind int8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = map[Kind]byte{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// Piece is the content of a square; the zero value is an empty square.
type Piece struct {
	Color domain.Side
	Kind  Kind
}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// String uses FEN letters: upper case for white, "." for an empty square.
func (p Piece) String() string {
	ch, ok := kindLetters[p.Kind]
	if !ok {
		return "."
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return string(ch)
}

func pieceFromLetter(ch rune) (Piece, bool) {
	color := Black
	lower := ch
	if ch >= 'A' && ch <= 'Z' {
		color = White
		lower = ch + ('a' - 'A')
	}
	for kind, letter := range kindLetters {
		if rune(letter) == lower {
			return Piece{Color: color, Kind: kind}, true
		}
	}
	return Piece{}, false
}

type Board [BoardSize][BoardSize]Piece

func NewBoard() Board {
	b, _, err := ParseFEN(StartingFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseFEN reads the placement and side-to-move fields of a FEN string.
// Castling, en passant and the move counters are accepted but ignored.
func ParseFEN(fen string) (Board, domain.Side, error) {
	var b Board
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return b, domain.NoSide, fmt.Errorf("invalid FEN: expected at least 2 parts, got %d", len(parts))
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != BoardSize {
		return b, domain.NoSide, fmt.Errorf("invalid FEN: expected 8 ranks")
	}
	for r, rank := range ranks {
		file := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= BoardSize {
				return b, domain.NoSide, fmt.Errorf("invalid FEN: too many pieces in rank %d", BoardSize-r)
			}
			p, ok := pieceFromLetter(ch)
			if !ok {
				return b, domain.NoSide, fmt.Errorf("invalid FEN: unknown piece %q", ch)
			}
			b[r][file] = p
			file++
		}
		if file != BoardSize {
			return b, domain.NoSide, fmt.Errorf("invalid FEN: rank %d has %d files", BoardSize-r, file)
		}
	}

	switch parts[1] {
	case "w":
		return b, White, nil
	case "b":
		return b, Black, nil
	}
	return b, domain.NoSide, fmt.Errorf("invalid FEN: turn must be 'w' or 'b'")
}

// FEN renders b with toMove to play. Castling and en passant are always "-".
func FEN(b Board, toMove domain.Side) string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		empty := 0
		for c := 0; c < BoardSize; c++ {
			p := b[r][c]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if r < BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	turn := "w"
	if toMove == Black {
		turn = "b"
	}
	return sb.String() + " " + turn + " - - 0 1"
}

func inBounds(p domain.Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (b Board) At(p domain.Position) Piece {
	return b[p.Row][p.Col]
}

// FindKing returns the square of color's king.
func FindKing(b Board, color domain.Side) (domain.Position, bool) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == (Piece{Color: color, Kind: King}) {
				return domain.Position{Row: r, Col: c}, true
			}
		}
	}
	return domain.Position{}, false
}

// Material sums the piece values color has on the board, king excluded.
func Material(b Board, color domain.Side) int {
	total := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b[r][c]
			if p.Color == color && p.Kind != King {
				total += PieceValues[p.Kind]
			}
		}
	}
	return total
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

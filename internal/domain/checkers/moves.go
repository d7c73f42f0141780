package checkers

import (
	"slices"
	"strings"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

// Move is a single step or a complete jump chain. Path holds every landing
// square of the move and always ends with To; Captures lists the jumped pieces
// in the order they were taken.
type Move struct {
	From     domain.Position
	To       domain.Position
	Path     []domain.Position
	Captures []domain.Position
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

// Notation renders "c3-d4" for a step and "c3xe5xg7" for a jump chain.
func (m Move) Notation() string {
	if !m.IsCapture() {
		return domain.SquareName(m.From) + "-" + domain.SquareName(m.To)
	}
	var sb strings.Builder
	sb.WriteString(domain.SquareName(m.From))
	for _, p := range m.Path {
		sb.WriteByte('x')
		sb.WriteString(domain.SquareName(p))
	}
	return sb.String()
}

var kingDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// directionsFor lists the diagonals a piece may travel: men only forward.
func directionsFor(p Piece) [][2]int {
	if p.Kind == King {
		return kingDirs
	}
	f := forward(p.Color)
	return [][2]int{{f, -1}, {f, 1}}
}

// LegalMoves enumerates the moves of player. Capturing is mandatory: when any
// jump exists only jump chains are returned.
func LegalMoves(b Board, player domain.Side) []Move {
	var jumps []Move
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c].Color == player {
				jumps = append(jumps, findJumps(b, domain.Position{Row: r, Col: c})...)
			}
		}
	}
	if len(jumps) > 0 {
		return jumps
	}

	var steps []Move
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			piece := b[r][c]
			if piece.Color != player {
				continue
			}
			from := domain.Position{Row: r, Col: c}
			for _, dir := range directionsFor(piece) {
				to := from.Add(dir[0], dir[1])
				if inBounds(to) && b.At(to).IsEmpty() {
					steps = append(steps, Move{From: from, To: to, Path: []domain.Position{to}})
				}
			}
		}
	}
	return steps
}

// HasCapture reports whether player is forced to jump this turn.
func HasCapture(b Board, player domain.Side) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c].Color == player && len(findJumps(b, domain.Position{Row: r, Col: c})) > 0 {
				return true
			}
		}
	}
	return false
}

// findJumps returns every maximal jump chain of the piece on from. The piece is
// lifted off its square for the duration of the chain; jumped pieces stay on the
// board until the move is applied, so they can neither be jumped twice nor
// landed on.
func findJumps(b Board, from domain.Position) []Move {
	piece := b.At(from)
	board := b
	board[from.Row][from.Col] = Piece{}
	dirs := directionsFor(piece)

	var moves []Move
	var walk func(at domain.Position, path, captured []domain.Position)
	walk = func(at domain.Position, path, captured []domain.Position) {
		extended := false
		for _, dir := range dirs {
			over := at.Add(dir[0], dir[1])
			land := at.Add(2*dir[0], 2*dir[1])
			if !inBounds(land) {
				continue
			}
			victim := board.At(over)
			if victim.IsEmpty() || victim.Color == piece.Color || slices.Contains(captured, over) {
				continue
			}
			if !board.At(land).IsEmpty() {
				continue
			}
			extended = true
			walk(land, append(slices.Clone(path), land), append(slices.Clone(captured), over))
		}
		if !extended && len(captured) > 0 {
			moves = append(moves, Move{From: from, To: at, Path: path, Captures: captured})
		}
	}
	walk(from, nil, nil)
	return moves
}

// ApplyMove moves the piece, removes every captured piece and crowns a man
// that ends on the far row. The move must come from LegalMoves.
func ApplyMove(b Board, move Move, player domain.Side) Board {
	piece := b.At(move.From)
	if piece.Color != player {
		panic(domain.ErrInvalidMove)
	}
	b[move.From.Row][move.From.Col] = Piece{}
	for _, c := range move.Captures {
		b[c.Row][c.Col] = Piece{}
	}
	if piece.Kind == Man && move.To.Row == promotionRow(player) {
		piece.Kind = King
	}
	b[move.To.Row][move.To.Col] = piece
	return b
}

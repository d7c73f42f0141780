package reversi

import "github.com/iamasit07/arcade/backend/internal/domain"

// Move places a disc on To and turns every position in Flips to the mover's colour.
type Move struct {
	To    domain.Position
	Flips []domain.Position
}

func (m Move) Notation() string {
	return domain.SquareName(m.To)
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Flips returns the opponent discs that a disc of player placed on pos would flip.
// Each direction contributes its run only when the run is closed by a disc of player.
func Flips(b Board, pos domain.Position, player domain.Side) []domain.Position {
	if !inBounds(pos) || b.At(pos) != Empty {
		return nil
	}
	own, opp := CellOf(player), CellOf(player.Opponent())

	var total []domain.Position
	for _, dir := range directions {
		var run []domain.Position
		p := pos.Add(dir[0], dir[1])
		for inBounds(p) && b.At(p) == opp {
			run = append(run, p)
			p = p.Add(dir[0], dir[1])
		}
		if len(run) > 0 && inBounds(p) && b.At(p) == own {
			total = append(total, run...)
		}
	}
	return total
}

// LegalMoves lists every empty square that flips at least one disc, in row-major order.
func LegalMoves(b Board, player domain.Side) []Move {
	var moves []Move
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			pos := domain.Position{Row: r, Col: c}
			if flips := Flips(b, pos, player); len(flips) > 0 {
				moves = append(moves, Move{To: pos, Flips: flips})
			}
		}
	}
	return moves
}

func CanMove(b Board, player domain.Side) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == Empty && len(Flips(b, domain.Position{Row: r, Col: c}, player)) > 0 {
				return true
			}
		}
	}
	return false
}

// ApplyMove places the disc and flips the move's runs. The move must come
// from LegalMoves; an occupied target or a move with no flips panics.
func ApplyMove(b Board, move Move, player domain.Side) Board {
	if !inBounds(move.To) || b.At(move.To) != Empty || len(move.Flips) == 0 {
		panic(domain.ErrInvalidMove)
	}
	own := CellOf(player)
	b[move.To.Row][move.To.Col] = own
	for _, f := range move.Flips {
		b[f.Row][f.Col] = own
	}
	return b
}

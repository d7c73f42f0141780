package checkers

import (
	"slices"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

func IsTerminal(b Board, player domain.Side) bool {
	return len(LegalMoves(b, player)) == 0
}

// Winner: a side with no legal move on its turn loses.
func Winner(b Board, player domain.Side) domain.Outcome {
	if !IsTerminal(b, player) {
		return domain.Undecided
	}
	return domain.WinFor(player.Opponent())
}

type GameState struct {
	Board         Board
	CurrentPlayer domain.Side
	Terminal      bool
	Winner        domain.Outcome
	BlackMen      int
	BlackKings    int
	RedMen        int
	RedKings      int
	MustCapture   bool
	MoveCount     int
}

func NewGame() GameState {
	g := GameState{
		Board:         NewBoard(),
		CurrentPlayer: Black,
		Winner:        domain.Undecided,
	}
	g.refresh()
	return g
}

func (g *GameState) refresh() {
	g.BlackMen, g.BlackKings = Count(g.Board, Black)
	g.RedMen, g.RedKings = Count(g.Board, Red)
	g.MustCapture = HasCapture(g.Board, g.CurrentPlayer)
	g.Terminal = IsTerminal(g.Board, g.CurrentPlayer)
	g.Winner = Winner(g.Board, g.CurrentPlayer)
}

// Resolve finds the legal move that matches from/to and, when given, the jump path.
func Resolve(b Board, player domain.Side, move Move) (Move, error) {
	var found []Move
	for _, m := range LegalMoves(b, player) {
		if m.From != move.From || m.To != move.To {
			continue
		}
		if len(move.Path) > 0 && !slices.Equal(m.Path, move.Path) {
			continue
		}
		found = append(found, m)
	}
	if len(found) != 1 {
		return Move{}, domain.ErrInvalidMove
	}
	return found[0], nil
}

func (g GameState) Play(move Move) (GameState, error) {
	if g.Terminal {
		return g, domain.ErrGameOver
	}
	legal, err := Resolve(g.Board, g.CurrentPlayer, move)
	if err != nil {
		return g, err
	}

	next := g
	next.Board = ApplyMove(g.Board, legal, g.CurrentPlayer)
	next.CurrentPlayer = g.CurrentPlayer.Opponent()
	next.MoveCount++
	next.refresh()
	return next, nil
}

package chess

import "github.com/iamasit07/arcade/backend/internal/domain"

func IsTerminal(b Board, player domain.Side) bool {
	return len(LegalMoves(b, player)) == 0
}

// Winner: checkmate loses, stalemate is a draw.
func Winner(b Board, player domain.Side) domain.Outcome {
	if !IsTerminal(b, player) {
		return domain.Undecided
	}
	if InCheck(b, player) {
		return domain.WinFor(player.Opponent())
	}
	return domain.Draw
}

type GameState struct {
	Board         Board
	CurrentPlayer domain.Side
	Terminal      bool
	Winner        domain.Outcome
	InCheck       bool
	WhiteMaterial int
	BlackMaterial int
	MoveCount     int
}

func NewGame() GameState {
	return NewGameFrom(NewBoard(), White)
}

// NewGameFrom starts a game from an arbitrary position.
func NewGameFrom(b Board, toMove domain.Side) GameState {
	g := GameState{Board: b, CurrentPlayer: toMove}
	g.refresh()
	return g
}

func (g *GameState) refresh() {
	g.InCheck = InCheck(g.Board, g.CurrentPlayer)
	g.WhiteMaterial = Material(g.Board, White)
	g.BlackMaterial = Material(g.Board, Black)
	g.Terminal = IsTerminal(g.Board, g.CurrentPlayer)
	g.Winner = Winner(g.Board, g.CurrentPlayer)
}

// Resolve finds the legal move from -> to for player.
func Resolve(b Board, player domain.Side, from, to domain.Position) (Move, error) {
	for _, m := range LegalMoves(b, player) {
		if m.From == from && m.To == to {
			return m, nil
		}
	}
	return Move{}, domain.ErrInvalidMove
}

func (g GameState) Play(move Move) (GameState, error) {
	if g.Terminal {
		return g, domain.ErrGameOver
	}
	legal, err := Resolve(g.Board, g.CurrentPlayer, move.From, move.To)
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

package reversi

import "github.com/iamasit07/arcade/backend/internal/domain"

// IsTerminal is true only when neither side has a legal move.
func IsTerminal(b Board, player domain.Side) bool {
	return !CanMove(b, player) && !CanMove(b, player.Opponent())
}

// Winner decides a finished game by disc count.
func Winner(b Board, player domain.Side) domain.Outcome {
	if !IsTerminal(b, player) {
		return domain.Undecided
	}
	black, white := Count(b)
	switch {
	case black > white:
		return domain.WinFor(Black)
	case white > black:
		return domain.WinFor(White)
	}
	return domain.Draw
}

// NextPlayer returns who moves after mover. A side without a legal move is
// skipped while the other side can still play.
func NextPlayer(b Board, mover domain.Side) (next domain.Side, passed bool) {
	opp := mover.Opponent()
	if CanMove(b, opp) || !CanMove(b, mover) {
		return opp, false
	}
	return mover, true
}

type GameState struct {
	Board         Board
	CurrentPlayer domain.Side
	Terminal      bool
	Winner        domain.Outcome
	BlackCount    int
	WhiteCount    int
	// Passed is set when the previous mover moves again because the opponent had no move.
	Passed    bool
	MoveCount int
}

func NewGame() GameState {
	b := NewBoard()
	black, white := Count(b)
	return GameState{
		Board:         b,
		CurrentPlayer: Black,
		Winner:        domain.Undecided,
		BlackCount:    black,
		WhiteCount:    white,
	}
}

func (g GameState) Play(move Move) (GameState, error) {
	if g.Terminal {
		return g, domain.ErrGameOver
	}
	flips := Flips(g.Board, move.To, g.CurrentPlayer)
	if len(flips) == 0 {
		return g, domain.ErrInvalidMove
	}
	move.Flips = flips

	next := g
	next.Board = ApplyMove(g.Board, move, g.CurrentPlayer)
	next.MoveCount++
	next.CurrentPlayer, next.Passed = NextPlayer(next.Board, g.CurrentPlayer)
	next.Terminal = IsTerminal(next.Board, next.CurrentPlayer)
	next.Winner = Winner(next.Board, next.CurrentPlayer)
	next.BlackCount, next.WhiteCount = Count(next.Board)
	return next, nil
}

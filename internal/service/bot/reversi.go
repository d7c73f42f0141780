package bot

import (
	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/domain/reversi"
)

type reversiRules struct{}

var Reversi Rules[reversi.Board, reversi.Move] = reversiRules{}

func (reversiRules) Kind() domain.GameKind { return domain.Reversi }

func (reversiRules) LegalMoves(b reversi.Board, player domain.Side) []reversi.Move {
	return reversi.LegalMoves(b, player)
}

func (reversiRules) ApplyMove(b reversi.Board, m reversi.Move, player domain.Side) reversi.Board {
	return reversi.ApplyMove(b, m, player)
}

func (reversiRules) Evaluate(b reversi.Board, player domain.Side) int {
	return reversi.Evaluate(b, player)
}

// NoMoveResult passes the turn while the opponent can still play.
func (reversiRules) NoMoveResult(b reversi.Board, player domain.Side) (int, bool) {
	if !reversi.IsTerminal(b, player) {
		return 0, false
	}
	return resultFor(reversi.Winner(b, player), player), true
}

// Preferred keeps the moves flipping the most discs.
func (reversiRules) Preferred(_ reversi.Board, _ domain.Side, moves []reversi.Move) []reversi.Move {
	most := 0
	var best []reversi.Move
	for _, m := range moves {
		switch n := len(m.Flips); {
		case n > most:
			most = n
			best = append(best[:0], m)
		case n == most:
			best = append(best, m)
		}
	}
	return best
}

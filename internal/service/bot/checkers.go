package bot

import (
	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/domain/checkers"
)

type checkersRules struct{}

var Checkers Rules[checkers.Board, checkers.Move] = checkersRules{}

func (checkersRules) Kind() domain.GameKind { return domain.Checkers }

func (checkersRules) LegalMoves(b checkers.Board, player domain.Side) []checkers.Move {
	return checkers.LegalMoves(b, player)
}

func (checkersRules) ApplyMove(b checkers.Board, m checkers.Move, player domain.Side) checkers.Board {
	return checkers.ApplyMove(b, m, player)
}

func (checkersRules) Evaluate(b checkers.Board, player domain.Side) int {
	return checkers.Evaluate(b, player)
}

// NoMoveResult: a side that cannot move has lost.
func (checkersRules) NoMoveResult(checkers.Board, domain.Side) (int, bool) {
	return -1, true
}

func (checkersRules) Preferred(_ checkers.Board, _ domain.Side, moves []checkers.Move) []checkers.Move {
	var captures []checkers.Move
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}

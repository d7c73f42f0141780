package bot

import (
	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/domain/chess"
)

type chessRules struct{}

var Chess Rules[chess.Board, chess.Move] = chessRules{}

func (chessRules) Kind() domain.GameKind { return domain.Chess }

func (chessRules) LegalMoves(b chess.Board, player domain.Side) []chess.Move {
	return chess.LegalMoves(b, player)
}

func (chessRules) ApplyMove(b chess.Board, m chess.Move, player domain.Side) chess.Board {
	return chess.ApplyMove(b, m, player)
}

func (chessRules) Evaluate(b chess.Board, player domain.Side) int {
	return chess.Evaluate(b, player)
}

// NoMoveResult: checkmate loses, stalemate draws.
func (chessRules) NoMoveResult(b chess.Board, player domain.Side) (int, bool) {
	if chess.InCheck(b, player) {
		return -1, true
	}
	return 0, true
}

func (chessRules) Preferred(_ chess.Board, _ domain.Side, moves []chess.Move) []chess.Move {
	var captures []chess.Move
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}

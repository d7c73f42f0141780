package bot

import (
	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/domain/connectfour"
)

type connectFourRules struct{}

var ConnectFour Rules[connectfour.Board, connectfour.Move] = connectFourRules{}

func (connectFourRules) Kind() domain.GameKind { return domain.ConnectFour }

func (connectFourRules) LegalMoves(b connectfour.Board, player domain.Side) []connectfour.Move {
	return connectfour.LegalMoves(b, player)
}

func (connectFourRules) ApplyMove(b connectfour.Board, m connectfour.Move, player domain.Side) connectfour.Board {
	return connectfour.ApplyMove(b, m, player)
}

func (connectFourRules) Evaluate(b connectfour.Board, player domain.Side) int {
	return connectfour.Evaluate(b, player)
}

func (connectFourRules) NoMoveResult(b connectfour.Board, player domain.Side) (int, bool) {
	return resultFor(connectfour.Winner(b, player), player), true
}

// Preferred returns the columns that win at once, or failing that the columns
// that block an immediate win of the opponent.
func (connectFourRules) Preferred(b connectfour.Board, player domain.Side, moves []connectfour.Move) []connectfour.Move {
	var wins, blocks []connectfour.Move
	opponent := player.Opponent()
	for _, m := range moves {
		if connectfour.HasFour(connectfour.ApplyMove(b, m, player), connectfour.CellOf(player)) {
			wins = append(wins, m)
		}
		if connectfour.HasFour(connectfour.ApplyMove(b, m, opponent), connectfour.CellOf(opponent)) {
			blocks = append(blocks, m)
		}
	}
	if len(wins) > 0 {
		return wins
	}
	return blocks
}

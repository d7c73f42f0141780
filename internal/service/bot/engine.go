package bot

import (
	"math/rand"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

// Rules is everything the search needs to know about a game. B is the board
// value type and must be copied on assignment; M is the move type.
type Rules[B, M any] interface {
	Kind() domain.GameKind
	LegalMoves(board B, player domain.Side) []M
	ApplyMove(board B, move M, player domain.Side) B
	// Evaluate scores board from player's point of view.
	Evaluate(board B, player domain.Side) int
	// NoMoveResult is consulted when player has no legal move. When terminal
	// is false the turn passes to the opponent on the same board; otherwise
	// result is +1, 0 or -1 for a win, draw or loss of player.
	NoMoveResult(board B, player domain.Side) (result int, terminal bool)
	// Preferred narrows moves to the ones an easy opponent reaches for first.
	Preferred(board B, player domain.Side, moves []M) []M
}

// ChooseMove selects the move player makes at the given difficulty. ok is
// false when player has no legal move. A nil rng uses the global source.
func ChooseMove[B, M any](rules Rules[B, M], board B, player domain.Side, difficulty domain.Difficulty, rng *rand.Rand) (M, bool) {
	switch difficulty {
	case domain.Easy:
		return PickEasy(rules, board, player, rng)
	case domain.Hard:
		return Search(rules, board, player, SearchDepth(rules.Kind(), domain.Hard))
	default:
		return Search(rules, board, player, SearchDepth(rules.Kind(), domain.Medium))
	}
}

// resultFor converts a decided outcome to +1, 0 or -1 from player's side.
func resultFor(o domain.Outcome, player domain.Side) int {
	winner, ok := o.Winner()
	switch {
	case !ok:
		return 0
	case winner == player:
		return 1
	default:
		return -1
	}
}

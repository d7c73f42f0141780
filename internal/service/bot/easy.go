package bot

import (
	"math/rand"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

// PickEasy skips the search and picks uniformly among the preferred moves,
// or among all legal moves when none is preferred.
func PickEasy[B, M any](rules Rules[B, M], board B, player domain.Side, rng *rand.Rand) (M, bool) {
	var none M
	moves := rules.LegalMoves(board, player)
	if len(moves) == 0 {
		return none, false
	}

	pool := rules.Preferred(board, player, moves)
	if len(pool) == 0 {
		pool = moves
	}
	return pool[intn(rng, len(pool))], true
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}

package bot

import (
	"math"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

// WinScore outranks any heuristic evaluation. Terminal scores are shifted by
// the ply they are found at so quicker wins and slower losses score better.
const WinScore = 1000000

// Search runs a depth-limited minimax with alpha-beta pruning and returns the
// best move for player. Moves are tried in generation order and ties keep the
// first one. ok is false when player has no legal move.
func Search[B, M any](rules Rules[B, M], board B, player domain.Side, depth int) (M, bool) {
	var best M
	moves := rules.LegalMoves(board, player)
	if len(moves) == 0 {
		return best, false
	}
	if depth < 1 {
		depth = 1
	}

	bestScore := math.MinInt
	alpha := math.MinInt
	beta := math.MaxInt
	opponent := player.Opponent()

	for _, m := range moves {
		next := rules.ApplyMove(board, m, player)
		score := minimax(rules, next, opponent, player, depth-1, 1, alpha, beta)
		if score > bestScore {
			bestScore = score
			best = m
		}
		alpha = max(alpha, bestScore)
	}
	return best, true
}

// minimax scores board for maximizer with toMove to play. Terminal positions
// are detected before the depth cut-off.
func minimax[B, M any](rules Rules[B, M], board B, toMove, maximizer domain.Side, depth, ply, alpha, beta int) int {
	moves := rules.LegalMoves(board, toMove)
	if len(moves) == 0 {
		result, terminal := rules.NoMoveResult(board, toMove)
		if terminal {
			if toMove != maximizer {
				result = -result
			}
			return terminalScore(result, ply)
		}
		// pass: same board, other side, no depth spent
		return minimax(rules, board, toMove.Opponent(), maximizer, depth, ply, alpha, beta)
	}

	if depth == 0 {
		return rules.Evaluate(board, maximizer)
	}

	next := toMove.Opponent()
	if toMove == maximizer {
		maxEval := math.MinInt
		for _, m := range moves {
			eval := minimax(rules, rules.ApplyMove(board, m, toMove), next, maximizer, depth-1, ply+1, alpha, beta)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, m := range moves {
		eval := minimax(rules, rules.ApplyMove(board, m, toMove), next, maximizer, depth-1, ply+1, alpha, beta)
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}

func terminalScore(result, ply int) int {
	switch {
	case result > 0:
		return WinScore - ply
	case result < 0:
		return -WinScore + ply
	}
	return 0
}

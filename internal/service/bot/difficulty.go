package bot

import "github.com/iamasit07/arcade/backend/internal/domain"

const DefaultDepth = 3

// depths are per game because branching factors differ a lot: chess and
// checkers search shallower than connect four.
var depths = map[domain.GameKind]map[domain.Difficulty]int{
	domain.Checkers:    {domain.Easy: 1, domain.Medium: 3, domain.Hard: 5},
	domain.Reversi:     {domain.Easy: 1, domain.Medium: 3, domain.Hard: 5},
	domain.ConnectFour: {domain.Easy: 1, domain.Medium: 4, domain.Hard: 7},
	domain.Chess:       {domain.Easy: 1, domain.Medium: 2, domain.Hard: 3},
}

// SearchDepth returns the search depth for kind at difficulty.
func SearchDepth(kind domain.GameKind, difficulty domain.Difficulty) int {
	if d, ok := depths[kind][difficulty]; ok {
		return d
	}
	if d, ok := depths[kind][domain.Medium]; ok {
		return d
	}
	return DefaultDepth
}

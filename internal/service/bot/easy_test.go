package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/domain/checkers"
	"github.com/iamasit07/arcade/backend/internal/domain/chess"
	"github.com/iamasit07/arcade/backend/internal/domain/connectfour"
	"github.com/iamasit07/arcade/backend/internal/domain/reversi"
)

func TestEasyTakesWinThenBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	win := connectFourBoard(
		[][2]int{{5, 3}, {4, 3}, {3, 3}},
		[][2]int{{5, 0}, {5, 1}, {5, 6}},
	)
	block := connectFourBoard(
		[][2]int{{5, 3}, {4, 3}, {3, 3}},
		[][2]int{{5, 0}, {5, 1}},
	)
	for i := 0; i < 50; i++ {
		m, ok := ChooseMove(ConnectFour, win, connectfour.Red, domain.Easy, rng)
		require.True(t, ok)
		require.Equal(t, 3, m.Column)

		m, ok = ChooseMove(ConnectFour, block, connectfour.Yellow, domain.Easy, rng)
		require.True(t, ok)
		require.Equal(t, 3, m.Column)
	}
}

func TestEasyFallsBackToAnyLegalMove(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		m, ok := PickEasy(ConnectFour, connectfour.NewBoard(), connectfour.Red, rng)
		require.True(t, ok)
		seen[m.Column] = true
	}
	require.Len(t, seen, connectfour.Columns)
}

func TestEasyPrefersCaptures(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	b, toMove, err := chess.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		m, ok := ChooseMove(Chess, b, toMove, domain.Easy, rng)
		require.True(t, ok)
		require.Equal(t, "e4d5", m.Notation())
	}

	var cb checkers.Board
	cb[2][3] = checkers.Piece{Color: checkers.Black}
	cb[3][4] = checkers.Piece{Color: checkers.Red}
	cb[6][1] = checkers.Piece{Color: checkers.Red}
	m, ok := ChooseMove(Checkers, cb, checkers.Black, domain.Easy, rng)
	require.True(t, ok)
	require.Equal(t, []domain.Position{{Row: 3, Col: 4}}, m.Captures)
}

func TestEasyReversiMaximisesFlips(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	boards, sides := randomPositions(Reversi, reversi.NewBoard(), 20, 5)
	for i, b := range boards {
		most := 0
		for _, m := range reversi.LegalMoves(b, sides[i]) {
			most = max(most, len(m.Flips))
		}
		m, ok := PickEasy(Reversi, b, sides[i], rng)
		require.True(t, ok)
		require.Len(t, m.Flips, most)
	}
}

func TestChooseMoveAlwaysLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium} {
		m, ok := ChooseMove(Checkers, checkers.NewBoard(), checkers.Black, d, rng)
		require.True(t, ok)
		require.Contains(t, checkers.LegalMoves(checkers.NewBoard(), checkers.Black), m)

		r, ok := ChooseMove(Reversi, reversi.NewBoard(), reversi.Black, d, rng)
		require.True(t, ok)
		require.Contains(t, reversi.LegalMoves(reversi.NewBoard(), reversi.Black), r)

		c, ok := ChooseMove(Chess, chess.NewBoard(), chess.White, d, rng)
		require.True(t, ok)
		require.Contains(t, chess.LegalMoves(chess.NewBoard(), chess.White), c)
	}
	m, ok := ChooseMove(ConnectFour, connectfour.NewBoard(), connectfour.Red, domain.Hard, nil)
	require.True(t, ok)
	require.True(t, connectfour.IsValidMove(connectfour.NewBoard(), m.Column))
}

package checkers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

func pos(r, c int) domain.Position {
	return domain.Position{Row: r, Col: c}
}

func man(color domain.Side) Piece {
	return Piece{Color: color, Kind: Man}
}

func TestOpeningPosition(t *testing.T) {
	g := NewGame()
	require.Equal(t, 12, g.BlackMen)
	require.Equal(t, 12, g.RedMen)
	require.Equal(t, Black, g.CurrentPlayer)
	require.False(t, g.Terminal)
	require.False(t, g.MustCapture)

	moves := LegalMoves(g.Board, Black)
	require.Len(t, moves, 7)
	for _, m := range moves {
		require.Equal(t, 2, m.From.Row)
		require.Equal(t, 3, m.To.Row)
		require.False(t, m.IsCapture())
	}
}

func TestCaptureIsMandatory(t *testing.T) {
	var b Board
	b[2][3] = man(Black)
	b[3][4] = man(Red)

	moves := LegalMoves(b, Black)
	require.Len(t, moves, 1)
	require.Equal(t, pos(4, 5), moves[0].To)
	require.Equal(t, []domain.Position{pos(3, 4)}, moves[0].Captures)
	require.Equal(t, "d6xf4", moves[0].Notation())
	require.True(t, HasCapture(b, Black))

	next := ApplyMove(b, moves[0], Black)
	require.True(t, next.At(pos(3, 4)).IsEmpty())
	require.True(t, next.At(pos(2, 3)).IsEmpty())
	require.Equal(t, man(Black), next.At(pos(4, 5)))

	// the input board is not modified
	require.Equal(t, man(Red), b.At(pos(3, 4)))
}

func TestBranchingJumpChainsAreDistinctMoves(t *testing.T) {
	var b Board
	b[2][1] = man(Black)
	b[3][2] = man(Red)
	b[5][2] = man(Red)
	b[5][4] = man(Red)

	moves := LegalMoves(b, Black)
	require.Len(t, moves, 2)

	ends := []domain.Position{moves[0].To, moves[1].To}
	require.ElementsMatch(t, []domain.Position{pos(6, 1), pos(6, 5)}, ends)
	for _, m := range moves {
		require.Len(t, m.Captures, 2)
		require.Equal(t, pos(3, 2), m.Captures[0])
		require.Equal(t, pos(4, 3), m.Path[0])
		require.Equal(t, m.To, m.Path[len(m.Path)-1])
	}

	g := GameState{Board: b, CurrentPlayer: Black}
	g.refresh()
	require.True(t, g.MustCapture)

	next, err := g.Play(Move{From: pos(2, 1), To: pos(6, 5)})
	require.NoError(t, err)
	require.Equal(t, 1, next.RedMen)
	require.Equal(t, man(Red), next.Board.At(pos(5, 2)))
	require.Equal(t, 1, next.MoveCount)
}

func TestManIsCrownedOnFarRowAndChainStops(t *testing.T) {
	var b Board
	b[5][2] = man(Black)
	b[6][3] = man(Red)
	b[6][5] = man(Red)

	moves := LegalMoves(b, Black)
	require.Len(t, moves, 1)
	require.Equal(t, pos(7, 4), moves[0].To)
	require.Len(t, moves[0].Captures, 1)

	next := ApplyMove(b, moves[0], Black)
	require.Equal(t, Piece{Color: Black, Kind: King}, next.At(pos(7, 4)))
	require.Equal(t, man(Red), next.At(pos(6, 5)))
}

func TestKingMovesBackwards(t *testing.T) {
	var b Board
	b[4][3] = Piece{Color: Red, Kind: King}
	b[0][7] = man(Black)

	moves := LegalMoves(b, Red)
	require.Len(t, moves, 4)
}

func TestPlayerWithoutMovesLoses(t *testing.T) {
	var b Board
	b[4][3] = man(Black)

	require.True(t, IsTerminal(b, Red))
	require.Equal(t, domain.FirstWins, Winner(b, Red))
	require.False(t, IsTerminal(b, Black))
	require.Equal(t, domain.Undecided, Winner(b, Black))

	g := GameState{Board: b, CurrentPlayer: Red}
	g.refresh()
	require.True(t, g.Terminal)
	_, err := g.Play(Move{From: pos(4, 3), To: pos(3, 2)})
	require.ErrorIs(t, err, domain.ErrGameOver)
}

func TestPlayRejectsIllegalMoves(t *testing.T) {
	g := NewGame()

	_, err := g.Play(Move{From: pos(2, 1), To: pos(4, 3)})
	require.ErrorIs(t, err, domain.ErrInvalidMove)

	_, err = g.Play(Move{From: pos(5, 0), To: pos(4, 1)})
	require.ErrorIs(t, err, domain.ErrInvalidMove, "red cannot move on black's turn")

	require.Panics(t, func() { ApplyMove(g.Board, Move{From: pos(3, 0), To: pos(4, 1)}, Black) })

	next, err := g.Play(Move{From: pos(2, 1), To: pos(3, 2)})
	require.NoError(t, err)
	require.Equal(t, Red, next.CurrentPlayer)
}

func TestNotation(t *testing.T) {
	step := Move{From: pos(5, 2), To: pos(4, 3), Path: []domain.Position{pos(4, 3)}}
	require.Equal(t, "c3-d4", step.Notation())

	jump := Move{
		From:     pos(5, 2),
		To:       pos(1, 6),
		Path:     []domain.Position{pos(3, 4), pos(1, 6)},
		Captures: []domain.Position{pos(4, 3), pos(2, 5)},
	}
	require.Equal(t, "c3xe5xg7", jump.Notation())
}

func TestRandomPlayoutsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		g := NewGame()
		for ply := 0; ply < 200 && !g.Terminal; ply++ {
			moves := LegalMoves(g.Board, g.CurrentPlayer)
			require.NotEmpty(t, moves)

			capturing := moves[0].IsCapture()
			for _, m := range moves {
				require.Equal(t, capturing, m.IsCapture(), "captures and steps never mix")
			}
			require.Equal(t, Evaluate(g.Board, Black), -Evaluate(g.Board, Red))

			m := moves[rng.Intn(len(moves))]
			before := g.RedMen + g.RedKings + g.BlackMen + g.BlackKings

			next, err := g.Play(m)
			require.NoError(t, err)
			after := next.RedMen + next.RedKings + next.BlackMen + next.BlackKings
			require.Equal(t, before-len(m.Captures), after)
			require.Equal(t, g.CurrentPlayer.Opponent(), next.CurrentPlayer)
			g = next
		}
		if g.Terminal {
			require.Empty(t, LegalMoves(g.Board, g.CurrentPlayer))
			require.Equal(t, domain.WinFor(g.CurrentPlayer.Opponent()), g.Winner)
		}
	}
}

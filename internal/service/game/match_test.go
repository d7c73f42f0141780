package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/domain/chess"
)

func TestNewMatch(t *testing.T) {
	tests := []struct {
		kind  domain.GameKind
		moves int
		rows  int
	}{
		{domain.ConnectFour, 7, 6},
		{domain.Reversi, 4, 8},
		{domain.Checkers, 7, 8},
		{domain.Chess, 20, 8},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			m, err := NewMatch(tt.kind)
			require.NoError(t, err)
			require.Equal(t, tt.kind, m.Kind())
			require.Equal(t, domain.First, m.Turn())
			require.False(t, m.Terminal())
			require.Equal(t, domain.Undecided, m.Outcome())
			require.Len(t, m.LegalMoves(), tt.moves)

			var s domain.Snapshot
			m.Describe(&s)
			require.Len(t, s.Board, tt.rows)
			require.Equal(t, "none", s.Outcome)
		})
	}

	_, err := NewMatch("go")
	require.ErrorIs(t, err, domain.ErrUnknownGame)
}

func TestMatchPlaysByNotation(t *testing.T) {
	tests := []struct {
		kind     domain.GameKind
		notation string
		to       domain.Position
	}{
		{domain.ConnectFour, "4", domain.Position{Row: 5, Col: 3}},
		{domain.Reversi, "D6", domain.Position{Row: 2, Col: 3}},
		{domain.Checkers, "b6-a5", domain.Position{Row: 3, Col: 0}},
		{domain.Chess, " e2e4 ", domain.Position{Row: 4, Col: 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			m, err := NewMatch(tt.kind)
			require.NoError(t, err)

			view, err := m.Play(tt.notation)
			require.NoError(t, err)
			require.Equal(t, tt.to, view.To)
			require.Equal(t, 1, m.MoveCount())
			require.Equal(t, domain.Second, m.Turn())

			_, err = m.Play("zz")
			require.ErrorIs(t, err, domain.ErrInvalidMove)
		})
	}
}

func TestMoveViewsCarryGameDetails(t *testing.T) {
	m, err := NewMatch(domain.ConnectFour)
	require.NoError(t, err)
	for _, v := range m.LegalMoves() {
		require.NotNil(t, v.Column)
		require.Equal(t, 5, v.To.Row)
	}

	m, err = NewMatch(domain.Reversi)
	require.NoError(t, err)
	for _, v := range m.LegalMoves() {
		require.Len(t, v.Flips, 1)
	}

	m, err = NewMatch(domain.Checkers)
	require.NoError(t, err)
	var s domain.Snapshot
	m.Describe(&s)
	require.Equal(t, 12, s.Counts["blackMen"])
	require.False(t, s.MustCapture)
}

func TestChessPromotionAcceptsBothNotations(t *testing.T) {
	for _, notation := range []string{"a7a8", "a7a8q"} {
		b, toMove, err := chess.ParseFEN("8/P6k/8/8/8/8/6p1/K7 w - - 0 1")
		require.NoError(t, err)
		m := newChessMatch(chess.NewGameFrom(b, toMove))

		view, err := m.Play(notation)
		require.NoError(t, err)
		require.Equal(t, "a7a8q", view.Notation)
		require.Equal(t, "queen", view.Promotion)

		var s domain.Snapshot
		m.Describe(&s)
		require.Equal(t, "Q", s.Board[0][0])
		require.Equal(t, 900, s.Counts["whiteMaterial"])
	}
}

func TestBotMoveIsLegal(t *testing.T) {
	for _, kind := range domain.GameKinds {
		m, err := NewMatch(kind)
		require.NoError(t, err)
		legal := map[string]bool{}
		for _, v := range m.LegalMoves() {
			legal[v.Notation] = true
		}

		view, err := m.BotMove(domain.Easy, nil)
		require.NoError(t, err)
		require.True(t, legal[view.Notation], "%s played %s", kind, view.Notation)
		require.Equal(t, 1, m.MoveCount())
	}
}

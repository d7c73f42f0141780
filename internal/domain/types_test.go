package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSides(t *testing.T) {
	require.Equal(t, Second, First.Opponent())
	require.Equal(t, First, Second.Opponent())
	require.Equal(t, NoSide, NoSide.Opponent())
	require.False(t, NoSide.Valid())
}

func TestOutcome(t *testing.T) {
	w, ok := WinFor(Second).Winner()
	require.True(t, ok)
	require.Equal(t, Second, w)

	_, ok = Draw.Winner()
	require.False(t, ok)
	require.True(t, Draw.Decided())
	require.False(t, Undecided.Decided())
	require.Equal(t, "first", FirstWins.String())
}

func TestParseGameKind(t *testing.T) {
	k, err := ParseGameKind(" Chess ")
	require.NoError(t, err)
	require.Equal(t, Chess, k)

	_, err = ParseGameKind("go")
	require.ErrorIs(t, err, ErrUnknownGame)
}

func TestParseDifficulty(t *testing.T) {
	require.Equal(t, Hard, ParseDifficulty("HARD"))
	require.Equal(t, Easy, ParseDifficulty("easy"))
	require.Equal(t, Medium, ParseDifficulty("impossible"))
	require.Equal(t, "Charles", GetBotName(Hard))
}

func TestSquareNames(t *testing.T) {
	require.Equal(t, "a8", SquareName(Position{0, 0}))
	require.Equal(t, "h1", SquareName(Position{7, 7}))
	require.Equal(t, "d3", SquareName(Position{5, 3}))

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := Position{Row: row, Col: col}
			got, err := ParseSquare(SquareName(p))
			require.NoError(t, err)
			require.Equal(t, p, got)
		}
	}

	for _, bad := range []string{"", "i1", "a9", "a0", "e22"} {
		_, err := ParseSquare(bad)
		require.Error(t, err, bad)
	}
}

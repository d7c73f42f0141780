package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// rotated turns the board a half turn and swaps colours, giving Red the
// position Black had.
func rotated(b Board) Board {
	var out Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b[r][c]
			if !p.IsEmpty() {
				p.Color = p.Color.Opponent()
			}
			out[BoardSize-1-r][BoardSize-1-c] = p
		}
	}
	return out
}

func TestTablesOnlyScoreDarkSquares(t *testing.T) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if (r+c)%2 == 1 {
				continue
			}
			require.Zero(t, manTable[r][c], "man table at light square (%d,%d)", r, c)
			require.Zero(t, kingTable[r][c], "king table at light square (%d,%d)", r, c)
		}
	}
}

func TestPieceScoreMatchesAcrossSides(t *testing.T) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if (r+c)%2 == 0 {
				continue
			}
			for _, kind := range []Kind{Man, King} {
				black := pieceScore(Piece{Color: Black, Kind: kind}, r, c)
				red := pieceScore(Piece{Color: Red, Kind: kind}, BoardSize-1-r, BoardSize-1-c)
				require.Equal(t, black, red, "kind %d at (%d,%d)", kind, r, c)
			}
		}
	}
}

func TestMenScoreAdvancementForBothSides(t *testing.T) {
	// Black advances toward row 7, Red toward row 0
	require.Greater(t, pieceScore(man(Black), 6, 1), pieceScore(man(Black), 1, 0))
	require.Greater(t, pieceScore(man(Red), 1, 6), pieceScore(man(Red), 6, 7))
}

func TestEvaluateIsSymmetricUnderRotation(t *testing.T) {
	var mirrored Board
	mirrored[2][1] = man(Black)
	mirrored[5][6] = man(Red)
	require.Zero(t, Evaluate(mirrored, Black))
	require.Zero(t, Evaluate(mirrored, Red))

	var kings Board
	kings[3][4] = Piece{Color: Black, Kind: King}
	kings[4][3] = Piece{Color: Red, Kind: King}
	require.Zero(t, Evaluate(kings, Black))

	var mixed Board
	mixed[0][1] = man(Black)
	mixed[2][3] = man(Black)
	mixed[3][4] = Piece{Color: Black, Kind: King}
	mixed[5][2] = man(Red)
	mixed[6][5] = Piece{Color: Red, Kind: King}
	mixed[7][0] = man(Red)
	require.Equal(t, Evaluate(mixed, Black), Evaluate(rotated(mixed), Red))
	require.Equal(t, Evaluate(mixed, Red), Evaluate(rotated(mixed), Black))

	start := NewBoard()
	require.Equal(t, start, rotated(start))
	require.Zero(t, Evaluate(start, Black))
}

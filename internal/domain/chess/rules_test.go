package chess

import (
	"math/rand"
	"sort"
	"testing"

	nchess "github.com/notnil/chess"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

func sq(t *testing.T, name string) domain.Position {
	t.Helper()
	p, err := domain.ParseSquare(name)
	require.NoError(t, err)
	return p
}

func mustFEN(t *testing.T, fen string) (Board, domain.Side) {
	t.Helper()
	b, toMove, err := ParseFEN(fen)
	require.NoError(t, err)
	return b, toMove
}

// fromTo lists distinct from+to pairs; promotion choices collapse into one.
func fromTo(moves []Move) []string {
	set := map[string]struct{}{}
	for _, m := range moves {
		set[domain.SquareName(m.From)+domain.SquareName(m.To)] = struct{}{}
	}
	return sortedKeys(set)
}

func oracleMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := nchess.FEN(fen)
	require.NoError(t, err)
	game := nchess.NewGame(opt)

	set := map[string]struct{}{}
	for _, m := range game.ValidMoves() {
		set[m.S1().String()+m.S2().String()] = struct{}{}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestFENRoundTrip(t *testing.T) {
	b, toMove := mustFEN(t, StartingFEN)
	require.Equal(t, NewBoard(), b)
	require.Equal(t, White, toMove)
	require.Equal(t, StartingFEN, FEN(b, toMove))

	require.Equal(t, Piece{Color: White, Kind: King}, b.At(sq(t, "e1")))
	require.Equal(t, Piece{Color: Black, Kind: Queen}, b.At(sq(t, "d8")))

	_, _, err := ParseFEN("8/8/8 w - - 0 1")
	require.Error(t, err)
	_, _, err = ParseFEN("8/8/8/8/8/8/8/7x w - - 0 1")
	require.Error(t, err)
}

func TestLegalMovesMatchOracle(t *testing.T) {
	positions := map[string]string{
		"start":     StartingFEN,
		"open game": "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 0 1",
		"pinned":    "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
		"promotion": "8/P6k/8/8/8/8/6p1/K7 w - - 0 1",
		"in check":  "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
		"black":     "r3k2r/ppp2ppp/2n1bn2/3pp3/3PP3/2N1BN2/PPP2PPP/R3K2R b - - 0 1",
		"mated":     "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1",
		"stalemate": "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for name, fen := range positions {
		t.Run(name, func(t *testing.T) {
			b, toMove := mustFEN(t, fen)
			require.Equal(t, oracleMoves(t, fen), fromTo(LegalMoves(b, toMove)))
		})
	}
}

func TestRandomPlayoutsMatchOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for game := 0; game < 5; game++ {
		g := NewGame()
		for ply := 0; ply < 80 && !g.Terminal; ply++ {
			fen := FEN(g.Board, g.CurrentPlayer)
			moves := LegalMoves(g.Board, g.CurrentPlayer)
			require.Equal(t, oracleMoves(t, fen), fromTo(moves), fen)
			require.Equal(t, Evaluate(g.Board, White), -Evaluate(g.Board, Black))

			m := moves[rng.Intn(len(moves))]
			next, err := g.Play(m)
			require.NoError(t, err)
			require.False(t, InCheck(next.Board, g.CurrentPlayer), "mover never stays in check")
			g = next
		}
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	b, _ := mustFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	require.NotEmpty(t, PseudoLegalMoves(b, White))

	moves := LegalMoves(b, White)
	require.Len(t, moves, 4)
	for _, m := range moves {
		require.Equal(t, sq(t, "e1"), m.From)
	}
}

func TestPawnPromotesToQueen(t *testing.T) {
	g := NewGameFrom(mustFEN(t, "8/P6k/8/8/8/8/6p1/K7 w - - 0 1"))

	m, err := Resolve(g.Board, White, sq(t, "a7"), sq(t, "a8"))
	require.NoError(t, err)
	require.Equal(t, Queen, m.Promotion)
	require.Equal(t, "a7a8q", m.Notation())

	next, err := g.Play(m)
	require.NoError(t, err)
	require.Equal(t, Piece{Color: White, Kind: Queen}, next.Board.At(sq(t, "a8")))
	require.Equal(t, 900, next.WhiteMaterial)
	require.Equal(t, Black, next.CurrentPlayer)
}

func TestCheckmateAndStalemate(t *testing.T) {
	mated := NewGameFrom(mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1"))
	require.True(t, mated.Terminal)
	require.True(t, mated.InCheck)
	require.Equal(t, domain.SecondWins, mated.Winner)

	_, err := mated.Play(Move{From: sq(t, "e1"), To: sq(t, "f2")})
	require.ErrorIs(t, err, domain.ErrGameOver)

	stale := NewGameFrom(mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	require.True(t, stale.Terminal)
	require.False(t, stale.InCheck)
	require.Equal(t, domain.Draw, stale.Winner)
}

func TestPlayValidatesMoves(t *testing.T) {
	g := NewGame()

	_, err := g.Play(Move{From: sq(t, "e2"), To: sq(t, "e5")})
	require.ErrorIs(t, err, domain.ErrInvalidMove)

	_, err = g.Play(Move{From: sq(t, "e7"), To: sq(t, "e5")})
	require.ErrorIs(t, err, domain.ErrInvalidMove)

	require.Panics(t, func() { ApplyMove(g.Board, Move{From: sq(t, "e4"), To: sq(t, "e5")}, White) })

	from, to, err := ParseMove("e2e4")
	require.NoError(t, err)
	next, err := g.Play(Move{From: from, To: to})
	require.NoError(t, err)
	require.Equal(t, Piece{Color: White, Kind: Pawn}, next.Board.At(sq(t, "e4")))
	require.True(t, g.Board.At(sq(t, "e4")).IsEmpty())

	_, _, err = ParseMove("e2")
	require.Error(t, err)
}

func TestEvaluateRewardsMaterialAndCheck(t *testing.T) {
	require.Equal(t, 0, Evaluate(NewBoard(), White))

	up, _ := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.Greater(t, Evaluate(up, White), 400)

	check, _ := mustFEN(t, "4k3/8/8/8/8/8/8/4RK2 b - - 0 1")
	withCheck := Evaluate(check, White)
	noCheck, _ := mustFEN(t, "4k3/8/8/8/8/8/8/3R1K2 b - - 0 1")
	require.True(t, InCheck(check, Black))
	require.False(t, InCheck(noCheck, Black))
	require.Equal(t, withCheck, -Evaluate(check, Black))
}

// flipped mirrors the board top to bottom and swaps colours.
func flipped(b Board) Board {
	var out Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b[r][c]
			if !p.IsEmpty() {
				p.Color = p.Color.Opponent()
			}
			out[BoardSize-1-r][c] = p
		}
	}
	return out
}

func TestEvaluateIsSymmetricUnderFlip(t *testing.T) {
	fens := []string{
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 0 1",
		"4k3/1p6/8/3N4/8/8/5P2/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/4RK2 b - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b, _ := mustFEN(t, fen)
			m := flipped(b)
			require.Equal(t, Evaluate(b, White), Evaluate(m, Black))
			require.Equal(t, Evaluate(b, Black), Evaluate(m, White))
		})
	}

	require.Equal(t, NewBoard(), flipped(NewBoard()))
}

func TestMobilityCountsOnlyLegalMoves(t *testing.T) {
	// the pinned knight adds nothing to White's mobility
	pinned, _ := mustFEN(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	free, _ := mustFEN(t, "6k1/r7/8/8/8/8/4N3/4K3 w - - 0 1")
	require.Len(t, LegalMoves(pinned, White), 4)

	pinnedScore := Evaluate(pinned, White)
	material := PieceValues[Knight] + knightTable[6][4] - PieceValues[Rook]
	mobility := len(LegalMoves(pinned, White)) - len(LegalMoves(pinned, Black))
	require.Equal(t, material+MobilityWeight*mobility, pinnedScore)
	require.Greater(t, Evaluate(free, White), pinnedScore)
}

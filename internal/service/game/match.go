package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/domain/checkers"
	"github.com/iamasit07/arcade/backend/internal/domain/chess"
	"github.com/iamasit07/arcade/backend/internal/domain/connectfour"
	"github.com/iamasit07/arcade/backend/internal/domain/reversi"
	"github.com/iamasit07/arcade/backend/internal/service/bot"
)

// Match is one running game of any kind. Moves cross this boundary as
// MoveViews and come back as notation strings. A Match is not safe for
// concurrent use; Session serializes access.
type Match interface {
	Kind() domain.GameKind
	Turn() domain.Side
	Terminal() bool
	Outcome() domain.Outcome
	MoveCount() int
	// EndReason names why a terminal game ended.
	EndReason() string
	LegalMoves() []domain.MoveView
	Play(notation string) (domain.MoveView, error)
	BotMove(difficulty domain.Difficulty, rng *rand.Rand) (domain.MoveView, error)
	// Describe fills the board and game-specific fields of s.
	Describe(s *domain.Snapshot)
}

// NewMatch starts a fresh game of kind.
func NewMatch(kind domain.GameKind) (Match, error) {
	switch kind {
	case domain.ConnectFour:
		return newConnectFourMatch(connectfour.NewGame()), nil
	case domain.Reversi:
		return newReversiMatch(reversi.NewGame()), nil
	case domain.Checkers:
		return newCheckersMatch(checkers.NewGame()), nil
	case domain.Chess:
		return newChessMatch(chess.NewGame()), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGame, kind)
}

// status is the part of a game state every kind shares.
type status struct {
	turn      domain.Side
	terminal  bool
	outcome   domain.Outcome
	moveCount int
}

// match adapts one game package to Match. S is the game state, B the board
// and M the move type.
type match[S, B, M any] struct {
	kind   domain.GameKind
	state  S
	rules  bot.Rules[B, M]
	board  func(S) B
	status func(S) status
	play   func(S, M) (S, error)
	view   func(B, M) domain.MoveView
	// lookup resolves client notation against the legal moves; nil means
	// exact notation match.
	lookup   func(moves []M, notation string) (M, bool)
	reason   func(S) string
	describe func(S, *domain.Snapshot)
}

func (m *match[S, B, M]) Kind() domain.GameKind   { return m.kind }
func (m *match[S, B, M]) Turn() domain.Side       { return m.status(m.state).turn }
func (m *match[S, B, M]) Terminal() bool          { return m.status(m.state).terminal }
func (m *match[S, B, M]) Outcome() domain.Outcome { return m.status(m.state).outcome }
func (m *match[S, B, M]) MoveCount() int          { return m.status(m.state).moveCount }
func (m *match[S, B, M]) EndReason() string       { return m.reason(m.state) }

func (m *match[S, B, M]) moves() []M {
	st := m.status(m.state)
	if st.terminal {
		return nil
	}
	return m.rules.LegalMoves(m.board(m.state), st.turn)
}

func (m *match[S, B, M]) LegalMoves() []domain.MoveView {
	moves := m.moves()
	b := m.board(m.state)
	views := make([]domain.MoveView, 0, len(moves))
	for _, mv := range moves {
		views = append(views, m.view(b, mv))
	}
	return views
}

func (m *match[S, B, M]) Play(notation string) (domain.MoveView, error) {
	if m.Terminal() {
		return domain.MoveView{}, domain.ErrGameOver
	}
	notation = strings.ToLower(strings.TrimSpace(notation))
	moves := m.moves()

	var mv M
	var ok bool
	if m.lookup != nil {
		mv, ok = m.lookup(moves, notation)
	} else {
		b := m.board(m.state)
		for _, candidate := range moves {
			if m.view(b, candidate).Notation == notation {
				mv, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		return domain.MoveView{}, fmt.Errorf("%w: %q", domain.ErrInvalidMove, notation)
	}
	return m.apply(mv)
}

func (m *match[S, B, M]) BotMove(difficulty domain.Difficulty, rng *rand.Rand) (domain.MoveView, error) {
	st := m.status(m.state)
	if st.terminal {
		return domain.MoveView{}, domain.ErrGameOver
	}
	mv, ok := bot.ChooseMove(m.rules, m.board(m.state), st.turn, difficulty, rng)
	if !ok {
		return domain.MoveView{}, domain.ErrGameOver
	}
	return m.apply(mv)
}

func (m *match[S, B, M]) apply(mv M) (domain.MoveView, error) {
	view := m.view(m.board(m.state), mv)
	next, err := m.play(m.state, mv)
	if err != nil {
		return domain.MoveView{}, err
	}
	m.state = next
	return view, nil
}

func (m *match[S, B, M]) Describe(s *domain.Snapshot) {
	st := m.status(m.state)
	s.Kind = m.kind
	s.CurrentTurn = st.turn
	s.Terminal = st.terminal
	s.Outcome = st.outcome.String()
	s.Winner, _ = st.outcome.Winner()
	s.MoveCount = st.moveCount
	m.describe(m.state, s)
}

func positionPtr(p domain.Position) *domain.Position {
	return &p
}

func newConnectFourMatch(g connectfour.GameState) Match {
	return &match[connectfour.GameState, connectfour.Board, connectfour.Move]{
		kind:  domain.ConnectFour,
		state: g,
		rules: bot.ConnectFour,
		board: func(g connectfour.GameState) connectfour.Board { return g.Board },
		status: func(g connectfour.GameState) status {
			return status{g.CurrentPlayer, g.Terminal, g.Winner, g.MoveCount}
		},
		play: func(g connectfour.GameState, m connectfour.Move) (connectfour.GameState, error) {
			return g.Play(m)
		},
		view: func(b connectfour.Board, m connectfour.Move) domain.MoveView {
			col := m.Column
			to := domain.Position{Row: connectfour.LandingRow(b, m.Column), Col: m.Column}
			return domain.MoveView{Notation: m.Notation(), Column: &col, To: to}
		},
		lookup: func(moves []connectfour.Move, notation string) (connectfour.Move, bool) {
			want, err := connectfour.ParseMove(notation)
			if err != nil {
				return connectfour.Move{}, false
			}
			for _, m := range moves {
				if m == want {
					return m, true
				}
			}
			return connectfour.Move{}, false
		},
		reason: func(g connectfour.GameState) string {
			if g.Winner == domain.Draw {
				return "board_full"
			}
			return "connect_four"
		},
		describe: func(g connectfour.GameState, s *domain.Snapshot) {
			s.Board = connectfour.Cells(g.Board)
		},
	}
}

func newReversiMatch(g reversi.GameState) Match {
	return &match[reversi.GameState, reversi.Board, reversi.Move]{
		kind:  domain.Reversi,
		state: g,
		rules: bot.Reversi,
		board: func(g reversi.GameState) reversi.Board { return g.Board },
		status: func(g reversi.GameState) status {
			return status{g.CurrentPlayer, g.Terminal, g.Winner, g.MoveCount}
		},
		play: func(g reversi.GameState, m reversi.Move) (reversi.GameState, error) {
			return g.Play(m)
		},
		view: func(_ reversi.Board, m reversi.Move) domain.MoveView {
			return domain.MoveView{Notation: m.Notation(), To: m.To, Flips: m.Flips}
		},
		reason: func(reversi.GameState) string { return "no_moves" },
		describe: func(g reversi.GameState, s *domain.Snapshot) {
			s.Board = reversi.Cells(g.Board)
			s.Counts = map[string]int{"black": g.BlackCount, "white": g.WhiteCount}
			s.Passed = g.Passed
		},
	}
}

func newCheckersMatch(g checkers.GameState) Match {
	return &match[checkers.GameState, checkers.Board, checkers.Move]{
		kind:  domain.Checkers,
		state: g,
		rules: bot.Checkers,
		board: func(g checkers.GameState) checkers.Board { return g.Board },
		status: func(g checkers.GameState) status {
			return status{g.CurrentPlayer, g.Terminal, g.Winner, g.MoveCount}
		},
		play: func(g checkers.GameState, m checkers.Move) (checkers.GameState, error) {
			return g.Play(m)
		},
		view: func(_ checkers.Board, m checkers.Move) domain.MoveView {
			return domain.MoveView{
				Notation: m.Notation(),
				From:     positionPtr(m.From),
				To:       m.To,
				Path:     m.Path,
				Captures: m.Captures,
			}
		},
		reason: func(checkers.GameState) string { return "no_moves" },
		describe: func(g checkers.GameState, s *domain.Snapshot) {
			s.Board = checkers.Cells(g.Board)
			s.Counts = map[string]int{
				"blackMen":   g.BlackMen,
				"blackKings": g.BlackKings,
				"redMen":     g.RedMen,
				"redKings":   g.RedKings,
			}
			s.MustCapture = g.MustCapture
		},
	}
}

func newChessMatch(g chess.GameState) Match {
	return &match[chess.GameState, chess.Board, chess.Move]{
		kind:  domain.Chess,
		state: g,
		rules: bot.Chess,
		board: func(g chess.GameState) chess.Board { return g.Board },
		status: func(g chess.GameState) status {
			return status{g.CurrentPlayer, g.Terminal, g.Winner, g.MoveCount}
		},
		play: func(g chess.GameState, m chess.Move) (chess.GameState, error) {
			return g.Play(m)
		},
		view: func(_ chess.Board, m chess.Move) domain.MoveView {
			v := domain.MoveView{Notation: m.Notation(), From: positionPtr(m.From), To: m.To}
			if m.IsCapture() {
				v.Captures = []domain.Position{m.To}
			}
			if m.Promotion != chess.NoKind {
				v.Promotion = "queen"
			}
			return v
		},
		// "e7e8" and "e7e8q" both name the queen promotion
		lookup: func(moves []chess.Move, notation string) (chess.Move, bool) {
			from, to, err := chess.ParseMove(notation)
			if err != nil {
				return chess.Move{}, false
			}
			for _, m := range moves {
				if m.From == from && m.To == to && (len(notation) == 4 || m.Notation() == notation) {
					return m, true
				}
			}
			return chess.Move{}, false
		},
		reason: func(g chess.GameState) string {
			if g.Winner == domain.Draw {
				return "stalemate"
			}
			return "checkmate"
		},
		describe: func(g chess.GameState, s *domain.Snapshot) {
			s.Board = chess.Cells(g.Board)
			s.Counts = map[string]int{"whiteMaterial": g.WhiteMaterial, "blackMaterial": g.BlackMaterial}
			s.InCheck = g.InCheck
		},
	}
}

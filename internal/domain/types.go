package domain

import "strings"

// Side identifies one of the two players of a game. Each game names its
// sides (Black/Red, Red/Yellow, ...) as constants of this type.
type Side int8

const (
	NoSide Side = 0
	First  Side = 1
	Second Side = 2
)

func (s Side) Opponent() Side {
	switch s {
	case First:
		return Second
	case Second:
		return First
	}
	return NoSide
}

func (s Side) Valid() bool {
	return s == First || s == Second
}

// Outcome is the result of a game: undecided, a win for one side, or a draw.
type Outcome int8

const (
	Undecided Outcome = iota
	FirstWins
	SecondWins
	Draw
)

// WinFor returns the outcome where s has won.
func WinFor(s Side) Outcome {
	if s == First {
		return FirstWins
	}
	return SecondWins
}

// Winner returns the winning side, if there is one.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case FirstWins:
		return First, true
	case SecondWins:
		return Second, true
	}
	return NoSide, false
}

func (o Outcome) Decided() bool {
	return o != Undecided
}

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	case Draw:
		return "draw"
	}
	return "none"
}

// Position is a 0-indexed board coordinate. Row 0 is the top row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Difficulty tiers for the AI opponent
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a client string to a difficulty, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy
	case Hard:
		return Hard
	default:
		return Medium
	}
}

var BotNames = map[Difficulty]string{
	Easy:   "Alice",
	Medium: "Bob",
	Hard:   "Charles",
}

func GetBotName(difficulty Difficulty) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// GameKind names one of the supported games
type GameKind string

const (
	Checkers    GameKind = "checkers"
	Reversi     GameKind = "reversi"
	ConnectFour GameKind = "connect4"
	Chess       GameKind = "chess"
)

var GameKinds = []GameKind{Checkers, Reversi, ConnectFour, Chess}

func ParseGameKind(s string) (GameKind, error) {
	kind := GameKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range GameKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", ErrUnknownGame
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrGameOver     Error = "game is already over"
	ErrNotYourTurn  Error = "not your turn"
	ErrUnknownGame  Error = "unknown game"
	ErrGameNotFound Error = "game not found"
	ErrBotThinking  Error = "bot is already thinking"
	ErrInvalidSide  Error = "invalid side"
)

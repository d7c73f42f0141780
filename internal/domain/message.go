package domain

import "time"

// MoveView is the game-independent description of a move sent to clients.
// Notation is unique within one legal-move list and is what clients send back.
type MoveView struct {
	Notation  string     `json:"notation"`
	From      *Position  `json:"from,omitempty"`
	To        Position   `json:"to"`
	Column    *int       `json:"column,omitempty"`
	Path      []Position `json:"path,omitempty"`
	Captures  []Position `json:"captures,omitempty"`
	Flips     []Position `json:"flips,omitempty"`
	Promotion string     `json:"promotion,omitempty"`
}

// Snapshot is a read-only picture of a game session
type Snapshot struct {
	GameID      string         `json:"gameId"`
	Kind        GameKind       `json:"kind"`
	Difficulty  Difficulty     `json:"difficulty,omitempty"`
	HumanSide   Side           `json:"humanSide"`
	VsBot       bool           `json:"vsBot"`
	BotName     string         `json:"botName,omitempty"`
	Board       [][]string     `json:"board"`
	CurrentTurn Side           `json:"currentTurn"`
	Terminal    bool           `json:"terminal"`
	Outcome     string         `json:"outcome"`
	Winner      Side           `json:"winner,omitempty"`
	MoveCount   int            `json:"moveCount"`
	LastMove    *MoveView      `json:"lastMove,omitempty"`
	Counts      map[string]int `json:"counts,omitempty"`
	InCheck     bool           `json:"inCheck,omitempty"`
	MustCapture bool           `json:"mustCapture,omitempty"`
	Passed      bool           `json:"passed,omitempty"`
	BotThinking bool           `json:"botThinking"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type ClientMessage struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`
	Move  string `json:"move,omitempty"`
}

type ServerMessage struct {
	Type    string    `json:"type"`
	Message string    `json:"message,omitempty"`
	GameID  string    `json:"gameId,omitempty"`
	Side    Side      `json:"side,omitempty"`
	Move    *MoveView `json:"move,omitempty"`
	State   *Snapshot `json:"state,omitempty"`
	Winner  string    `json:"winner,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

// GameRecord is a finished game as stored by the repositories
type GameRecord struct {
	GameID          string     `json:"gameId"`
	Kind            GameKind   `json:"kind"`
	Difficulty      Difficulty `json:"difficulty,omitempty"`
	HumanSide       Side       `json:"humanSide"`
	VsBot           bool       `json:"vsBot"`
	Result          string     `json:"result"`
	Reason          string     `json:"reason"`
	Moves           []string   `json:"moves"`
	TotalMoves      int        `json:"totalMoves"`
	DurationSeconds int        `json:"durationSeconds"`
	FinalBoard      [][]string `json:"finalBoard,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	FinishedAt      time.Time  `json:"finishedAt"`
}

package game

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

type Session struct {
	GameID     string
	Kind       domain.GameKind
	Difficulty domain.Difficulty
	HumanSide  domain.Side // seat played by the client against the bot
	VsBot      bool
	CreatedAt  time.Time
	FinishedAt time.Time
	Reason     string

	match        Match
	outcome      domain.Outcome
	moves        []string
	lastMove     *domain.MoveView
	lastActivity time.Time
	botThinking  bool
	mu           sync.Mutex
	manager      *SessionManager
}

func (gs *Session) BotSide() domain.Side {
	if !gs.VsBot {
		return domain.NoSide
	}
	return gs.HumanSide.Opponent()
}

func (gs *Session) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.finishedLocked()
}

func (gs *Session) finishedLocked() bool {
	return !gs.FinishedAt.IsZero()
}

func (gs *Session) botToMoveLocked() bool {
	return gs.VsBot && !gs.finishedLocked() && !gs.match.Terminal() && gs.match.Turn() == gs.BotSide()
}

// Seats lists the sides a client can hold a token for.
func (gs *Session) Seats() []domain.Side {
	if gs.VsBot {
		return []domain.Side{gs.HumanSide}
	}
	return []domain.Side{domain.First, domain.Second}
}

func (gs *Session) Snapshot() domain.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.snapshotLocked()
}

func (gs *Session) snapshotLocked() domain.Snapshot {
	s := domain.Snapshot{
		GameID:      gs.GameID,
		Difficulty:  gs.Difficulty,
		HumanSide:   gs.HumanSide,
		VsBot:       gs.VsBot,
		LastMove:    gs.lastMove,
		BotThinking: gs.botThinking,
		CreatedAt:   gs.CreatedAt,
	}
	if gs.VsBot {
		s.BotName = domain.GetBotName(gs.Difficulty)
	}
	gs.match.Describe(&s)

	// a resignation ends the game before the board does
	if gs.finishedLocked() {
		s.Terminal = true
		s.Outcome = gs.outcome.String()
		s.Winner, _ = gs.outcome.Winner()
	}
	return s
}

// LegalMoves lists the moves of the side to move.
func (gs *Session) LegalMoves() []domain.MoveView {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.finishedLocked() {
		return []domain.MoveView{}
	}
	return gs.match.LegalMoves()
}

// Moves returns the notation of every move played so far.
func (gs *Session) Moves() []string {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return slices.Clone(gs.moves)
}

// HandleMove plays notation for the client holding side.
func (gs *Session) HandleMove(side domain.Side, notation string) (domain.MoveView, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.finishedLocked() {
		return domain.MoveView{}, domain.ErrGameOver
	}
	if gs.botThinking {
		return domain.MoveView{}, domain.ErrBotThinking
	}
	if !slices.Contains(gs.Seats(), side) || gs.match.Turn() != side {
		return domain.MoveView{}, domain.ErrNotYourTurn
	}

	view, err := gs.match.Play(notation)
	if err != nil {
		return domain.MoveView{}, err
	}
	gs.recordMoveLocked(side, view)
	gs.afterMoveLocked()
	return view, nil
}

// HandleBotMove lets the bot play if it is its turn. It runs on the goroutine
// started by scheduleBotLocked.
func (gs *Session) HandleBotMove() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.botThinking = false
	// Verify it's actually bot's turn (race condition check)
	if !gs.botToMoveLocked() {
		return nil
	}

	botSide := gs.BotSide()
	start := time.Now()
	view, err := gs.match.BotMove(gs.Difficulty, nil)
	if err != nil {
		return err
	}
	log.Debug().Str("component", "bot").Str("gameId", gs.GameID).Str("kind", string(gs.Kind)).
		Str("difficulty", string(gs.Difficulty)).Str("move", view.Notation).
		Dur("took", time.Since(start)).Msg("bot moved")

	gs.recordMoveLocked(botSide, view)
	gs.afterMoveLocked()
	return nil
}

// Resign ends the game as a loss for side.
func (gs *Session) Resign(side domain.Side) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.finishedLocked() {
		return domain.ErrGameOver
	}
	if !slices.Contains(gs.Seats(), side) {
		return domain.ErrInvalidSide
	}

	log.Info().Str("component", "session").Str("gameId", gs.GameID).Int("side", int(side)).Msg("player resigned")
	gs.finishLocked("resign", domain.WinFor(side.Opponent()))
	gs.cacheSnapshotLocked()
	return nil
}

func (gs *Session) recordMoveLocked(side domain.Side, view domain.MoveView) {
	gs.moves = append(gs.moves, view.Notation)
	gs.lastMove = &view
	gs.lastActivity = time.Now()

	state := gs.snapshotLocked()
	gs.manager.broadcast(gs.GameID, domain.ServerMessage{
		Type:   "move_made",
		GameID: gs.GameID,
		Side:   side,
		Move:   &view,
		State:  &state,
	})
}

func (gs *Session) afterMoveLocked() {
	switch {
	case gs.match.Terminal():
		gs.finishLocked(gs.match.EndReason(), gs.match.Outcome())
	case gs.botToMoveLocked():
		gs.scheduleBotLocked()
	}
	gs.cacheSnapshotLocked()
}

// scheduleBotLocked plays the bot's move after the configured delay. The
// botThinking flag keeps a second bot move from starting meanwhile.
func (gs *Session) scheduleBotLocked() {
	if gs.botThinking {
		return
	}
	gs.botThinking = true

	sm := gs.manager
	sm.wg.Add(1)
	go func() {
		defer sm.wg.Done()
		// Small delay to feel natural
		if sm.opts.BotDelay > 0 {
			time.Sleep(sm.opts.BotDelay)
		}
		if err := gs.HandleBotMove(); err != nil {
			log.Error().Err(err).Str("component", "bot").Str("gameId", gs.GameID).Msg("error handling bot move")
		}
	}()
}

func (gs *Session) finishLocked(reason string, outcome domain.Outcome) {
	gs.FinishedAt = time.Now()
	gs.Reason = reason
	gs.outcome = outcome
	gs.botThinking = false

	state := gs.snapshotLocked()
	gs.manager.broadcast(gs.GameID, domain.ServerMessage{
		Type:   "game_over",
		GameID: gs.GameID,
		Winner: outcome.String(),
		Reason: reason,
		State:  &state,
	})

	log.Info().Str("component", "session").Str("gameId", gs.GameID).Str("outcome", outcome.String()).
		Str("reason", reason).Int("moves", len(gs.moves)).Msg("game finished")

	gs.saveGameAsync(gs.recordLocked(state))
}

func (gs *Session) recordLocked(state domain.Snapshot) *domain.GameRecord {
	return &domain.GameRecord{
		GameID:          gs.GameID,
		Kind:            gs.Kind,
		Difficulty:      gs.Difficulty,
		HumanSide:       gs.HumanSide,
		VsBot:           gs.VsBot,
		Result:          gs.outcome.String(),
		Reason:          gs.Reason,
		Moves:           slices.Clone(gs.moves),
		TotalMoves:      len(gs.moves),
		DurationSeconds: int(gs.FinishedAt.Sub(gs.CreatedAt).Seconds()),
		FinalBoard:      state.Board,
		CreatedAt:       gs.CreatedAt,
		FinishedAt:      gs.FinishedAt,
	}
}

// Saves game data to database in background to avoid blocking game_over messages
func (gs *Session) saveGameAsync(rec *domain.GameRecord) {
	sm := gs.manager
	if sm.repo == nil {
		return
	}
	sm.wg.Add(1)
	go func() {
		defer sm.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), sm.opts.SaveTimeout)
		defer cancel()

		if err := sm.repo.SaveGame(ctx, rec); err != nil {
			log.Error().Err(err).Str("component", "session").Str("gameId", rec.GameID).Msg("error saving game")
			return
		}
		log.Debug().Str("component", "session").Str("gameId", rec.GameID).Msg("game saved")
	}()
}

func (gs *Session) cacheSnapshotLocked() {
	sm := gs.manager
	if sm.cache == nil {
		return
	}
	snap := gs.snapshotLocked()
	sm.wg.Add(1)
	go func() {
		defer sm.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), sm.opts.SaveTimeout)
		defer cancel()

		if err := sm.cache.SaveSnapshot(ctx, &snap, sm.opts.SnapshotTTL); err != nil {
			log.Warn().Err(err).Str("component", "session").Str("gameId", gs.GameID).Msg("could not cache snapshot")
		}
	}()
}

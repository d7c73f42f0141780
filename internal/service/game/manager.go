package game

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/pkg/uid"
)

// Notifier pushes server messages to everyone watching a game.
type Notifier interface {
	Broadcast(gameID string, msg domain.ServerMessage)
}

type GameRepository interface {
	SaveGame(ctx context.Context, rec *domain.GameRecord) error
}

// SnapshotCache keeps the latest snapshot of live games outside the process.
type SnapshotCache interface {
	SaveSnapshot(ctx context.Context, snap *domain.Snapshot, ttl time.Duration) error
}

type Options struct {
	BotDelay    time.Duration
	FinishedTTL time.Duration
	IdleTTL     time.Duration
	SnapshotTTL time.Duration
	SaveTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		BotDelay:    500 * time.Millisecond,
		FinishedTTL: time.Hour,
		IdleTTL:     24 * time.Hour,
		SnapshotTTL: 2 * time.Hour,
		SaveTimeout: 10 * time.Second,
	}
}

// SessionManager manages active game sessions
type SessionManager struct {
	sessions map[string]*Session // gameID → Session
	mu       sync.RWMutex
	repo     GameRepository
	cache    SnapshotCache
	notifier Notifier
	opts     Options

	// background bot moves and writes
	wg sync.WaitGroup
}

// NewSessionManager wires the collaborators; repo, cache and notifier may be nil.
func NewSessionManager(repo GameRepository, cache SnapshotCache, notifier Notifier, opts Options) *SessionManager {
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = DefaultOptions().SaveTimeout
	}
	return &SessionManager{
		sessions: make(map[string]*Session),
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		opts:     opts,
	}
}

// CreateSession starts a new game. Against the bot, humanSide is the side the
// client plays and the bot is scheduled at once when it moves first.
func (sm *SessionManager) CreateSession(kind domain.GameKind, difficulty domain.Difficulty, humanSide domain.Side, vsBot bool) (*Session, error) {
	if vsBot && !humanSide.Valid() {
		return nil, domain.ErrInvalidSide
	}
	m, err := NewMatch(kind)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	gs := &Session{
		GameID:       uid.GenerateGameID(),
		Kind:         kind,
		Difficulty:   difficulty,
		HumanSide:    humanSide,
		VsBot:        vsBot,
		CreatedAt:    now,
		match:        m,
		lastActivity: now,
		manager:      sm,
	}

	sm.mu.Lock()
	sm.sessions[gs.GameID] = gs
	sm.mu.Unlock()

	log.Info().Str("component", "session").Str("gameId", gs.GameID).Str("kind", string(kind)).
		Str("difficulty", string(difficulty)).Bool("vsBot", vsBot).Msg("created session")

	gs.mu.Lock()
	if gs.botToMoveLocked() {
		gs.scheduleBotLocked()
	}
	gs.cacheSnapshotLocked()
	gs.mu.Unlock()

	return gs, nil
}

func (sm *SessionManager) GetSession(gameID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	gs, ok := sm.sessions[gameID]
	return gs, ok
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, ok := sm.sessions[gameID]; !ok {
		return domain.ErrGameNotFound
	}
	delete(sm.sessions, gameID)
	log.Debug().Str("component", "session").Str("gameId", gameID).Msg("removed session")
	return nil
}

// LiveSessions returns a snapshot of every session, newest first.
func (sm *SessionManager) LiveSessions() []domain.Snapshot {
	sm.mu.RLock()
	sessions := make([]*Session, 0, len(sm.sessions))
	for _, gs := range sm.sessions {
		sessions = append(sessions, gs)
	}
	sm.mu.RUnlock()

	out := make([]domain.Snapshot, 0, len(sessions))
	for _, gs := range sessions {
		out = append(out, gs.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// CleanupOldSessions drops finished sessions after FinishedTTL and abandoned
// ones after IdleTTL. It returns how many were removed.
func (sm *SessionManager) CleanupOldSessions() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()
	for gameID, gs := range sm.sessions {
		gs.mu.Lock()
		var stale bool
		if gs.finishedLocked() {
			stale = now.Sub(gs.FinishedAt) > sm.opts.FinishedTTL
		} else {
			stale = now.Sub(gs.lastActivity) > sm.opts.IdleTTL
		}
		gs.mu.Unlock()

		if stale {
			delete(sm.sessions, gameID)
			count++
		}
	}

	if count > 0 {
		log.Info().Str("component", "session").Int("removed", count).Msg("memory cleanup removed stale game sessions")
	}
	return count
}

// Wait blocks until scheduled bot moves and pending writes have finished.
func (sm *SessionManager) Wait() {
	sm.wg.Wait()
}

func (sm *SessionManager) broadcast(gameID string, msg domain.ServerMessage) {
	if sm.notifier != nil {
		sm.notifier.Broadcast(gameID, msg)
	}
}

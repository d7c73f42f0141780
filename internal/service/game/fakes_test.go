package game

import (
	"context"
	"sync"
	"time"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []domain.ServerMessage
}

func (n *recordingNotifier) Broadcast(_ string, msg domain.ServerMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.msgs))
	for i, m := range n.msgs {
		out[i] = m.Type
	}
	return out
}

func (n *recordingNotifier) last() domain.ServerMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.msgs[len(n.msgs)-1]
}

type memoryRepo struct {
	mu      sync.Mutex
	records []*domain.GameRecord
}

func (r *memoryRepo) SaveGame(_ context.Context, rec *domain.GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

func (r *memoryRepo) saved() []*domain.GameRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.GameRecord(nil), r.records...)
}

type memoryCache struct {
	mu    sync.Mutex
	snaps map[string]domain.Snapshot
}

func (c *memoryCache) SaveSnapshot(_ context.Context, snap *domain.Snapshot, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snaps == nil {
		c.snaps = map[string]domain.Snapshot{}
	}
	// writes race each other; keep the most advanced
	if prev, ok := c.snaps[snap.GameID]; ok && prev.MoveCount > snap.MoveCount {
		return nil
	}
	c.snaps[snap.GameID] = *snap
	return nil
}

func (c *memoryCache) get(gameID string) (domain.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.snaps[gameID]
	return s, ok
}

type harness struct {
	manager  *SessionManager
	notifier *recordingNotifier
	repo     *memoryRepo
	cache    *memoryCache
}

func newHarness(delay time.Duration) *harness {
	h := &harness{notifier: &recordingNotifier{}, repo: &memoryRepo{}, cache: &memoryCache{}}
	opts := DefaultOptions()
	opts.BotDelay = delay
	h.manager = NewSessionManager(h.repo, h.cache, h.notifier, opts)
	return h
}

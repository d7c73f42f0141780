package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// SessionSweeper drops stale in-memory sessions.
type SessionSweeper interface {
	CleanupOldSessions() int
}

// HistoryPruner deletes finished game records older than a cutoff.
type HistoryPruner interface {
	DeleteGamesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Worker struct {
	Sessions  SessionSweeper
	History   HistoryPruner // optional
	Interval  time.Duration
	Retention time.Duration // zero keeps history forever
}

func NewWorker(sessions SessionSweeper, history HistoryPruner, interval, retention time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Worker{Sessions: sessions, History: history, Interval: interval, Retention: retention}
}

// Start runs a cleanup right away and then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		w.RunOnce(ctx)

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Str("component", "cleanup").Msg("background worker stopped")
				return
			case <-ticker.C:
				w.RunOnce(ctx)
			}
		}
	}()
	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("background worker started")
}

// RunOnce executes the actual cleanup logic
func (w *Worker) RunOnce(ctx context.Context) {
	log.Debug().Str("component", "cleanup").Msg("starting scheduled cleanup task")

	w.Sessions.CleanupOldSessions()

	if w.History == nil || w.Retention <= 0 {
		return
	}
	deleted, err := w.History.DeleteGamesBefore(ctx, time.Now().Add(-w.Retention))
	if err != nil {
		log.Error().Err(err).Str("component", "cleanup").Msg("error pruning game history")
		return
	}
	if deleted > 0 {
		log.Info().Str("component", "cleanup").Int64("deleted", deleted).Msg("pruned old game records")
	}
}

package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/pkg/uid"
)

func TestSnapshotKey(t *testing.T) {
	require.Equal(t, "game:abc", snapshotKey("abc"))
}

func TestConnectUnavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.Nil(t, Connect(ctx, "127.0.0.1:1", ""))
}

// Runs against a real server only when TEST_REDIS_ADDR is set.
func TestSnapshotCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := Connect(ctx, addr, os.Getenv("TEST_REDIS_PASSWORD"))
	require.NotNil(t, client)
	defer client.Close()

	cache := NewSnapshotCache(client)
	snap := &domain.Snapshot{
		GameID:      uid.GenerateGameID(),
		Kind:        domain.Chess,
		Board:       [][]string{{"r", "n"}, {"P", ""}},
		CurrentTurn: domain.First,
		Outcome:     "none",
		MoveCount:   3,
	}
	require.NoError(t, cache.SaveSnapshot(ctx, snap, time.Minute))

	got, err := cache.GetSnapshot(ctx, snap.GameID)
	require.NoError(t, err)
	require.Equal(t, snap.Board, got.Board)
	require.Equal(t, 3, got.MoveCount)

	require.NoError(t, cache.DeleteSnapshot(ctx, snap.GameID))
	_, err = cache.GetSnapshot(ctx, snap.GameID)
	require.ErrorIs(t, err, domain.ErrGameNotFound)
}

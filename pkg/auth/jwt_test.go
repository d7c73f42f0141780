package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/arcade/backend/internal/config"
	"github.com/iamasit07/arcade/backend/internal/domain"
)

func withConfig(t *testing.T, secret string, ttl time.Duration) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: secret, SeatTokenTTL: ttl}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestSeatTokenRoundTrip(t *testing.T) {
	withConfig(t, "test-secret", time.Hour)

	token, err := GenerateSeatToken("game-1", domain.Second)
	require.NoError(t, err)

	claims, err := ValidateSeatToken(token)
	require.NoError(t, err)
	require.Equal(t, "game-1", claims.GameID)
	require.Equal(t, domain.Second, claims.Side)
	require.True(t, claims.Allows("game-1", domain.Second))
	require.False(t, claims.Allows("game-1", domain.First))
	require.False(t, claims.Allows("game-2", domain.Second))
}

func TestHotSeatTokenAllowsBothSides(t *testing.T) {
	withConfig(t, "test-secret", time.Hour)

	token, err := GenerateSeatToken("game-1", domain.NoSide)
	require.NoError(t, err)
	claims, err := ValidateSeatToken(token)
	require.NoError(t, err)
	require.True(t, claims.Allows("game-1", domain.First))
	require.True(t, claims.Allows("game-1", domain.Second))
}

func TestSeatTokenRejected(t *testing.T) {
	withConfig(t, "test-secret", time.Hour)
	token, err := GenerateSeatToken("game-1", domain.First)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		withConfig(t, "other-secret", time.Hour)
		_, err := ValidateSeatToken(token)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		withConfig(t, "test-secret", -time.Minute)
		expired, err := GenerateSeatToken("game-1", domain.First)
		require.NoError(t, err)
		_, err = ValidateSeatToken(expired)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateSeatToken("not-a-token")
		require.Error(t, err)
	})
}

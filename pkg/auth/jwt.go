package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iamasit07/arcade/backend/internal/config"
	"github.com/iamasit07/arcade/backend/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// SeatClaims binds a bearer to one side of one game
type SeatClaims struct {
	GameID string      `json:"game_id"`
	Side   domain.Side `json:"side"`
	jwt.RegisteredClaims
}

// GenerateSeatToken signs a token for the given seat. In hot-seat games the
// side is NoSide and the token may move for either player.
func GenerateSeatToken(gameID string, side domain.Side) (string, error) {
	now := time.Now()
	claims := &SeatClaims{
		GameID: gameID,
		Side:   side,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   gameID,
			ExpiresAt: jwt.NewNumericDate(now.Add(config.AppConfig.SeatTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateSeatToken validates a seat token and returns its claims
func ValidateSeatToken(tokenString string) (*SeatClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SeatClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SeatClaims); ok && token.Valid && claims.GameID != "" {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// Allows reports whether the claims may act for side in gameID.
func (c *SeatClaims) Allows(gameID string, side domain.Side) bool {
	if c.GameID != gameID {
		return false
	}
	return c.Side == domain.NoSide || c.Side == side
}

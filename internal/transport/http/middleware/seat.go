package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/arcade/backend/pkg/auth"
	"github.com/iamasit07/arcade/backend/pkg/httputil"
)

const seatKey = "seat"

// SeatAuth validates the seat token from the Authorization header or the
// seat cookie and stores its claims on the context.
func SeatAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateSeatToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(seatKey, claims)
		c.Next()
	}
}

// SeatFromContext returns the claims stored by SeatAuth, or nil.
func SeatFromContext(c *gin.Context) *auth.SeatClaims {
	v, ok := c.Get(seatKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.SeatClaims)
	return claims
}

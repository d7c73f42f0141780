package httputil

import (
	"errors"
	"net/http"
	"strings"

	"github.com/iamasit07/arcade/backend/internal/config"
)

const SeatCookieName = "seat_token"

func SetSeatCookie(w http.ResponseWriter, token string) {
	cfg := config.AppConfig
	isProduction := cfg.IsProduction()

	cookie := &http.Cookie{
		Name:     SeatCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.SeatTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
	}

	// SameSite=None requires Secure=true, so use Lax for development
	if isProduction {
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, cookie)
}

// GetTokenFromRequest reads the seat token from an Authorization header,
// falling back to the seat cookie.
func GetTokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token != "" {
			return token, nil
		}
	}

	cookie, err := r.Cookie(SeatCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.New("no seat token found in header or cookie")
}

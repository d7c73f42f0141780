package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/service/game"
)

type WatchHandler struct {
	SessionManager *game.SessionManager
}

func NewWatchHandler(sm *game.SessionManager) *WatchHandler {
	return &WatchHandler{SessionManager: sm}
}

type liveGameResponse struct {
	GameID      string            `json:"gameId"`
	Kind        domain.GameKind   `json:"kind"`
	VsBot       bool              `json:"vsBot"`
	Difficulty  domain.Difficulty `json:"difficulty,omitempty"`
	BotName     string            `json:"botName,omitempty"`
	CurrentTurn domain.Side       `json:"currentTurn"`
	Terminal    bool              `json:"terminal"`
	MoveCount   int               `json:"moveCount"`
	StartedAt   string            `json:"startedAt"`
}

// GetLiveGames lists the sessions held in memory, newest first. The optional
// kind query parameter filters by game.
func (h *WatchHandler) GetLiveGames(c *gin.Context) {
	var filter domain.GameKind
	if raw := c.Query("kind"); raw != "" {
		kind, err := domain.ParseGameKind(raw)
		if err != nil {
			abortWithError(c, err)
			return
		}
		filter = kind
	}

	snapshots := h.SessionManager.LiveSessions()
	response := make([]liveGameResponse, 0, len(snapshots))
	for _, s := range snapshots {
		if filter != "" && s.Kind != filter {
			continue
		}
		response = append(response, liveGameResponse{
			GameID:      s.GameID,
			Kind:        s.Kind,
			VsBot:       s.VsBot,
			Difficulty:  s.Difficulty,
			BotName:     s.BotName,
			CurrentTurn: s.CurrentTurn,
			Terminal:    s.Terminal,
			MoveCount:   s.MoveCount,
			StartedAt:   s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, response)
}

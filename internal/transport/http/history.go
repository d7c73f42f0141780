package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/arcade/backend/internal/domain"
)

type HistoryRepository interface {
	GetGame(ctx context.Context, gameID string) (*domain.GameRecord, error)
	ListGames(ctx context.Context, kind domain.GameKind, limit int) ([]domain.GameRecord, error)
}

type HistoryHandler struct {
	GameRepo HistoryRepository
	MaxLimit int
}

func NewHistoryHandler(gameRepo HistoryRepository, maxLimit int) *HistoryHandler {
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &HistoryHandler{GameRepo: gameRepo, MaxLimit: maxLimit}
}

type gameHistoryItem struct {
	ID         string            `json:"id"`
	Kind       domain.GameKind   `json:"kind"`
	Difficulty domain.Difficulty `json:"difficulty,omitempty"`
	VsBot      bool              `json:"vsBot"`
	HumanSide  domain.Side       `json:"humanSide"`
	Result     string            `json:"result"`
	EndReason  string            `json:"endReason"`
	MovesCount int               `json:"movesCount"`
	Duration   int               `json:"durationSeconds"`
	FinishedAt string            `json:"finishedAt"`
}

// GetHistory lists finished games, newest first
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	var kind domain.GameKind
	if raw := c.Query("kind"); raw != "" {
		k, err := domain.ParseGameKind(raw)
		if err != nil {
			abortWithError(c, err)
			return
		}
		kind = k
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, h.MaxLimit)
	}

	records, err := h.GameRepo.ListGames(c.Request.Context(), kind, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	history := make([]gameHistoryItem, 0, len(records))
	for _, g := range records {
		history = append(history, gameHistoryItem{
			ID:         g.GameID,
			Kind:       g.Kind,
			Difficulty: g.Difficulty,
			VsBot:      g.VsBot,
			HumanSide:  g.HumanSide,
			Result:     g.Result,
			EndReason:  g.Reason,
			MovesCount: g.TotalMoves,
			Duration:   g.DurationSeconds,
			FinishedAt: g.FinishedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	c.JSON(http.StatusOK, history)
}

// GetGameDetails returns the full record, moves and final board included
func (h *HistoryHandler) GetGameDetails(c *gin.Context) {
	rec, err := h.GameRepo.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/service/game"
	"github.com/iamasit07/arcade/backend/internal/transport/http/middleware"
	"github.com/iamasit07/arcade/backend/pkg/auth"
	"github.com/iamasit07/arcade/backend/pkg/httputil"
)

// SnapshotReader looks up the cached snapshot of a game that is no longer in memory
type SnapshotReader interface {
	GetSnapshot(ctx context.Context, gameID string) (*domain.Snapshot, error)
}

type GameHandler struct {
	SessionManager *game.SessionManager
	Snapshots      SnapshotReader // optional
}

func NewGameHandler(sm *game.SessionManager, snapshots SnapshotReader) *GameHandler {
	return &GameHandler{SessionManager: sm, Snapshots: snapshots}
}

type createGameRequest struct {
	Kind       string `json:"kind" binding:"required"`
	Difficulty string `json:"difficulty"`
	Side       int    `json:"side" binding:"omitempty,oneof=1 2"`
	Opponent   string `json:"opponent" binding:"omitempty,oneof=bot human"`
}

type createGameResponse struct {
	Game  domain.Snapshot `json:"game"`
	Side  domain.Side     `json:"side,omitempty"`
	Token string          `json:"token"`
}

type playRequest struct {
	Move string `json:"move" binding:"required"`
}

// CreateGame starts a session and hands back a seat token. Against the bot
// the token is bound to the chosen side, in hot-seat games to both.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := domain.ParseGameKind(req.Kind)
	if err != nil {
		abortWithError(c, err)
		return
	}

	vsBot := req.Opponent != "human"
	side := domain.First
	if req.Side != 0 {
		side = domain.Side(req.Side)
	}
	difficulty := domain.ParseDifficulty(req.Difficulty)

	gs, err := h.SessionManager.CreateSession(kind, difficulty, side, vsBot)
	if err != nil {
		abortWithError(c, err)
		return
	}

	seat := domain.NoSide
	if vsBot {
		seat = side
	}
	token, err := auth.GenerateSeatToken(gs.GameID, seat)
	if err != nil {
		abortWithError(c, err)
		return
	}
	httputil.SetSeatCookie(c.Writer, token)

	c.JSON(http.StatusCreated, createGameResponse{Game: gs.Snapshot(), Side: seat, Token: token})
}

// GetGame returns the live snapshot, falling back to the cache once the
// session has left memory.
func (h *GameHandler) GetGame(c *gin.Context) {
	gameID := c.Param("id")
	if gs, ok := h.SessionManager.GetSession(gameID); ok {
		c.JSON(http.StatusOK, gs.Snapshot())
		return
	}

	if h.Snapshots != nil {
		snap, err := h.Snapshots.GetSnapshot(c.Request.Context(), gameID)
		if err == nil {
			c.JSON(http.StatusOK, snap)
			return
		}
		if !errors.Is(err, domain.ErrGameNotFound) {
			abortWithError(c, err)
			return
		}
	}
	abortWithError(c, domain.ErrGameNotFound)
}

func (h *GameHandler) GetLegalMoves(c *gin.Context) {
	gs, ok := h.SessionManager.GetSession(c.Param("id"))
	if !ok {
		abortWithError(c, domain.ErrGameNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moves": gs.LegalMoves()})
}

func (h *GameHandler) PlayMove(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gs, side, ok := h.seatedSession(c)
	if !ok {
		return
	}

	if _, err := gs.HandleMove(side, req.Move); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs.Snapshot())
}

func (h *GameHandler) Resign(c *gin.Context) {
	gs, side, ok := h.seatedSession(c)
	if !ok {
		return
	}

	if err := gs.Resign(side); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs.Snapshot())
}

// seatedSession resolves the session named in the path and the side the
// seat token acts for, rejecting tokens issued for another game.
func (h *GameHandler) seatedSession(c *gin.Context) (*game.Session, domain.Side, bool) {
	gameID := c.Param("id")
	claims := middleware.SeatFromContext(c)
	if claims == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, domain.NoSide, false
	}

	gs, ok := h.SessionManager.GetSession(gameID)
	if !ok {
		abortWithError(c, domain.ErrGameNotFound)
		return nil, domain.NoSide, false
	}

	side := actingSide(claims, gs.Snapshot().CurrentTurn)
	if !claims.Allows(gameID, side) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "seat token does not belong to this game"})
		return nil, domain.NoSide, false
	}
	return gs, side, true
}

// actingSide is the token's side, or the side to move for a hot-seat token.
func actingSide(claims *auth.SeatClaims, toMove domain.Side) domain.Side {
	if claims.Side != domain.NoSide {
		return claims.Side
	}
	return toMove
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/arcade/backend/internal/transport/http/middleware"
	"github.com/iamasit07/arcade/backend/internal/transport/websocket"
)

type Handlers struct {
	Games          *GameHandler
	Watch          *WatchHandler
	History        *HistoryHandler // nil when no game store is configured
	WebSocket      *websocket.Handler
	AllowedOrigins []string
}

// NewRouter registers every route on a fresh gin engine
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(h.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/games", h.Games.CreateGame)
		api.GET("/games", h.Watch.GetLiveGames)
		api.GET("/games/:id", h.Games.GetGame)
		api.GET("/games/:id/moves", h.Games.GetLegalMoves)

		seated := api.Group("/games/:id")
		seated.Use(middleware.SeatAuth())
		seated.POST("/moves", h.Games.PlayMove)
		seated.POST("/resign", h.Games.Resign)

		if h.History != nil {
			api.GET("/history", h.History.GetHistory)
			api.GET("/history/:id", h.History.GetGameDetails)
		}
	}

	if h.WebSocket != nil {
		router.GET("/ws/games/:id", h.WebSocket.HandleWebSocket)
	}

	return router
}

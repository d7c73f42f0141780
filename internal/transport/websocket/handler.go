package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/service/game"
	"github.com/iamasit07/arcade/backend/pkg/auth"
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades GET /ws/games/:id. Anyone may watch; moves need an
// init message with a seat token first.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	gameID := c.Param("id")
	gs, ok := h.SessionManager.GetSession(gameID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": domain.ErrGameNotFound.Error()})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("component", "ws").Msg("upgrade error")
		return
	}

	client := newClient(conn, gameID)
	h.ConnManager.Add(client)
	go client.writePump()

	log.Debug().Str("component", "ws").Str("gameId", gameID).Msg("connection opened")
	h.sendState(client, gs, "state")
	h.readPump(client, gs)
}

func (h *Handler) readPump(client *Client, gs *game.Session) {
	defer func() {
		h.ConnManager.Remove(client)
		log.Debug().Str("component", "ws").Str("gameId", client.gameID).Msg("connection closed")
	}()

	conn := client.conn
	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("component", "ws").Msg("client disconnected unexpectedly")
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(client, "invalid message format")
			continue
		}
		h.processMessage(client, gs, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(client *Client, gs *game.Session, msg domain.ClientMessage) {
	if msg.Token != "" {
		claims, err := auth.ValidateSeatToken(msg.Token)
		if err != nil || !claims.Allows(client.gameID, claims.Side) {
			h.sendError(client, "invalid seat token")
			return
		}
		client.seat = claims
	}

	switch msg.Type {
	case "init":
		h.sendState(client, gs, "state")

	case "make_move":
		side, ok := h.actingSide(client, gs)
		if !ok {
			return
		}
		// move_made and game_over reach this client through the broadcast
		if _, err := gs.HandleMove(side, msg.Move); err != nil {
			h.sendError(client, err.Error())
		}

	case "resign":
		side, ok := h.actingSide(client, gs)
		if !ok {
			return
		}
		if err := gs.Resign(side); err != nil {
			h.sendError(client, err.Error())
		}

	default:
		h.sendError(client, "unknown message type")
	}
}

func (h *Handler) actingSide(client *Client, gs *game.Session) (domain.Side, bool) {
	if client.seat == nil {
		h.sendError(client, "spectators cannot play")
		return domain.NoSide, false
	}
	side := client.seat.Side
	if side == domain.NoSide {
		side = gs.Snapshot().CurrentTurn
	}
	if !client.seat.Allows(client.gameID, side) {
		h.sendError(client, "invalid seat token")
		return domain.NoSide, false
	}
	return side, true
}

func (h *Handler) sendState(client *Client, gs *game.Session, kind string) {
	state := gs.Snapshot()
	msg := domain.ServerMessage{Type: kind, GameID: client.gameID, State: &state}
	if client.seat != nil {
		msg.Side = client.seat.Side
	}
	h.ConnManager.Send(client, msg)
}

func (h *Handler) sendError(client *Client, message string) {
	h.ConnManager.Send(client, domain.ServerMessage{Type: "error", GameID: client.gameID, Message: message})
}

package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/pkg/auth"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 32
)

// Client is one socket watching one game. Only writePump writes to conn.
type Client struct {
	conn   *websocket.Conn
	gameID string
	send   chan domain.ServerMessage

	// set by an init message carrying a valid seat token
	seat *auth.SeatClaims
}

func newClient(conn *websocket.Conn, gameID string) *Client {
	return &Client{conn: conn, gameID: gameID, send: make(chan domain.ServerMessage, sendBuffer)}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				log.Debug().Err(err).Str("component", "ws").Str("gameId", c.gameID).Msg("write failed")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ConnectionManager tracks the sockets watching each game. It implements
// game.Notifier.
type ConnectionManager struct {
	games map[string]map[*Client]struct{}
	mu    sync.RWMutex // protects games; sends happen under RLock so Remove can close safely
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{games: make(map[string]map[*Client]struct{})}
}

func (cm *ConnectionManager) Add(c *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	watchers, ok := cm.games[c.gameID]
	if !ok {
		watchers = make(map[*Client]struct{})
		cm.games[c.gameID] = watchers
	}
	watchers[c] = struct{}{}
}

// Remove unregisters c and closes its send channel, which stops writePump.
func (cm *ConnectionManager) Remove(c *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	watchers, ok := cm.games[c.gameID]
	if !ok {
		return
	}
	if _, ok := watchers[c]; !ok {
		return
	}
	delete(watchers, c)
	close(c.send)
	if len(watchers) == 0 {
		delete(cm.games, c.gameID)
	}
}

// Send queues a message for one client. A client whose buffer is full is
// dropped rather than blocking the game.
func (cm *ConnectionManager) Send(c *Client, msg domain.ServerMessage) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if _, ok := cm.games[c.gameID][c]; ok {
		cm.enqueueLocked(c, msg)
	}
}

// Broadcast sends msg to every connection watching gameID
func (cm *ConnectionManager) Broadcast(gameID string, msg domain.ServerMessage) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for c := range cm.games[gameID] {
		cm.enqueueLocked(c, msg)
	}
}

func (cm *ConnectionManager) enqueueLocked(c *Client, msg domain.ServerMessage) {
	select {
	case c.send <- msg:
	default:
		log.Warn().Str("component", "ws").Str("gameId", c.gameID).Msg("slow client dropped")
		go cm.Remove(c)
	}
}

// Watchers returns how many sockets are attached to gameID
func (cm *ConnectionManager) Watchers(gameID string) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.games[gameID])
}

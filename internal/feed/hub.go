package feed

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chalkline-games/repquest/internal/logger"
)

// sendBufferSize is how many pending messages a client may fall behind
// before it is dropped.
const sendBufferSize = 16

// Hub fans events out to every connected feed client. Broadcast is
// called from the game loop goroutine; clients read and write on their
// own goroutines.
type Hub struct {
	playerName string

	mu      sync.Mutex
	clients map[*client]bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub stamping events with the player's name
func NewHub(playerName string) *Hub {
	return &Hub{
		playerName: playerName,
		clients:    make(map[*client]bool),
	}
}

// ClientCount returns how many feed clients are connected
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends an event to every connected client. Clients that have
// fallen too far behind are dropped rather than blocking the game loop.
func (h *Hub) Broadcast(event Event) {
	event.Player = h.playerName
	if event.At.IsZero() {
		event.At = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal feed event", "type", event.Type, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			logger.Warning("Dropping slow feed client", "remote_addr", c.conn.RemoteAddr().String())
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// register adds a connection and starts its pump goroutines
func (h *Hub) register(conn *websocket.Conn, onClose func()) {
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	go c.writePump()
	go h.readPump(c, onClose)
}

// readPump discards inbound messages. Feed clients are listeners; the
// read loop only exists to notice the connection closing.
func (h *Hub) readPump(c *client, onClose func()) {
	defer func() {
		h.remove(c)
		c.conn.Close()
		if onClose != nil {
			onClose()
		}
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump delivers queued events until the send channel closes
func (c *client) writePump() {
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

// The hub satisfies the workout pipeline's notifier interface, so it
// can be attached directly.

// SessionComplete broadcasts a finished mini-game
func (h *Hub) SessionComplete(equipment string, score int, success bool, xp int) {
	h.Broadcast(Event{
		Type:      EventSessionComplete,
		Equipment: equipment,
		Score:     score,
		Success:   success,
		XP:        xp,
	})
}

// QuestComplete broadcasts a claimed quest
func (h *Hub) QuestComplete(name string, xp, currency int, irl bool) {
	h.Broadcast(Event{
		Type:     EventQuestComplete,
		Quest:    name,
		XP:       xp,
		Currency: currency,
		IRL:      irl,
		Success:  true,
	})
}

// LevelUp broadcasts a level gain
func (h *Hub) LevelUp(level int) {
	h.Broadcast(Event{
		Type:    EventLevelUp,
		Level:   level,
		Success: true,
	})
}

// StreakUpdate broadcasts the current IRL streak
func (h *Hub) StreakUpdate(current, best int) {
	h.Broadcast(Event{
		Type:       EventStreakUpdate,
		Streak:     current,
		BestStreak: best,
		Success:    true,
	})
}

// ItemUsed broadcasts a consumed supplement
func (h *Hub) ItemUsed(itemName string) {
	h.Broadcast(Event{
		Type:    EventItemUsed,
		Item:    itemName,
		Success: true,
	})
}

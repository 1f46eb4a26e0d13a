package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"safewalk/internal/service"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans journey events out to live watchers. Each client subscribes to a
// single journey; a journey with no watchers costs nothing.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]map[*client]struct{} // journeyID -> watchers
}

type client struct {
	conn *websocket.Conn
	send chan service.TrackingEvent
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[string]map[*client]struct{}),
	}
}

// Publish implements the event sink consumed by the tracking manager. Slow
// watchers are dropped rather than blocking the journey pipeline.
func (h *Hub) Publish(journeyID string, ev service.TrackingEvent) {
	h.mu.RLock()
	watchers := h.clients[journeyID]
	for c := range watchers {
		select {
		case c.send <- ev:
		default:
			go h.drop(journeyID, c)
		}
	}
	h.mu.RUnlock()
}

// Serve upgrades the request and streams events for one journey until the
// client disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, journeyID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := &client{
		conn: conn,
		send: make(chan service.TrackingEvent, 16),
	}

	h.mu.Lock()
	if h.clients[journeyID] == nil {
		h.clients[journeyID] = make(map[*client]struct{})
	}
	h.clients[journeyID][c] = struct{}{}
	h.mu.Unlock()

	h.logger.Info("live watcher connected", slog.String("journey_id", journeyID))

	go c.writePump()
	c.readPump(func() { h.drop(journeyID, c) })
}

func (h *Hub) drop(journeyID string, c *client) {
	h.mu.Lock()
	if watchers, ok := h.clients[journeyID]; ok {
		if _, ok := watchers[c]; ok {
			delete(watchers, c)
			close(c.send)
			if len(watchers) == 0 {
				delete(h.clients, journeyID)
			}
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// readPump discards inbound frames; the stream is one-way. It exists to
// observe close frames and pong replies.
func (c *client) readPump(onClose func()) {
	defer onClose()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Package ws pushes stage changes to connected staff panels. Panels still
// poll the HTTP API for their source of truth; the hub only nudges them to
// refresh sooner than their next polling tick.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types sent to staff panels.
const (
	EventStageUpdate = "stage_update"
	EventOrderReady  = "order_ready"
)

// Message is the envelope for every hub broadcast.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds the staff panel connections and broadcasts stage changes to
// them. Connections are registered by role so broadcasts can be scoped to
// the kitchen display or the delivery panel.
type Hub struct {
	clients map[*websocket.Conn]string
	mu      sync.Mutex
	logger  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
		logger:  logger,
	}
}

// Register adds a connection with the staff member's role.
func (h *Hub) Register(conn *websocket.Conn, role string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = role
}

// Unregister removes and closes a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ClientCount reports how many panels are connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastStageUpdate tells every panel that a stage's collection changed
// and should be re-read.
func (h *Hub) BroadcastStageUpdate(stage string) {
	h.broadcast(Message{
		Event: EventStageUpdate,
		Data:  map[string]string{"stage": stage},
	})
}

// BroadcastOrderReady tells panels that a specific order left the kitchen.
func (h *Hub) BroadcastOrderReady(orderID string) {
	h.broadcast(Message{
		Event: EventOrderReady,
		Data:  map[string]string{"orderId": orderID},
	})
}

func (h *Hub) broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal hub message", "error", err)
		return
	}

	for conn, role := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("send to panel failed, dropping connection", "role", role, "error", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

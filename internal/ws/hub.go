package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// client wraps a connection with a write lock. Broadcasts arrive from
// detection workers and the heartbeat loop concurrently, and the websocket
// protocol allows only one writer on a connection at a time.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// Hub manages WebSocket connections for real-time event streaming.
// Clients subscribe either to one camera or to the firehose ("" camera).
type Hub struct {
	// clients maps camera_id -> connections; key "" is the firehose
	clients map[string]map[*websocket.Conn]*client
	mu      sync.RWMutex
}

// NewHub creates a new event hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*websocket.Conn]*client),
	}
}

// Register adds a connection for a camera subscription
func (h *Hub) Register(cameraID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[cameraID] == nil {
		h.clients[cameraID] = make(map[*websocket.Conn]*client)
	}
	if _, ok := h.clients[cameraID][conn]; !ok {
		h.clients[cameraID][conn] = &client{conn: conn}
	}
	log.Printf("[WS] Client registered for camera %q (total: %d)", cameraID, len(h.clients[cameraID]))
}

// Unregister removes a connection
func (h *Hub) Unregister(cameraID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.clients[cameraID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, cameraID)
		}
	}
}

// HasClients reports whether anyone listens for a camera (or the firehose)
func (h *Hub) HasClients(cameraID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[cameraID]) > 0 || len(h.clients[""]) > 0
}

// ClientCount returns the total number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, conns := range h.clients {
		count += len(conns)
	}
	return count
}

// BroadcastToCamera delivers a message to a camera's subscribers and the
// firehose subscribers
func (h *Hub) BroadcastToCamera(cameraID string, message []byte) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[cameraID])+len(h.clients[""]))
	for _, c := range h.clients[cameraID] {
		targets = append(targets, c)
	}
	if cameraID != "" {
		for _, c := range h.clients[""] {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(message); err != nil {
			log.Printf("[WS] Error sending to client: %v", err)
			h.Unregister(cameraID, c.conn)
			h.Unregister("", c.conn)
			c.conn.Close()
		}
	}
}

// BroadcastAll delivers a message to every connected client
func (h *Hub) BroadcastAll(message []byte) {
	h.mu.RLock()
	targets := make([]*client, 0)
	seen := make(map[*websocket.Conn]bool)
	for _, set := range h.clients {
		for conn, c := range set {
			if !seen[conn] {
				seen[conn] = true
				targets = append(targets, c)
			}
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(message); err != nil {
			c.conn.Close()
		}
	}
}

// Send marshals a typed message and broadcasts it for the camera scope.
// An empty cameraID broadcasts to everyone.
func (h *Hub) Send(cameraID string, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WS] Error marshaling message: %v", err)
		return
	}
	if cameraID == "" {
		h.BroadcastAll(data)
		return
	}
	h.BroadcastToCamera(cameraID, data)
}

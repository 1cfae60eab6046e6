// internal/realtime/hub.go
package realtime

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Publisher is the dispatcher contract the workflow engine and scheduler
// depend on. Pushes are best-effort; the caller logs failures and moves on.
type Publisher interface {
	Publish(userID uuid.UUID, event Event) error
}

// wsConn is the subset of *websocket.Conn the hub writes to. Tests inject
// their own implementation.
type wsConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Client represents a connected WebSocket client.
type Client struct {
	UserID uuid.UUID
	conn   wsConn

	mu sync.Mutex // serializes writes to conn
}

func (c *Client) send(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(event)
}

// Hub maintains the set of active clients, keyed by user ID, plus chat room
// membership. It is handed to services as an explicit dependency; there is no
// package-level singleton.
type Hub struct {
	clients    map[uuid.UUID]*Client
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = client
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.UserID]; ok && current == client {
				delete(h.clients, client.UserID)
			}
			for roomID, members := range h.rooms {
				delete(members, client)
				if len(members) == 0 {
					delete(h.rooms, roomID)
				}
			}
			client.conn.Close()
			h.mu.Unlock()
		}
	}
}

// Publish sends an event to a specific user. A disconnected recipient is an
// error to the caller only so it can be logged; the event is simply missed.
func (h *Hub) Publish(userID uuid.UUID, event Event) error {
	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()

	if !ok {
		return fmt.Errorf("user %s not connected", userID)
	}

	return client.send(event)
}

// JoinRoom adds a client to a chat room, creating the room if needed.
func (h *Hub) JoinRoom(roomID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
}

// BroadcastRoom sends an event to every client in a room. Write failures on
// individual members are ignored; the member will drop on its next read.
func (h *Hub) BroadcastRoom(roomID string, event Event) {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[roomID]))
	for client := range h.rooms[roomID] {
		members = append(members, client)
	}
	h.mu.RUnlock()

	for _, client := range members {
		_ = client.send(event)
	}
}

// internal/realtime/handler.go
package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pingPeriod   = 25 * time.Second
	writeTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatStore persists a chat message before it is broadcast, so room history
// survives disconnects.
type ChatStore interface {
	Save(ctx context.Context, senderID uuid.UUID, roomID, content string) error
}

// inboundMessage is what a connected client may send: joining a room or
// posting a chat message into one.
type inboundMessage struct {
	Type    string `json:"type"`
	RoomID  string `json:"room_id"`
	Content string `json:"content"`
}

// Handler upgrades HTTP connections, authenticates them, and wires clients
// into the hub.
type Handler struct {
	hub    *Hub
	tokens *auth.TokenManager
	chat   ChatStore
}

func NewHandler(hub *Hub, tokens *auth.TokenManager, chat ChatStore) *Handler {
	return &Handler{hub: hub, tokens: tokens, chat: chat}
}

// ServeWS handles the WebSocket connection. The token travels as a query
// parameter because browsers cannot set headers on WebSocket upgrades.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	claims, err := h.tokens.Validate(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	identity, err := claims.Identity()
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		UserID: identity.UserID,
		conn:   conn,
	}

	h.hub.register <- client

	_ = client.send(Event{
		Type:    EventConnected,
		Message: "WebSocket connection established",
	})

	go h.keepalive(conn)
	go h.readLoop(client, conn)
}

func (h *Handler) keepalive(conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		deadline := time.Now().Add(writeTimeout)
		if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
			return
		}
	}
}

func (h *Handler) readLoop(client *Client, conn *websocket.Conn) {
	defer func() {
		h.hub.unregister <- client
	}()

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "join":
			if msg.RoomID != "" {
				h.hub.JoinRoom(msg.RoomID, client)
			}
		case "chat":
			if msg.RoomID == "" || msg.Content == "" {
				continue
			}
			h.hub.JoinRoom(msg.RoomID, client)
			if err := h.chat.Save(context.Background(), client.UserID, msg.RoomID, msg.Content); err != nil {
				slog.Error("persisting chat message", "room", msg.RoomID, "error", err)
				continue
			}
			h.hub.BroadcastRoom(msg.RoomID, Event{
				Type:    EventChatMessage,
				Message: msg.Content,
				Data: map[string]string{
					"room_id":   msg.RoomID,
					"sender_id": client.UserID.String(),
				},
			})
		}
	}
}

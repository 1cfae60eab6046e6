package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu     sync.Mutex
	events []Event
	closed bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, v.(Event))
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestHubPublish(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	userID := uuid.New()
	conn := &fakeConn{}
	client := &Client{UserID: userID, conn: conn}

	hub.register <- client
	waitFor(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.clients[userID] != nil
	})

	event := Event{Type: EventApprovalRequest, Title: "Approval Required"}
	require.NoError(t, hub.Publish(userID, event))

	received := conn.received()
	require.Len(t, received, 1)
	assert.Equal(t, EventApprovalRequest, received[0].Type)
}

func TestHubPublishDisconnected(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	err := hub.Publish(uuid.New(), Event{Type: EventTaskOverdue})
	assert.ErrorContains(t, err, "not connected")
}

func TestHubUnregisterClosesAndRemoves(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	userID := uuid.New()
	conn := &fakeConn{}
	client := &Client{UserID: userID, conn: conn}

	hub.register <- client
	waitFor(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.clients[userID] != nil
	})

	hub.JoinRoom("deal-review", client)

	hub.unregister <- client
	waitFor(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.clients[userID] == nil
	})

	conn.mu.Lock()
	closed := conn.closed
	conn.mu.Unlock()
	assert.True(t, closed)

	hub.mu.RLock()
	_, roomLives := hub.rooms["deal-review"]
	hub.mu.RUnlock()
	assert.False(t, roomLives)

	assert.Error(t, hub.Publish(userID, Event{Type: EventChatMessage}))
}

func TestHubRestablishedConnectionWins(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	userID := uuid.New()
	first := &Client{UserID: userID, conn: &fakeConn{}}
	secondConn := &fakeConn{}
	second := &Client{UserID: userID, conn: secondConn}

	hub.register <- first
	hub.register <- second
	waitFor(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.clients[userID] == second
	})

	// Unregistering the stale client must not evict the live one.
	hub.unregister <- first
	waitFor(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		_, ok := hub.clients[userID]
		return ok
	})

	require.NoError(t, hub.Publish(userID, Event{Type: EventConnected}))
	assert.Len(t, secondConn.received(), 1)
}

func TestBroadcastRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	connA := &fakeConn{}
	connB := &fakeConn{}
	outsider := &fakeConn{}
	clientA := &Client{UserID: uuid.New(), conn: connA}
	clientB := &Client{UserID: uuid.New(), conn: connB}
	clientC := &Client{UserID: uuid.New(), conn: outsider}

	hub.JoinRoom("org-chat", clientA)
	hub.JoinRoom("org-chat", clientB)
	hub.JoinRoom("other", clientC)

	hub.BroadcastRoom("org-chat", Event{Type: EventChatMessage, Message: "hello"})

	assert.Len(t, connA.received(), 1)
	assert.Len(t, connB.received(), 1)
	assert.Empty(t, outsider.received())
}

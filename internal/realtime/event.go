// internal/realtime/event.go
package realtime

// Event types pushed over the socket.
const (
	EventConnected       = "connected"
	EventApprovalRequest = "approval_request"
	EventApprovalResult  = "approval_result"
	EventTaskOverdue     = "task_overdue"
	EventChatMessage     = "chat_message"
)

// Event is a message sent over WebSocket. Delivery is fire-and-forget and
// at-most-once; durable state always lives in the database rows, so a
// disconnected recipient reconciles by polling.
type Event struct {
	Type     string      `json:"type"`
	Title    string      `json:"title,omitempty"`
	Message  string      `json:"message"`
	ImageURL string      `json:"image_url,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// internal/model/chat.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is persisted before the room broadcast so history survives
// disconnects; delivery itself is best-effort.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoomID    string    `gorm:"type:text;not null;index" json:"room_id"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

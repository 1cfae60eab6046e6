// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a durable message addressed to one user, raised by the
// overdue sweep. TaskID is set for sweep notifications and backs the optional
// re-notification de-duplication.
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TaskID    *uuid.UUID `gorm:"type:uuid;index" json:"task_id,omitempty"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	IsRead    bool       `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}

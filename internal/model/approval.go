// internal/model/approval.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ReceiverRole names the approval channel a notification was routed to.
// At most one live row exists per role per sales card.
type ReceiverRole string

const (
	ReceiverSupervisor ReceiverRole = "supervisor"
	ReceiverAdmin      ReceiverRole = "admin"
)

// Sibling returns the other approval channel for the same sales card.
func (r ReceiverRole) Sibling() ReceiverRole {
	if r == ReceiverSupervisor {
		return ReceiverAdmin
	}
	return ReceiverSupervisor
}

// ApprovalNotification is the durable record of one pending/approved/rejected
// order-confirmation request routed to one recipient role. The acting row is
// updated in place so the decision survives as an audit record; the sibling
// row is deleted when either role acts.
type ApprovalNotification struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SalesCardID  uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uniq_pending_channel,where:status = 'pending'" json:"sales_card_id"`
	SenderID     uuid.UUID      `gorm:"type:uuid;not null" json:"sender_id"`
	ReceiverRole ReceiverRole   `gorm:"type:text;not null;uniqueIndex:uniq_pending_channel,where:status = 'pending'" json:"receiver_role"`
	ReceiverID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"receiver_id"`
	ImageURL     string         `gorm:"type:text" json:"image_url"`
	Message      string         `gorm:"type:text;not null" json:"message"`
	Status       ApprovalStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	SalesCard *SalesCard `gorm:"foreignKey:SalesCardID" json:"sales_card,omitempty"`
}

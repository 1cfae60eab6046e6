// internal/model/salescard.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Pipeline stages for a sales card. Stage transitions are free-form except
// StatusOrderConfirmed, which is gated behind the approval workflow.
const (
	StatusNewLead        = 1
	StatusContacted      = 2
	StatusNegotiation    = 3
	StatusOrderConfirmed = 4
)

// SalesStatus is the lookup table backing SalesCard.StatusID.
type SalesStatus struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`
}

type SalesCard struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	StatusID    int       `gorm:"not null;default:1" json:"status_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Salesperson *User        `gorm:"foreignKey:UserID" json:"salesperson,omitempty"`
	Customer    *Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status      *SalesStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}

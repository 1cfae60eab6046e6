// internal/model/task.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "Pending"
	TaskCompleted TaskStatus = "Completed"
)

// Task is the follow-up work item created alongside every sales card.
type Task struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SalesCardID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"sales_card_id"`
	SalespersonID uuid.UUID  `gorm:"type:uuid;not null;index" json:"salesperson_id"`
	Status        TaskStatus `gorm:"type:text;not null;default:'Pending'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Followups []TaskFollowup `gorm:"foreignKey:TaskID" json:"followups,omitempty"`
}

// TaskFollowup is one checkpoint in a task's follow-up chain. Rows are
// append-only; the most recently created row is the current follow-up.
type TaskFollowup struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	Iteration    string    `gorm:"type:text;not null" json:"iteration"`
	FollowupDate time.Time `gorm:"not null" json:"followup_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// FollowupIteration is the per-organization cadence configuration. Iterations
// are advanced by Position, not by parsing the label, so labels past F9 work.
type FollowupIteration struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null;index:idx_org_iteration,unique" json:"org_id"`
	Iteration string    `gorm:"type:text;not null;index:idx_org_iteration,unique" json:"iteration"`
	Days      int       `gorm:"not null" json:"days"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultFirstFollowupDays applies when an organization has no configured
// iterations at all: the first follow-up lands five days out.
const DefaultFirstFollowupDays = 5

// DefaultFirstIteration labels the follow-up created with a new task.
const DefaultFirstIteration = "F1"

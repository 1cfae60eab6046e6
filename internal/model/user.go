// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSuperAdmin  Role = "superAdmin"
	RoleAdmin       Role = "admin"
	RoleSupervisor  Role = "supervisor"
	RoleSalesperson Role = "salesperson"
)

// Scoped reports whether the role is confined to a single organization.
// superAdmin is the only unscoped role.
func (r Role) Scoped() bool {
	return r != RoleSuperAdmin
}

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"type:text;not null" json:"-"`
	FirstName    string     `gorm:"type:text;not null" json:"first_name"`
	LastName     string     `gorm:"type:text" json:"last_name"`
	Phone        string     `gorm:"type:text" json:"phone"`
	Role         Role       `gorm:"type:text;not null;index" json:"role"`
	OrgID        *uuid.UUID `gorm:"type:uuid;index" json:"org_id,omitempty"`
	AdminID      *uuid.UUID `gorm:"type:uuid" json:"admin_id,omitempty"`
	SupervisorID *uuid.UUID `gorm:"type:uuid" json:"supervisor_id,omitempty"`
	IsDeleted    bool       `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
	Admin        *User         `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	Supervisor   *User         `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`
}

// RegistrationKey is a single-use key handed to an operator out of band. It
// gates superAdmin self-registration, the only account creation path that has
// no authenticated caller above it.
type RegistrationKey struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Key       string     `gorm:"type:text;uniqueIndex;not null"`
	IsUsed    bool       `gorm:"not null;default:false"`
	UsedAt    *time.Time `gorm:"type:timestamptz"`
	CreatedAt time.Time
}

// PasswordResetToken stores a short-lived OTP issued for a password reset.
type PasswordResetToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:text;not null"`
	OTP       string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

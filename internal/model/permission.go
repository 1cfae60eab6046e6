// internal/model/permission.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Permission ids are stable lookup values; read is mandatory on every grant.
const (
	PermissionRead   int64 = 1
	PermissionCreate int64 = 2
	PermissionUpdate int64 = 3
	PermissionDelete int64 = 4
)

// Module is a grantable surface of the application.
type Module struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"type:text;uniqueIndex;not null" json:"name"`
}

// Permission is a grantable action within a module.
type Permission struct {
	ID   int64  `gorm:"primary_key" json:"id"`
	Name string `gorm:"type:text;uniqueIndex;not null" json:"name"`
}

// ModulePermission grants one user a set of permissions on one module. One row
// per user and module; assignment replaces the whole set.
type ModulePermission struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uniq_user_module" json:"user_id"`
	ModuleID      int           `gorm:"not null;uniqueIndex:uniq_user_module" json:"module_id"`
	PermissionIDs pq.Int64Array `gorm:"type:integer[];not null" json:"permission_ids"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Module *Module `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
}

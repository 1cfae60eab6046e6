// internal/service/permission.go
package service

import (
	"context"
	"fmt"

	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PermissionService manages per-user module grants layered on top of role
// scoping. A grant always carries the read permission; assignment replaces the
// whole set for the user and module.
type PermissionService struct {
	perms repository.ModulePermissionRepositoryIface
}

func NewPermissionService(perms repository.ModulePermissionRepositoryIface) *PermissionService {
	return &PermissionService{perms: perms}
}

type AssignPermissionsInput struct {
	UserID        uuid.UUID
	ModuleID      int
	PermissionIDs []int64
}

// Assign grants the permission set, creating or replacing the user's grant on
// the module.
func (s *PermissionService) Assign(ctx context.Context, input AssignPermissionsInput) (*model.ModulePermission, error) {
	if err := requireRead(input.PermissionIDs); err != nil {
		return nil, err
	}

	grant := &model.ModulePermission{
		UserID:        input.UserID,
		ModuleID:      input.ModuleID,
		PermissionIDs: pq.Int64Array(input.PermissionIDs),
	}
	if err := s.perms.Upsert(ctx, grant); err != nil {
		return nil, fmt.Errorf("assigning permissions: %w", err)
	}
	return grant, nil
}

// ListForUser returns every module grant of one user.
func (s *PermissionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.ModulePermission, error) {
	grants, err := s.perms.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(grants) == 0 {
		return nil, domain.ErrPermissionNotFound
	}
	return grants, nil
}

// Update replaces the permission set of an existing grant.
func (s *PermissionService) Update(ctx context.Context, userID uuid.UUID, moduleID int, permissionIDs []int64) error {
	if err := requireRead(permissionIDs); err != nil {
		return err
	}
	return s.perms.UpdatePermissions(ctx, userID, moduleID, pq.Int64Array(permissionIDs))
}

// Remove revokes the user's grant on the module.
func (s *PermissionService) Remove(ctx context.Context, userID uuid.UUID, moduleID int) error {
	return s.perms.Delete(ctx, userID, moduleID)
}

func requireRead(permissionIDs []int64) error {
	for _, id := range permissionIDs {
		if id == model.PermissionRead {
			return nil
		}
	}
	return domain.ErrReadPermissionRequired
}

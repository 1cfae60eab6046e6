// internal/repository/permission.go
package repository

import (
	"context"
	"fmt"

	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ModulePermissionRepositoryIface interface {
	Upsert(ctx context.Context, grant *model.ModulePermission) error
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*model.ModulePermission, error)
	UpdatePermissions(ctx context.Context, userID uuid.UUID, moduleID int, permissionIDs pq.Int64Array) error
	Delete(ctx context.Context, userID uuid.UUID, moduleID int) error
}

type ModulePermissionRepository struct {
	db *gorm.DB
}

func NewModulePermissionRepository(db *gorm.DB) *ModulePermissionRepository {
	return &ModulePermissionRepository{db: db}
}

// Upsert inserts the grant or replaces the permission set of an existing one.
func (r *ModulePermissionRepository) Upsert(ctx context.Context, grant *model.ModulePermission) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"permission_ids", "updated_at"}),
		}).
		Create(grant)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert module permission: %w", result.Error)
	}
	return nil
}

func (r *ModulePermissionRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*model.ModulePermission, error) {
	var grants []*model.ModulePermission
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Module").
		Where("user_id = ?", userID).
		Order("module_id").
		Find(&grants)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find module permissions: %w", result.Error)
	}
	return grants, nil
}

// UpdatePermissions replaces the permission set of an existing grant only; a
// missing row is reported rather than created.
func (r *ModulePermissionRepository) UpdatePermissions(ctx context.Context, userID uuid.UUID, moduleID int, permissionIDs pq.Int64Array) error {
	result := r.db.WithContext(ctx).
		Model(&model.ModulePermission{}).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Update("permission_ids", permissionIDs)
	if result.Error != nil {
		return fmt.Errorf("failed to update module permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPermissionNotFound
	}
	return nil
}

func (r *ModulePermissionRepository) Delete(ctx context.Context, userID uuid.UUID, moduleID int) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Delete(&model.ModulePermission{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete module permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPermissionNotFound
	}
	return nil
}

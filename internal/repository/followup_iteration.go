// internal/repository/followup_iteration.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowupIterationRepositoryIface interface {
	Create(ctx context.Context, iteration *model.FollowupIteration) error
	FindByID(ctx context.Context, id, orgID uuid.UUID) (*model.FollowupIteration, error)
	Update(ctx context.Context, iteration *model.FollowupIteration) error
	Delete(ctx context.Context, id, orgID uuid.UUID) error
	Exists(ctx context.Context, orgID uuid.UUID, label string) (bool, error)
	FindAllByOrg(ctx context.Context, orgID uuid.UUID) ([]model.FollowupIteration, error)
}

type FollowupIterationRepository struct {
	db *gorm.DB
}

func NewFollowupIterationRepository(db *gorm.DB) *FollowupIterationRepository {
	return &FollowupIterationRepository{db: db}
}

func (r *FollowupIterationRepository) Create(ctx context.Context, iteration *model.FollowupIteration) error {
	result := r.db.WithContext(ctx).Create(iteration)
	if result.Error != nil {
		return fmt.Errorf("failed to create followup iteration: %w", result.Error)
	}
	return nil
}

func (r *FollowupIterationRepository) FindByID(ctx context.Context, id, orgID uuid.UUID) (*model.FollowupIteration, error) {
	var iteration model.FollowupIteration
	result := r.db.WithContext(ctx).First(&iteration, "id = ? AND org_id = ?", id, orgID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIterationNotFound
		}
		return nil, fmt.Errorf("failed to find followup iteration: %w", result.Error)
	}
	return &iteration, nil
}

func (r *FollowupIterationRepository) Update(ctx context.Context, iteration *model.FollowupIteration) error {
	result := r.db.WithContext(ctx).Save(iteration)
	if result.Error != nil {
		return fmt.Errorf("failed to update followup iteration: %w", result.Error)
	}
	return nil
}

func (r *FollowupIterationRepository) Delete(ctx context.Context, id, orgID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", id, orgID).
		Delete(&model.FollowupIteration{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete followup iteration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrIterationNotFound
	}
	return nil
}

func (r *FollowupIterationRepository) Exists(ctx context.Context, orgID uuid.UUID, label string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FollowupIteration{}).
		Where("org_id = ? AND iteration = ?", orgID, label).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to count followup iterations: %w", result.Error)
	}
	return count > 0, nil
}

// FindAllByOrg returns the organization's cadence ordered by position, which
// is the order the scheduler advances through.
func (r *FollowupIterationRepository) FindAllByOrg(ctx context.Context, orgID uuid.UUID) ([]model.FollowupIteration, error) {
	var iterations []model.FollowupIteration
	result := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("position ASC").
		Find(&iterations)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find followup iterations: %w", result.Error)
	}
	return iterations, nil
}

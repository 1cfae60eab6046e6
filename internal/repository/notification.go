// internal/repository/notification.go
package repository

import (
	"context"
	"fmt"

	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryIface interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindAllByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	ExistsUnreadForTask(ctx context.Context, taskID uuid.UUID) (bool, error)
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	result := r.db.WithContext(ctx).Create(notification)
	if result.Error != nil {
		return fmt.Errorf("failed to create notification: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) FindAllByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Notification, error) {
	var notifications []*model.Notification
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", result.Error)
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistsUnreadForTask backs the sweep's optional de-duplication: while an
// unread overdue notice for the task is still sitting in the supervisor's
// inbox, no further one is raised.
func (r *NotificationRepository) ExistsUnreadForTask(ctx context.Context, taskID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("task_id = ? AND is_read = FALSE", taskID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to count notifications: %w", result.Error)
	}
	return count > 0, nil
}

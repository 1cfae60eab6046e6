// internal/service/notification.go
package service

import (
	"context"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

type NotificationService struct {
	notifications repository.NotificationRepositoryIface
}

func NewNotificationService(notifications repository.NotificationRepositoryIface) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) ListMine(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.notifications.FindAllByUser(ctx, userID, offset, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifications.MarkRead(ctx, id, userID)
}

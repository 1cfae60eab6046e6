// internal/repository/chat.go
package repository

import (
	"context"
	"fmt"

	"github.com/dealdesk/dealdesk/internal/model"
	"gorm.io/gorm"
)

type ChatMessageRepositoryIface interface {
	Create(ctx context.Context, message *model.ChatMessage) error
	FindAllByRoom(ctx context.Context, roomID string, limit int) ([]*model.ChatMessage, error)
}

type ChatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *model.ChatMessage) error {
	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		return fmt.Errorf("failed to create chat message: %w", result.Error)
	}
	return nil
}

func (r *ChatMessageRepository) FindAllByRoom(ctx context.Context, roomID string, limit int) ([]*model.ChatMessage, error) {
	var messages []*model.ChatMessage
	result := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find chat messages: %w", result.Error)
	}
	return messages, nil
}

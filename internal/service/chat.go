// internal/service/chat.go
package service

import (
	"context"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// ChatService persists room messages; it satisfies the realtime handler's
// store so every broadcast message lands in history first.
type ChatService struct {
	messages repository.ChatMessageRepositoryIface
}

func NewChatService(messages repository.ChatMessageRepositoryIface) *ChatService {
	return &ChatService{messages: messages}
}

func (s *ChatService) Save(ctx context.Context, senderID uuid.UUID, roomID, content string) error {
	return s.messages.Create(ctx, &model.ChatMessage{
		RoomID:   roomID,
		SenderID: senderID,
		Content:  content,
	})
}

func (s *ChatService) History(ctx context.Context, roomID string, limit int) ([]*model.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.messages.FindAllByRoom(ctx, roomID, limit)
}

package repository

import (
	"context"

	"socialnet/backend/internal/models"

	"gorm.io/gorm"
)

// GormChatMessageStore implements ChatMessageStore on top of gorm.
type GormChatMessageStore struct {
	DB *gorm.DB
}

var _ ChatMessageStore = (*GormChatMessageStore)(nil)

func (s *GormChatMessageStore) Create(ctx context.Context, m *models.ChatMessage) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormChatMessageStore) Between(ctx context.Context, a, b uint) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.DB.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Preload("Sender").Preload("Receiver").
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

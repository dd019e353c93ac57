package service

import (
	"context"
	"strings"

	"socialnet/backend/internal/apperr"
	"socialnet/backend/internal/chat"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/repository"
)

// ChatService authorizes chat rooms and persists messages. Room-membership
// authorization happens before any message exchange: a connection to a room
// the caller is not part of, or whose pair is not in the Friends state, is
// rejected at connect time.
type ChatService struct {
	Users         repository.UserStore
	Messages      repository.ChatMessageStore
	Relationships repository.RelationshipStore
}

// AuthorizeRoom validates a room name for callerID and returns the other
// participant's id. Malformed names, rooms the caller is not a member of,
// and pairs that are not friends all fail with the uniform invalid-request
// error.
func (s *ChatService) AuthorizeRoom(ctx context.Context, callerID uint, roomName string) (uint, error) {
	low, high, err := chat.ParseRoomName(roomName)
	if err != nil {
		return 0, err
	}
	if callerID != low && callerID != high {
		return 0, apperr.ErrInvalidRequest
	}
	friends, err := s.Relationships.AreFriends(ctx, low, high)
	if err != nil {
		return 0, err
	}
	if !friends {
		return 0, apperr.ErrInvalidRequest
	}
	if callerID == low {
		return high, nil
	}
	return low, nil
}

// SaveMessage persists one chat message. Broadcast must only happen after
// this returns without error.
func (s *ChatService) SaveMessage(ctx context.Context, senderID, receiverID uint, content string) (models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ChatMessage{}, apperr.NewValidationError(map[string]string{
			"message": "must not be empty",
		})
	}
	if len(content) > models.MaxChatMessageLen {
		return models.ChatMessage{}, apperr.NewValidationError(map[string]string{
			"message": "too long",
		})
	}

	msg := models.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.Messages.Create(ctx, &msg); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// History returns the full message history between the caller and a friend,
// oldest first. Non-friends get the uniform invalid-request error, so the
// history path and the socket path gate identically.
func (s *ChatService) History(ctx context.Context, callerID, otherID uint) ([]models.ChatMessage, error) {
	friends, err := s.AreFriends(ctx, callerID, otherID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, apperr.ErrInvalidRequest
	}
	return s.Messages.Between(ctx, callerID, otherID)
}

func (s *ChatService) AreFriends(ctx context.Context, a, b uint) (bool, error) {
	if a == b {
		return false, nil
	}
	low, high := canonicalPair(a, b)
	return s.Relationships.AreFriends(ctx, low, high)
}

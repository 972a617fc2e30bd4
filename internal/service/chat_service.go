package service

import (
	"context"
	"fmt"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
)

// ChatService — чтение ленты сообщений. Запись идёт только через AccessService.AdmitSend.
type ChatService struct {
	rooms    storage.RoomRepository
	messages storage.MessageRepository
	pageSize int
}

func NewChatService(rooms storage.RoomRepository, messages storage.MessageRepository, pageSize int) *ChatService {
	return &ChatService{rooms: rooms, messages: messages, pageSize: pageSize}
}

// ListMessages возвращает историю комнаты, новые первыми. after: курсор предыдущей страницы.
func (s *ChatService) ListMessages(ctx context.Context, roomID, after string, limit int) ([]domain.Message, string, error) {
	if _, err := s.rooms.GetRoom(ctx, roomID); err != nil {
		return nil, "", fmt.Errorf("roomRepo.Get: %w", err)
	}
	if limit <= 0 {
		limit = s.pageSize
	}

	msgs, next, err := s.messages.ListMessages(ctx, roomID, after, storage.ClampLimit(limit))
	if err != nil {
		return nil, "", fmt.Errorf("chatRepo.History: %w", err)
	}
	return msgs, next, nil
}

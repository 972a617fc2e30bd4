package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"

	"github.com/google/uuid"
)

type RoomService struct {
	rooms storage.RoomRepository
	now   Clock
}

func NewRoomService(rooms storage.RoomRepository, now Clock) *RoomService {
	return &RoomService{rooms: rooms, now: now}
}

// CreateRoom создаёт комнату с геофенсом вокруг center. Владелец — вызывающий пользователь.
func (s *RoomService) CreateRoom(ctx context.Context, owner, name string, center domain.Coordinate, radius domain.RadiusClass) (*domain.Room, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, domain.ErrUnauthenticated
	}

	room, err := domain.NewRoom(uuid.NewString(), owner, name, center, radius, s.now.stamp())
	if err != nil {
		return nil, err
	}

	if err := s.rooms.CreateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("roomRepo.Create: %w", err)
	}
	return room, nil
}

// GetRoom возвращает комнату по ID.
func (s *RoomService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.rooms.GetRoom(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("roomRepo.Get: %w", err)
	}
	return room, nil
}

// ListRooms возвращает список комнат с курсорной пагинацией, новые первыми.
func (s *RoomService) ListRooms(ctx context.Context, limit int, cursor string) ([]domain.Room, string, error) {
	rooms, next, err := s.rooms.ListRooms(ctx, storage.ClampLimit(limit), cursor)
	if err != nil {
		return nil, "", fmt.Errorf("roomRepo.List: %w", err)
	}
	return rooms, next, nil
}

func (s *RoomService) ListOwnedRooms(ctx context.Context, owner string) ([]domain.Room, error) {
	rooms, err := s.rooms.ListRoomsByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("roomRepo.ListByOwner: %w", err)
	}
	return rooms, nil
}

// ListVisitors: все, кто хоть раз писал в комнату.
func (s *RoomService) ListVisitors(ctx context.Context, roomID string) ([]string, error) {
	visitors, err := s.rooms.ListVisitors(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("roomRepo.ListVisitors: %w", err)
	}
	return visitors, nil
}

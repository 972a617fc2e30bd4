package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"

	"golang.org/x/sync/singleflight"
)

type NearbyRoom struct {
	Room domain.Room
	// DistanceKm округлено до 2 знаков, только для показа.
	DistanceKm float64

	exactKm float64
}

type DiscoveryService struct {
	rooms storage.RoomRepository
	group singleflight.Group
}

func NewDiscoveryService(rooms storage.RoomRepository) *DiscoveryService {
	return &DiscoveryService{rooms: rooms}
}

// FindAvailableRooms возвращает комнаты, чей геофенс содержит point, ближайшие первыми.
// С радиусом сравнивается неокруглённое расстояние.
func (s *DiscoveryService) FindAvailableRooms(ctx context.Context, point domain.Coordinate) ([]NearbyRoom, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.candidates(ctx, point)
	if err != nil {
		return nil, fmt.Errorf("discovery candidates: %w", err)
	}

	out := make([]NearbyRoom, 0)
	for i := range candidates {
		d, ok := candidates[i].Covers(point)
		if !ok {
			continue
		}
		out = append(out, NearbyRoom{
			Room:       candidates[i],
			DistanceKm: domain.RoundKm(d),
			exactKm:    d,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].exactKm != out[j].exactKm {
			return out[i].exactKm < out[j].exactKm
		}
		return out[i].Room.ID < out[j].Room.ID
	})
	return out, nil
}

// candidates — комнаты, которые могут покрывать точку. Одинаковые
// одновременные запросы склеиваются; результат общий и только для чтения.
// Общий запрос не наследует отмену ни одного из ждущих: каждый вызывающий
// перестаёт ждать по своему ctx, остальные получают результат.
func (s *DiscoveryService) candidates(ctx context.Context, point domain.Coordinate) ([]domain.Room, error) {
	box, ok := domain.BoundingBoxAround(point, domain.MaxRadiusKm)
	key := "all"
	if ok {
		key = box.String()
	}

	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		if ok {
			return s.rooms.RoomsWithin(shared, box)
		}
		return s.rooms.AllRooms(shared)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.Room), nil
	}
}

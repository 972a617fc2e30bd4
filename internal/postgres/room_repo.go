package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"

	"github.com/jackc/pgx/v5"
)

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var (
		rm     domain.Room
		radius string
	)
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Owner,
		&rm.Center.Lat,
		&rm.Center.Lng,
		&radius,
		&rm.CreatedAt,
		&rm.Visitors,
	)
	if err != nil {
		return nil, err
	}
	rm.Radius = domain.RadiusClass(radius)
	rm.CreatedAt = rm.CreatedAt.UTC()
	if rm.Visitors == nil {
		rm.Visitors = []string{}
	}
	return &rm, nil
}

func (r *repo) queryRooms(ctx context.Context, sql string, args ...any) ([]domain.Room, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *rm)
	}
	return rooms, rows.Err()
}

func (r *repo) CreateRoom(ctx context.Context, room *domain.Room) error {
	_, err := r.q.Exec(ctx, queryCreateRoom,
		room.ID,
		room.Name,
		room.Owner,
		room.Center.Lat,
		room.Center.Lng,
		string(room.Radius),
		room.CreatedAt,
	)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *repo) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	rm, err := scanRoom(r.q.QueryRow(ctx, queryGetRoom, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (r *repo) ListRooms(ctx context.Context, limit int, cursorStr string) ([]domain.Room, string, error) {
	cur, err := storage.DecodeCursor(cursorStr)
	if err != nil {
		return nil, "", err
	}
	limit = storage.ClampLimit(limit)

	createdAt, id := cursorArgs(cur)
	rooms, err := r.queryRooms(ctx, queryListRooms, createdAt, id, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list rooms: %w", err)
	}

	var next string
	if len(rooms) > 0 {
		last := rooms[len(rooms)-1]
		next = storage.NextCursor(len(rooms), limit, last.CreatedAt, last.ID)
	}
	return rooms, next, nil
}

func (r *repo) ListRoomsByOwner(ctx context.Context, owner string) ([]domain.Room, error) {
	return r.queryRooms(ctx, queryListRoomsByOwner, owner)
}

func (r *repo) RoomsWithin(ctx context.Context, box domain.BoundingBox) ([]domain.Room, error) {
	return r.queryRooms(ctx, queryRoomsWithin, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
}

func (r *repo) AllRooms(ctx context.Context) ([]domain.Room, error) {
	return r.queryRooms(ctx, queryAllRooms)
}

func (r *repo) AddVisitor(ctx context.Context, roomID, userID string) error {
	if _, err := r.q.Exec(ctx, queryAddVisitor, roomID, userID); err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *repo) ListVisitors(ctx context.Context, roomID string) ([]string, error) {
	rm, err := r.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return rm.Visitors, nil
}

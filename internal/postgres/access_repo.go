package postgres

import (
	"context"
	"errors"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"

	"github.com/jackc/pgx/v5"
)

func scanAccess(row pgx.Row) (*domain.AccessRecord, error) {
	var rec domain.AccessRecord
	if err := row.Scan(&rec.UserID, &rec.RoomID, &rec.FirstAccessAt); err != nil {
		return nil, err
	}
	rec.FirstAccessAt = rec.FirstAccessAt.UTC()
	return &rec, nil
}

func (r *repo) GetAccess(ctx context.Context, userID, roomID string) (*domain.AccessRecord, error) {
	rec, err := scanAccess(r.q.QueryRow(ctx, queryGetAccess, userID, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// CreateAccessIfAbsent опирается на первичный ключ (user_id, room_id):
// из двух параллельных вставок побеждает одна, вторая читает её запись.
func (r *repo) CreateAccessIfAbsent(ctx context.Context, rec domain.AccessRecord) (*domain.AccessRecord, bool, error) {
	stored, err := scanAccess(r.q.QueryRow(ctx, queryInsertAccessIfAbsent, rec.UserID, rec.RoomID, rec.FirstAccessAt))
	if err == nil {
		return stored, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, mapPgError(err)
	}

	existing, err := r.GetAccess(ctx, rec.UserID, rec.RoomID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

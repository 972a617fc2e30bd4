package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
)

const roomColumns = `
	r.id, r.name, r.owner_id, r.center_lat, r.center_lng, r.radius, r.created_at,
	(SELECT json_group_array(v.user_id) FROM (
		SELECT user_id FROM room_visitors WHERE room_id = r.id ORDER BY rowid
	) v)`

const (
	queryCreateRoom = `
		INSERT INTO rooms (id, name, owner_id, center_lat, center_lng, radius, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	queryGetRoom   = `SELECT ` + roomColumns + ` FROM rooms r WHERE r.id = ?`
	queryListRooms = `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE (?1 IS NULL OR r.created_at < ?1 OR (r.created_at = ?1 AND r.id < ?2))
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ?3`
	queryListRoomsByOwner = `SELECT ` + roomColumns + ` FROM rooms r WHERE r.owner_id = ? ORDER BY r.created_at DESC, r.id DESC`
	queryRoomsWithin      = `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE r.center_lat BETWEEN ? AND ? AND r.center_lng BETWEEN ? AND ?
		ORDER BY r.created_at DESC, r.id DESC`
	queryAllRooms   = `SELECT ` + roomColumns + ` FROM rooms r ORDER BY r.created_at DESC, r.id DESC`
	queryAddVisitor = `INSERT INTO room_visitors (room_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`

	queryGetAccess    = `SELECT user_id, room_id, first_access_at FROM room_access WHERE user_id = ? AND room_id = ?`
	queryInsertAccess = `
		INSERT INTO room_access (user_id, room_id, first_access_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id, room_id) DO NOTHING`

	queryAppendMessage = `INSERT INTO room_messages (id, room_id, sender_id, body, created_at) VALUES (?, ?, ?, ?, ?)`
	queryListMessages  = `
		SELECT id, room_id, sender_id, body, created_at
		FROM room_messages
		WHERE room_id = ?1
		  AND (?2 IS NULL OR created_at < ?2 OR (created_at = ?2 AND id < ?3))
		ORDER BY created_at DESC, id DESC
		LIMIT ?4`
	queryCountMessages = `SELECT COUNT(*) FROM room_messages WHERE room_id = ?`
)

type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(row scanner) (*domain.Room, error) {
	var (
		rm        domain.Room
		radius    string
		createdAt int64
		visitors  string
	)
	if err := row.Scan(&rm.ID, &rm.Name, &rm.Owner, &rm.Center.Lat, &rm.Center.Lng, &radius, &createdAt, &visitors); err != nil {
		return nil, err
	}
	rm.Radius = domain.RadiusClass(radius)
	rm.CreatedAt = fromMicros(createdAt)
	rm.Visitors = []string{}
	if visitors != "" {
		if err := json.Unmarshal([]byte(visitors), &rm.Visitors); err != nil {
			return nil, fmt.Errorf("decode visitors: %w", err)
		}
	}
	return &rm, nil
}

func (r *repo) queryRooms(ctx context.Context, query string, args ...any) ([]domain.Room, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
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
	_, err := r.q.ExecContext(ctx, queryCreateRoom,
		room.ID, room.Name, room.Owner, room.Center.Lat, room.Center.Lng, string(room.Radius), toMicros(room.CreatedAt))
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

func (r *repo) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	rm, err := scanRoom(r.q.QueryRowContext(ctx, queryGetRoom, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (r *repo) ListRooms(ctx context.Context, limit int, cursor string) ([]domain.Room, string, error) {
	cur, err := storage.DecodeCursor(cursor)
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
	if _, err := r.q.ExecContext(ctx, queryAddVisitor, roomID, userID); err != nil {
		return mapSQLiteError(err)
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

func (r *repo) GetAccess(ctx context.Context, userID, roomID string) (*domain.AccessRecord, error) {
	var (
		rec   domain.AccessRecord
		first int64
	)
	err := r.q.QueryRowContext(ctx, queryGetAccess, userID, roomID).Scan(&rec.UserID, &rec.RoomID, &first)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	rec.FirstAccessAt = fromMicros(first)
	return &rec, nil
}

func (r *repo) CreateAccessIfAbsent(ctx context.Context, rec domain.AccessRecord) (*domain.AccessRecord, bool, error) {
	res, err := r.q.ExecContext(ctx, queryInsertAccess, rec.UserID, rec.RoomID, toMicros(rec.FirstAccessAt))
	if err != nil {
		return nil, false, mapSQLiteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, err
	}

	stored, err := r.GetAccess(ctx, rec.UserID, rec.RoomID)
	if err != nil {
		return nil, false, err
	}
	return stored, n == 1, nil
}

func (r *repo) AppendMessage(ctx context.Context, m *domain.Message) error {
	_, err := r.q.ExecContext(ctx, queryAppendMessage, m.ID, m.RoomID, m.SenderID, m.Body, toMicros(m.CreatedAt))
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

func (r *repo) ListMessages(ctx context.Context, roomID, after string, limit int) ([]domain.Message, string, error) {
	cur, err := storage.DecodeCursor(after)
	if err != nil {
		return nil, "", err
	}
	limit = storage.ClampLimit(limit)

	createdAt, id := cursorArgs(cur)
	rows, err := r.q.QueryContext(ctx, queryListMessages, roomID, createdAt, id, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Message, 0, limit)
	for rows.Next() {
		var (
			m  domain.Message
			at int64
		)
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Body, &at); err != nil {
			return nil, "", err
		}
		m.CreatedAt = fromMicros(at)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var next string
	if len(out) > 0 {
		last := out[len(out)-1]
		next = storage.NextCursor(len(out), limit, last.CreatedAt, last.ID)
	}
	return out, next, nil
}

func (r *repo) CountMessages(ctx context.Context, roomID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, queryCountMessages, roomID).Scan(&n)
	return n, err
}

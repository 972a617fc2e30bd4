package postgres

import (
	"context"
	"fmt"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
)

func (r *repo) AppendMessage(ctx context.Context, m *domain.Message) error {
	_, err := r.q.Exec(ctx, queryAppendMessage, m.ID, m.RoomID, m.SenderID, m.Body, m.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

// ListMessages возвращает историю сообщений комнаты с курсорной пагинацией (created_at,id DESC).
func (r *repo) ListMessages(ctx context.Context, roomID, after string, limit int) ([]domain.Message, string, error) {
	cur, err := storage.DecodeCursor(after)
	if err != nil {
		return nil, "", err
	}
	limit = storage.ClampLimit(limit)

	createdAt, id := cursorArgs(cur)
	rows, err := r.q.Query(ctx, queryListMessages, roomID, createdAt, id, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Message, 0, limit)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, "", err
		}
		m.CreatedAt = m.CreatedAt.UTC()
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
	err := r.q.QueryRow(ctx, queryCountMessages, roomID).Scan(&n)
	return n, err
}

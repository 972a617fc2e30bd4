package postgres

import (
	"context"
	"errors"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"

	"github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
)

/*
абстрактный слой над *pgxpool.Pool / pgx.Tx
чтобы одни и те же репозитории работали и вне транзакции, и внутри неё
*/
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type repo struct {
	q querier
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			return storage.ErrAlreadyExists
		case "23503": // foreign key violation: комнаты уже/ещё нет
			return domain.ErrRoomNotFound
		}
	}

	return err
}

// cursorArgs раскладывает курсор в параметры запроса; nil-курсор — первая страница.
func cursorArgs(cur *storage.Cursor) (createdAt, id any) {
	if cur == nil {
		return nil, nil
	}
	return cur.CreatedAt, cur.ID
}

// Package storage описывает контракт хранилища комнат, журнала доступа и сообщений.
// Реализации: postgres (pgx), sqlite (modernc) и memstore (в памяти, для тестов и dev).
package storage

import (
	"context"
	"errors"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
)

var (
	ErrNotFound      = errors.New("storage: not found")
	ErrAlreadyExists = errors.New("storage: already exists")
)

type RoomRepository interface {
	CreateRoom(ctx context.Context, room *domain.Room) error
	// GetRoom возвращает domain.ErrRoomNotFound, если комнаты нет.
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	ListRooms(ctx context.Context, limit int, cursor string) ([]domain.Room, string, error)
	ListRoomsByOwner(ctx context.Context, owner string) ([]domain.Room, error)
	// RoomsWithin возвращает кандидатов, чей центр внутри box. Точную фильтрацию делает вызывающий.
	RoomsWithin(ctx context.Context, box domain.BoundingBox) ([]domain.Room, error)
	AllRooms(ctx context.Context) ([]domain.Room, error)
	// AddVisitor идемпотентен.
	AddVisitor(ctx context.Context, roomID, userID string) error
	ListVisitors(ctx context.Context, roomID string) ([]string, error)
}

type AccessRepository interface {
	// GetAccess возвращает ErrNotFound, если записи нет.
	GetAccess(ctx context.Context, userID, roomID string) (*domain.AccessRecord, error)
	// CreateAccessIfAbsent вставляет запись, если по (user, room) её ещё нет.
	// Возвращает сохранённую запись (свою или уже существующую) и created=true, если вставила эта.
	CreateAccessIfAbsent(ctx context.Context, rec domain.AccessRecord) (*domain.AccessRecord, bool, error)
}

type MessageRepository interface {
	AppendMessage(ctx context.Context, msg *domain.Message) error
	// ListMessages: сначала новые, курсорная пагинация по (created_at, id) DESC.
	ListMessages(ctx context.Context, roomID, after string, limit int) ([]domain.Message, string, error)
	CountMessages(ctx context.Context, roomID string) (int, error)
}

// Tx — набор репозиториев, работающих внутри одной транзакции.
type Tx interface {
	RoomRepository
	AccessRepository
	MessageRepository

	// LockRoom берёт комнату с блокировкой до конца транзакции: отправки в одну
	// комнату сериализуются. domain.ErrRoomNotFound, если комнаты нет.
	LockRoom(ctx context.Context, id string) (*domain.Room, error)
}

// Store — корневой хэндл хранилища: чтения вне транзакции и WithinTx для атомарных записей.
type Store interface {
	RoomRepository
	AccessRepository
	MessageRepository

	// WithinTx выполняет fn в одной транзакции. Ошибка fn откатывает все записи.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Ping(ctx context.Context) error
	Close() error
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// ClampLimit приводит limit к [1..MaxPageSize], при 0 и меньше отдаёт DefaultPageSize.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

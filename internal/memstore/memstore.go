// Package memstore — хранилище в памяти. Одна RWMutex на всё: чтения параллельны,
// транзакция держит write-lock и откатывается по undo-журналу.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
)

type accessKey struct {
	userID string
	roomID string
}

type Store struct {
	mu       sync.RWMutex
	rooms    map[string]*domain.Room
	access   map[accessKey]domain.AccessRecord
	messages map[string][]domain.Message
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		rooms:    make(map[string]*domain.Room),
		access:   make(map[accessKey]domain.AccessRecord),
		messages: make(map[string][]domain.Message),
	}
}

func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close() error               { return nil }

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{s: s}
	if err := fn(ctx, t); err != nil {
		t.rollback()
		return err
	}
	return nil
}

// --- reads (RLock) ---

func (s *Store) GetRoom(_ context.Context, id string) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getRoom(id)
}

func (s *Store) ListRooms(_ context.Context, limit int, cursor string) ([]domain.Room, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listRooms(limit, cursor)
}

func (s *Store) ListRoomsByOwner(_ context.Context, owner string) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterRooms(func(r *domain.Room) bool { return r.Owner == owner }), nil
}

func (s *Store) RoomsWithin(_ context.Context, box domain.BoundingBox) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterRooms(func(r *domain.Room) bool { return box.Contains(r.Center) }), nil
}

func (s *Store) AllRooms(_ context.Context) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterRooms(func(*domain.Room) bool { return true }), nil
}

func (s *Store) ListVisitors(_ context.Context, roomID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, err := s.getRoom(roomID)
	if err != nil {
		return nil, err
	}
	return room.Visitors, nil
}

func (s *Store) GetAccess(_ context.Context, userID, roomID string) (*domain.AccessRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getAccess(userID, roomID)
}

func (s *Store) ListMessages(_ context.Context, roomID, after string, limit int) ([]domain.Message, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listMessages(roomID, after, limit)
}

func (s *Store) CountMessages(_ context.Context, roomID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages[roomID]), nil
}

// --- single writes: короткая транзакция ---

func (s *Store) CreateRoom(ctx context.Context, room *domain.Room) error {
	return s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		return tx.CreateRoom(ctx, room)
	})
}

func (s *Store) AddVisitor(ctx context.Context, roomID, userID string) error {
	return s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		return tx.AddVisitor(ctx, roomID, userID)
	})
}

func (s *Store) CreateAccessIfAbsent(ctx context.Context, rec domain.AccessRecord) (*domain.AccessRecord, bool, error) {
	var (
		stored  *domain.AccessRecord
		created bool
	)
	err := s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		stored, created, err = tx.CreateAccessIfAbsent(ctx, rec)
		return err
	})
	return stored, created, err
}

func (s *Store) AppendMessage(ctx context.Context, msg *domain.Message) error {
	return s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		return tx.AppendMessage(ctx, msg)
	})
}

// --- unlocked helpers: вызываются под s.mu ---

func cloneRoom(r *domain.Room) domain.Room {
	out := *r
	out.Visitors = append([]string{}, r.Visitors...)
	return out
}

func (s *Store) getRoom(id string) (*domain.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	out := cloneRoom(r)
	return &out, nil
}

// (created_at, id) DESC
func newestFirst(aAt, bAt time.Time, aID, bID string) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aID > bID
}

func (s *Store) filterRooms(keep func(*domain.Room) bool) []domain.Room {
	out := make([]domain.Room, 0)
	for _, r := range s.rooms {
		if keep(r) {
			out = append(out, cloneRoom(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return newestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out
}

func (s *Store) listRooms(limit int, cursor string) ([]domain.Room, string, error) {
	cur, err := storage.DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}
	limit = storage.ClampLimit(limit)

	all := s.filterRooms(func(r *domain.Room) bool { return cur.Before(r.CreatedAt, r.ID) })
	if len(all) > limit {
		all = all[:limit]
	}
	var next string
	if len(all) > 0 {
		last := all[len(all)-1]
		next = storage.NextCursor(len(all), limit, last.CreatedAt, last.ID)
	}
	return all, next, nil
}

func (s *Store) getAccess(userID, roomID string) (*domain.AccessRecord, error) {
	rec, ok := s.access[accessKey{userID: userID, roomID: roomID}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &rec, nil
}

func (s *Store) listMessages(roomID, after string, limit int) ([]domain.Message, string, error) {
	cur, err := storage.DecodeCursor(after)
	if err != nil {
		return nil, "", err
	}
	limit = storage.ClampLimit(limit)

	src := s.messages[roomID]
	out := make([]domain.Message, 0, len(src))
	for _, m := range src {
		if cur.Before(m.CreatedAt, m.ID) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return newestFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	var next string
	if len(out) > 0 {
		last := out[len(out)-1]
		next = storage.NextCursor(len(out), limit, last.CreatedAt, last.ID)
	}
	return out, next, nil
}

package memstore

import (
	"context"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
)

// tx работает напрямую с картами Store; write-lock уже взят в WithinTx.
type tx struct {
	s    *Store
	undo []func()
}

var _ storage.Tx = (*tx)(nil)

func (t *tx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *tx) LockRoom(_ context.Context, id string) (*domain.Room, error) {
	return t.s.getRoom(id)
}

func (t *tx) CreateRoom(_ context.Context, room *domain.Room) error {
	if _, exists := t.s.rooms[room.ID]; exists {
		return storage.ErrAlreadyExists
	}
	stored := cloneRoom(room)
	t.s.rooms[room.ID] = &stored
	t.undo = append(t.undo, func() { delete(t.s.rooms, room.ID) })
	return nil
}

func (t *tx) GetRoom(_ context.Context, id string) (*domain.Room, error) {
	return t.s.getRoom(id)
}

func (t *tx) ListRooms(_ context.Context, limit int, cursor string) ([]domain.Room, string, error) {
	return t.s.listRooms(limit, cursor)
}

func (t *tx) ListRoomsByOwner(_ context.Context, owner string) ([]domain.Room, error) {
	return t.s.filterRooms(func(r *domain.Room) bool { return r.Owner == owner }), nil
}

func (t *tx) RoomsWithin(_ context.Context, box domain.BoundingBox) ([]domain.Room, error) {
	return t.s.filterRooms(func(r *domain.Room) bool { return box.Contains(r.Center) }), nil
}

func (t *tx) AllRooms(_ context.Context) ([]domain.Room, error) {
	return t.s.filterRooms(func(*domain.Room) bool { return true }), nil
}

func (t *tx) AddVisitor(_ context.Context, roomID, userID string) error {
	r, ok := t.s.rooms[roomID]
	if !ok {
		return domain.ErrRoomNotFound
	}
	if r.HasVisitor(userID) {
		return nil
	}
	prev := len(r.Visitors)
	r.Visitors = append(r.Visitors, userID)
	t.undo = append(t.undo, func() { r.Visitors = r.Visitors[:prev] })
	return nil
}

func (t *tx) ListVisitors(_ context.Context, roomID string) ([]string, error) {
	room, err := t.s.getRoom(roomID)
	if err != nil {
		return nil, err
	}
	return room.Visitors, nil
}

func (t *tx) GetAccess(_ context.Context, userID, roomID string) (*domain.AccessRecord, error) {
	return t.s.getAccess(userID, roomID)
}

func (t *tx) CreateAccessIfAbsent(_ context.Context, rec domain.AccessRecord) (*domain.AccessRecord, bool, error) {
	key := accessKey{userID: rec.UserID, roomID: rec.RoomID}
	if existing, ok := t.s.access[key]; ok {
		return &existing, false, nil
	}
	t.s.access[key] = rec
	t.undo = append(t.undo, func() { delete(t.s.access, key) })
	stored := rec
	return &stored, true, nil
}

func (t *tx) AppendMessage(_ context.Context, msg *domain.Message) error {
	if _, ok := t.s.rooms[msg.RoomID]; !ok {
		return domain.ErrRoomNotFound
	}
	roomID := msg.RoomID
	prev := len(t.s.messages[roomID])
	t.s.messages[roomID] = append(t.s.messages[roomID], *msg)
	t.undo = append(t.undo, func() { t.s.messages[roomID] = t.s.messages[roomID][:prev] })
	return nil
}

func (t *tx) ListMessages(_ context.Context, roomID, after string, limit int) ([]domain.Message, string, error) {
	return t.s.listMessages(roomID, after, limit)
}

func (t *tx) CountMessages(_ context.Context, roomID string) (int, error) {
	return len(t.s.messages[roomID]), nil
}

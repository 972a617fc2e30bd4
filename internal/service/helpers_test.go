package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/memstore"
)

var t0 = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(at time.Time) *fakeClock { return &fakeClock{now: at} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = at
}

func (c *fakeClock) Advance(d time.Duration) { c.Set(c.Now().Add(d)) }

type fixture struct {
	store  *memstore.Store
	clock  *fakeClock
	rooms  *RoomService
	access *AccessService
	chat   *ChatService
}

func newFixture(t *testing.T, opts ...AccessOption) *fixture {
	t.Helper()
	store := memstore.New()
	clock := newFakeClock(t0)
	return &fixture{
		store:  store,
		clock:  clock,
		rooms:  NewRoomService(store, clock.Now),
		access: NewAccessService(store, clock.Now, opts...),
		chat:   NewChatService(store, store, 50),
	}
}

func (f *fixture) room(t *testing.T, owner string, center domain.Coordinate, radius domain.RadiusClass) *domain.Room {
	t.Helper()
	r, err := f.rooms.CreateRoom(context.Background(), owner, "room of "+owner, center, radius)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	return r
}

func (f *fixture) count(t *testing.T, roomID string) int {
	t.Helper()
	n, err := f.store.CountMessages(context.Background(), roomID)
	if err != nil {
		t.Fatalf("CountMessages: %v", err)
	}
	return n
}

// Package storagetest — общий набор проверок для реализаций storage.Store.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"

	"github.com/google/uuid"
)

// Factory возвращает пустое хранилище. Закрывать его должен сам factory через t.Cleanup.
type Factory func(t *testing.T) storage.Store

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func Run(t *testing.T, newStore Factory) {
	t.Run("RoomRoundTrip", func(t *testing.T) { testRoomRoundTrip(t, newStore(t)) })
	t.Run("ListRoomsPaging", func(t *testing.T) { testListRoomsPaging(t, newStore(t)) })
	t.Run("RoomsByOwnerAndBox", func(t *testing.T) { testRoomsByOwnerAndBox(t, newStore(t)) })
	t.Run("Visitors", func(t *testing.T) { testVisitors(t, newStore(t)) })
	t.Run("AccessCreateIfAbsent", func(t *testing.T) { testAccessCreateIfAbsent(t, newStore(t)) })
	t.Run("MessagesNewestFirst", func(t *testing.T) { testMessagesNewestFirst(t, newStore(t)) })
	t.Run("TxRollback", func(t *testing.T) { testTxRollback(t, newStore(t)) })
	t.Run("ConcurrentFirstAccess", func(t *testing.T) { testConcurrentFirstAccess(t, newStore(t)) })
}

func NewRoom(t *testing.T, s storage.Store, owner string, center domain.Coordinate, radius domain.RadiusClass, at time.Time) *domain.Room {
	t.Helper()
	room, err := domain.NewRoom(uuid.NewString(), owner, "room-"+owner, center, radius, at)
	if err != nil {
		t.Fatalf("domain.NewRoom: %v", err)
	}
	if err := s.CreateRoom(context.Background(), room); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	return room
}

func testRoomRoundTrip(t *testing.T, s storage.Store) {
	ctx := context.Background()
	room := NewRoom(t, s, "owner-1", domain.Coordinate{Lat: 40.5, Lng: -74.25}, domain.Radius5Km, base)

	got, err := s.GetRoom(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if got.ID != room.ID || got.Name != room.Name || got.Owner != "owner-1" || got.Radius != domain.Radius5Km {
		t.Fatalf("room mismatch: %+v", got)
	}
	if got.Center != room.Center {
		t.Fatalf("center mismatch: %+v vs %+v", got.Center, room.Center)
	}
	if !got.CreatedAt.Equal(base) {
		t.Fatalf("created_at mismatch: %v", got.CreatedAt)
	}
	if len(got.Visitors) != 0 {
		t.Fatalf("new room must have no visitors: %v", got.Visitors)
	}

	if _, err := s.GetRoom(ctx, uuid.NewString()); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func testListRoomsPaging(t *testing.T, s storage.Store) {
	ctx := context.Background()
	var ids []string
	for i := 0; i < 5; i++ {
		r := NewRoom(t, s, fmt.Sprintf("o%d", i), domain.Coordinate{Lat: 1, Lng: 1}, domain.Radius2Km, base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, r.ID)
	}

	page1, next, err := s.ListRooms(ctx, 3, "")
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(page1) != 3 || next == "" {
		t.Fatalf("page1: len=%d next=%q", len(page1), next)
	}
	page2, next2, err := s.ListRooms(ctx, 3, next)
	if err != nil {
		t.Fatalf("ListRooms page2: %v", err)
	}
	if len(page2) != 2 || next2 != "" {
		t.Fatalf("page2: len=%d next=%q", len(page2), next2)
	}

	got := append(page1, page2...)
	for i, r := range got {
		if want := ids[len(ids)-1-i]; r.ID != want {
			t.Fatalf("position %d: got %s want %s (newest first)", i, r.ID, want)
		}
	}

	if _, _, err := s.ListRooms(ctx, 3, "%%%"); !errors.Is(err, storage.ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func testRoomsByOwnerAndBox(t *testing.T, s storage.Store) {
	ctx := context.Background()
	near := NewRoom(t, s, "alice", domain.Coordinate{Lat: 40.01, Lng: -74.01}, domain.Radius2Km, base)
	NewRoom(t, s, "alice", domain.Coordinate{Lat: 10, Lng: 10}, domain.Radius2Km, base.Add(time.Second))
	NewRoom(t, s, "bob", domain.Coordinate{Lat: -20, Lng: 30}, domain.Radius10Km, base)

	owned, err := s.ListRoomsByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListRoomsByOwner: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("alice owns 2 rooms, got %d", len(owned))
	}

	box, ok := domain.BoundingBoxAround(domain.Coordinate{Lat: 40, Lng: -74}, domain.MaxRadiusKm)
	if !ok {
		t.Fatal("box must be usable")
	}
	within, err := s.RoomsWithin(ctx, box)
	if err != nil {
		t.Fatalf("RoomsWithin: %v", err)
	}
	if len(within) != 1 || within[0].ID != near.ID {
		t.Fatalf("RoomsWithin = %+v, want only %s", within, near.ID)
	}

	all, err := s.AllRooms(ctx)
	if err != nil {
		t.Fatalf("AllRooms: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("AllRooms len = %d", len(all))
	}
}

func testVisitors(t *testing.T, s storage.Store) {
	ctx := context.Background()
	room := NewRoom(t, s, "owner", domain.Coordinate{Lat: 0, Lng: 0}, domain.Radius2Km, base)

	for _, u := range []string{"u1", "u2", "u1", "u2", "u3"} {
		if err := s.AddVisitor(ctx, room.ID, u); err != nil {
			t.Fatalf("AddVisitor(%s): %v", u, err)
		}
	}
	visitors, err := s.ListVisitors(ctx, room.ID)
	if err != nil {
		t.Fatalf("ListVisitors: %v", err)
	}
	sort.Strings(visitors)
	if fmt.Sprint(visitors) != "[u1 u2 u3]" {
		t.Fatalf("visitors = %v", visitors)
	}

	got, err := s.GetRoom(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if len(got.Visitors) != 3 {
		t.Fatalf("room visitors = %v", got.Visitors)
	}
}

func testAccessCreateIfAbsent(t *testing.T, s storage.Store) {
	ctx := context.Background()
	room := NewRoom(t, s, "owner", domain.Coordinate{Lat: 0, Lng: 0}, domain.Radius2Km, base)

	if _, err := s.GetAccess(ctx, "u1", room.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	first := domain.AccessRecord{UserID: "u1", RoomID: room.ID, FirstAccessAt: base}
	stored, created, err := s.CreateAccessIfAbsent(ctx, first)
	if err != nil || !created {
		t.Fatalf("first create: created=%v err=%v", created, err)
	}
	if !stored.FirstAccessAt.Equal(base) {
		t.Fatalf("stored time = %v", stored.FirstAccessAt)
	}

	second := domain.AccessRecord{UserID: "u1", RoomID: room.ID, FirstAccessAt: base.Add(time.Hour)}
	stored, created, err = s.CreateAccessIfAbsent(ctx, second)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if created {
		t.Fatal("second create must not insert")
	}
	if !stored.FirstAccessAt.Equal(base) {
		t.Fatalf("existing record must win, got %v", stored.FirstAccessAt)
	}

	got, err := s.GetAccess(ctx, "u1", room.ID)
	if err != nil {
		t.Fatalf("GetAccess: %v", err)
	}
	if !got.FirstAccessAt.Equal(base) || got.UserID != "u1" || got.RoomID != room.ID {
		t.Fatalf("GetAccess = %+v", got)
	}
}

func testMessagesNewestFirst(t *testing.T, s storage.Store) {
	ctx := context.Background()
	room := NewRoom(t, s, "owner", domain.Coordinate{Lat: 0, Lng: 0}, domain.Radius2Km, base)
	other := NewRoom(t, s, "owner", domain.Coordinate{Lat: 0, Lng: 0}, domain.Radius2Km, base)

	var ids []string
	for i := 0; i < 7; i++ {
		m := &domain.Message{
			ID:        uuid.NewString(),
			RoomID:    room.ID,
			SenderID:  "u1",
			Body:      fmt.Sprintf("msg %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := s.AppendMessage(ctx, m); err != nil {
			t.Fatalf("AppendMessage: %v", err)
		}
		ids = append(ids, m.ID)
	}
	if err := s.AppendMessage(ctx, &domain.Message{ID: uuid.NewString(), RoomID: other.ID, SenderID: "u2", Body: "elsewhere", CreatedAt: base}); err != nil {
		t.Fatalf("AppendMessage other: %v", err)
	}

	var got []domain.Message
	cursor := ""
	for {
		page, next, err := s.ListMessages(ctx, room.ID, cursor, 3)
		if err != nil {
			t.Fatalf("ListMessages: %v", err)
		}
		got = append(got, page...)
		if next == "" {
			break
		}
		cursor = next
	}
	if len(got) != 7 {
		t.Fatalf("got %d messages, want 7", len(got))
	}
	for i, m := range got {
		if want := ids[len(ids)-1-i]; m.ID != want {
			t.Fatalf("position %d: got %s want %s", i, m.ID, want)
		}
		if m.RoomID != room.ID || m.SenderID != "u1" {
			t.Fatalf("unexpected message %+v", m)
		}
	}
	if got[0].Body != "msg 6" {
		t.Fatalf("newest first expected, got %q", got[0].Body)
	}

	n, err := s.CountMessages(ctx, room.ID)
	if err != nil || n != 7 {
		t.Fatalf("CountMessages = %d, %v", n, err)
	}
}

var errBoom = errors.New("boom")

func testTxRollback(t *testing.T, s storage.Store) {
	ctx := context.Background()
	room := NewRoom(t, s, "owner", domain.Coordinate{Lat: 0, Lng: 0}, domain.Radius2Km, base)

	err := s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		locked, err := tx.LockRoom(ctx, room.ID)
		if err != nil {
			return err
		}
		if locked.ID != room.ID {
			return fmt.Errorf("locked wrong room %s", locked.ID)
		}
		if _, _, err := tx.CreateAccessIfAbsent(ctx, domain.AccessRecord{UserID: "u1", RoomID: room.ID, FirstAccessAt: base}); err != nil {
			return err
		}
		if err := tx.AppendMessage(ctx, &domain.Message{ID: uuid.NewString(), RoomID: room.ID, SenderID: "u1", Body: "x", CreatedAt: base}); err != nil {
			return err
		}
		if err := tx.AddVisitor(ctx, room.ID, "u1"); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("WithinTx must return fn error, got %v", err)
	}

	if _, err := s.GetAccess(ctx, "u1", room.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("access record must be rolled back, got %v", err)
	}
	if n, _ := s.CountMessages(ctx, room.ID); n != 0 {
		t.Fatalf("message must be rolled back, count=%d", n)
	}
	if v, _ := s.ListVisitors(ctx, room.ID); len(v) != 0 {
		t.Fatalf("visitor must be rolled back, got %v", v)
	}

	err = s.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		_, err := tx.LockRoom(ctx, uuid.NewString())
		return err
	})
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("LockRoom on missing room: expected ErrRoomNotFound, got %v", err)
	}
}

func testConcurrentFirstAccess(t *testing.T, s storage.Store) {
	ctx := context.Background()
	room := NewRoom(t, s, "owner", domain.Coordinate{Lat: 0, Lng: 0}, domain.Radius2Km, base)

	const writers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		errs    []error
		times   = map[int64]struct{}{}
	)
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			rec := domain.AccessRecord{UserID: "racer", RoomID: room.ID, FirstAccessAt: base.Add(time.Duration(i) * time.Millisecond)}
			stored, ok, err := s.CreateAccessIfAbsent(ctx, rec)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if ok {
				created++
			}
			times[stored.FirstAccessAt.UnixMicro()] = struct{}{}
		}(i)
	}
	close(start)
	wg.Wait()

	if len(errs) > 0 {
		t.Fatalf("concurrent create errors: %v", errs)
	}
	if created != 1 {
		t.Fatalf("exactly one writer must create the record, got %d", created)
	}
	if len(times) != 1 {
		t.Fatalf("all writers must observe the same stored timestamp, got %d distinct", len(times))
	}
}

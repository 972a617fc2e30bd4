package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
	"github.com/cwrk-planet/geo-room-service/internal/storage/storagetest"
)

func openTestStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "rooms.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore(t *testing.T) {
	storagetest.Run(t, openTestStore)
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	s := openTestStore(t).(*Store)
	if err := s.InitSchema(context.Background()); err != nil {
		t.Fatalf("second InitSchema: %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rooms.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	room := storagetest.NewRoom(t, s, "owner", domain.Coordinate{Lat: 55.75, Lng: 37.61}, domain.Radius5Km, time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.UTC))
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.GetRoom(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetRoom after reopen: %v", err)
	}
	if got.Name != room.Name || !got.CreatedAt.Equal(room.CreatedAt) {
		t.Fatalf("room changed after reopen: %+v", got)
	}
}

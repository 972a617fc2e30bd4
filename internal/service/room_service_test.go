package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
)

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	room, err := f.rooms.CreateRoom(ctx, "alice", "  Central Park  ", nyc, domain.Radius5Km)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.ID == "" || room.Name != "Central Park" || room.Owner != "alice" || !room.CreatedAt.Equal(t0) {
		t.Fatalf("room = %+v", room)
	}
	if len(room.Visitors) != 0 {
		t.Fatalf("fresh room visitors = %v", room.Visitors)
	}

	got, err := f.rooms.GetRoom(ctx, room.ID)
	if err != nil || got.Name != room.Name {
		t.Fatalf("GetRoom = %+v, %v", got, err)
	}
}

func TestCreateRoom_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cases := []struct {
		name   string
		owner  string
		title  string
		center domain.Coordinate
		radius domain.RadiusClass
		want   error
	}{
		{"short name", "alice", "ab", nyc, domain.Radius2Km, domain.ErrInvalidName},
		{"short after trim", "alice", "  ab  ", nyc, domain.Radius2Km, domain.ErrInvalidName},
		{"bad radius", "alice", "Park", nyc, domain.RadiusClass("3km"), domain.ErrInvalidRadius},
		{"bad lat", "alice", "Park", domain.Coordinate{Lat: -91}, domain.Radius2Km, domain.ErrInvalidCoordinate},
		{"bad lng", "alice", "Park", domain.Coordinate{Lng: 181}, domain.Radius2Km, domain.ErrInvalidCoordinate},
		{"no owner", " ", "Park", nyc, domain.Radius2Km, domain.ErrUnauthenticated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.rooms.CreateRoom(ctx, tc.owner, tc.title, tc.center, tc.radius); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	all, _ := f.store.AllRooms(ctx)
	if len(all) != 0 {
		t.Fatalf("invalid rooms were stored: %+v", all)
	}
}

func TestGetRoom_NotFound(t *testing.T) {
	f := newFixture(t)
	if _, err := f.rooms.GetRoom(context.Background(), "nope"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestListRoomsAndOwned(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i := 0; i < 4; i++ {
		owner := "alice"
		if i%2 == 1 {
			owner = "bob"
		}
		f.room(t, owner, nyc, domain.Radius2Km)
		f.clock.Advance(time.Minute)
	}

	page, next, err := f.rooms.ListRooms(ctx, 3, "")
	if err != nil || len(page) != 3 || next == "" {
		t.Fatalf("first page: %d rooms, next=%q, err=%v", len(page), next, err)
	}
	rest, next, err := f.rooms.ListRooms(ctx, 3, next)
	if err != nil || len(rest) != 1 || next != "" {
		t.Fatalf("second page: %d rooms, next=%q, err=%v", len(rest), next, err)
	}
	if !page[0].CreatedAt.After(rest[0].CreatedAt) {
		t.Fatal("rooms must be newest first")
	}

	owned, err := f.rooms.ListOwnedRooms(ctx, "bob")
	if err != nil || len(owned) != 2 {
		t.Fatalf("bob owns %d rooms, err=%v", len(owned), err)
	}
	for _, r := range owned {
		if r.Owner != "bob" {
			t.Fatalf("foreign room in owned list: %+v", r)
		}
	}
}

func TestListVisitors_UnknownRoom(t *testing.T) {
	f := newFixture(t)
	if _, err := f.rooms.ListVisitors(context.Background(), "nope"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
)

func TestListMessages_NewestFirstWithCursor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	room := f.room(t, "owner", nyc, domain.Radius5Km)

	for i := 0; i < 5; i++ {
		if _, err := f.access.AdmitSend(ctx, fmt.Sprintf("u%d", i), room.ID, fmt.Sprintf("m%d", i)); err != nil {
			t.Fatalf("AdmitSend: %v", err)
		}
		f.clock.Advance(time.Second)
	}

	first, next, err := f.chat.ListMessages(ctx, room.ID, "", 2)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(first) != 2 || first[0].Body != "m4" || first[1].Body != "m3" || next == "" {
		t.Fatalf("first page = %+v next=%q", first, next)
	}

	second, _, err := f.chat.ListMessages(ctx, room.ID, next, 2)
	if err != nil {
		t.Fatalf("ListMessages page 2: %v", err)
	}
	if len(second) != 2 || second[0].Body != "m2" {
		t.Fatalf("second page = %+v", second)
	}

	all, next, err := f.chat.ListMessages(ctx, room.ID, "", 0)
	if err != nil || len(all) != 5 || next != "" {
		t.Fatalf("default page: %d, next=%q, err=%v", len(all), next, err)
	}
}

func TestListMessages_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	room := f.room(t, "owner", nyc, domain.Radius5Km)

	if _, _, err := f.chat.ListMessages(ctx, "missing", "", 10); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("missing room: %v", err)
	}
	if _, _, err := f.chat.ListMessages(ctx, room.ID, "!!!", 10); !errors.Is(err, storage.ErrInvalidCursor) {
		t.Fatalf("bad cursor: %v", err)
	}
}

package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseRadiusClass(t *testing.T) {
	cases := map[string]float64{"2km": 2, "5km": 5, "10km": 10, " 5KM ": 5}
	for in, km := range cases {
		rc, err := ParseRadiusClass(in)
		if err != nil {
			t.Fatalf("ParseRadiusClass(%q): %v", in, err)
		}
		if rc.Km() != km {
			t.Fatalf("%q: Km = %v, want %v", in, rc.Km(), km)
		}
	}
	for _, in := range []string{"", "3km", "10", "km"} {
		if _, err := ParseRadiusClass(in); !errors.Is(err, ErrInvalidRadius) {
			t.Fatalf("ParseRadiusClass(%q): expected ErrInvalidRadius, got %v", in, err)
		}
	}
}

func TestNewRoom_Validation(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	center := Coordinate{Lat: 40, Lng: -74}

	if _, err := NewRoom("r1", "u1", "ab", center, Radius5Km, now); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := NewRoom("r1", "u1", "   ab   ", center, Radius5Km, now); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName for padded short name, got %v", err)
	}
	if _, err := NewRoom("r1", "u1", "Cafe", center, RadiusClass("7km"), now); !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("expected ErrInvalidRadius, got %v", err)
	}
	if _, err := NewRoom("r1", "u1", "Cafe", Coordinate{Lat: 100}, Radius5Km, now); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}

	room, err := NewRoom("r1", "u1", "  Café  ", center, Radius5Km, now)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	if room.Name != "Café" || room.Owner != "u1" || room.Visitors == nil || !room.CreatedAt.Equal(now) {
		t.Fatalf("unexpected room: %+v", room)
	}
}

func TestRoom_CoversScenario(t *testing.T) {
	room := &Room{Center: Coordinate{Lat: 40.0, Lng: -74.0}, Radius: Radius5Km}

	d, ok := room.Covers(Coordinate{Lat: 40.03, Lng: -74.0})
	if !ok {
		t.Fatalf("point ~3.3km away must be covered, d=%v", d)
	}
	d, ok = room.Covers(Coordinate{Lat: 40.05, Lng: -74.0})
	if ok {
		t.Fatalf("point ~5.5km away must not be covered, d=%v", d)
	}
}

func TestRoom_HasVisitor(t *testing.T) {
	room := &Room{Visitors: []string{"a", "b"}}
	if !room.HasVisitor("b") || room.HasVisitor("c") {
		t.Fatalf("HasVisitor mismatch for %v", room.Visitors)
	}
}

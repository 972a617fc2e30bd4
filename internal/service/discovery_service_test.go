package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
)

func TestFindAvailableRooms_FiveKmScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	room := f.room(t, "owner", nyc, domain.Radius5Km)
	d := NewDiscoveryService(f.store)

	in := domain.Coordinate{Lat: 40.03, Lng: -74}  // ~3.34 km
	out := domain.Coordinate{Lat: 40.05, Lng: -74} // ~5.56 km

	got, err := d.FindAvailableRooms(ctx, in)
	if err != nil {
		t.Fatalf("FindAvailableRooms: %v", err)
	}
	if len(got) != 1 || got[0].Room.ID != room.ID {
		t.Fatalf("inside point: %+v", got)
	}
	if got[0].DistanceKm != 3.34 {
		t.Fatalf("display distance = %v, want 3.34", got[0].DistanceKm)
	}

	got, err = d.FindAvailableRooms(ctx, out)
	if err != nil {
		t.Fatalf("FindAvailableRooms: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("outside point must yield empty non-nil slice, got %#v", got)
	}
}

func TestFindAvailableRooms_InclusionMatchesRadius(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	d := NewDiscoveryService(f.store)

	centers := []domain.Coordinate{
		{Lat: 40.00, Lng: -74.00},
		{Lat: 40.02, Lng: -74.03},
		{Lat: 39.97, Lng: -73.95},
		{Lat: 40.08, Lng: -74.10},
		{Lat: 41.00, Lng: -74.00},
	}
	radii := []domain.RadiusClass{domain.Radius2Km, domain.Radius5Km, domain.Radius10Km}
	var rooms []*domain.Room
	for i, c := range centers {
		rooms = append(rooms, f.room(t, "owner", c, radii[i%len(radii)]))
	}

	points := []domain.Coordinate{
		{Lat: 40.00, Lng: -74.00},
		{Lat: 40.01, Lng: -74.01},
		{Lat: 40.05, Lng: -74.05},
		{Lat: 39.90, Lng: -73.90},
	}
	for _, p := range points {
		got, err := d.FindAvailableRooms(ctx, p)
		if err != nil {
			t.Fatalf("FindAvailableRooms(%v): %v", p, err)
		}
		found := map[string]bool{}
		for i, nr := range got {
			found[nr.Room.ID] = true
			if i > 0 {
				prev := got[i-1]
				if prev.exactKm > nr.exactKm || (prev.exactKm == nr.exactKm && prev.Room.ID > nr.Room.ID) {
					t.Fatalf("output not sorted at %d: %+v", i, got)
				}
			}
			if math.Abs(nr.DistanceKm-domain.RoundKm(nr.exactKm)) > 1e-9 {
				t.Fatalf("display distance not rounded exact: %+v", nr)
			}
		}
		for _, r := range rooms {
			want := domain.DistanceKm(p, r.Center) <= r.Radius.Km()
			if found[r.ID] != want {
				t.Fatalf("point %v room %v(%s): included=%v want %v", p, r.Center, r.Radius, found[r.ID], want)
			}
		}
	}
}

func TestFindAvailableRooms_TiesByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	d := NewDiscoveryService(f.store)

	for i := 0; i < 5; i++ {
		f.room(t, "owner", nyc, domain.Radius2Km)
	}
	got, err := d.FindAvailableRooms(ctx, nyc)
	if err != nil {
		t.Fatalf("FindAvailableRooms: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Room.ID >= got[i].Room.ID {
			t.Fatalf("equal distances must be ordered by id: %s >= %s", got[i-1].Room.ID, got[i].Room.ID)
		}
	}
}

func TestFindAvailableRooms_OwnRoomsIncluded(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, "alice", nyc, domain.Radius2Km)
	got, err := NewDiscoveryService(f.store).FindAvailableRooms(context.Background(), nyc)
	if err != nil || len(got) != 1 || got[0].Room.ID != room.ID {
		t.Fatalf("owner's own room must be discoverable: %+v %v", got, err)
	}
}

func TestFindAvailableRooms_NearPoleFallsBackToFullScan(t *testing.T) {
	f := newFixture(t)
	pole := domain.Coordinate{Lat: 89.99, Lng: 0}
	room := f.room(t, "owner", domain.Coordinate{Lat: 89.99, Lng: 179}, domain.Radius10Km)

	got, err := NewDiscoveryService(f.store).FindAvailableRooms(context.Background(), pole)
	if err != nil {
		t.Fatalf("FindAvailableRooms: %v", err)
	}
	if len(got) != 1 || got[0].Room.ID != room.ID {
		t.Fatalf("room across the pole must be found: %+v", got)
	}
}

func TestFindAvailableRooms_InvalidPoint(t *testing.T) {
	f := newFixture(t)
	_, err := NewDiscoveryService(f.store).FindAvailableRooms(context.Background(), domain.Coordinate{Lat: 91})
	if !errors.Is(err, domain.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestFindAvailableRooms_Concurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for i := 0; i < 10; i++ {
		f.room(t, "owner", nyc, domain.Radius5Km)
	}
	d := NewDiscoveryService(f.store)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := d.FindAvailableRooms(ctx, nyc)
			if err == nil && len(got) != 10 {
				err = errors.New("wrong result size")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}

// gatedRooms держит RoomsWithin до закрытия release, уважая ctx запроса.
type gatedRooms struct {
	storage.RoomRepository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedRooms) RoomsWithin(ctx context.Context, box domain.BoundingBox) ([]domain.Room, error) {
	g.once.Do(func() { close(g.entered) })
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.RoomRepository.RoomsWithin(ctx, box)
}

func TestFindAvailableRooms_CancelledCallerDoesNotFailOthers(t *testing.T) {
	f := newFixture(t)
	room := f.room(t, "owner", nyc, domain.Radius5Km)
	gated := &gatedRooms{
		RoomRepository: f.store,
		entered:        make(chan struct{}),
		release:        make(chan struct{}),
	}
	d := NewDiscoveryService(gated)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := d.FindAvailableRooms(ctxA, nyc)
		errA <- err
	}()
	<-gated.entered

	type result struct {
		rooms []NearbyRoom
		err   error
	}
	resB := make(chan result, 1)
	go func() {
		got, err := d.FindAvailableRooms(context.Background(), nyc)
		resB <- result{got, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelA()
	if err := <-errA; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled caller: err = %v, want context.Canceled", err)
	}

	close(gated.release)
	b := <-resB
	if b.err != nil {
		t.Fatalf("second caller must not inherit cancellation: %v", b.err)
	}
	if len(b.rooms) != 1 || b.rooms[0].Room.ID != room.ID {
		t.Fatalf("second caller rooms = %+v", b.rooms)
	}
}

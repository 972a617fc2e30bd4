package grpcx

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/memstore"
	"github.com/cwrk-planet/geo-room-service/internal/security"
	"github.com/cwrk-planet/geo-room-service/internal/service"
	roomv1 "github.com/cwrk-planet/geo-room-service/proto/gen/georoom/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestClient(t *testing.T) (roomv1.RoomServiceClient, *testClock) {
	t.Helper()
	store := memstore.New()
	clock := &testClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		UnaryServerInterceptor(0),
		AuthUnaryInterceptor(security.NewAuthenticator(nil)),
	))
	Register(gs, NewServer(
		service.NewRoomService(store, clock.Now),
		service.NewDiscoveryService(store),
		service.NewAccessService(store, clock.Now),
		service.NewChatService(store, store, 50),
	))
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return roomv1.NewRoomServiceClient(conn), clock
}

func as(user string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), mdUserID, user)
}

func at(lat, lng float64) *roomv1.Coordinate {
	return &roomv1.Coordinate{Lat: lat, Lng: lng}
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if got := status.Code(err); got != code {
		t.Fatalf("code = %v (%v), want %v", got, err, code)
	}
}

func TestRequiresIdentity(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.ListRooms(context.Background(), &roomv1.ListRoomsRequest{})
	wantCode(t, err, codes.Unauthenticated)
}

func TestRoomLifecycle(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := as("owner")

	created, err := c.CreateRoom(ctx, &roomv1.CreateRoomRequest{Name: "Library", Radius: "5km", Center: at(40.0, -74.0)})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if created.Room.GetOwner() != "owner" || created.Room.GetRadius() != "5km" ||
		created.Room.GetRadiusKm() != 5 || len(created.Room.GetVisitors()) != 0 {
		t.Fatalf("created = %+v", created.Room)
	}

	got, err := c.GetRoom(ctx, &roomv1.GetRoomRequest{Id: created.Room.GetId()})
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if got.Room.GetName() != "Library" || !got.Room.GetCreatedAt().AsTime().Equal(created.Room.GetCreatedAt().AsTime()) {
		t.Fatalf("GetRoom = %+v", got.Room)
	}

	list, err := c.ListRooms(ctx, &roomv1.ListRoomsRequest{Limit: 10})
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(list.Items) != 1 || list.NextCursor != "" {
		t.Fatalf("ListRooms = %+v", list)
	}

	near, err := c.FindAvailableRooms(ctx, &roomv1.FindAvailableRoomsRequest{Point: at(40.03, -74.0)})
	if err != nil {
		t.Fatalf("FindAvailableRooms: %v", err)
	}
	if len(near.Items) != 1 || near.Items[0].DistanceKm <= 3 || near.Items[0].DistanceKm >= 4 {
		t.Fatalf("near = %+v", near.Items)
	}

	far, err := c.FindAvailableRooms(ctx, &roomv1.FindAvailableRoomsRequest{Point: at(41.0, -74.0)})
	if err != nil {
		t.Fatalf("FindAvailableRooms: %v", err)
	}
	if len(far.Items) != 0 {
		t.Fatalf("far = %+v", far.Items)
	}
}

func TestValidationAndNotFound(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := as("owner")

	_, err := c.CreateRoom(ctx, &roomv1.CreateRoomRequest{Name: "x", Radius: "3km", Center: at(1, 1)})
	wantCode(t, err, codes.InvalidArgument)

	_, err = c.CreateRoom(ctx, &roomv1.CreateRoomRequest{Name: "x", Radius: "2km"})
	wantCode(t, err, codes.InvalidArgument)

	_, err = c.GetRoom(ctx, &roomv1.GetRoomRequest{Id: "missing"})
	wantCode(t, err, codes.NotFound)

	_, err = c.ListRooms(ctx, &roomv1.ListRoomsRequest{Cursor: "%%%"})
	wantCode(t, err, codes.InvalidArgument)

	_, err = c.FindAvailableRooms(ctx, &roomv1.FindAvailableRoomsRequest{Point: at(91, 0)})
	wantCode(t, err, codes.InvalidArgument)

	_, err = c.FindAvailableRooms(ctx, &roomv1.FindAvailableRoomsRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestMessagingWindow(t *testing.T) {
	c, clock := newTestClient(t)
	owner := as("owner")
	alice := as("alice")

	room, err := c.CreateRoom(owner, &roomv1.CreateRoomRequest{Name: "Park", Radius: "2km", Center: at(10, 10)})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	id := room.Room.GetId()

	acc, err := c.CheckAccess(alice, &roomv1.CheckAccessRequest{RoomId: id})
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if acc.Access.GetState() != "unvisited" || !acc.Access.GetCanSend() || acc.Access.GetFirstAccessAt() != nil {
		t.Fatalf("fresh access = %+v", acc)
	}

	sent, err := c.SendMessage(alice, &roomv1.SendMessageRequest{RoomId: id, Text: " hi "})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if sent.Message.GetText() != "hi" || sent.Message.GetUserId() != "alice" {
		t.Fatalf("sent = %+v", sent.Message)
	}

	clock.Advance(time.Hour)
	acc, err = c.CheckAccess(alice, &roomv1.CheckAccessRequest{RoomId: id})
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if acc.Access.GetState() != "active" || acc.Access.GetRemainingMs() != time.Hour.Milliseconds() ||
		!acc.Access.GetFirstAccessAt().AsTime().Equal(clock.Now().Add(-time.Hour)) {
		t.Fatalf("active access = %+v", acc)
	}

	clock.Advance(time.Hour)
	_, err = c.SendMessage(alice, &roomv1.SendMessageRequest{RoomId: id, Text: "late"})
	wantCode(t, err, codes.PermissionDenied)
	details := status.Convert(err).Details()
	if len(details) != 1 {
		t.Fatalf("details = %v", details)
	}
	expired, ok := details[0].(*roomv1.AccessStatus)
	if !ok || expired.GetState() != "expired" || expired.GetCanSend() || !expired.GetIsRestricted() || expired.GetRemainingMs() != 0 {
		t.Fatalf("expired details = %v", details[0])
	}

	_, err = c.SendMessage(alice, &roomv1.SendMessageRequest{RoomId: id, Text: "   "})
	wantCode(t, err, codes.InvalidArgument)

	_, err = c.SendMessage(alice, &roomv1.SendMessageRequest{RoomId: "missing", Text: "x"})
	wantCode(t, err, codes.NotFound)

	msgs, err := c.ListMessages(owner, &roomv1.ListMessagesRequest{RoomId: id})
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs.Items) != 1 || msgs.Items[0].GetId() != sent.Message.GetId() {
		t.Fatalf("messages = %+v", msgs.Items)
	}

	got, err := c.GetRoom(owner, &roomv1.GetRoomRequest{Id: id})
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if len(got.Room.GetVisitors()) != 1 || got.Room.GetVisitors()[0] != "alice" {
		t.Fatalf("visitors = %v", got.Room.GetVisitors())
	}
}

func TestMapErr_HidesInternal(t *testing.T) {
	err := mapErr(context.Background(), "test", errors.New("pg: connection reset"))
	st, _ := status.FromError(err)
	if st.Code() != codes.Internal || st.Message() != "internal error" {
		t.Fatalf("status = %v %q", st.Code(), st.Message())
	}

	err = mapErr(context.Background(), "test", domain.ErrRateLimited)
	wantCode(t, err, codes.ResourceExhausted)
}

func TestUnaryServerInterceptor(t *testing.T) {
	ic := UnaryServerInterceptor(time.Second)
	info := &grpc.UnaryServerInfo{FullMethod: roomv1.RoomService_GetRoom_FullMethodName}

	_, err := ic(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})
	wantCode(t, err, codes.Internal)

	_, err = ic(context.Background(), nil, info, func(ctx context.Context, _ any) (any, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("handler must run with a deadline")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
}

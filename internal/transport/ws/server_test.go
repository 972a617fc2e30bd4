package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/memstore"
	"github.com/cwrk-planet/geo-room-service/internal/security"
	"github.com/cwrk-planet/geo-room-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
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

type wsEnv struct {
	srv    *httptest.Server
	clock  *testClock
	room   *domain.Room
	access *service.AccessService
}

func newEnv(t *testing.T) *wsEnv {
	t.Helper()
	store := memstore.New()
	clock := &testClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
	hub := NewHub()

	rooms := service.NewRoomService(store, clock.Now)
	access := service.NewAccessService(store, clock.Now, service.WithPublisher(hub))

	room, err := rooms.CreateRoom(context.Background(), "owner", "Cafe", domain.Coordinate{Lat: 55.75, Lng: 37.61}, domain.Radius2Km)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	s := NewServer(hub, security.NewAuthenticator(nil), rooms, access)
	r := chi.NewRouter()
	r.Get("/ws/rooms/{id}", s.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &wsEnv{srv: srv, clock: clock, room: room, access: access}
}

func (e *wsEnv) url(roomID, query string) string {
	return "ws" + strings.TrimPrefix(e.srv.URL, "http") + "/ws/rooms/" + roomID + "?" + query
}

func (e *wsEnv) dial(t *testing.T, user string) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.DefaultDialer.Dial(e.url(e.room.ID, "user_id="+user), nil)
	if err != nil {
		t.Fatalf("dial %s: %v", user, err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// readUntil пропускает события других типов (peer_joined и т.п.).
func readUntil(t *testing.T, c *websocket.Conn, typ string, out any) {
	t.Helper()
	_ = c.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		var f frame
		if err := c.ReadJSON(&f); err != nil {
			t.Fatalf("waiting for %q: %v", typ, err)
		}
		if f.Type != typ {
			continue
		}
		if out != nil {
			if err := json.Unmarshal(f.Payload, out); err != nil {
				t.Fatalf("decode %q: %v", typ, err)
			}
		}
		return
	}
}

func sendChat(t *testing.T, c *websocket.Conn, text string) {
	t.Helper()
	if err := c.WriteJSON(Message{Type: TypeChat, Payload: ChatPayload{Message: text}}); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestHandleWS_RejectsBeforeUpgrade(t *testing.T) {
	e := newEnv(t)

	cases := []struct {
		name   string
		url    string
		status int
	}{
		{"no user", e.url(e.room.ID, ""), http.StatusUnauthorized},
		{"unknown room", e.url("missing", "user_id=u1"), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(tc.url, nil)
			if err == nil {
				t.Fatal("expected handshake failure")
			}
			if resp == nil || resp.StatusCode != tc.status {
				t.Fatalf("status = %v, want %d", resp, tc.status)
			}
		})
	}
}

func TestHandleWS_StateOnConnect(t *testing.T) {
	e := newEnv(t)
	c := e.dial(t, "alice")

	var st StatePayload
	readUntil(t, c, TypeState, &st)

	if st.RoomID != e.room.ID || st.Name != "Cafe" {
		t.Fatalf("state room = %+v", st)
	}
	if st.Access.State != "unvisited" || !st.Access.CanSend || st.Access.IsRestricted {
		t.Fatalf("access = %+v", st.Access)
	}
	if len(st.Online) != 1 || st.Online[0] != "alice" {
		t.Fatalf("online = %v", st.Online)
	}
}

func TestHandleWS_ChatBroadcastAndAck(t *testing.T) {
	e := newEnv(t)
	alice := e.dial(t, "alice")
	readUntil(t, alice, TypeState, nil)
	bob := e.dial(t, "bob")
	readUntil(t, bob, TypeState, nil)

	sendChat(t, alice, "  hello  ")

	var got ChatPayload
	readUntil(t, bob, TypeChat, &got)
	if got.UserID != "alice" || got.Message != "hello" || got.MsgID == "" {
		t.Fatalf("bob got %+v", got)
	}

	var ack ChatAckPayload
	readUntil(t, alice, TypeChatAck, &ack)
	if ack.MsgID != got.MsgID {
		t.Fatalf("ack %q != broadcast %q", ack.MsgID, got.MsgID)
	}
}

func TestHandleWS_MessagesFromOtherTransports(t *testing.T) {
	e := newEnv(t)
	bob := e.dial(t, "bob")
	readUntil(t, bob, TypeState, nil)

	if _, err := e.access.AdmitSend(context.Background(), "carol", e.room.ID, "via http"); err != nil {
		t.Fatalf("AdmitSend: %v", err)
	}

	var got ChatPayload
	readUntil(t, bob, TypeChat, &got)
	if got.UserID != "carol" || got.Message != "via http" {
		t.Fatalf("bob got %+v", got)
	}
}

func TestHandleWS_ErrorFrames(t *testing.T) {
	e := newEnv(t)
	alice := e.dial(t, "alice")
	readUntil(t, alice, TypeState, nil)

	sendChat(t, alice, "   ")
	var perr ErrorPayload
	readUntil(t, alice, TypeError, &perr)
	if perr.Code != CodeInvalidMessage {
		t.Fatalf("code = %q, want %q", perr.Code, CodeInvalidMessage)
	}

	sendChat(t, alice, "first")
	readUntil(t, alice, TypeChatAck, nil)

	e.clock.Advance(domain.AccessWindow + time.Second)

	sendChat(t, alice, "too late")
	readUntil(t, alice, TypeError, &perr)
	if perr.Code != CodeAccessExpired {
		t.Fatalf("code = %q, want %q", perr.Code, CodeAccessExpired)
	}
	if perr.Access == nil || perr.Access.State != "expired" || perr.Access.CanSend ||
		!perr.Access.IsRestricted || perr.Access.RemainingMs != 0 {
		t.Fatalf("expired frame access = %+v", perr.Access)
	}
}

func TestHub_Online(t *testing.T) {
	h := NewHub()
	a1 := &stubConn{user: "a", room: "r"}
	a2 := &stubConn{user: "a", room: "r"}
	b := &stubConn{user: "b", room: "r"}
	other := &stubConn{user: "c", room: "x"}
	for _, c := range []*stubConn{a1, a2, b, other} {
		h.Add(c)
	}

	if got := h.Online("r"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Online = %v", got)
	}

	h.Publish(domain.Message{ID: "m1", RoomID: "r", SenderID: "b", Body: "hi"})
	if len(a1.sent) != 1 || len(other.sent) != 0 {
		t.Fatalf("publish delivered a1=%d other=%d", len(a1.sent), len(other.sent))
	}

	h.Remove(a1)
	h.Remove(a2)
	h.Remove(b)
	if got := h.Online("r"); len(got) != 0 {
		t.Fatalf("Online after remove = %v", got)
	}
}

type stubConn struct {
	user, room string
	sent       []Message
}

func (s *stubConn) Send(msg Message) error { s.sent = append(s.sent, msg); return nil }
func (s *stubConn) Close() error           { return nil }
func (s *stubConn) UserID() string         { return s.user }
func (s *stubConn) RoomID() string         { return s.room }

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/memstore"
	"github.com/cwrk-planet/geo-room-service/internal/security"
	"github.com/cwrk-planet/geo-room-service/internal/service"
	"github.com/cwrk-planet/geo-room-service/internal/transport/ws"

	"github.com/gorilla/websocket"
)

// Апгрейд проходит через всю цепочку middleware роутера, включая access-лог.
func TestRouter_WebSocketReceivesHTTPMessages(t *testing.T) {
	store := memstore.New()
	clock := &testClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
	auth := security.NewAuthenticator(nil)
	hub := ws.NewHub()

	rooms := service.NewRoomService(store, clock.Now)
	access := service.NewAccessService(store, clock.Now, service.WithPublisher(hub))
	h := NewHandler(rooms, service.NewDiscoveryService(store), access, service.NewChatService(store, store, 50))
	wsSrv := ws.NewServer(hub, auth, rooms, access)

	srv := httptest.NewServer(NewRouter(h, auth, wsSrv.HandleWS, store, RouterConfig{}))
	defer srv.Close()
	a := &testAPI{srv: srv, clock: clock}

	room := a.createRoom(t, "owner", 48.85, 2.35, "2km")

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/rooms/" + room.ID + "?user_id=bob"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// state уходит после регистрации в хабе
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var first struct {
		Type string `json:"type"`
	}
	if err := conn.ReadJSON(&first); err != nil || first.Type != ws.TypeState {
		t.Fatalf("first frame = %+v, err = %v", first, err)
	}

	body, _ := json.Marshal(SendMessageRequest{Message: "bonjour"})
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/rooms/"+room.ID+"/messages", bytes.NewReader(body))
	req.Header.Set("X-User-ID", "alice")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST message: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		var f struct {
			Type    string         `json:"type"`
			Payload ws.ChatPayload `json:"payload"`
		}
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read: %v", err)
		}
		if f.Type != ws.TypeChat {
			continue
		}
		if f.Payload.UserID != "alice" || f.Payload.Message != "bonjour" {
			t.Fatalf("chat = %+v", f.Payload)
		}
		return
	}
}

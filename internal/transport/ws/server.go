package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/security"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RoomSvc interface {
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
}

type AccessSvc interface {
	CheckAccess(ctx context.Context, userID, roomID string) (domain.AccessStatus, error)
	AdmitSend(ctx context.Context, userID, roomID, body string) (*domain.Message, error)
}

type Server struct {
	upgrader  websocket.Upgrader
	hub       *Hub
	auth      *security.Authenticator
	roomSvc   RoomSvc
	accessSvc AccessSvc

	pingEvery time.Duration
}

func NewServer(hub *Hub, auth *security.Authenticator, rooms RoomSvc, access AccessSvc) *Server {
	return &Server{
		hub:       hub,
		auth:      auth,
		roomSvc:   rooms,
		accessSvc: access,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingEvery: 15 * time.Second,
	}
}

// WS endpoint: GET /ws/rooms/{id}?access_token=...&user_id=...
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	uid, err := s.auth.Resolve(q.Get("access_token"), q.Get("user_id"))
	if err != nil {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		http.Error(w, "missing room id", http.StatusBadRequest)
		return
	}
	room, err := s.roomSvc.GetRoom(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}
		slog.Error("ws get room failed", "room", roomID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		slog.Warn("ws upgrade failed", "err", err)
		return
	}

	c := newWsConn(conn, roomID, uid)
	s.hub.Add(c)

	if err := s.sendState(r.Context(), c, room); err != nil {
		slog.Warn("ws send initial state failed", "room", roomID, "user", uid, "err", err)
	}

	s.hub.Broadcast(roomID, Message{
		Type:    TypePeerJoined,
		Payload: PeerEventPayload{RoomID: roomID, UserID: uid},
	})

	go s.writeLoop(r.Context(), c)
	s.readLoop(r.Context(), c)

	s.hub.Remove(c)
	s.hub.Broadcast(roomID, Message{
		Type:    TypePeerLeft,
		Payload: PeerEventPayload{RoomID: roomID, UserID: uid},
	})

	if err := c.Close(); err != nil {
		slog.Debug("ws close failed", "room", roomID, "user", uid, "err", err)
	}
}

func (s *Server) sendState(ctx context.Context, c *wsConn, room *domain.Room) error {
	st, err := s.accessSvc.CheckAccess(ctx, c.userID, c.roomID)
	if err != nil {
		return err
	}
	access := toAccessPayload(st)

	visitors := room.Visitors
	if visitors == nil {
		visitors = []string{}
	}

	return c.Send(Message{
		Type: TypeState,
		Payload: StatePayload{
			RoomID:   room.ID,
			Name:     room.Name,
			Visitors: visitors,
			Online:   s.hub.Online(room.ID),
			Access:   access,
		},
	})
}

func (s *Server) readLoop(ctx context.Context, c *wsConn) {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(1 << 20)
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case TypeChat:
			var p ChatPayload
			if decode(msg.Payload, &p) != nil {
				continue
			}
			s.handleChat(ctx, c, p.Message)
		default:
			// ignore
		}
	}
}

// handleChat: отправка идёт через тот же AdmitSend, что и HTTP/gRPC.
// Рассылку chat делает хаб как Publisher; отправителю уходит только ack или error.
func (s *Server) handleChat(ctx context.Context, c *wsConn, text string) {
	m, err := s.accessSvc.AdmitSend(ctx, c.userID, c.roomID, text)
	if err != nil {
		code := errorCode(err)
		if code == CodeInternal {
			slog.Warn("ws chat save failed", "room", c.roomID, "user", c.userID, "err", err)
		}
		payload := ErrorPayload{Code: code, Message: publicMessage(code, err)}
		if code == CodeAccessExpired {
			access := toAccessPayload(domain.AccessStatus{State: domain.AccessExpired, IsRestricted: true})
			payload.Access = &access
		}
		_ = c.Send(Message{Type: TypeError, Payload: payload})
		return
	}

	_ = c.Send(Message{
		Type:    TypeChatAck,
		Payload: ChatAckPayload{MsgID: m.ID},
	})
}

func toAccessPayload(st domain.AccessStatus) AccessPayload {
	access := AccessPayload{
		State:        st.State.String(),
		CanSend:      st.CanSend,
		IsRestricted: st.IsRestricted,
		RemainingMs:  st.Remaining.Milliseconds(),
	}
	if st.FirstAccessAt != nil {
		access.FirstAccess = st.FirstAccessAt.Unix()
	}
	return access
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccessExpired):
		return CodeAccessExpired
	case errors.Is(err, domain.ErrInvalidMessage):
		return CodeInvalidMessage
	case errors.Is(err, domain.ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, domain.ErrRoomNotFound):
		return CodeRoomNotFound
	default:
		return CodeInternal
	}
}

func publicMessage(code string, err error) string {
	if code == CodeInternal {
		return "internal error"
	}
	return err.Error()
}

func (s *Server) writeLoop(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(s.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		}
	}
}

// --- helpers ---

func decode(payload any, dst any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, dst)
}

type wsConn struct {
	conn      *websocket.Conn
	roomID    string
	userID    string
	sendMu    chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

func newWsConn(c *websocket.Conn, roomID, userID string) *wsConn {
	return &wsConn{
		conn:   c,
		roomID: roomID,
		userID: strings.TrimSpace(userID),
		sendMu: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

func (c *wsConn) Send(msg Message) error {
	c.sendMu <- struct{}{}
	defer func() { <-c.sendMu }()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))

	return c.conn.WriteJSON(msg)
}

func (c *wsConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})
	return err
}

func (c *wsConn) UserID() string { return c.userID }
func (c *wsConn) RoomID() string { return c.roomID }

package ws

import (
	"sort"
	"sync"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
)

type Conn interface {
	Send(msg Message) error
	Close() error
	UserID() string
	RoomID() string
}

type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[Conn]struct{} // roomID -> set of connections
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[Conn]struct{})}
}

func (h *Hub) Add(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rs, ok := h.rooms[c.RoomID()]
	if !ok {
		rs = make(map[Conn]struct{})
		h.rooms[c.RoomID()] = rs
	}
	rs[c] = struct{}{}
}

func (h *Hub) Remove(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if rs, ok := h.rooms[c.RoomID()]; ok {
		delete(rs, c)
		if len(rs) == 0 {
			delete(h.rooms, c.RoomID())
		}
	}
}

func (h *Hub) Broadcast(roomID string, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if rs, ok := h.rooms[roomID]; ok {
		for c := range rs {
			_ = c.Send(msg) // best-effort
		}
	}
}

// Publish рассылает принятое сообщение подписчикам комнаты. Вызывается после коммита AdmitSend.
func (h *Hub) Publish(m domain.Message) {
	h.Broadcast(m.RoomID, Message{
		Type: TypeChat,
		Payload: ChatPayload{
			RoomID:  m.RoomID,
			UserID:  m.SenderID,
			Message: m.Body,
			MsgID:   m.ID,
			TSUnix:  m.CreatedAt.Unix(),
		},
	})
}

// Online возвращает уникальных пользователей с открытым соединением в комнате.
func (h *Hub) Online(roomID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for c := range h.rooms[roomID] {
		if _, ok := seen[c.UserID()]; ok {
			continue
		}
		seen[c.UserID()] = struct{}{}
		out = append(out, c.UserID())
	}
	sort.Strings(out)
	return out
}

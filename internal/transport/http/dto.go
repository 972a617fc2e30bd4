package http

import (
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	// Access заполняется для access_expired: клиент сразу переходит в read-only.
	Access *AccessResponse `json:"access,omitempty"`
}

type CreateRoomRequest struct {
	Name   string   `json:"name"`
	Radius string   `json:"radius"`
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
}

type RoomItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Radius    string    `json:"radius"`
	RadiusKm  float64   `json:"radius_km"`
	Visitors  []string  `json:"visitors"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomsListResponse struct {
	Items      []RoomItem `json:"items"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

type NearbyRoomItem struct {
	RoomItem
	DistanceKm float64 `json:"distance_km"`
}

type NearbyRoomsResponse struct {
	Items []NearbyRoomItem `json:"items"`
}

type VisitorsResponse struct {
	Items []string `json:"items"`
}

type AccessResponse struct {
	State         string     `json:"state"`
	CanSend       bool       `json:"can_send"`
	IsRestricted  bool       `json:"is_restricted"`
	RemainingMs   int64      `json:"remaining_ms"`
	FirstAccessAt *time.Time `json:"first_access_at,omitempty"`
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

type SendMessageResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageItem struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type MessagesResponse struct {
	Items      []MessageItem `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func toRoomItem(r domain.Room) RoomItem {
	visitors := r.Visitors
	if visitors == nil {
		visitors = []string{}
	}
	return RoomItem{
		ID:        r.ID,
		Name:      r.Name,
		Owner:     r.Owner,
		Lat:       r.Center.Lat,
		Lng:       r.Center.Lng,
		Radius:    string(r.Radius),
		RadiusKm:  r.Radius.Km(),
		Visitors:  visitors,
		CreatedAt: r.CreatedAt,
	}
}

func toRoomsList(rooms []domain.Room) []RoomItem {
	out := make([]RoomItem, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomItem(r))
	}
	return out
}

func toNearby(items []service.NearbyRoom) []NearbyRoomItem {
	out := make([]NearbyRoomItem, 0, len(items))
	for _, it := range items {
		out = append(out, NearbyRoomItem{RoomItem: toRoomItem(it.Room), DistanceKm: it.DistanceKm})
	}
	return out
}

func toAccessResponse(st domain.AccessStatus) AccessResponse {
	return AccessResponse{
		State:         st.State.String(),
		CanSend:       st.CanSend,
		IsRestricted:  st.IsRestricted,
		RemainingMs:   st.Remaining.Milliseconds(),
		FirstAccessAt: st.FirstAccessAt,
	}
}

func toMessageItem(m domain.Message) MessageItem {
	return MessageItem{
		ID:        m.ID,
		RoomID:    m.RoomID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/service"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
	httpmw "github.com/cwrk-planet/geo-room-service/internal/transport/http/middleware"
	"github.com/cwrk-planet/geo-room-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	roomSvc      *service.RoomService
	discoverySvc *service.DiscoveryService
	accessSvc    *service.AccessService
	chatSvc      *service.ChatService
}

func NewHandler(room *service.RoomService, discovery *service.DiscoveryService, access *service.AccessService, chat *service.ChatService) *Handler {
	return &Handler{
		roomSvc:      room,
		discoverySvc: discovery,
		accessSvc:    access,
		chatSvc:      chat,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr переводит доменные ошибки в HTTP-статус; неизвестные уходят как 500 с логом.
func writeErr(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapErr(err)
	if status == http.StatusInternalServerError {
		logger.Ctx(r.Context()).ErrorContext(r.Context(), op, slog.Any("err", err))
	}
	resp := ErrorResponse{Error: msg}
	if errors.Is(err, domain.ErrAccessExpired) {
		access := toAccessResponse(domain.AccessStatus{State: domain.AccessExpired, IsRestricted: true})
		resp.Access = &access
	}
	writeJSON(w, status, resp)
}

func mapErr(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidMessage),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidRadius),
		errors.Is(err, domain.ErrInvalidCoordinate):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, storage.ErrInvalidCursor):
		return http.StatusBadRequest, "invalid_cursor"
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, domain.ErrRoomNotFound.Error()
	case errors.Is(err, domain.ErrAccessExpired):
		return http.StatusForbidden, domain.ErrAccessExpired.Error()
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, domain.ErrRateLimited.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func queryLimit(r *http.Request) int {
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return 0
}

// POST /rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}
	if req.Lat == nil || req.Lng == nil {
		writeErr(w, r, "handler.CreateRoom", domain.ErrInvalidCoordinate)
		return
	}
	radius, err := domain.ParseRadiusClass(req.Radius)
	if err != nil {
		writeErr(w, r, "handler.CreateRoom", err)
		return
	}

	owner := httpmw.UserIDFromCtx(r.Context())
	room, err := h.roomSvc.CreateRoom(r.Context(), owner, req.Name, domain.Coordinate{Lat: *req.Lat, Lng: *req.Lng}, radius)
	if err != nil {
		writeErr(w, r, "handler.CreateRoom", err)
		return
	}

	writeJSON(w, http.StatusCreated, toRoomItem(*room))
}

// GET /rooms?limit=&cursor=
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, next, err := h.roomSvc.ListRooms(r.Context(), queryLimit(r), r.URL.Query().Get("cursor"))
	if err != nil {
		writeErr(w, r, "handler.ListRooms", err)
		return
	}
	writeJSON(w, http.StatusOK, RoomsListResponse{Items: toRoomsList(rooms), NextCursor: next})
}

// GET /rooms/mine
func (h *Handler) ListOwnedRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomSvc.ListOwnedRooms(r.Context(), httpmw.UserIDFromCtx(r.Context()))
	if err != nil {
		writeErr(w, r, "handler.ListOwnedRooms", err)
		return
	}
	writeJSON(w, http.StatusOK, RoomsListResponse{Items: toRoomsList(rooms)})
}

// GET /rooms/available?lat=&lng=
func (h *Handler) FindAvailableRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeErr(w, r, "handler.FindAvailableRooms", domain.ErrInvalidCoordinate)
		return
	}

	items, err := h.discoverySvc.FindAvailableRooms(r.Context(), domain.Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		writeErr(w, r, "handler.FindAvailableRooms", err)
		return
	}
	writeJSON(w, http.StatusOK, NearbyRoomsResponse{Items: toNearby(items)})
}

// GET /rooms/{id}
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.roomSvc.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, "handler.GetRoom", err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomItem(*room))
}

// GET /rooms/{id}/visitors
func (h *Handler) ListVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.roomSvc.ListVisitors(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, "handler.ListVisitors", err)
		return
	}
	if visitors == nil {
		visitors = []string{}
	}
	writeJSON(w, http.StatusOK, VisitorsResponse{Items: visitors})
}

// GET /rooms/{id}/access
func (h *Handler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	st, err := h.accessSvc.CheckAccess(r.Context(), httpmw.UserIDFromCtx(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, "handler.CheckAccess", err)
		return
	}
	writeJSON(w, http.StatusOK, toAccessResponse(st))
}

// POST /rooms/{id}/messages
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	msg, err := h.accessSvc.AdmitSend(r.Context(), httpmw.UserIDFromCtx(r.Context()), chi.URLParam(r, "id"), req.Message)
	if err != nil {
		writeErr(w, r, "handler.SendMessage", err)
		return
	}
	writeJSON(w, http.StatusCreated, SendMessageResponse{ID: msg.ID, CreatedAt: msg.CreatedAt})
}

// GET /rooms/{id}/messages?after=&limit=
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	items, next, err := h.chatSvc.ListMessages(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("after"), queryLimit(r))
	if err != nil {
		writeErr(w, r, "handler.ListMessages", err)
		return
	}
	resp := MessagesResponse{Items: make([]MessageItem, 0, len(items)), NextCursor: next}
	for _, m := range items {
		resp.Items = append(resp.Items, toMessageItem(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

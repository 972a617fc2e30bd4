package grpcx

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cwrk-planet/geo-room-service/internal/domain"
	"github.com/cwrk-planet/geo-room-service/internal/service"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
	"github.com/cwrk-planet/geo-room-service/pkg/logger"
	roomv1 "github.com/cwrk-planet/geo-room-service/proto/gen/georoom/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Server struct {
	roomv1.UnimplementedRoomServiceServer

	roomSvc      *service.RoomService
	discoverySvc *service.DiscoveryService
	accessSvc    *service.AccessService
	chatSvc      *service.ChatService
}

func NewServer(
	roomSvc *service.RoomService,
	discoverySvc *service.DiscoveryService,
	accessSvc *service.AccessService,
	chatSvc *service.ChatService,
) *Server {
	return &Server{
		roomSvc:      roomSvc,
		discoverySvc: discoverySvc,
		accessSvc:    accessSvc,
		chatSvc:      chatSvc,
	}
}

func Register(grpcServer grpc.ServiceRegistrar, s *Server) {
	roomv1.RegisterRoomServiceServer(grpcServer, s)
}

// -------- helpers --------

func mapRoom(r *domain.Room) *roomv1.Room {
	return &roomv1.Room{
		Id:        r.ID,
		Name:      r.Name,
		Owner:     r.Owner,
		Center:    &roomv1.Coordinate{Lat: r.Center.Lat, Lng: r.Center.Lng},
		Radius:    string(r.Radius),
		RadiusKm:  r.Radius.Km(),
		Visitors:  r.Visitors,
		CreatedAt: timestamppb.New(r.CreatedAt),
	}
}

func mapChat(m domain.Message) *roomv1.ChatMessage {
	return &roomv1.ChatMessage{
		Id:        m.ID,
		RoomId:    m.RoomID,
		UserId:    m.SenderID,
		Text:      m.Body,
		CreatedAt: timestamppb.New(m.CreatedAt),
	}
}

func mapAccess(st domain.AccessStatus) *roomv1.AccessStatus {
	out := &roomv1.AccessStatus{
		State:        st.State.String(),
		CanSend:      st.CanSend,
		IsRestricted: st.IsRestricted,
		RemainingMs:  st.Remaining.Milliseconds(),
	}
	if st.FirstAccessAt != nil {
		out.FirstAccessAt = timestamppb.New(*st.FirstAccessAt)
	}
	return out
}

func coordinate(c *roomv1.Coordinate) (domain.Coordinate, error) {
	if c == nil {
		return domain.Coordinate{}, domain.ErrInvalidCoordinate
	}
	return domain.Coordinate{Lat: c.GetLat(), Lng: c.GetLng()}, nil
}

// expiredStatus: PermissionDenied с AccessStatus в details, чтобы клиент показал read-only режим.
func expiredStatus() error {
	st := status.New(codes.PermissionDenied, domain.ErrAccessExpired.Error())
	withDetails, err := st.WithDetails(mapAccess(domain.AccessStatus{
		State:        domain.AccessExpired,
		IsRestricted: true,
	}))
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func mapErr(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidRadius),
		errors.Is(err, domain.ErrInvalidCoordinate),
		errors.Is(err, domain.ErrInvalidMessage):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, storage.ErrInvalidCursor):
		return status.Error(codes.InvalidArgument, "invalid_cursor")
	case errors.Is(err, domain.ErrRoomNotFound):
		return status.Error(codes.NotFound, domain.ErrRoomNotFound.Error())
	case errors.Is(err, domain.ErrAccessExpired):
		return expiredStatus()
	case errors.Is(err, domain.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	default:
		logger.Ctx(ctx).ErrorContext(ctx, op+" failed", slog.Any("err", err))
		return status.Error(codes.Internal, "internal error")
	}
}

// -------- methods --------

func (s *Server) CreateRoom(ctx context.Context, in *roomv1.CreateRoomRequest) (*roomv1.CreateRoomResponse, error) {
	center, err := coordinate(in.GetCenter())
	if err != nil {
		return nil, mapErr(ctx, "grpc.CreateRoom", err)
	}
	radius, err := domain.ParseRadiusClass(in.GetRadius())
	if err != nil {
		return nil, mapErr(ctx, "grpc.CreateRoom", err)
	}
	room, err := s.roomSvc.CreateRoom(ctx, UserIDFromContext(ctx), in.GetName(), center, radius)
	if err != nil {
		return nil, mapErr(ctx, "grpc.CreateRoom", err)
	}

	return &roomv1.CreateRoomResponse{Room: mapRoom(room)}, nil
}

func (s *Server) GetRoom(ctx context.Context, in *roomv1.GetRoomRequest) (*roomv1.GetRoomResponse, error) {
	room, err := s.roomSvc.GetRoom(ctx, in.GetId())
	if err != nil {
		return nil, mapErr(ctx, "grpc.GetRoom", err)
	}

	return &roomv1.GetRoomResponse{Room: mapRoom(room)}, nil
}

func (s *Server) ListRooms(ctx context.Context, in *roomv1.ListRoomsRequest) (*roomv1.ListRoomsResponse, error) {
	items, cursor, err := s.roomSvc.ListRooms(ctx, int(in.GetLimit()), in.GetCursor())
	if err != nil {
		return nil, mapErr(ctx, "grpc.ListRooms", err)
	}
	out := &roomv1.ListRoomsResponse{
		Items:      make([]*roomv1.Room, 0, len(items)),
		NextCursor: cursor,
	}
	for i := range items {
		out.Items = append(out.Items, mapRoom(&items[i]))
	}

	return out, nil
}

func (s *Server) FindAvailableRooms(ctx context.Context, in *roomv1.FindAvailableRoomsRequest) (*roomv1.FindAvailableRoomsResponse, error) {
	point, err := coordinate(in.GetPoint())
	if err != nil {
		return nil, mapErr(ctx, "grpc.FindAvailableRooms", err)
	}
	items, err := s.discoverySvc.FindAvailableRooms(ctx, point)
	if err != nil {
		return nil, mapErr(ctx, "grpc.FindAvailableRooms", err)
	}
	out := &roomv1.FindAvailableRoomsResponse{Items: make([]*roomv1.NearbyRoom, 0, len(items))}
	for i := range items {
		out.Items = append(out.Items, &roomv1.NearbyRoom{
			Room:       mapRoom(&items[i].Room),
			DistanceKm: items[i].DistanceKm,
		})
	}

	return out, nil
}

func (s *Server) CheckAccess(ctx context.Context, in *roomv1.CheckAccessRequest) (*roomv1.CheckAccessResponse, error) {
	st, err := s.accessSvc.CheckAccess(ctx, UserIDFromContext(ctx), in.GetRoomId())
	if err != nil {
		return nil, mapErr(ctx, "grpc.CheckAccess", err)
	}

	return &roomv1.CheckAccessResponse{Access: mapAccess(st)}, nil
}

func (s *Server) SendMessage(ctx context.Context, in *roomv1.SendMessageRequest) (*roomv1.SendMessageResponse, error) {
	m, err := s.accessSvc.AdmitSend(ctx, UserIDFromContext(ctx), in.GetRoomId(), in.GetText())
	if err != nil {
		return nil, mapErr(ctx, "grpc.SendMessage", err)
	}

	return &roomv1.SendMessageResponse{Message: mapChat(*m)}, nil
}

func (s *Server) ListMessages(ctx context.Context, in *roomv1.ListMessagesRequest) (*roomv1.ListMessagesResponse, error) {
	if s.chatSvc == nil {
		return nil, status.Error(codes.Unimplemented, "chat service disabled")
	}
	items, next, err := s.chatSvc.ListMessages(ctx, in.GetRoomId(), in.GetAfter(), int(in.GetLimit()))
	if err != nil {
		return nil, mapErr(ctx, "grpc.ListMessages", err)
	}

	out := &roomv1.ListMessagesResponse{
		Items:      make([]*roomv1.ChatMessage, 0, len(items)),
		NextCursor: next,
	}
	for _, m := range items {
		out.Items = append(out.Items, mapChat(m))
	}

	return out, nil
}

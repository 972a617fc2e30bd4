package grpcx

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/security"
	"github.com/cwrk-planet/geo-room-service/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	mdAuthorization = "authorization"
	mdUserID        = "x-user-id"
)

type ctxKeyUserID struct{}

func UserIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyUserID{}).(string)
	return v
}

// AuthUnaryInterceptor: Authorization: Bearer <jwt>, либо доверенный x-user-id от шлюза,
// если ключ проверки не настроен.
func AuthUnaryInterceptor(auth *security.Authenticator) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		token := security.BearerToken(first(md.Get(mdAuthorization)))

		uid, err := auth.Resolve(token, first(md.Get(mdUserID)))
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "unauthenticated")
		}
		ctx = context.WithValue(ctx, ctxKeyUserID{}, uid)
		ctx = logger.WithContext(ctx, logger.FromContext(ctx).With("user", uid))
		return handler(ctx, req)
	}
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}

	return ss[0]
}

// UnaryServerInterceptor: recovery, логирование с кодом ответа и timeout guard (если у вызова нет deadline).
func UnaryServerInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp any, err error) {
		start := time.Now()
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		defer func() {
			if r := recover(); r != nil {
				slog.Error("grpc unary panic",
					"method", info.FullMethod,
					"panic", r,
					"stack", string(debug.Stack()))
				err = status.Error(codes.Internal, "internal server error")
			}

			code := status.Code(err)
			level := slog.LevelInfo
			switch code {
			case codes.OK, codes.NotFound, codes.InvalidArgument, codes.PermissionDenied:
			case codes.Internal, codes.Unknown, codes.DataLoss:
				level = slog.LevelError
			default:
				level = slog.LevelWarn
			}
			slog.Log(ctx, level, "grpc unary",
				"method", info.FullMethod,
				"code", code.String(),
				"dur_ms", time.Since(start).Milliseconds())
		}()

		return handler(ctx, req)
	}
}

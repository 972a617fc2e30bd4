package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwrk-planet/geo-room-service/config"
	"github.com/cwrk-planet/geo-room-service/internal/memstore"
	"github.com/cwrk-planet/geo-room-service/internal/postgres"
	"github.com/cwrk-planet/geo-room-service/internal/ratelimit"
	"github.com/cwrk-planet/geo-room-service/internal/security"
	"github.com/cwrk-planet/geo-room-service/internal/service"
	"github.com/cwrk-planet/geo-room-service/internal/sqlite"
	"github.com/cwrk-planet/geo-room-service/internal/storage"
	grpcx "github.com/cwrk-planet/geo-room-service/internal/transport/grpc"
	httpx "github.com/cwrk-planet/geo-room-service/internal/transport/http"
	"github.com/cwrk-planet/geo-room-service/internal/transport/ws"
	"github.com/cwrk-planet/geo-room-service/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("logging.level: %v", err)
	}
	env, err := logger.ParseEnv(cfg.Logging.Env)
	if err != nil {
		log.Fatalf("logging.env: %v", err)
	}
	logger.Init(logger.Config{
		Env:       env,
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		Level:     level,
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting geo-room-service",
		"version", cfg.Logging.Version, "storage", cfg.Storage.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server error", "err", err)
		stop()
		os.Exit(1)
	}
	slog.Info("stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	// --- storage ---
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("storage close failed", "err", err)
		}
	}()

	// --- auth ---
	auth, err := newAuthenticator(cfg.Auth)
	if err != nil {
		return err
	}

	// --- rate limit ---
	limiter, closeLimiter := newLimiter(ctx, cfg.Redis)
	defer closeLimiter()

	// --- services ---
	hub := ws.NewHub()
	roomSvc := service.NewRoomService(store, time.Now)
	discoverySvc := service.NewDiscoveryService(store)
	accessSvc := service.NewAccessService(store, time.Now,
		service.WithLimiter(limiter),
		service.WithPublisher(hub),
		service.WithMaxMessageLength(cfg.Chat.MaxMessageLength),
	)
	chatSvc := service.NewChatService(store, store, cfg.Chat.PageSize)

	// --- WS Server ---
	wsServer := ws.NewServer(hub, auth, roomSvc, accessSvc)

	// --- HTTP ---
	handler := httpx.NewHandler(roomSvc, discoverySvc, accessSvc, chatSvc)
	router := httpx.NewRouter(handler, auth, wsServer.HandleWS, store, httpx.RouterConfig{
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// --- gRPC ---
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcx.UnaryServerInterceptor(cfg.HTTP.RequestTimeout), grpcx.AuthUnaryInterceptor(auth)),
	)
	grpcx.Register(grpcServer, grpcx.NewServer(roomSvc, discoverySvc, accessSvc, chatSvc))

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	// --- run both servers ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("grpc listen", "addr", cfg.GRPC.Addr)
		return grpcServer.Serve(lis)
	})

	// --- graceful shutdown ---
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		grpcServer.GracefulStop()
		return httpSrv.Shutdown(ctxShutdown)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		st, err := postgres.Open(ctx, postgres.Config{
			DSN:              cfg.Postgres.DSN,
			MaxConns:         cfg.Postgres.MaxConns,
			MinConns:         cfg.Postgres.MinConns,
			MaxConnLifetime:  cfg.Postgres.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Postgres.MaxConnIdleTime,
			StatementTimeout: cfg.Postgres.StatementTimeout,
			ApplicationName:  cfg.Logging.Service,
		})
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return st, nil
	case config.DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		return st, nil
	default:
		slog.Warn("in-memory storage: data is lost on restart")
		return memstore.New(), nil
	}
}

func newAuthenticator(cfg config.Auth) (*security.Authenticator, error) {
	if cfg.PublicKeyPath == "" {
		slog.Warn("auth: no public key configured, trusting X-User-ID")
		return security.NewAuthenticator(nil), nil
	}
	pub, err := security.LoadRSAPublicKeyFromPEM(cfg.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("auth public key: %w", err)
	}
	v := security.NewJWTVerifier(pub, security.VerifierConfig{
		Issuer:    cfg.Issuer,
		Audience:  cfg.Audience,
		ClockSkew: cfg.ClockSkew,
	}, time.Now)
	return security.NewAuthenticator(v), nil
}

// newLimiter: недоступный redis при старте не фатален, лимитер сам пропускает отправку при ошибках.
func newLimiter(ctx context.Context, cfg config.Redis) (service.Limiter, func()) {
	if cfg.Addr == "" {
		return ratelimit.Noop{}, func() {}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, send limits will fail open", "addr", cfg.Addr, "err", err)
	}

	l := ratelimit.NewSlidingWindow(rdb, ratelimit.Config{Limit: cfg.SendLimit, Window: cfg.SendWindow}, "georoom:send:")
	return l, func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("redis close failed", "err", err)
		}
	}
}

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/cwrk-planet/geo-room-service/internal/security"
	httpmw "github.com/cwrk-planet/geo-room-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterConfig struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

func NewRouter(h *Handler, auth *security.Authenticator, wsHandler http.HandlerFunc, health Pinger, cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(httpmw.WithRequestLogger)
	r.Use(httpmw.RequestLogger)
	r.Use(middlewareChi.Recoverer)

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", httpmw.HeaderUserID},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// WS: токен и user_id приходят query-параметрами, проверяет сам ws.Server
	if wsHandler != nil {
		r.Get("/ws/rooms/{id}", wsHandler)
	}

	r.Group(func(pr chi.Router) {
		pr.Use(httpmw.AuthMiddleware(auth))
		pr.Use(middlewareChi.Timeout(cfg.RequestTimeout))

		pr.Route("/rooms", func(rm chi.Router) {
			rm.Post("/", h.CreateRoom)
			rm.Get("/", h.ListRooms)
			rm.Get("/mine", h.ListOwnedRooms)
			rm.Get("/available", h.FindAvailableRooms)

			rm.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.GetRoom)
				rr.Get("/visitors", h.ListVisitors)
				rr.Get("/access", h.CheckAccess)
				rr.Post("/messages", h.SendMessage)
				rr.Get("/messages", h.ListMessages)
			})
		})
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health.Ping(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "storage unavailable"})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

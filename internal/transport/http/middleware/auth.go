package httpmw

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cwrk-planet/geo-room-service/internal/security"
)

type ctxKey string

const ctxKeyUserID ctxKey = "user_id"

const HeaderUserID = "X-User-ID"

// AuthMiddleware определяет пользователя: Bearer JWT, либо X-User-ID от gateway, если ключ не настроен.
func AuthMiddleware(auth *security.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := security.BearerToken(r.Header.Get("Authorization"))
			uid, err := auth.Resolve(token, r.Header.Get(HeaderUserID))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthenticated"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid)))
		})
	}
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, uid)
}

func UserIDFromCtx(ctx context.Context) string {
	if v := ctx.Value(ctxKeyUserID); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

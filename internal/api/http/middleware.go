package http

import (
	"context"
	"net/http"
	"strings"

	"librental-backend/internal/domain"
	"librental-backend/internal/security"
)

type contextKey string

const actorContextKey contextKey = "actor"

// AuthMiddleware validates the Bearer token minted by the external user
// service and stores the resulting actor on the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token", Reason: "unauthenticated"})
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: err.Error(), Reason: "unauthenticated"})
			return
		}

		actor := domain.Actor{UserID: claims.UserID, IsStaff: claims.IsStaff}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorContextKey, actor)))
	})
}

// ActorFromContext returns the authenticated actor placed by the middleware.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}

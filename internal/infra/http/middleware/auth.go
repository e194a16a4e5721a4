package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

type contextKey string

const userContextKey contextKey = "traincrm.user"

// Auth resolves the trainer from a bearer API token. Requests without a
// valid token never reach the handlers.
func Auth(users entity.UserRepositoryInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}

			user, err := users.FindByToken(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated trainer. Only valid downstream
// of the Auth middleware.
func UserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userContextKey).(*entity.User)
	return user
}

// WithUser injects a user into the context; used by handler tests.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   entity.ErrUnauthorized.Error(),
	})
}

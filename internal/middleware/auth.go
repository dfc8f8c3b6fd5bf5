package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tasklite/task-service/internal/models"
)

type contextKey string

// userIDKey holds the authenticated user's id in the request context.
const userIDKey contextKey = "userID"

// TokenVerifier checks a bearer token and returns the embedded username.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder resolves a username to a stored user.
type UserFinder interface {
	FindByUsername(username string) (*models.User, error)
}

// Auth verifies the bearer token on each request, resolves the caller's
// user record, and stores the user id in the request context. Handlers
// read it with UserID and pass it explicitly into the services.
func Auth(tokens TokenVerifier, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing or malformed authorization header")
				return
			}

			username, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			user, err := users.FindByUsername(username)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user id set by Auth.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

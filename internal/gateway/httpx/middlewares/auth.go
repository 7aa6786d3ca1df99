// Package middlewares holds the gateway's chi middleware: bearer-token
// authentication and role gating.
package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/saturnhq/purchase-orders/internal/auth"
)

// ctxKey is unexported so no other package can collide with our context keys.
type ctxKey string

const userKey ctxKey = "user"

// Auth resolves bearer tokens into users and attaches them to the request
// context.
type Auth struct {
	sessions *auth.Service
}

func NewAuth(sessions *auth.Service) *Auth {
	return &Auth{sessions: sessions}
}

// RequireUser rejects requests without a valid session token.
func (a *Auth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.sessions.Resolve(r.Context(), BearerToken(r))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireWriter rejects read-only roles (supplier, picker) on mutating
// routes. Must run after RequireUser.
func (a *Auth) RequireWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !user.CanEdit() {
			writeError(w, http.StatusForbidden, "read_only_role")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext retrieves the authenticated user attached by RequireUser.
func UserFromContext(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(userKey).(auth.User)
	return user, ok
}

// BearerToken extracts the token from the Authorization header, or "" when
// absent or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

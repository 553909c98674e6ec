package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ciganahub/cigana-hub/internal/profiles"
)

// Session is the authenticated caller, carried in the request context.
// No ambient globals: handlers that need identity take it from here.
type Session struct {
	UserID string
	Admin  bool
}

type sessionKey struct{}

func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// Auth verifies HMAC bearer tokens minted by the identity provider and
// resolves the admin flag from user_roles.
type Auth struct {
	Secret   string
	Profiles *profiles.Repo
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(a.Secret), nil
		})
		if err != nil || !token.Valid {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token claims"})
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token has no subject"})
			return
		}

		admin, err := a.Profiles.IsAdmin(r.Context(), sub)
		if err != nil {
			writeErr(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, Session{UserID: sub, Admin: admin})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards the back-office routes.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFrom(r.Context())
		if !ok || !s.Admin {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "admin only"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

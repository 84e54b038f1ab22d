package middleware

import (
	"context"
	"net/http"

	"github.com/casemark/lead-intake/internal/entity"
)

// AuthCookieName carries the signed session credential.
const AuthCookieName = "auth_token"

// LoginPath is where unauthenticated admin traffic is sent.
const LoginPath = "/login"

type TokenVerifier interface {
	Verify(token string) *entity.User
}

type contextKey string

const userContextKey contextKey = "authenticated-user"

// RequireAuth guards the admin prefix. A missing, malformed, mis-signed or
// expired cookie is treated identically: no handler runs, the client is sent
// to the login page.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				RecordAuthFailure()
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			user := verifier.Verify(cookie.Value)
			if user == nil {
				RecordAuthFailure()
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the identity RequireAuth attached, or nil.
func UserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userContextKey).(*entity.User)
	return user
}

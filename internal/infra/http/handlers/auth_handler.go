package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/casemark/lead-intake/internal/auth"
	"github.com/casemark/lead-intake/internal/infra/http/middleware"
)

type AuthHandler struct {
	Auth *auth.Authenticator
}

func NewAuthHandler(authenticator *auth.Authenticator) *AuthHandler {
	return &AuthHandler{Auth: authenticator}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login (POST /auth/login). A match issues the 24h credential as an HTTP-only
// cookie; a mismatch is a 401, never a crash.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid JSON",
		})
		return
	}

	token, user, ok := h.Auth.Login(req.Email, req.Password)
	if !ok {
		middleware.RecordAuthFailure()
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   "Invalid credentials",
		})
		return
	}

	setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]string{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

// Logout (POST /auth/logout) clears the cookie. There is no server-side
// revocation; an already-captured token stays valid until its expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Session (GET /auth/session) answers the dashboard's "who am I" probe.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.AuthCookieName)
	if err != nil || cookie.Value == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user := h.Auth.Verify(cookie.Value)
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.TokenLifetime.Seconds()),
	})
}

func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

package handler

import (
	"net/http"

	"github.com/portrussell/marina-go/internal/crypto"
	"github.com/portrussell/marina-go/internal/middleware"
	"github.com/portrussell/marina-go/internal/model"
	"github.com/portrussell/marina-go/internal/service"
)

// AuthHandler handles login, logout and the current-user endpoint.
type AuthHandler struct {
	service       *service.AuthService
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler. secureCookies should be true in
// production so the token cookie is only sent over TLS.
func NewAuthHandler(svc *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: svc, secureCookies: secureCookies}
}

// HandleLogin handles POST /login. On success the token travels both in the
// response body and in an http-only cookie whose lifetime matches the
// token's own expiry.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   int(crypto.TokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogout handles GET /logout. It only clears the cookie; an already
// issued token stays valid until it expires (stateless bearer contract).
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logout successful"})
}

// HandleMe handles GET /me.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("missing token"))
		return
	}

	resp, err := h.service.Profile(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

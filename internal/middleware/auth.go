package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/portrussell/marina-go/internal/crypto"
	"github.com/portrussell/marina-go/internal/model"
)

// TokenCookie is the cookie consulted when no Authorization header is sent.
const TokenCookie = "token"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the verified caller attached to the request context. Role is
// exposed but not checked here; role-based rules belong to individual routes.
type Identity struct {
	UserID int64
	Email  string
	Role   model.Role
}

// JWTAuth returns middleware that authenticates requests with a signed
// token. The Authorization header takes precedence; a "Bearer <token>" pair
// is preferred but a bare header value is accepted as the token itself.
// Without a header the cookie is consulted. Missing and invalid credentials
// both reject with 401 and the same response shape.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing token")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity := Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken resolves the credential with header-over-cookie precedence.
func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, found := strings.CutPrefix(header, "Bearer "); found {
			return strings.TrimSpace(token)
		}
		// No scheme prefix: treat the whole header value as the token.
		return strings.TrimSpace(header)
	}

	if cookie, err := r.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// IdentityFromContext extracts the authenticated identity from the request
// context. This is the only channel through which handlers learn the caller.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

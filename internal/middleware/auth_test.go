package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/portrussell/marina-go/internal/crypto"
	"github.com/portrussell/marina-go/internal/model"
)

const testSecret = "test-secret"

func authedHandler(t *testing.T, wantID int64) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Error("identity missing from context on authenticated request")
		}
		if identity.UserID != wantID {
			t.Errorf("identity.UserID = %d, want %d", identity.UserID, wantID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := crypto.GenerateToken(7, "capitainerie@port.example", model.RoleAdmin, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	return token
}

func TestJWTAuthBearerHeader(t *testing.T) {
	handler := JWTAuth(testSecret)(authedHandler(t, 7))

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestJWTAuthBareHeaderValue(t *testing.T) {
	// A header without the "Bearer " scheme is treated as the token itself.
	handler := JWTAuth(testSecret)(authedHandler(t, 7))

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	req.Header.Set("Authorization", validToken(t))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestJWTAuthCookie(t *testing.T) {
	handler := JWTAuth(testSecret)(authedHandler(t, 7))

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: validToken(t)})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestJWTAuthHeaderPrecedesCookie(t *testing.T) {
	// A bad cookie must not matter when a valid header is present.
	handler := JWTAuth(testSecret)(authedHandler(t, 7))

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "garbage"})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestJWTAuthMissingCredential(t *testing.T) {
	called := false
	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
	if called {
		t.Error("next handler called without credential")
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called with invalid token")
	}))

	for _, token := range []string{"garbage", "a.b.c"} {
		req := httptest.NewRequest(http.MethodGet, "/catways", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("token %q: status = %d, want 401", token, rr.Code)
		}
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	other, err := crypto.GenerateToken(7, "capitainerie@port.example", model.RoleUser, "other-secret")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	handler := JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called with foreign token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/catways", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestIdentityFromContextAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := IdentityFromContext(req.Context()); ok {
		t.Error("IdentityFromContext() = ok on bare context")
	}
}

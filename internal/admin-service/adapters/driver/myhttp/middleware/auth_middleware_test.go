package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(7),
		"email":   "admin@example.com",
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func callWrapped(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	var forwarded *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded = r
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/accounts/3", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	NewAuthMiddleware(testSecret).Wrap(next).ServeHTTP(rec, req)
	return rec, forwarded
}

func TestWrapAdminPasses(t *testing.T) {
	rec, forwarded := callWrapped(t, "Bearer "+signedToken(t, testSecret, "admin", time.Hour))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if forwarded == nil {
		t.Fatal("next handler was not called")
	}
	if got := forwarded.Header.Get("X-UserId"); got != "7" {
		t.Errorf("X-UserId = %q, want %q", got, "7")
	}
}

func TestWrapNonAdminForbidden(t *testing.T) {
	rec, forwarded := callWrapped(t, "Bearer "+signedToken(t, testSecret, "driver", time.Hour))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if forwarded != nil {
		t.Error("next handler ran for a non-admin")
	}
}

func TestWrapMissingToken(t *testing.T) {
	rec, forwarded := callWrapped(t, "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if forwarded != nil {
		t.Error("next handler ran without a token")
	}
}

func TestWrapGarbageToken(t *testing.T) {
	rec, _ := callWrapped(t, "Bearer not.a.token")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestWrapWrongSecret(t *testing.T) {
	rec, _ := callWrapped(t, "Bearer "+signedToken(t, "other-secret", "admin", time.Hour))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestWrapExpiredToken(t *testing.T) {
	rec, _ := callWrapped(t, "Bearer "+signedToken(t, testSecret, "admin", -time.Hour))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vigil/internal/auth"
)

func testAuthenticator(t *testing.T) *auth.Authenticator {
	t.Helper()
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_USERS", "alice:hunter2:operator,bob:secret:viewer")
	t.Setenv("JWT_SECRET", "test-secret")
	return auth.NewAuthenticator()
}

func tokenFor(t *testing.T, a *auth.Authenticator, name, password string) string {
	t.Helper()
	token, _, err := a.Authenticate(name, password)
	if err != nil {
		t.Fatalf("Authenticate(%s) failed: %v", name, err)
	}
	return token
}

// TestAuthMiddlewareStampsReviewer verifies the verified identity is
// available to service methods through the request context.
func TestAuthMiddlewareStampsReviewer(t *testing.T) {
	a := testAuthenticator(t)

	var reviewer string
	var ok bool
	handler := AuthMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reviewer, ok = ReviewerFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, a, "alice", "hunter2"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !ok || reviewer != "alice" {
		t.Errorf("Expected reviewer alice in context, got %q (ok=%v)", reviewer, ok)
	}
}

// TestAuthMiddlewareRoleGate verifies viewers can read but not mutate,
// while operators can do both.
func TestAuthMiddlewareRoleGate(t *testing.T) {
	a := testAuthenticator(t)
	handler := AuthMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	cases := []struct {
		name   string
		user   string
		pass   string
		method string
		want   int
	}{
		{"viewer read", "bob", "secret", http.MethodGet, http.StatusOK},
		{"viewer review", "bob", "secret", http.MethodPost, http.StatusForbidden},
		{"viewer delete", "bob", "secret", http.MethodDelete, http.StatusForbidden},
		{"operator read", "alice", "hunter2", http.MethodGet, http.StatusOK},
		{"operator review", "alice", "hunter2", http.MethodPost, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, "/api/v1/incidents/abc/review", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, a, tc.user, tc.pass))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, rec.Code)
		}
	}
}

// TestAuthMiddlewareRejectsBadTokens verifies missing, malformed and
// foreign tokens all get 401.
func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	a := testAuthenticator(t)
	handler := AuthMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}

// TestAuthMiddlewareDisabled verifies requests pass through untouched when
// auth is off and no reviewer identity is present.
func TestAuthMiddlewareDisabled(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "false")
	a := auth.NewAuthenticator()

	var ok bool
	handler := AuthMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = ReviewerFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/abc/review", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 with auth disabled, got %d", rec.Code)
	}
	if ok {
		t.Error("Expected no reviewer identity with auth disabled")
	}
}

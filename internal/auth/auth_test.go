package auth

import (
	"testing"
	"time"
)

// TestAuthenticateIssuesToken verifies a valid login yields a token that
// verifies back to the user's identity and role.
func TestAuthenticateIssuesToken(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_USERS", "alice:hunter2:operator,bob:secret:viewer")
	t.Setenv("JWT_SECRET", "test-secret")

	a := NewAuthenticator()

	token, expiresAt, err := a.Authenticate("alice", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if expiresAt <= time.Now().Unix() {
		t.Errorf("Expected a future expiry, got %d", expiresAt)
	}

	claims, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Reviewer() != "alice" {
		t.Errorf("Expected subject alice, got %q", claims.Reviewer())
	}
	if claims.Role != RoleOperator {
		t.Errorf("Expected operator role, got %q", claims.Role)
	}
}

// TestAuthenticateRejectsBadCredentials verifies wrong passwords and
// unknown users both fail with the same error.
func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_USERS", "alice:hunter2:operator")
	t.Setenv("JWT_SECRET", "test-secret")

	a := NewAuthenticator()

	if _, _, err := a.Authenticate("alice", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := a.Authenticate("mallory", "hunter2"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

// TestAuthenticateDisabled verifies login is refused outright when auth is
// off; the middleware lets requests through instead.
func TestAuthenticateDisabled(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "false")

	a := NewAuthenticator()
	if a.IsEnabled() {
		t.Fatal("Expected auth to be disabled")
	}
	if _, _, err := a.Authenticate("admin", "x"); err != ErrAuthDisabled {
		t.Errorf("Expected ErrAuthDisabled, got %v", err)
	}
}

// TestRoleDefaultsToViewer verifies accounts without an explicit role
// cannot mutate.
func TestRoleDefaultsToViewer(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_USERS", "bob:secret")
	t.Setenv("JWT_SECRET", "test-secret")

	a := NewAuthenticator()
	token, _, err := a.Authenticate("bob", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	claims, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Role != RoleViewer {
		t.Errorf("Expected viewer role, got %q", claims.Role)
	}
	if claims.Role.CanWrite() {
		t.Error("Viewer role must not be allowed to write")
	}
}

// TestVerifyRejectsExpiredToken verifies expiry checking.
func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "-1m")

	issuer := NewTokenIssuer()
	token, _, err := issuer.Issue("alice", RoleOperator)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := issuer.Verify(token); err != ErrExpiredToken {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

// TestVerifyRejectsForeignToken verifies a token signed with a different
// secret fails closed.
func TestVerifyRejectsForeignToken(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "1h")

	t.Setenv("JWT_SECRET", "secret-a")
	issuerA := NewTokenIssuer()
	token, _, err := issuerA.Issue("alice", RoleOperator)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	issuerB := NewTokenIssuer()
	if _, err := issuerB.Verify(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

// TestBcryptHashPassthrough verifies a pre-hashed password in AUTH_USERS
// is used as-is.
func TestBcryptHashPassthrough(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	// bcrypt hash of "hunter2"
	t.Setenv("AUTH_USERS", "alice:$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy:operator")
	t.Setenv("JWT_SECRET", "test-secret")

	a := NewAuthenticator()
	if _, _, err := a.Authenticate("alice", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

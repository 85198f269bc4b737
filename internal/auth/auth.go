package auth

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("authentication is disabled")
)

// Role decides what an authenticated user may do. Viewers read incidents
// and watch streams; operators additionally review and close incidents and
// manage cameras.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
)

// CanWrite reports whether the role may perform mutating operations
// (camera registration, incident review and close).
func (r Role) CanWrite() bool {
	return r == RoleOperator
}

// User is one account in the static user table
type User struct {
	Name string
	Role Role

	passwordHash []byte
}

// Authenticator validates credentials against a static user table and
// issues signed tokens carrying the user's identity and role.
type Authenticator struct {
	enabled bool
	users   map[string]*User
	tokens  *TokenIssuer
}

// NewAuthenticator builds an authenticator from the environment.
// AUTH_USERS lists accounts as "name:password:role" separated by commas;
// passwords may be plaintext or bcrypt hashes. When AUTH_USERS is unset,
// AUTH_USERNAME/AUTH_PASSWORD define a single operator account.
func NewAuthenticator() *Authenticator {
	a := &Authenticator{
		enabled: os.Getenv("AUTH_ENABLED") == "true",
		users:   make(map[string]*User),
		tokens:  NewTokenIssuer(),
	}
	if !a.enabled {
		return a
	}

	if spec := os.Getenv("AUTH_USERS"); spec != "" {
		for _, entry := range strings.Split(spec, ",") {
			parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
			if len(parts) < 2 || parts[0] == "" {
				continue
			}
			role := RoleViewer
			if len(parts) == 3 && Role(parts[2]) == RoleOperator {
				role = RoleOperator
			}
			a.users[parts[0]] = &User{
				Name:         parts[0],
				Role:         role,
				passwordHash: hashOrPassthrough(parts[1]),
			}
		}
		return a
	}

	name := os.Getenv("AUTH_USERNAME")
	if name == "" {
		name = "admin"
	}
	if password := os.Getenv("AUTH_PASSWORD"); password != "" {
		a.users[name] = &User{
			Name:         name,
			Role:         RoleOperator,
			passwordHash: hashOrPassthrough(password),
		}
	}
	return a
}

// hashOrPassthrough accepts a bcrypt hash as-is and hashes plaintext
func hashOrPassthrough(password string) []byte {
	if strings.HasPrefix(password, "$2a$") || strings.HasPrefix(password, "$2b$") {
		return []byte(password)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil
	}
	return hash
}

// IsEnabled returns whether authentication is enabled
func (a *Authenticator) IsEnabled() bool {
	return a.enabled
}

// Authenticate validates credentials and returns a signed token with its
// expiry
func (a *Authenticator) Authenticate(name, password string) (string, int64, error) {
	if !a.enabled {
		return "", 0, ErrAuthDisabled
	}

	user, ok := a.users[name]
	if !ok || user.passwordHash == nil {
		return "", 0, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.Issue(user.Name, user.Role)
	if err != nil {
		return "", 0, err
	}
	return token, expiresAt.Unix(), nil
}

// ValidateToken parses and verifies a token
func (a *Authenticator) ValidateToken(token string) (*Claims, error) {
	return a.tokens.Verify(token)
}

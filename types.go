package auth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Register(ctx context.Context, payload RegisterPayload) (*AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	WhoAmI(ctx context.Context, token string) (*User, error)
}

// TokenService mints and validates signed bearer tokens
type TokenService interface {
	Generate(subject string, authorities []string) (string, error)
	Validate(token string) (*Claims, error)
	IsValid(token, expectedSubject string) bool
}

// CredentialStore is the account lookup/persistence collaborator.
// Absent records are reported as not-found errors (goerrors.IsNotFound),
// never as a panic or a nil record with nil error.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*User, error)
	Save(ctx context.Context, user *User) (*User, error)
}

// PasswordAuthenticator authenticates passwords
type PasswordAuthenticator interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

// Config holds auth options
type Config interface {
	GetSigningSecret() string
	GetTokenExpiration() int
	GetIssuer() string
	GetAuthScheme() string
	GetStrictSecret() bool
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

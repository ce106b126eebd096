package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: registered claims plus the authority
// strings derived from the account's role assignments.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// Subject returns the subject claim, the account's username
func (c *Claims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Authorities returns the roles claim
func (c *Claims) Authorities() []string {
	return c.Roles
}

// HasAuthority checks if the token carries a specific authority string
func (c *Claims) HasAuthority(authority string) bool {
	for _, a := range c.Roles {
		if a == authority {
			return true
		}
	}
	return false
}

// Expires returns the expiration time
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *Claims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

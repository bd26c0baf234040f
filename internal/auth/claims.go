package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the signed attributes carried by an authentication token
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// UserID returns the subject claim
func (c *Claims) UserID() string {
	return c.RegisteredClaims.Subject
}

// Expires returns the expiration time, zero when the token never expires
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

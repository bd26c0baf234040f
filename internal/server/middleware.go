package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/sportshub/backend/internal/auth"
	"github.com/sportshub/backend/internal/store"
)

const (
	// ContextUserKey is where the bearer middleware stores the resolved user
	ContextUserKey = "current_user"
	// ContextTokenKey is where the bearer middleware stores the raw token
	ContextTokenKey = "auth_token"
)

// RequireAuth authenticates the bearer token on every request. The full
// check runs through the Authenticator so revoked tokens are rejected, not
// just expired or tampered ones.
func RequireAuth(authn *auth.Authenticator, logger auth.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := extractBearer(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			return respondError(c, auth.ErrTokenInvalid)
		}

		user, token, err := authn.AuthenticateToken(c.UserContext(), raw)
		if err != nil {
			// Auth shaped failures map to 401; anything else is a storage
			// fault and must surface as such, not as a rejected token.
			if !goerrors.Is(err, auth.ErrTokenInvalid) {
				logger.Error("token authentication failed", "error", err)
			}
			return respondError(c, err)
		}

		c.Locals(ContextUserKey, user)
		c.Locals(ContextTokenKey, token)

		return c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth, nil outside it
func CurrentUser(c *fiber.Ctx) *store.User {
	user, _ := c.Locals(ContextUserKey).(*store.User)
	return user
}

// CurrentToken returns the bearer token stored by RequireAuth
func CurrentToken(c *fiber.Ctx) string {
	token, _ := c.Locals(ContextTokenKey).(string)
	return token
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

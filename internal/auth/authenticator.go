package auth

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/sportshub/backend/internal/store"
)

// Authenticator resolves credentials and bearer tokens into user records
type Authenticator struct {
	directory UserDirectory
	revoked   RevocationStore
	hasher    *Hasher
	tokens    *TokenService
	logger    Logger
}

// NewAuthenticator will create a new Authenticator
func NewAuthenticator(directory UserDirectory, revoked RevocationStore, cfg Config) *Authenticator {
	return &Authenticator{
		directory: directory,
		revoked:   revoked,
		hasher:    NewHasher(cfg.GetPasswordSalt()),
		tokens:    NewTokenService([]byte(cfg.GetSigningKey()), cfg.GetAudience(), cfg.GetTokenLifetime(), nil),
		logger:    defLogger{},
	}
}

func (a *Authenticator) WithLogger(l Logger) *Authenticator {
	if l != nil {
		a.logger = l
		a.tokens.logger = l
	}
	return a
}

// Hasher exposes the password hasher so registration can reuse it
func (a *Authenticator) Hasher() *Hasher {
	return a.hasher
}

// TokenService exposes the token codec
func (a *Authenticator) TokenService() *TokenService {
	return a.tokens
}

// AuthenticateCredentials verifies an email/password pair and mints a fresh
// token. An unknown email and a wrong password produce the same error so the
// response cannot confirm which addresses are registered.
func (a *Authenticator) AuthenticateCredentials(ctx context.Context, email, password string) (*store.User, string, error) {
	user, err := a.directory.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokens.Sign(user.ID.String(), user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// AuthenticateToken validates a bearer token: decode, denylist membership,
// then user lookup by the email claim. The token is echoed back unchanged so
// handlers can thread it through to sign out.
func (a *Authenticator) AuthenticateToken(ctx context.Context, tokenString string) (*store.User, string, error) {
	claims, err := a.tokens.Validate(tokenString)
	if err != nil {
		return nil, "", err
	}

	if claims.Email == "" {
		return nil, "", ErrTokenInvalid
	}

	revoked, err := a.revoked.IsRevoked(ctx, tokenString)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to check token revocation")
	}

	if revoked {
		a.logger.Debug("rejected revoked token", "sub", claims.RegisteredClaims.Subject)
		return nil, "", ErrTokenInvalid
	}

	user, err := a.directory.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, "", ErrTokenInvalid
		}
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user for token")
	}

	return user, tokenString, nil
}

// SignOut records the literal token string in the denylist. Revocation is
// idempotent: signing out an already revoked token succeeds.
func (a *Authenticator) SignOut(ctx context.Context, tokenString string) (string, error) {
	if err := a.revoked.Revoke(ctx, tokenString); err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to persist token revocation")
	}
	return tokenString, nil
}

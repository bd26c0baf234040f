package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenService signs and validates the HS256 tokens issued by this service
type TokenService struct {
	signingKey []byte
	audience   jwt.ClaimStrings
	lifetime   time.Duration
	logger     Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(signingKey []byte, audience string, lifetimeSeconds int, logger Logger) *TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenService{
		signingKey: signingKey,
		audience:   jwt.ClaimStrings{audience},
		lifetime:   time.Duration(lifetimeSeconds) * time.Second,
		logger:     logger,
	}
}

// Sign mints a compact token carrying sub, email, aud, and iat. The exp
// claim is only set when a lifetime is configured; lifetime zero means the
// token never expires.
func (ts *TokenService) Sign(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			Audience: ts.audience,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Email: email,
	}

	if ts.lifetime > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ts.lifetime))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign JWT")
	}

	return signedString, nil
}

// Validate parses and validates a token string. The key function releases
// the signing key only for HMAC tokens, so an RSA or none alg header fails
// before any verification. Every failure collapses into ErrTokenInvalid;
// the concrete reason goes to the debug log only.
func (ts *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithAudience(ts.audience...))

	if err != nil {
		ts.logger.Debug("TokenService validate rejected token", "error", err)
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		ts.logger.Error("TokenService validate could not decode claims")
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sportshub/backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_Sign(t *testing.T) {
	signingKey := []byte("test-signing-key")
	audience := "test-audience"

	service := auth.NewTokenService(signingKey, audience, 3600, nil)

	t.Run("signs a token with the expected claims", func(t *testing.T) {
		tokenString, err := service.Sign("user-123", "test@example.com")

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (any, error) {
			return signingKey, nil
		})

		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(*auth.Claims)
		require.True(t, ok)
		assert.Equal(t, "user-123", claims.UserID())
		assert.Equal(t, "test@example.com", claims.Email)
		assert.Equal(t, jwt.ClaimStrings{audience}, claims.Audience)
		assert.NotNil(t, claims.IssuedAt)
		assert.NotNil(t, claims.ExpiresAt)
	})

	t.Run("omits exp when lifetime is zero", func(t *testing.T) {
		eternal := auth.NewTokenService(signingKey, audience, 0, nil)

		tokenString, err := eternal.Sign("user-123", "test@example.com")
		assert.NoError(t, err)

		claims, err := eternal.Validate(tokenString)
		assert.NoError(t, err)
		assert.True(t, claims.Expires().IsZero())
	})
}

func TestTokenService_Validate(t *testing.T) {
	signingKey := []byte("test-signing-key")
	audience := "test-audience"

	service := auth.NewTokenService(signingKey, audience, 3600, nil)

	t.Run("accepts its own tokens", func(t *testing.T) {
		tokenString, err := service.Sign("user-123", "test@example.com")
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID())
		assert.Equal(t, "test@example.com", claims.Email)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := auth.NewTokenService([]byte("other-key"), audience, 3600, nil)

		tokenString, err := other.Sign("user-123", "test@example.com")
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("rejects a token minted for another audience", func(t *testing.T) {
		other := auth.NewTokenService(signingKey, "other-audience", 3600, nil)

		tokenString, err := other.Sign("user-123", "test@example.com")
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		shortLived := auth.NewTokenService(signingKey, audience, 1, nil)

		tokenString, err := shortLived.Sign("user-123", "test@example.com")
		require.NoError(t, err)

		time.Sleep(1500 * time.Millisecond)

		claims, err := shortLived.Validate(tokenString)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("rejects the none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:  "user-123",
				Audience: jwt.ClaimStrings{audience},
			},
			Email: "test@example.com",
		})

		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("rejects an RSA signed token", func(t *testing.T) {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		token := jwt.NewWithClaims(jwt.SigningMethodRS256, &auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:  "user-123",
				Audience: jwt.ClaimStrings{audience},
			},
			Email: "test@example.com",
		})

		tokenString, err := token.SignedString(key)
		require.NoError(t, err)

		claims, err := service.Validate(tokenString)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		claims, err := service.Validate("not.a.token")

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})
}

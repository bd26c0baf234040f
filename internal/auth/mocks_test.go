package auth_test

import (
	"context"

	"github.com/sportshub/backend/internal/store"
	"github.com/stretchr/testify/mock"
)

// testConfig implements auth.Config
type testConfig struct {
	signingKey    string
	audience      string
	tokenLifetime int
	passwordSalt  string
}

func (c testConfig) GetSigningKey() string   { return c.signingKey }
func (c testConfig) GetAudience() string     { return c.audience }
func (c testConfig) GetTokenLifetime() int   { return c.tokenLifetime }
func (c testConfig) GetPasswordSalt() string { return c.passwordSalt }

func newTestConfig() testConfig {
	return testConfig{
		signingKey:    "test-signing-key",
		audience:      "test-audience",
		tokenLifetime: 3600,
		passwordSalt:  "0123456789abcdef",
	}
}

// MockUserDirectory implements auth.UserDirectory
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*store.User)
	return user, args.Error(1)
}

// MockRevocationStore implements auth.RevocationStore
type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

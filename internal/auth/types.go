package auth

import (
	"context"
	"fmt"

	"github.com/sportshub/backend/internal/store"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetAudience() string
	GetTokenLifetime() int
	GetPasswordSalt() string
}

// UserDirectory is the store we use to retrieve account records
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*store.User, error)
}

// RevocationStore persists the set of tokens that can no longer authenticate
type RevocationStore interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type defLogger struct{}

func (d defLogger) Error(msg string, args ...any) {
	fmt.Println(formatLogLine("ERR", msg, args))
}

func (d defLogger) Info(msg string, args ...any) {
	fmt.Println(formatLogLine("INF", msg, args))
}

func (d defLogger) Debug(msg string, args ...any) {
	fmt.Println(formatLogLine("DBG", msg, args))
}

// formatLogLine renders slog style key value pairs, a trailing key
// without a value is printed bare
func formatLogLine(level, msg string, args []any) string {
	out := "[" + level + "] AUTH " + msg
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			out += fmt.Sprintf(" %v=%v", args[i], args[i+1])
		} else {
			out += fmt.Sprintf(" %v", args[i])
		}
	}
	return out
}

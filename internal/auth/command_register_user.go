package auth

import (
	"context"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/sportshub/backend/internal/store"
	"github.com/uptrace/bun"
)

type RegisterUserMessage struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	UseHashid bool
}

func (e RegisterUserMessage) Type() string { return "user.register" }

// RegisterUserHandler creates a user record inside a transaction. Password
// may be empty for internally provisioned accounts; those can never sign in.
type RegisterUserHandler struct {
	Repo   store.RepositoryManager
	Hasher *Hasher
}

func (h *RegisterUserHandler) Execute(ctx context.Context, event RegisterUserMessage) (*store.User, error) {
	select {
	case <-ctx.Done():
		return nil, goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user registration",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *RegisterUserHandler) execute(ctx context.Context, event RegisterUserMessage) (*store.User, error) {
	user := &store.User{
		Email: strings.TrimSpace(event.Email),
	}

	if event.Password != "" {
		hash, err := h.Hasher.Hash(event.Password)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid password provided")
		}
		user.PasswordHash = hash
	}

	if event.UseHashid {
		if id, err := hashid.NewUUID(user.Email); err == nil {
			user.ID = id
		}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.Repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		created, err := h.Repo.Users().RegisterTx(ctx, tx, user)
		if err != nil {
			if store.IsUniqueViolation(err) {
				return ErrDuplicateUser
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create user")
		}

		user = created
		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return nil, richErr
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "user registration transaction failed")
	}

	return user, nil
}

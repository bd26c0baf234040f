package store

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// RevokedTokens is the persistent token denylist
type RevokedTokens interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type revokedTokens struct {
	db *bun.DB
}

var _ RevokedTokens = (*revokedTokens)(nil)

func NewRevokedTokensRepository(db *bun.DB) RevokedTokens {
	return &revokedTokens{db: db}
}

// Revoke inserts the token into the denylist. The conflict clause makes the
// operation idempotent; revoking a token twice leaves a single row.
func (r *revokedTokens) Revoke(ctx context.Context, token string) error {
	now := time.Now()
	_, err := r.db.NewInsert().
		Model(&RevokedToken{Token: token, RevokedAt: &now}).
		On("CONFLICT (token) DO NOTHING").
		Exec(ctx)

	return err
}

func (r *revokedTokens) IsRevoked(ctx context.Context, token string) (bool, error) {
	return r.db.NewSelect().
		Model((*RevokedToken)(nil)).
		Where("token = ?", token).
		Exists(ctx)
}

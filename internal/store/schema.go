package store

import (
	"context"
	_ "embed"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

//go:embed schema.sql
var schemaSQL string

// Bootstrap applies the embedded schema. Every statement is guarded with
// IF NOT EXISTS so startup can run it unconditionally. Statements execute
// one at a time because not every driver accepts multi-statement strings.
func Bootstrap(ctx context.Context, db *bun.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to apply schema").
				WithMetadata(map[string]any{
					"statement": stmt,
				})
		}
	}

	return nil
}

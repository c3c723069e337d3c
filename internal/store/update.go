package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"audiobookd/internal/constants"
)

// applyUpdate runs a partial UPDATE built from a column->value map.
// Columns outside the allowlist are rejected before touching the row;
// a nil value is written as NULL (explicit null is distinct from omitted,
// which simply never reaches the map). Returns NotFound when no row
// matches id.
func (db *DB) applyUpdate(ctx context.Context, table, idColumn string, id int, entity string, updates map[string]any, allowed map[string]bool) error {
	if len(updates) == 0 {
		return nil
	}

	b := squirrel.Update(table)
	for col, val := range updates {
		if !allowed[col] {
			return ErrInvalidInput.WithMessage("invalid column name: " + col)
		}
		b = b.Set(col, val)
	}

	query, args, err := b.Where(squirrel.Eq{idColumn: id}).ToSql()
	if err != nil {
		return ErrStorage.WithMessage("failed to build update for " + entity).WithCause(err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return classifyWrite(err, "failed to update "+entity)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ErrStorage.WithMessage("failed to update " + entity).WithCause(err)
	}
	if rows == 0 {
		return notFound(entity)
	}
	return nil
}

// normalizeRange applies the list defaults: skip 0, limit 10. Negative
// values fall back to the defaults; there is deliberately no upper bound
// on limit.
func normalizeRange(skip, limit int) (int, int) {
	if skip < 0 {
		skip = constants.DefaultListSkip
	}
	if limit < 0 {
		limit = constants.DefaultListLimit
	}
	return skip, limit
}

// Package repository implements the data-access layer: a generic
// create/get/update/save/delete base parameterized over a Model interface,
// plus one entity repository per table adding scoped finders and guarded
// mutations.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateKey reports a Create against an existing primary key (or any
// unique constraint).
var ErrDuplicateKey = errors.New("repository: duplicate key")

// Model is implemented by domain objects that know their own table,
// primary key, and column representation. Deserialization lives in the
// per-entity FromRecord constructors.
type Model interface {
	Table() string
	Key() map[string]any
	Record() map[string]any
}

// sortedColumns returns the column names in deterministic order so the
// generated SQL is stable.
func sortedColumns(rec map[string]any) []string {
	cols := make([]string, 0, len(rec))
	for col := range rec {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func placeholders(n, offset int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("$%d", offset+i+1)
	}
	return out
}

func whereClause(cols []string, offset int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("%s = $%d", col, offset+i+1)
	}
	return strings.Join(parts, " AND ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts the model and fails with ErrDuplicateKey if the primary
// key (or any unique constraint) already exists.
func Create(ctx context.Context, db *database.DB, m Model) error {
	rec := m.Record()
	cols := sortedColumns(rec)

	args := make([]any, len(cols))
	for i, col := range cols {
		args[i] = rec[col]
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		m.Table(), strings.Join(cols, ", "), strings.Join(placeholders(len(cols), 0), ", "))

	if _, err := db.Pool.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert into %s: %w", m.Table(), err)
	}
	return nil
}

// Save upserts the model by primary key. Repeated calls succeed and leave
// the latest values in place.
func Save(ctx context.Context, db *database.DB, m Model) error {
	rec := m.Record()
	key := m.Key()
	cols := sortedColumns(rec)
	keyCols := sortedColumns(key)

	args := make([]any, len(cols))
	for i, col := range cols {
		args[i] = rec[col]
	}

	var updates []string
	for _, col := range cols {
		if _, isKey := key[col]; !isKey {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	conflict := fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", strings.Join(keyCols, ", "))
	if len(updates) > 0 {
		conflict = fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s",
			strings.Join(keyCols, ", "), strings.Join(updates, ", "))
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) %s",
		m.Table(), strings.Join(cols, ", "), strings.Join(placeholders(len(cols), 0), ", "), conflict)

	if _, err := db.Pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", m.Table(), err)
	}
	return nil
}

// Get fetches one row by primary key, returning (nil, nil) when the key
// does not exist.
func Get[M any](ctx context.Context, db *database.DB, table string, key map[string]any, from func(map[string]any) (*M, error)) (*M, error) {
	keyCols := sortedColumns(key)
	args := make([]any, len(keyCols))
	for i, col := range keyCols {
		args[i] = key[col]
	}

	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s", table, whereClause(keyCols, 0))

	rows, err := db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	rec, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
	}
	return from(rec)
}

// Update rewrites the model's non-key columns. A missing row is reported
// as false, not an error, so callers can tell not-found apart from
// infrastructure failure.
func Update(ctx context.Context, db *database.DB, m Model) (bool, error) {
	rec := m.Record()
	key := m.Key()
	keyCols := sortedColumns(key)

	var setCols []string
	for _, col := range sortedColumns(rec) {
		if _, isKey := key[col]; !isKey {
			setCols = append(setCols, col)
		}
	}

	args := make([]any, 0, len(setCols)+len(keyCols))
	sets := make([]string, len(setCols))
	for i, col := range setCols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, rec[col])
	}
	for _, col := range keyCols {
		args = append(args, key[col])
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		m.Table(), strings.Join(sets, ", "), whereClause(keyCols, len(setCols)))

	tag, err := db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update %s: %w", m.Table(), err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes one row by primary key, returning false when it was not
// there.
func Delete(ctx context.Context, db *database.DB, table string, key map[string]any) (bool, error) {
	keyCols := sortedColumns(key)
	args := make([]any, len(keyCols))
	for i, col := range keyCols {
		args[i] = key[col]
	}

	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", table, whereClause(keyCols, 0))

	tag, err := db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// collectAll drains rows into domain objects via a FromRecord constructor.
func collectAll[M any](rows pgx.Rows, from func(map[string]any) (*M, error)) ([]*M, error) {
	recs, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}
	out := make([]*M, 0, len(recs))
	for _, rec := range recs {
		m, err := from(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

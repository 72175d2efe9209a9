package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// store is the connection shared by the entity repositories
type store struct {
	db      *sql.DB
	dialect Dialect
}

// exec runs a single modifying statement and returns the affected row count.
// A single statement is atomic on both engines, so a failure leaves no partial effect.
func (s *store) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	query = s.dialect.Rebind(query)
	slog.Debug("executing statement", "op", op, "query", query, "args", args)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.fail(op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, s.fail(op, err)
	}
	return affected, nil
}

// insert runs an INSERT ... RETURNING id statement
func (s *store) insert(ctx context.Context, op, query string, args ...any) (int64, error) {
	query = s.dialect.Rebind(query + " RETURNING id")
	slog.Debug("executing statement", "op", op, "query", query, "args", args)

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, s.fail(op, err)
	}
	return id, nil
}

// fail classifies err and logs it. Rejections of user input are warnings,
// everything else is an unexpected storage error.
func (s *store) fail(op string, err error) error {
	classified := classify(err)
	if errors.Is(classified, models.ErrStorage) {
		slog.Error("unexpected storage error", "op", op, "error", err)
	} else {
		slog.Warn("statement rejected", "op", op, "error", classified)
	}
	return classified
}

// queryRows runs a SELECT and scans every row with scan. Rows are closed
// before returning on every path.
func queryRows[T any](ctx context.Context, q queryer, dialect Dialect, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// queryIDs returns every id of a table in ascending order
func queryIDs(ctx context.Context, q queryer, dialect Dialect, kind models.Kind) ([]int64, error) {
	return queryRows(ctx, q, dialect, fmt.Sprintf("SELECT id FROM %s ORDER BY id", kind.Table()),
		func(rows *sql.Rows) (int64, error) {
			var id int64
			err := rows.Scan(&id)
			return id, err
		})
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

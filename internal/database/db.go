// Package database handles the connection to the relational store and owns
// every SQL statement the application runs.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"
)

// InitDB opens the database for the given driver and DSN, checks the
// connection and creates the schema if needed. For SQLite an empty DSN means
// ~/.astrolab/astrolab.db.
func InitDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}
	return openDB(ctx, dialect, dsn)
}

// Open initializes the database like InitDB and wraps it in a Repository
// speaking the driver's dialect
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*Repository, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}
	db, err := openDB(ctx, dialect, dsn)
	if err != nil {
		return nil, err
	}
	return NewRepository(db, dialect, opts...), nil
}

func openDB(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	var err error
	if dialect.Name == SQLite.Name {
		dsn, err = sqliteDSN(dsn)
		if err != nil {
			return nil, err
		}
	} else if dsn == "" {
		return nil, fmt.Errorf("a DSN is required for driver %q", dialect.Name)
	}

	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect.Name == SQLite.Name {
		// Enable foreign key constraints (deletes of referenced rows are rejected)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			slog.Error("Failed to enable foreign keys", "error", err)
			closeQuietly(db)
			return nil, err
		}

		// Set busy timeout to 5 seconds (SQLite will retry for this duration)
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			slog.Error("Failed to set busy timeout", "error", err)
			closeQuietly(db)
			return nil, err
		}

		// One connection keeps the pragmas above in effect for every statement
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := Migrate(ctx, db, dialect); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("database ready", "driver", dialect.Name)
	return db, nil
}

// sqliteDSN resolves the SQLite file location, creating its directory, and
// asks the driver to apply the pragmas on every new connection.
func sqliteDSN(dsn string) (string, error) {
	if dsn == ":memory:" {
		return dsn, nil
	}
	if dsn == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dsn = filepath.Join(home, ".astrolab", "astrolab.db")
	}

	path := strings.TrimPrefix(strings.SplitN(dsn, "?", 2)[0], "file:")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if strings.Contains(dsn, "_pragma=") {
		return dsn, nil
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

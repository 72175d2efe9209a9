package database

import (
	"context"
	"database/sql"
	"math/rand/v2"
	"testing"

	"github.com/thenoetrevino/astrolab/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := Migrate(context.Background(), db, SQLite); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestRepo wraps setupTestDB in a repository with a seeded generator
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t), SQLite, WithRand(rand.New(rand.NewPCG(42, 7))))
}

// ============================================================================
// DATA HELPERS
// ============================================================================

func mustCreateLab(t *testing.T, repo *Repository, name string) int64 {
	t.Helper()
	id, err := repo.CreateLaboratory(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create laboratory %q: %v", name, err)
	}
	return id
}

func mustCreateType(t *testing.T, repo *Repository, typeName, location string) int64 {
	t.Helper()
	id, err := repo.CreateObjectType(context.Background(), typeName, location)
	if err != nil {
		t.Fatalf("Failed to create object type %q: %v", typeName, err)
	}
	return id
}

func mustCreateResearcher(t *testing.T, repo *Repository, name, level string, labID int64) int64 {
	t.Helper()
	id, err := repo.CreateResearcher(context.Background(), name, models.Level(level), labID)
	if err != nil {
		t.Fatalf("Failed to create researcher %q: %v", name, err)
	}
	return id
}

func mustCreateObject(t *testing.T, repo *Repository, name string, distance, labID, typeID int64) int64 {
	t.Helper()
	id, err := repo.CreateObject(context.Background(), name, distance, labID, typeID)
	if err != nil {
		t.Fatalf("Failed to create object %q: %v", name, err)
	}
	return id
}

func countRows(t *testing.T, repo *Repository, table string) int {
	t.Helper()
	var n int
	if err := repo.s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

package testutil

import (
	"context"
	"database/sql"
	"math/rand/v2"
	"testing"

	"github.com/thenoetrevino/astrolab/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory SQLite database with the full schema.
// The pool is limited to one connection so every statement sees the same
// in-memory database and the foreign key pragma.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db, database.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo returns a repository over a fresh in-memory database whose
// generators are seeded deterministically
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db := SetupTestDB(t)
	return database.NewRepository(db, database.SQLite, database.WithRand(rand.New(rand.NewPCG(1, 2))))
}

// CreateTestLab inserts a laboratory and returns its ID
func CreateTestLab(t *testing.T, repo database.DataStore, name string) int64 {
	t.Helper()
	id, err := repo.CreateLaboratory(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create laboratory %q: %v", name, err)
	}
	return id
}

// CreateTestObjectType inserts an object type and returns its ID
func CreateTestObjectType(t *testing.T, repo database.DataStore, typeName, location string) int64 {
	t.Helper()
	id, err := repo.CreateObjectType(context.Background(), typeName, location)
	if err != nil {
		t.Fatalf("Failed to create object type %q: %v", typeName, err)
	}
	return id
}

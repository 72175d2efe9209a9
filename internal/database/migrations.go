package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// Migrate creates the schema if it does not exist yet.
// Foreign keys have no ON DELETE action: deleting a laboratory or object type
// that is still referenced is rejected by the engine.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	for _, stmt := range schemaFor(dialect) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute ddl: %w", err)
		}
	}
	return nil
}

func schemaFor(dialect Dialect) []string {
	if dialect.Name == Postgres.Name {
		return postgresSchema()
	}
	return sqliteSchema()
}

// SQLite ignores VARCHAR lengths, so the limits are CHECK constraints
func sqliteSchema() []string {
	return []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS laboratory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lab_name TEXT NOT NULL CHECK (length(lab_name) <= %d)
		)`, models.MaxLabNameLength),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS researcher (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name TEXT CHECK (length(full_name) <= %d),
			level TEXT CHECK (length(level) <= %d),
			laboratory_id INTEGER NOT NULL,
			FOREIGN KEY (laboratory_id) REFERENCES laboratory(id)
		)`, models.MaxFullNameLength, models.MaxLevelLength),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS object_type (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT CHECK (length(type) <= %d),
			galaxy_location TEXT CHECK (length(galaxy_location) <= %d)
		)`, models.MaxTypeLength, models.MaxGalaxyLocationLength),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS object (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT CHECK (length(name) <= %d),
			distance INTEGER,
			laboratory_id INTEGER NOT NULL,
			type_id INTEGER NOT NULL,
			FOREIGN KEY (laboratory_id) REFERENCES laboratory(id),
			FOREIGN KEY (type_id) REFERENCES object_type(id)
		)`, models.MaxObjectNameLength),
		`CREATE INDEX IF NOT EXISTS idx_researcher_laboratory ON researcher(laboratory_id)`,
		`CREATE INDEX IF NOT EXISTS idx_object_laboratory ON object(laboratory_id)`,
		`CREATE INDEX IF NOT EXISTS idx_object_type ON object(type_id)`,
	}
}

func postgresSchema() []string {
	return []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS laboratory (
			id SERIAL PRIMARY KEY,
			lab_name VARCHAR(%d) NOT NULL
		)`, models.MaxLabNameLength),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS researcher (
			id SERIAL PRIMARY KEY,
			full_name VARCHAR(%d),
			level VARCHAR(%d),
			laboratory_id INTEGER NOT NULL REFERENCES laboratory(id)
		)`, models.MaxFullNameLength, models.MaxLevelLength),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS object_type (
			id SERIAL PRIMARY KEY,
			type VARCHAR(%d),
			galaxy_location VARCHAR(%d)
		)`, models.MaxTypeLength, models.MaxGalaxyLocationLength),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS object (
			id SERIAL PRIMARY KEY,
			name VARCHAR(%d),
			distance BIGINT,
			laboratory_id INTEGER NOT NULL REFERENCES laboratory(id),
			type_id INTEGER NOT NULL REFERENCES object_type(id)
		)`, models.MaxObjectNameLength),
		`CREATE INDEX IF NOT EXISTS idx_researcher_laboratory ON researcher(laboratory_id)`,
		`CREATE INDEX IF NOT EXISTS idx_object_laboratory ON object(laboratory_id)`,
		`CREATE INDEX IF NOT EXISTS idx_object_type ON object(type_id)`,
	}
}

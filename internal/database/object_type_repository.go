package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// ============================================================================
// Object Type Operations
// ============================================================================

// ObjectTypeRepo handles object_type rows
type ObjectTypeRepo struct {
	s   *store
	gen *Generator
}

// Create inserts an object type and returns its id
func (r *ObjectTypeRepo) Create(ctx context.Context, typeName, galaxyLocation string) (int64, error) {
	return r.s.insert(ctx, "create object type",
		`INSERT INTO object_type (type, galaxy_location) VALUES (?, ?)`, typeName, galaxyLocation)
}

// List returns every object type ordered by id
func (r *ObjectTypeRepo) List(ctx context.Context) ([]models.ObjectType, error) {
	types, err := queryRows(ctx, r.s.db, r.s.dialect,
		`SELECT id, type, galaxy_location FROM object_type ORDER BY id`, scanObjectType)
	if err != nil {
		return nil, r.s.fail("read object types", err)
	}
	return types, nil
}

// Generate inserts n object types with independent random type and location
// names. No uniqueness is enforced.
func (r *ObjectTypeRepo) Generate(ctx context.Context, n int) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", models.ErrInvalidCount, n)
	}

	var inserted int64
	err := withTx(ctx, r.s.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, r.s.dialect.Rebind(
			`INSERT INTO object_type (type, galaxy_location) VALUES (?, ?)`))
		if err != nil {
			return err
		}
		defer stmt.Close()

		for range n {
			if _, err := stmt.ExecContext(ctx, r.gen.Name(), r.gen.Name()); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, r.s.fail("generate object types", err)
	}

	slog.Debug("generated object types", "requested", n, "inserted", inserted)
	return inserted, nil
}

func scanObjectType(rows *sql.Rows) (models.ObjectType, error) {
	var (
		t        models.ObjectType
		typeName sql.NullString
		location sql.NullString
	)
	err := rows.Scan(&t.ID, &typeName, &location)
	t.Type = NullStringToString(typeName)
	t.GalaxyLocation = NullStringToString(location)
	return t, err
}

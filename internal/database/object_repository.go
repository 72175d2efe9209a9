package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// ============================================================================
// Object Operations
// ============================================================================

const selectObjects = `
	SELECT o.id, o.name, o.distance, o.laboratory_id, o.type_id, l.lab_name, t.type, t.galaxy_location
	FROM object AS o
	JOIN laboratory AS l ON o.laboratory_id = l.id
	JOIN object_type AS t ON o.type_id = t.id`

// ObjectRepo handles object rows
type ObjectRepo struct {
	s   *store
	gen *Generator
}

// Create inserts an object and returns its id
func (r *ObjectRepo) Create(ctx context.Context, name string, distance, laboratoryID, typeID int64) (int64, error) {
	return r.s.insert(ctx, "create object",
		`INSERT INTO object (name, distance, laboratory_id, type_id) VALUES (?, ?, ?, ?)`,
		name, distance, laboratoryID, typeID)
}

// List returns every object with its laboratory and type fields, ordered by id
func (r *ObjectRepo) List(ctx context.Context) ([]models.Object, error) {
	objects, err := queryRows(ctx, r.s.db, r.s.dialect, selectObjects+` ORDER BY o.id`, scanObject)
	if err != nil {
		return nil, r.s.fail("read objects", err)
	}
	return objects, nil
}

// Generate inserts n objects with random names and distances, each attached to
// a uniformly chosen laboratory and object type. Without laboratories or
// object types nothing is inserted and 0 is returned.
func (r *ObjectRepo) Generate(ctx context.Context, n int) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", models.ErrInvalidCount, n)
	}

	var inserted int64
	err := withTx(ctx, r.s.db, func(tx *sql.Tx) error {
		labIDs, err := queryIDs(ctx, tx, r.s.dialect, models.KindLaboratory)
		if err != nil {
			return err
		}
		if len(labIDs) == 0 {
			slog.Warn("cannot generate objects: no laboratories exist")
			return nil
		}

		typeIDs, err := queryIDs(ctx, tx, r.s.dialect, models.KindObjectType)
		if err != nil {
			return err
		}
		if len(typeIDs) == 0 {
			slog.Warn("cannot generate objects: no object types exist")
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, r.s.dialect.Rebind(
			`INSERT INTO object (name, distance, laboratory_id, type_id) VALUES (?, ?, ?, ?)`))
		if err != nil {
			return err
		}
		defer stmt.Close()

		for range n {
			_, err := stmt.ExecContext(ctx, r.gen.Name(), r.gen.Distance(), r.gen.Pick(labIDs), r.gen.Pick(typeIDs))
			if err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, r.s.fail("generate objects", err)
	}

	slog.Debug("generated objects", "requested", n, "inserted", inserted)
	return inserted, nil
}

func scanObject(rows *sql.Rows) (models.Object, error) {
	var (
		o        models.Object
		name     sql.NullString
		distance sql.NullInt64
		typeName sql.NullString
		location sql.NullString
	)
	err := rows.Scan(&o.ID, &name, &distance, &o.LaboratoryID, &o.TypeID, &o.LabName, &typeName, &location)
	o.Name = NullStringToString(name)
	o.Distance = distance.Int64
	o.TypeName = NullStringToString(typeName)
	o.GalaxyLocation = NullStringToString(location)
	return o, err
}

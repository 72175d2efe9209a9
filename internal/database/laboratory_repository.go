package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// ============================================================================
// Laboratory Operations
// ============================================================================

// LaboratoryRepo handles laboratory rows
type LaboratoryRepo struct {
	s   *store
	gen *Generator
}

// Create inserts a laboratory and returns its id
func (r *LaboratoryRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.s.insert(ctx, "create laboratory",
		`INSERT INTO laboratory (lab_name) VALUES (?)`, name)
}

// List returns every laboratory ordered by id
func (r *LaboratoryRepo) List(ctx context.Context) ([]models.Laboratory, error) {
	labs, err := queryRows(ctx, r.s.db, r.s.dialect,
		`SELECT id, lab_name FROM laboratory ORDER BY id`, scanLaboratory)
	if err != nil {
		return nil, r.s.fail("read laboratories", err)
	}
	return labs, nil
}

// Generate inserts up to n laboratories with random XXX-Y names. Candidates
// that collide with an existing name or with an earlier candidate are
// dropped, so the returned count may be smaller than n.
func (r *LaboratoryRepo) Generate(ctx context.Context, n int) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", models.ErrInvalidCount, n)
	}

	var inserted int64
	err := withTx(ctx, r.s.db, func(tx *sql.Tx) error {
		existing, err := queryRows(ctx, tx, r.s.dialect, `SELECT lab_name FROM laboratory`,
			func(rows *sql.Rows) (string, error) {
				var name string
				err := rows.Scan(&name)
				return name, err
			})
		if err != nil {
			return err
		}

		seen := make(map[string]struct{}, len(existing)+n)
		for _, name := range existing {
			seen[name] = struct{}{}
		}

		stmt, err := tx.PrepareContext(ctx, r.s.dialect.Rebind(`INSERT INTO laboratory (lab_name) VALUES (?)`))
		if err != nil {
			return err
		}
		defer stmt.Close()

		for range n {
			name := r.gen.LabName()
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if _, err := stmt.ExecContext(ctx, name); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, r.s.fail("generate laboratories", err)
	}

	slog.Debug("generated laboratories", "requested", n, "inserted", inserted)
	return inserted, nil
}

func scanLaboratory(rows *sql.Rows) (models.Laboratory, error) {
	var lab models.Laboratory
	err := rows.Scan(&lab.ID, &lab.Name)
	return lab, err
}

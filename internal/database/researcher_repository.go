package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// ============================================================================
// Researcher Operations
// ============================================================================

const selectResearchers = `
	SELECT r.id, r.full_name, r.level, r.laboratory_id, l.lab_name
	FROM researcher AS r
	JOIN laboratory AS l ON r.laboratory_id = l.id`

// ResearcherRepo handles researcher rows
type ResearcherRepo struct {
	s   *store
	gen *Generator
}

// Create inserts a researcher and returns its id
func (r *ResearcherRepo) Create(ctx context.Context, fullName string, level models.Level, laboratoryID int64) (int64, error) {
	return r.s.insert(ctx, "create researcher",
		`INSERT INTO researcher (full_name, level, laboratory_id) VALUES (?, ?, ?)`,
		fullName, string(level), laboratoryID)
}

// List returns every researcher with its laboratory name, ordered by id
func (r *ResearcherRepo) List(ctx context.Context) ([]models.Researcher, error) {
	researchers, err := queryRows(ctx, r.s.db, r.s.dialect, selectResearchers+` ORDER BY r.id`, scanResearcher)
	if err != nil {
		return nil, r.s.fail("read researchers", err)
	}
	return researchers, nil
}

// Generate inserts n researchers with random names and levels, each attached
// to a uniformly chosen existing laboratory. Without laboratories nothing is
// inserted and 0 is returned.
func (r *ResearcherRepo) Generate(ctx context.Context, n int) (int64, error) {
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
			slog.Warn("cannot generate researchers: no laboratories exist")
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, r.s.dialect.Rebind(
			`INSERT INTO researcher (full_name, level, laboratory_id) VALUES (?, ?, ?)`))
		if err != nil {
			return err
		}
		defer stmt.Close()

		for range n {
			if _, err := stmt.ExecContext(ctx, r.gen.Name(), string(r.gen.Level()), r.gen.Pick(labIDs)); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, r.s.fail("generate researchers", err)
	}

	slog.Debug("generated researchers", "requested", n, "inserted", inserted)
	return inserted, nil
}

func scanResearcher(rows *sql.Rows) (models.Researcher, error) {
	var (
		res      models.Researcher
		fullName sql.NullString
		level    sql.NullString
	)
	err := rows.Scan(&res.ID, &fullName, &level, &res.LaboratoryID, &res.LabName)
	res.FullName = NullStringToString(fullName)
	res.Level = models.Level(NullStringToString(level))
	return res, err
}

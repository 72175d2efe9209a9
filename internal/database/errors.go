package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/thenoetrevino/astrolab/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLSTATE codes the application distinguishes
const (
	pgStringDataRightTruncation = "22001"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
	pgCheckViolation            = "23514"
)

// classify maps a driver error onto the domain error set. Driver error types
// are not wrapped, only their message is kept.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgStringDataRightTruncation:
			return fmt.Errorf("%w: %s", models.ErrValueTooLong, pgErr.Message)
		case pgNotNullViolation, pgForeignKeyViolation, pgUniqueViolation, pgCheckViolation:
			return fmt.Errorf("%w: %s", models.ErrConstraintViolation, pgErr.Message)
		}
		return fmt.Errorf("%w: %s", models.ErrStorage, pgErr.Message)
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		if code&0xff == sqlite3.SQLITE_CONSTRAINT {
			// CHECK constraints only guard column lengths in this schema
			if code == sqlite3.SQLITE_CONSTRAINT_CHECK || strings.Contains(sqErr.Error(), "CHECK constraint failed") {
				return fmt.Errorf("%w: %s", models.ErrValueTooLong, sqErr.Error())
			}
			return fmt.Errorf("%w: %s", models.ErrConstraintViolation, sqErr.Error())
		}
		if code&0xff == sqlite3.SQLITE_TOOBIG {
			return fmt.Errorf("%w: %s", models.ErrValueTooLong, sqErr.Error())
		}
	}

	return fmt.Errorf("%w: %s", models.ErrStorage, err.Error())
}

func isDomainError(err error) bool {
	return models.IsRejectedInput(err) || errors.Is(err, models.ErrStorage)
}

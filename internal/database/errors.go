package database

import (
	"errors"
	"strings"

	"github.com/thenoetrevino/flashquiz/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// classify turns a driver error into the domain error taxonomy.
// Errors that are already classified pass through unchanged; field names the
// column a CHECK constraint protects for this statement.
func classify(err error, op, field string) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{models.ErrValidation, models.ErrDuplicateName, models.ErrNotFound, models.ErrStorage} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_CHECK, "CHECK constraint failed") ||
		isConstraint(err, sqlite3.SQLITE_CONSTRAINT_NOTNULL, "NOT NULL constraint failed") {
		return &models.ValidationError{Field: field}
	}

	return &models.StorageError{Op: op, Err: err}
}

// isUniqueViolation reports whether err comes from a UNIQUE constraint
func isUniqueViolation(err error) bool {
	return isConstraint(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE, "UNIQUE constraint failed")
}

// isForeignKeyViolation reports whether err comes from a FOREIGN KEY constraint
func isForeignKeyViolation(err error) bool {
	return isConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, "FOREIGN KEY constraint failed")
}

// isConstraint matches the extended result code, falling back to SQLite's
// message text when only the primary code is reported.
func isConstraint(err error, code int, text string) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		if se.Code() == code {
			return true
		}
		if se.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
			return false
		}
	}
	return strings.Contains(err.Error(), text)
}

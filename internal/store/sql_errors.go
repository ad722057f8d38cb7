package store

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// classifyCode maps a PostgreSQL SQLSTATE code, as returned by the pgx
// driver or forwarded by the hosted REST service, to a failure kind.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyCode(code string) error {
	switch code {
	// Class 23: integrity constraint violations
	case pgerrcode.UniqueViolation:
		return ErrUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ErrForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return ErrNotNullViolation

	// Class 42: syntax errors or access rule violations
	case pgerrcode.InsufficientPrivilege:
		return ErrPermissionDenied
	case pgerrcode.SyntaxError,
		pgerrcode.UndefinedColumn,
		pgerrcode.UndefinedTable,
		pgerrcode.UndefinedFunction,
		pgerrcode.InvalidTextRepresentation:
		return ErrInvalidQuery
	}

	switch {
	// Class 22 data exceptions and the remaining Class 42 access rule violations
	case strings.HasPrefix(code, "22"), strings.HasPrefix(code, "42"):
		return ErrInvalidQuery
	// PostgREST's own errors: PGRST1xx request, PGRST2xx schema cache.
	case strings.HasPrefix(code, "PGRST1"), strings.HasPrefix(code, "PGRST2"):
		return ErrInvalidQuery
	case strings.HasPrefix(code, "PGRST3"):
		return ErrPermissionDenied
	}

	return ErrDataStoreFailure
}

// sqlDataError converts a driver error into a [*DataError] when the database
// itself rejected the statement. Connection and driver failures return nil.
func sqlDataError(err error) *DataError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return NewDataError(pgErr.Code, pgErr.Message, pgErr.Detail, pgErr.Hint)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return &DataError{
			Code:    strconv.Itoa(int(liteErr.ExtendedCode)),
			Message: liteErr.Error(),
			kind:    classifySQLiteError(liteErr),
		}
	}

	return nil
}

func classifySQLiteError(err sqlite3.Error) error {
	switch err.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ErrForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return ErrNotNullViolation
	}

	switch err.Code {
	case sqlite3.ErrError:
		return ErrInvalidQuery
	case sqlite3.ErrPerm, sqlite3.ErrAuth, sqlite3.ErrReadonly:
		return ErrPermissionDenied
	}

	return ErrDataStoreFailure
}

package store

import (
	"errors"
)

// Sentinel errors returned by data clients and repositories. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNoRowsFound is returned by SelectOne when nothing matches the query.
	ErrNoRowsFound = errors.New("no rows found")

	// ErrMultipleRowsFound is returned by SelectOne when more than one row
	// matches the query.
	ErrMultipleRowsFound = errors.New("multiple rows found")

	// ErrMissingFilter is returned by Update and Delete for unfiltered queries,
	// which would otherwise touch every row of the table.
	ErrMissingFilter = errors.New("update and delete require at least one filter")

	// ErrEmptyRecord is returned for inserts and updates without columns.
	ErrEmptyRecord = errors.New("record has no columns")

	// ErrUnsupportedDSN is returned when the database DSN names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Kinds of failures reported by the data store itself. A [*DataError]
// unwraps to one of them.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
	ErrInvalidQuery        = errors.New("invalid query")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrDataStoreFailure    = errors.New("data store failure")
)

// Low-level operation errors. These wrap the underlying driver or transport
// error when an operation fails before the data store could answer.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when reading a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingRows is returned when rows cannot be decoded into the
	// destination value.
	ErrDecodingRows = errors.New("failed to decode rows")

	// ErrSendingRequest is returned when a request to the hosted data
	// service cannot be completed.
	ErrSendingRequest = errors.New("error sending request to data service")
)

// DataError is a failure reported by the data store itself, such as a
// constraint violation or an unknown column. Message is the store's own
// description and is safe to show to clients.
type DataError struct {
	// Status is the HTTP status of the hosted data service, zero for SQL.
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`

	kind error
}

// NewDataError builds a DataError and classifies it by code.
func NewDataError(code, message, details, hint string) *DataError {
	return &DataError{
		Code:    code,
		Message: message,
		Details: details,
		Hint:    hint,
		kind:    classifyCode(code),
	}
}

func (e *DataError) Error() string {
	return e.Message
}

// Unwrap returns the failure kind, e.g. ErrUniqueViolation.
func (e *DataError) Unwrap() error {
	return e.kind
}

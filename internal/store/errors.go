package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no session is stored for the app.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrMessageNotFound is returned when a lookup matches no message.
	ErrMessageNotFound = errors.New("message not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when building a query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBeginningTransaction is returned when a transaction cannot be started.
	ErrBeginningTransaction = errors.New("error beginning transaction")

	// ErrCommittingTransaction is returned when a transaction commit fails.
	ErrCommittingTransaction = errors.New("error committing transaction")

	// ErrEncodingColumn is returned when a value cannot be encoded for storage.
	ErrEncodingColumn = errors.New("error encoding column value")
)

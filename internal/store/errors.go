package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// constraint on accounts.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when a lookup by id matches no
	// non-archived account.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrNoRowsAffected is returned when an update completes without error
	// but changes no row although the id was assumed to exist.
	ErrNoRowsAffected = errors.New("no rows affected")

	// ErrEmptyUpdate is returned when an update carries no field to change.
	ErrEmptyUpdate = errors.New("nothing to update")

	// ErrIncompletePair is returned when an update sets only one half of the
	// digest/salt pair or the otp/otp_expiry pair.
	ErrIncompletePair = errors.New("paired fields must be updated together")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrUnsupportedDialect is returned for a DSN no driver is registered for.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

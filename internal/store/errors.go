package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when a lookup by email or id matches no user.
	ErrUserNotFound = errors.New("no user was found")

	// ErrCheckInNotFound is returned when a check-in does not exist or belongs
	// to another user. The two cases are deliberately indistinguishable.
	ErrCheckInNotFound = errors.New("check-in not found")

	// ErrUnknownCheckInOwner is returned when a check-in references a user
	// that no longer exists.
	ErrUnknownCheckInOwner = errors.New("check-in owner does not exist")

	// ErrUnsupportedDriver is returned by [NewConnect] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrDatabaseNotConnected is returned when storages were built without a
	// connection pool.
	ErrDatabaseNotConnected = errors.New("database is not connected")
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
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

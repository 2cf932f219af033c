package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrServiceProviderNotFound is returned when a realm has no
	// service-provider record. The availability gate treats this as
	// "enabled" (default-permit).
	ErrServiceProviderNotFound = errors.New("service provider record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository and unit-of-work methods when a SQL-level operation fails before
// any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan service provider row")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrRollbackOnlyTransaction is returned when a commit is attempted on a
	// unit of work already marked rollback-only.
	ErrRollbackOnlyTransaction = errors.New("transaction is marked rollback-only")
)

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification reports whether a failed database operation is worth
// retrying. The bridge never retries on its own; the classification is
// attached to transaction failure logs so operators can separate transient
// faults (deadlocks, dropped connections) from real defects.
type ErrorClassification int

const (
	// NonRetryable is the default classification: constraint violations,
	// syntax errors, data exceptions, and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient faults such as connection loss or a
	// deadlock rollback.
	Retryable
)

// String returns the log label for the classification.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// ErrorClassificator classifies driver-level errors per backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL by
// inspecting the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not unwrap to a
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError onto an [ErrorClassification].
// Retryable classes, per the PostgreSQL errcodes appendix: 08 (connection
// exceptions), 40 (transaction rollback, including serialization failure
// and deadlock), and 57P03 (cannot connect now).
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement could succeed on a
// second attempt. Repositories never retry; the classification is logged so
// that transient failures can be told from broken queries.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] over pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [NonRetryable] for nil errors and for errors that did not
// come from the server.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// IsUniqueViolation reports whether err is SQLSTATE 23505.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresCode(err) == pgerrcode.UniqueViolation
}

// ClassifyPgError treats connection exceptions (class 08), transaction
// rollbacks such as serialization failures and deadlocks (class 40), and a
// server that is starting or shutting down as [Retryable]. Everything else,
// including constraint violations, is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}

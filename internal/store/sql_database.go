package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/migrations"
)

// Dialect names the database/sql driver behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// sqliteScheme prefixes DSNs that select the SQLite driver.
const sqliteScheme = "sqlite://"

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN: a "sqlite://<path>" DSN
// selects SQLite, anything else is handed to the pgx driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if path, ok := strings.CutPrefix(cfg.DSN, sqliteScheme); ok {
		return NewConnectSQLite(ctx, path, log)
	}
	return NewConnectPostgres(ctx, cfg.DSN, log)
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

// statementBuilder returns a squirrel builder using the placeholder format of
// the dialect.
func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Migrate applies the embedded migrations of the dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}
	return nil
}

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

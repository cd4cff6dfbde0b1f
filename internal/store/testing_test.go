package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-auth/internal/logger"
)

// newTestAccountRepo builds a postgres-flavoured repository over sqlmock.
func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	wrapped := &DB{
		DB:                 db,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}
	return newAccountRepository(db, wrapped, l), mock, db
}

// newSQLiteTestDB opens a migrated SQLite database in a temp dir.
func newSQLiteTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

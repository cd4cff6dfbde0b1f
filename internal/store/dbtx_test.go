// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertRawAccount = `INSERT INTO accounts (id, first_name, last_name, email, password_digest, password_salt, otp_expiry)
	VALUES (?, 'John', 'Doe', ?, 'digest', 'salt', CURRENT_TIMESTAMP)`

func countAccounts(t *testing.T, db *DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM accounts").Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := newSQLiteTestDB(t)

	err := WithTx(context.Background(), db.DB, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, insertRawAccount, "a1", "john@example.com")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countAccounts(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := newSQLiteTestDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db.DB, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, insertRawAccount, "a1", "john@example.com"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countAccounts(t, db))
}

func TestWithTx_RollsBackAndRethrowsPanic(t *testing.T) {
	db := newSQLiteTestDB(t)

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = WithTx(context.Background(), db.DB, nil, func(ctx context.Context, tx DBTX) error {
			_, _ = tx.ExecContext(ctx, insertRawAccount, "a1", "john@example.com")
			panic("kaboom")
		})
	})

	// the single pooled connection must have been released
	assert.Equal(t, 0, countAccounts(t, db))
}

func TestWithTx_BeginError(t *testing.T) {
	db := newSQLiteTestDB(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db.DB, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrBeginningTransaction)
	assert.False(t, called)
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackExpectedOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return ErrAccountNotFound
	})
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

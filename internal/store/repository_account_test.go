// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/models"
)

func ptr[T any](v T) *T { return &v }

func testAccount() models.Account {
	return models.Account{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john@example.com",
		PasswordDigest: "digest",
		PasswordSalt:   "salt",
		OTP:            "123456",
		OTPExpiry:      time.Date(2026, 1, 1, 12, 5, 0, 0, time.UTC),
	}
}

func accountRows(a models.Account) *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns).AddRow(
		a.ID, a.FirstName, a.MiddleName, a.LastName, a.Email,
		a.PasswordDigest, a.PasswordSalt, a.OTP, a.OTPExpiry,
		a.IsActive, a.IsArchived, a.CreatedAt, a.UpdatedAt,
	)
}

// ── sqlmock ───────────────────────────────────────────────────────────────────

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	stored := testAccount()
	stored.ID = "0190f5c4-0000-7000-8000-000000000001"
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), "John", nil, "Doe", "john@example.com", "digest", "salt", "123456", stored.OTPExpiry, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id = \\$1 AND is_archived = \\$2").
		WithArgs(sqlmock.AnyArg(), false).
		WillReturnRows(accountRows(stored))

	created, err := repo.Insert(context.Background(), testAccount())
	require.NoError(t, err)
	assert.Equal(t, stored.ID, created.ID)
	assert.Equal(t, "john@example.com", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Insert(context.Background(), testAccount())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestInsert_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.Insert(context.Background(), testAccount())
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("missing", false).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFindByID_QueryError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnError(errors.New("db network error"))

	_, err := repo.FindByID(context.Background(), "id")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindByID_ScanError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id")) // wrong shape

	_, err := repo.FindByID(context.Background(), "id")
	require.ErrorIs(t, err, ErrScanningRow)
}

func TestFindByEmail_NotFoundReturnsNil(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE email = \\$1").
		WithArgs("nobody@example.com", false).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	account, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestUpdate_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), "id", models.AccountUpdate{IsActive: ptr(true)})
	require.ErrorIs(t, err, ErrNoRowsAffected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_RejectsBeforeTouchingDB(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	_, err := repo.Update(context.Background(), "id", models.AccountUpdate{})
	require.ErrorIs(t, err, ErrEmptyUpdate)

	_, err = repo.Update(context.Background(), "id", models.AccountUpdate{OTP: ptr("123456")})
	require.ErrorIs(t, err, ErrIncompletePair)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ExecError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts SET").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.Update(context.Background(), "id", models.AccountUpdate{FirstName: ptr("Jane")})
	require.ErrorIs(t, err, ErrExecutingStatement)
}

// ── sqlite ────────────────────────────────────────────────────────────────────

func TestAccountRepository_SQLiteRoundTrip(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())
	ctx := context.Background()

	in := testAccount()
	in.MiddleName = ptr("Q")

	created, err := repo.Insert(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "John", created.FirstName)
	assert.Equal(t, "Q", *created.MiddleName)
	assert.Equal(t, "digest", created.PasswordDigest)
	assert.True(t, in.OTPExpiry.Equal(created.OTPExpiry))
	assert.False(t, created.IsActive)
	assert.False(t, created.IsArchived)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	updated, err := repo.Update(ctx, created.ID, models.AccountUpdate{
		IsActive:  ptr(true),
		OTP:       ptr(""),
		OTPExpiry: ptr(in.OTPExpiry),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Empty(t, updated.OTP)
	assert.Equal(t, "digest", updated.PasswordDigest)
}

func TestAccountRepository_SQLiteDuplicateEmail(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())
	ctx := context.Background()

	_, err := repo.Insert(ctx, testAccount())
	require.NoError(t, err)

	_, err = repo.Insert(ctx, testAccount())
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAccountRepository_SQLiteArchivedInvisible(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewAccountRepository(db, logger.Nop())
	ctx := context.Background()

	created, err := repo.Insert(ctx, testAccount())
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "UPDATE accounts SET is_archived = 1 WHERE id = ?", created.ID)
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	found, err := repo.FindByEmail(ctx, created.Email)
	assert.NoError(t, err)
	assert.Nil(t, found)

	_, err = repo.Update(ctx, created.ID, models.AccountUpdate{FirstName: ptr("Jane")})
	assert.ErrorIs(t, err, ErrNoRowsAffected)
}

func TestTransactor_SQLiteRollbackDiscardsWrites(t *testing.T) {
	db := newSQLiteTestDB(t)
	tr := NewTransactor(db, logger.Nop())
	repo := NewAccountRepository(db, logger.Nop())
	ctx := context.Background()
	boom := errors.New("mail relay down")

	err := tr.WithinTx(ctx, func(ctx context.Context, accounts AccountRepository) error {
		if _, err := accounts.Insert(ctx, testAccount()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)

	err = tr.WithinTx(ctx, func(ctx context.Context, accounts AccountRepository) error {
		_, err := accounts.Insert(ctx, testAccount())
		return err
	})
	require.NoError(t, err)

	found, err = repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.NotNil(t, found)
}

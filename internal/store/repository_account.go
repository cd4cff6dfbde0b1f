// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/models"
)

// accountRepository is the SQL implementation of [AccountRepository]. It
// runs against either the connection pool or an open transaction, whichever
// DBTX it was built over.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Credential and
// OTP values are never logged.
type accountRepository struct {
	conn               DBTX
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	ids                *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over the connection
// pool of db. Calls through it are not part of any unit of work.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return newAccountRepository(db.DB, db, logger)
}

func newAccountRepository(conn DBTX, db *DB, logger *logger.Logger) *accountRepository {
	return &accountRepository{
		conn:               conn,
		builder:            db.statementBuilder(),
		errorClassificator: db.errorClassificator,
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// FindByID returns the non-archived account with the given id.
//
// Error handling:
//   - no row → [ErrAccountNotFound].
//   - driver error → wrapped [ErrExecutingQuery].
func (r *accountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(r.builder, "id", id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindByID").Msg("failed to build query")
		return models.Account{}, err
	}

	account, err := scanAccount(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*accountRepository.FindByID").Str("account_id", id).Msg("account not found")
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		r.logDBError(ctx, err, "*accountRepository.FindByID")
		return models.Account{}, err
	}

	return account, nil
}

// FindByEmail returns the non-archived account with the given email, or nil
// when there is none.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(r.builder, "email", email)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindByEmail").Msg("failed to build query")
		return nil, err
	}

	account, err := scanAccount(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logDBError(ctx, err, "*accountRepository.FindByEmail")
		return nil, err
	}

	return &account, nil
}

// Insert persists a new account under a freshly generated id and returns
// the stored row with its server-assigned timestamps.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *accountRepository) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	account.ID = r.ids.Generate()

	query, args, err := buildInsertAccountQuery(r.builder, account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Insert").Msg("failed to build query")
		return models.Account{}, err
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*accountRepository.Insert").Msg("email already exists")
			return models.Account{}, ErrEmailAlreadyExists
		}
		r.logDBError(ctx, err, "*accountRepository.Insert")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*accountRepository.Insert").Str("account_id", account.ID).Msg("account inserted")

	return r.FindByID(ctx, account.ID)
}

// Update applies update to the non-archived account with the given id and
// returns the stored row.
//
// Error handling:
//   - empty update → [ErrEmptyUpdate]; half-set pair → [ErrIncompletePair].
//   - zero rows affected → [ErrNoRowsAffected].
//   - driver error → wrapped [ErrExecutingStatement].
func (r *accountRepository) Update(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(r.builder, id, update)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Str("account_id", id).Msg("failed to build query")
		return models.Account{}, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		r.logDBError(ctx, err, "*accountRepository.Update")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logDBError(ctx, err, "*accountRepository.Update")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().Str("func", "*accountRepository.Update").Str("account_id", id).Msg("update affected no rows")
		return models.Account{}, ErrNoRowsAffected
	}

	return r.FindByID(ctx, id)
}

func (r *accountRepository) logDBError(ctx context.Context, err error, fn string) {
	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Stringer("classification", r.errorClassificator.Classify(err)).
		Msg("database error")
}

func scanAccount(row *sql.Row) (models.Account, error) {
	if err := row.Err(); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.FirstName,
		&account.MiddleName,
		&account.LastName,
		&account.Email,
		&account.PasswordDigest,
		&account.PasswordSalt,
		&account.OTP,
		&account.OTPExpiry,
		&account.IsActive,
		&account.IsArchived,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, err
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return account, nil
}

package store

import (
	"context"

	"github.com/MKhiriev/go-account-auth/internal/logger"
)

// sqlTransactor implements [Transactor] with database transactions.
type sqlTransactor struct {
	db     *DB
	logger *logger.Logger
}

func NewTransactor(db *DB, logger *logger.Logger) Transactor {
	return &sqlTransactor{db: db, logger: logger}
}

// WithinTx runs fn with an [AccountRepository] bound to a fresh transaction.
func (t *sqlTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, accounts AccountRepository) error) error {
	return WithTx(ctx, t.db.DB, nil, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, newAccountRepository(tx, t.db, t.logger))
	})
}

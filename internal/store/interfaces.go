package store

import (
	"context"

	"github.com/MKhiriev/go-account-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the persistence contract for account rows. Archived
// accounts are invisible to every method.
type AccountRepository interface {
	// FindByID returns the account or [ErrAccountNotFound].
	FindByID(ctx context.Context, id string) (models.Account, error)

	// FindByEmail returns the account, or nil with a nil error when none
	// exists.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// Insert stores a new account, assigning its id and timestamps, and
	// returns the stored row. A duplicate email yields [ErrEmailAlreadyExists].
	Insert(ctx context.Context, account models.Account) (models.Account, error)

	// Update applies the non-nil fields of update and returns the stored row.
	// Zero affected rows yields [ErrNoRowsAffected].
	Update(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error)
}

// Transactor runs a unit of work. Every repository call made through the
// accounts handed to fn belongs to one transaction, committed when fn
// returns nil and rolled back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, accounts AccountRepository) error) error
}

// ErrorClassificator maps driver errors to the conditions repositories care
// about.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

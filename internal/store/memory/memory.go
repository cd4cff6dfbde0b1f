// Package memory provides an in-process implementation of the account
// repository and unit-of-work contracts. It keeps the same visibility rules
// as the SQL store (archived rows are hidden, emails are unique) and gives
// transactions copy-on-commit semantics: writes made inside WithinTx become
// visible to other callers only when the callback returns nil.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-auth/internal/store"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/models"
)

// Store holds accounts keyed by id.
type Store struct {
	mu       sync.Mutex
	accounts map[string]models.Account
	clock    utils.Clock
	ids      *utils.UUIDGenerator
}

// New returns an empty store. A nil clock falls back to the system clock;
// it stamps created_at and updated_at.
func New(clock utils.Clock) *Store {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Store{
		accounts: make(map[string]models.Account),
		clock:    clock,
		ids:      utils.NewUUIDGenerator(),
	}
}

// Accounts returns a repository whose writes apply immediately.
func (s *Store) Accounts() store.AccountRepository {
	return &repository{store: s}
}

// WithinTx runs fn against a private snapshot of the store. The snapshot
// replaces the shared state only if fn returns nil. Transactions are
// serialized, the way the single-connection SQLite pool behaves.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, accounts store.AccountRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]models.Account, len(s.accounts))
	for id, a := range s.accounts {
		snapshot[id] = a
	}

	if err := fn(ctx, &repository{store: s, tx: snapshot}); err != nil {
		return err
	}

	s.accounts = snapshot
	return nil
}

// Archive marks an account as archived. The SQL store has no such
// operation; tests use it to seed archived rows.
func (s *Store) Archive(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.accounts[id]; ok {
		a.IsArchived = true
		s.accounts[id] = a
	}
}

// Len reports how many rows the store holds, archived ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// repository works either on the shared map (tx == nil, guarded by the
// store mutex) or on a transaction snapshot owned by the caller of WithinTx.
type repository struct {
	store *Store
	tx    map[string]models.Account
}

func (r *repository) do(fn func(rows map[string]models.Account)) {
	if r.tx != nil {
		fn(r.tx)
		return
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	fn(r.store.accounts)
}

func (r *repository) FindByID(_ context.Context, id string) (models.Account, error) {
	var (
		account models.Account
		err     error
	)
	r.do(func(rows map[string]models.Account) {
		a, ok := rows[id]
		if !ok || a.IsArchived {
			err = store.ErrAccountNotFound
			return
		}
		account = clone(a)
	})
	return account, err
}

func (r *repository) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	var account *models.Account
	r.do(func(rows map[string]models.Account) {
		if a, ok := findByEmail(rows, email); ok {
			c := clone(a)
			account = &c
		}
	})
	return account, nil
}

func (r *repository) Insert(_ context.Context, account models.Account) (models.Account, error) {
	var err error
	r.do(func(rows map[string]models.Account) {
		for _, a := range rows {
			// the unique constraint covers archived rows too
			if a.Email == account.Email {
				err = store.ErrEmailAlreadyExists
				return
			}
		}

		now := r.store.clock.Now()
		account.ID = r.store.ids.Generate()
		account.IsArchived = false
		account.CreatedAt = now
		account.UpdatedAt = now
		rows[account.ID] = clone(account)
	})
	if err != nil {
		return models.Account{}, err
	}
	return clone(account), nil
}

func (r *repository) Update(_ context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	if update.IsEmpty() {
		return models.Account{}, store.ErrEmptyUpdate
	}
	if (update.PasswordDigest == nil) != (update.PasswordSalt == nil) ||
		(update.OTP == nil) != (update.OTPExpiry == nil) {
		return models.Account{}, store.ErrIncompletePair
	}

	var (
		account models.Account
		err     error
	)
	r.do(func(rows map[string]models.Account) {
		a, ok := rows[id]
		if !ok || a.IsArchived {
			err = store.ErrNoRowsAffected
			return
		}

		apply(&a, update, r.store.clock.Now())
		rows[id] = a
		account = clone(a)
	})
	return account, err
}

func findByEmail(rows map[string]models.Account, email string) (models.Account, bool) {
	for _, a := range rows {
		if a.Email == email && !a.IsArchived {
			return a, true
		}
	}
	return models.Account{}, false
}

func apply(a *models.Account, u models.AccountUpdate, now time.Time) {
	if u.FirstName != nil {
		a.FirstName = *u.FirstName
	}
	if u.MiddleName != nil {
		m := *u.MiddleName
		a.MiddleName = &m
	}
	if u.LastName != nil {
		a.LastName = *u.LastName
	}
	if u.PasswordDigest != nil {
		a.PasswordDigest = *u.PasswordDigest
		a.PasswordSalt = *u.PasswordSalt
	}
	if u.OTP != nil {
		a.OTP = *u.OTP
		a.OTPExpiry = *u.OTPExpiry
	}
	if u.IsActive != nil {
		a.IsActive = *u.IsActive
	}
	a.UpdatedAt = now
}

// clone detaches the MiddleName pointer so callers cannot mutate stored rows.
func clone(a models.Account) models.Account {
	if a.MiddleName != nil {
		m := *a.MiddleName
		a.MiddleName = &m
	}
	return a
}

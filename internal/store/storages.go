package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
)

// Storages bundles the persistence components handed to the service layer.
type Storages struct {
	DB                *DB
	AccountRepository AccountRepository
	Transactor        Transactor
}

// NewStorages connects to the configured database, runs migrations when
// enabled, and builds the repositories over it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if cfg.DB.Migrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("migrations failed")
			_ = db.Close()
			return nil, err
		}
		log.Info().Str("func", "NewStorages").Msg("migrations applied")
	}

	return &Storages{
		DB:                db,
		AccountRepository: NewAccountRepository(db, log),
		Transactor:        NewTransactor(db, log),
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}

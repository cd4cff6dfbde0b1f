package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/store"
	"github.com/MKhiriev/go-account-auth/internal/validators"
	"github.com/MKhiriev/go-account-auth/models"
)

type accountService struct {
	accounts  store.AccountRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewAccountService(accounts store.AccountRepository, validator validators.Validator, logger *logger.Logger) AccountService {
	return &accountService{
		accounts:  accounts,
		validator: validator,
		logger:    logger,
	}
}

// GetByID returns the public view of the account id. Ids are UUIDs, so a
// value that does not parse is reported as not found without a lookup.
func (s *accountService) GetByID(ctx context.Context, id string) (models.PublicAccount, error) {
	if _, err := uuid.Parse(id); err != nil {
		logger.FromContext(ctx).Debug().Str("func", "*accountService.GetByID").Str("account_id", id).Msg("malformed account id")
		return models.PublicAccount{}, ErrAccountIDNotFound
	}

	account, err := s.accounts.FindByID(ctx, id)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.PublicAccount{}, ErrAccountIDNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.GetByID").Msg("account lookup failed")
		return models.PublicAccount{}, unexpected("error loading account", err)
	}

	return account.Public(), nil
}

func (s *accountService) GetByEmail(ctx context.Context, email string) (models.PublicAccount, error) {
	if err := checkRequest(ctx, s.validator, models.EmailQuery{Email: email}); err != nil {
		return models.PublicAccount{}, err
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.GetByEmail").Msg("account lookup failed")
		return models.PublicAccount{}, unexpected("error looking up email", err)
	}
	if account == nil {
		return models.PublicAccount{}, ErrAccountNotFound
	}

	return account.Public(), nil
}

// UpdateProfile applies the name changes of req to the account id. The
// caller check runs before validation so that a foreign id never leaks
// whether the payload would have been accepted.
func (s *accountService) UpdateProfile(ctx context.Context, caller models.Account, id string, req models.UpdateProfileRequest) (models.PublicAccount, error) {
	log := logger.FromContext(ctx)

	if caller.ID != id {
		log.Warn().Str("func", "*accountService.UpdateProfile").
			Str("caller_id", caller.ID).Str("account_id", id).Msg("update of a foreign profile rejected")
		return models.PublicAccount{}, ErrForbiddenUpdate
	}
	if err := checkRequest(ctx, s.validator, req); err != nil {
		return models.PublicAccount{}, err
	}

	updated, err := s.accounts.Update(ctx, id, req.Update())
	if errors.Is(err, store.ErrNoRowsAffected) {
		return models.PublicAccount{}, ErrAccountIDNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.UpdateProfile").Msg("profile update failed")
		return models.PublicAccount{}, unexpected("error updating profile", err)
	}

	log.Info().Str("func", "*accountService.UpdateProfile").Str("account_id", id).Msg("profile updated")
	return updated.Public(), nil
}

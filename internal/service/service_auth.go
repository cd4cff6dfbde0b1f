// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-auth/internal/adapter"
	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/crypto"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/otp"
	"github.com/MKhiriev/go-account-auth/internal/store"
	"github.com/MKhiriev/go-account-auth/internal/token"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/internal/validators"
	"github.com/MKhiriev/go-account-auth/models"
)

// authService is the concrete implementation of AuthService.
//
// Register and ResendOTP run their store mutation and the notification
// inside one [store.Transactor] unit of work: the row change commits only
// after the email was accepted by the transport. Verify, Login and
// ChangePassword perform a single mutation and use the repository directly.
type authService struct {
	// accounts is used outside of any unit of work.
	accounts store.AccountRepository

	// transactor opens the unit of work of Register and ResendOTP.
	transactor store.Transactor

	hasher   crypto.Hasher
	otp      *otp.Manager
	tokens   token.Issuer
	notifier adapter.Notifier
	clock    utils.Clock

	validator validators.Validator

	// notifyTimeout bounds every notifier call. A timeout is a failure and
	// rolls the unit of work back.
	notifyTimeout time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the auth and mail
// configuration. A nil clock falls back to the system clock.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	accounts store.AccountRepository,
	transactor store.Transactor,
	notifier adapter.Notifier,
	validator validators.Validator,
	authCfg config.Auth,
	mailCfg config.Mail,
	clock utils.Clock,
	logger *logger.Logger,
) (AuthService, error) {
	if clock == nil {
		clock = utils.SystemClock{}
	}

	hasher, err := crypto.NewHasher(authCfg.HashScheme)
	if err != nil {
		return nil, fmt.Errorf("error creating credential hasher: %w", err)
	}

	otpManager, err := otp.NewManager(authCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating otp manager: %w", err)
	}

	issuer, err := token.NewIssuer(authCfg, clock)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	return &authService{
		accounts:      accounts,
		transactor:    transactor,
		hasher:        hasher,
		otp:           otpManager,
		tokens:        issuer,
		notifier:      notifier,
		clock:         clock,
		validator:     validator,
		notifyTimeout: mailCfg.Timeout,
		logger:        logger,
	}, nil
}

// Register creates an inactive account and sends it a verification code.
//
// Returns the public view of the new account or:
//   - ErrKindValidation if the request is malformed.
//   - ErrEmailTaken if the email is already registered.
//   - ErrNotificationFailed if the email could not be sent; no account is
//     left behind in that case.
//   - the store error, wrapped, for anything else.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.PublicAccount, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(ctx, a.validator, req); err != nil {
		return models.PublicAccount{}, err
	}

	var registered models.Account
	err := a.transactor.WithinTx(ctx, func(ctx context.Context, accounts store.AccountRepository) error {
		existing, err := accounts.FindByEmail(ctx, req.Email)
		if err != nil {
			return unexpected("error looking up email", err)
		}
		if existing != nil {
			return ErrEmailTaken
		}

		code, err := a.otp.Generate()
		if err != nil {
			return unexpected("error generating otp", err)
		}

		credential := a.hasher.Derive(req.Password)
		created, err := accounts.Insert(ctx, models.Account{
			FirstName:      req.FirstName,
			MiddleName:     req.MiddleName,
			LastName:       req.LastName,
			Email:          req.Email,
			PasswordDigest: credential.Digest,
			PasswordSalt:   credential.Salt,
			OTP:            code,
			OTPExpiry:      a.otp.ExpiryFrom(a.clock.Now()),
			IsActive:       false,
		})
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return ErrEmailTaken
		}
		if err != nil {
			return unexpected("error inserting account", err)
		}

		if err = a.notify(ctx, created, code); err != nil {
			return err
		}

		registered = created
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("registration failed")
		return models.PublicAccount{}, err
	}

	log.Info().Str("func", "*authService.Register").Str("account_id", registered.ID).Msg("account registered")
	return registered.Public(), nil
}

// ResendOTP replaces the verification code of a pending account and emails
// the new one.
//
// Returns:
//   - ErrAccountNotFound if no account has the email.
//   - ErrAlreadyVerified if the account is active; its code is left as is.
//   - ErrNotificationFailed if the email could not be sent; the previous
//     code stays valid in that case.
//   - ErrInconsistentState if the update affected no row.
func (a *authService) ResendOTP(ctx context.Context, req models.ResendOTPRequest) error {
	log := logger.FromContext(ctx)

	if err := checkRequest(ctx, a.validator, req); err != nil {
		return err
	}

	err := a.transactor.WithinTx(ctx, func(ctx context.Context, accounts store.AccountRepository) error {
		account, err := accounts.FindByEmail(ctx, req.Email)
		if err != nil {
			return unexpected("error looking up email", err)
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if account.IsActive {
			return ErrAlreadyVerified
		}

		code, err := a.otp.Generate()
		if err != nil {
			return unexpected("error generating otp", err)
		}
		expiry := a.otp.ExpiryFrom(a.clock.Now())

		updated, err := accounts.Update(ctx, account.ID, models.AccountUpdate{
			OTP:       &code,
			OTPExpiry: &expiry,
		})
		if errors.Is(err, store.ErrNoRowsAffected) {
			return ErrInconsistentState
		}
		if err != nil {
			return unexpected("error updating otp", err)
		}

		return a.notify(ctx, updated, code)
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.ResendOTP").Msg("otp resend failed")
		return err
	}

	log.Info().Str("func", "*authService.ResendOTP").Msg("otp resent")
	return nil
}

// Verify activates a pending account.
//
// The checks run in a fixed order: unknown email, already active, expired
// code, wrong code. An expired code is reported even when it is correct.
func (a *authService) Verify(ctx context.Context, req models.VerifyRequest) error {
	log := logger.FromContext(ctx)

	if err := checkRequest(ctx, a.validator, req); err != nil {
		return err
	}

	account, err := a.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Verify").Msg("account lookup failed")
		return unexpected("error looking up email", err)
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if account.IsActive {
		return ErrAlreadyVerified
	}
	if a.otp.IsExpired(account.OTPExpiry, a.clock.Now()) {
		log.Debug().Str("func", "*authService.Verify").Str("account_id", account.ID).Msg("otp expired")
		return ErrOTPExpired
	}
	if !a.otp.Matches(account.OTP, req.OTP) {
		log.Debug().Str("func", "*authService.Verify").Str("account_id", account.ID).Msg("otp mismatch")
		return ErrOTPMismatch
	}

	active := true
	_, err = a.accounts.Update(ctx, account.ID, models.AccountUpdate{IsActive: &active})
	if errors.Is(err, store.ErrNoRowsAffected) {
		log.Error().Str("func", "*authService.Verify").Str("account_id", account.ID).Msg("activation affected no rows")
		return ErrInconsistentState
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Verify").Msg("activation failed")
		return unexpected("error activating account", err)
	}

	log.Info().Str("func", "*authService.Verify").Str("account_id", account.ID).Msg("account verified")
	return nil
}

// Login authenticates by email and password and issues a token pair.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := checkRequest(ctx, a.validator, req); err != nil {
		return models.LoginResult{}, err
	}

	account, err := a.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("account lookup failed")
		return models.LoginResult{}, unexpected("error looking up email", err)
	}
	if account == nil {
		return models.LoginResult{}, ErrInvalidCredentials
	}

	stored := crypto.Credential{Digest: account.PasswordDigest, Salt: account.PasswordSalt}
	if !a.hasher.Matches(req.Password, stored) {
		log.Debug().Str("func", "*authService.Login").Str("account_id", account.ID).Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	pair, err := a.tokens.IssuePair(*account)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token issuing failed")
		return models.LoginResult{}, unexpected("error issuing tokens", err)
	}

	log.Info().Str("func", "*authService.Login").Str("account_id", account.ID).Msg("login succeeded")
	return models.LoginResult{User: account.Public(), TokenPair: pair}, nil
}

// ChangePassword rotates the credential of account. The new password gets a
// fresh salt.
func (a *authService) ChangePassword(ctx context.Context, account models.Account, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := checkRequest(ctx, a.validator, req); err != nil {
		return err
	}

	stored := crypto.Credential{Digest: account.PasswordDigest, Salt: account.PasswordSalt}
	if !a.hasher.Matches(req.Password, stored) {
		log.Debug().Str("func", "*authService.ChangePassword").Str("account_id", account.ID).Msg("old password mismatch")
		return ErrOldPasswordMismatch
	}

	credential := a.hasher.Derive(req.NewPassword)
	_, err := a.accounts.Update(ctx, account.ID, models.AccountUpdate{
		PasswordDigest: &credential.Digest,
		PasswordSalt:   &credential.Salt,
	})
	if errors.Is(err, store.ErrNoRowsAffected) {
		return ErrInconsistentState
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("credential update failed")
		return unexpected("error updating credential", err)
	}

	log.Info().Str("func", "*authService.ChangePassword").Str("account_id", account.ID).Msg("password changed")
	return nil
}

// Authenticate decodes an access token and loads its account. Any decode
// failure, a refresh token, or a token whose account no longer exists is
// reported as ErrInvalidToken.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if accessToken == "" {
		return models.Account{}, ErrUnauthorized
	}

	claims, err := a.tokens.Decode(accessToken)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Kind != models.AccessToken {
		log.Debug().Str("func", "*authService.Authenticate").Str("kind", string(claims.Kind)).Msg("not an access token")
		return models.Account{}, ErrInvalidToken
	}

	account, err := a.accounts.FindByID(ctx, claims.AccountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Debug().Str("func", "*authService.Authenticate").Str("account_id", claims.AccountID).Msg("token account not found")
		return models.Account{}, ErrInvalidToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("account lookup failed")
		return models.Account{}, unexpected("error loading account", err)
	}

	return account, nil
}

// notify sends the verification code of account, bounded by notifyTimeout.
func (a *authService) notify(ctx context.Context, account models.Account, code string) error {
	if a.notifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.notifyTimeout)
		defer cancel()
	}

	err := a.notifier.SendVerificationCode(ctx, models.Notification{
		FirstName:  account.FirstName,
		LastName:   account.LastName,
		Recipients: []string{account.Email},
		Code:       code,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}
	return nil
}

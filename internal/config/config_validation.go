// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Hash schemes accepted by [Auth.HashScheme].
const (
	HashSchemeHMACSHA256 = "hmac-sha256"
	HashSchemeArgon2id   = "argon2id"
)

// Mail transports accepted by [Mail.Transport].
const (
	MailTransportSMTP = "smtp"
	MailTransportHTTP = "http"
	MailTransportLog  = "log"
)

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
	defaultOTPTTL          = 5 * time.Minute
	defaultOTPLength       = 6
	defaultTokenIssuer     = "go-account-auth"
	defaultMailTimeout     = 10 * time.Second
	defaultRequestTimeout  = 30 * time.Second
	defaultLogLevel        = "debug"
	defaultAppVersion      = "dev"
)

// applyDefaults fills every zero-valued optional setting.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.Auth.OTPTTL == 0 {
		cfg.Auth.OTPTTL = defaultOTPTTL
	}
	if cfg.Auth.OTPLength == 0 {
		cfg.Auth.OTPLength = defaultOTPLength
	}
	if cfg.Auth.HashScheme == "" {
		cfg.Auth.HashScheme = HashSchemeHMACSHA256
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Mail.Transport == "" {
		cfg.Mail.Transport = MailTransportSMTP
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = defaultMailTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if err := cfg.Auth.validate(); err != nil {
		return err
	}

	return cfg.Mail.validate()
}

func (a Auth) validate() error {
	if a.TokenSecret == "" {
		return fmt.Errorf("%w: empty token secret", ErrInvalidAuthConfigs)
	}

	if a.AccessTokenTTL <= 0 || a.RefreshTokenTTL <= 0 || a.OTPTTL <= 0 {
		return fmt.Errorf("%w: token and otp lifetimes must be positive", ErrInvalidAuthConfigs)
	}

	if a.RefreshTokenTTL < a.AccessTokenTTL {
		return fmt.Errorf("%w: refresh token lifetime is shorter than access token lifetime", ErrInvalidAuthConfigs)
	}

	if a.OTPLength < 4 || a.OTPLength > 10 {
		return fmt.Errorf("%w: otp length must be in range 4-10", ErrInvalidAuthConfigs)
	}

	switch a.HashScheme {
	case HashSchemeHMACSHA256, HashSchemeArgon2id:
	default:
		return fmt.Errorf("%w: unknown hash scheme %q", ErrInvalidAuthConfigs, a.HashScheme)
	}

	return nil
}

func (m Mail) validate() error {
	switch m.Transport {
	case MailTransportSMTP:
		if m.Host == "" || m.Port == 0 || m.Sender() == "" {
			return fmt.Errorf("%w: smtp transport needs host, port and sender", ErrInvalidMailConfigs)
		}
	case MailTransportHTTP:
		if m.RelayURL == "" || m.Sender() == "" {
			return fmt.Errorf("%w: http transport needs relay url and sender", ErrInvalidMailConfigs)
		}
	case MailTransportLog:
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidMailConfigs, m.Transport)
	}

	if m.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidMailConfigs)
	}

	return nil
}

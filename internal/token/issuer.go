// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and decodes the HS256-signed JWTs handed out on login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

type issuer struct {
	secret     string
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration

	clock utils.Clock
}

// NewIssuer builds an [Issuer] from the auth configuration. The secret is
// process-wide; rotating it invalidates every token issued before.
func NewIssuer(cfg config.Auth, clock utils.Clock) (Issuer, error) {
	if cfg.TokenSecret == "" {
		return nil, errors.New("empty token secret")
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}

	return &issuer{
		secret:     cfg.TokenSecret,
		issuer:     cfg.TokenIssuer,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		clock:      clock,
	}, nil
}

func (i *issuer) Issue(claims models.SessionClaims, ttl time.Duration) (string, error) {
	if claims.AccountID == "" {
		return "", fmt.Errorf("%w: empty account id", ErrUnexpectedClaims)
	}

	now := i.clock.Now()
	claims.Issuer = i.issuer
	claims.Subject = claims.AccountID
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	signed, err := utils.SignJWT(&claims, i.secret)
	if err != nil {
		return "", fmt.Errorf("error issuing %s token: %w", claims.Kind, err)
	}

	return signed, nil
}

func (i *issuer) Decode(token string) (*models.SessionClaims, error) {
	claims := new(models.SessionClaims)
	if err := utils.ParseJWT(token, claims, i.secret, i.issuer, i.clock.Now); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.AccountID == "" {
		return nil, fmt.Errorf("%w: %w: missing account id", ErrInvalidToken, ErrUnexpectedClaims)
	}

	return claims, nil
}

func (i *issuer) IssuePair(account models.Account) (models.TokenPair, error) {
	access, err := i.Issue(models.SessionClaims{
		AccountID: account.ID,
		Email:     account.Email,
		Kind:      models.AccessToken,
	}, i.accessTTL)
	if err != nil {
		return models.TokenPair{}, err
	}

	refresh, err := i.Issue(models.SessionClaims{
		AccountID: account.ID,
		Kind:      models.RefreshToken,
	}, i.refreshTTL)
	if err != nil {
		return models.TokenPair{}, err
	}

	accessClaims, err := i.Decode(access)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("error reading back access token: %w", err)
	}
	refreshClaims, err := i.Decode(refresh)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("error reading back refresh token: %w", err)
	}

	return models.TokenPair{
		AccessToken:    access,
		AccessExpires:  accessClaims.ExpiresAtUnix(),
		RefreshToken:   refresh,
		RefreshExpires: refreshClaims.ExpiresAtUnix(),
	}, nil
}

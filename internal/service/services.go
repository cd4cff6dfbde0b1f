// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-account-auth/internal/adapter"
	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/store"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/internal/validators"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices builds every service over storages. Each wrapper is applied to
// the AuthService in the order given.
func NewServices(
	storages *store.Storages,
	notifier adapter.Notifier,
	cfg config.StructuredConfig,
	clock utils.Clock,
	logger *logger.Logger,
	wrappers ...AuthServiceWrapper,
) (*Services, error) {
	validator := validators.NewRequestValidator()

	authService, err := NewAuthService(
		storages.AccountRepository,
		storages.Transactor,
		notifier,
		validator,
		cfg.Auth,
		cfg.Mail,
		clock,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}
	for _, wrapper := range wrappers {
		authService = wrapper.Wrap(authService)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		AccountService: NewAccountService(storages.AccountRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}

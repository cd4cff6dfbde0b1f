// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers verification emails to account owners.
//
// The primary abstraction is [Notifier], which decouples the authentication
// workflows from the mail transport. Three transports ship with the package:
// SMTP ([NewSMTPNotifier]), an HTTP mail relay ([NewHTTPNotifier]), and a
// console writer for local development ([NewLogNotifier]). [NewNotifier]
// picks one from configuration and wraps it with metrics.
//
// Every delivery failure wraps [ErrDeliveryFailed]; relay responses are also
// mapped from HTTP status codes by mapHTTPError so callers can use
// [errors.Is] on the specific condition.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier sends the one-time verification code to the owner of an account.
// Implementations must honour ctx cancellation: the workflows call them
// inside an open transaction with a deadline and roll back on any error.
type Notifier interface {
	SendVerificationCode(ctx context.Context, notification models.Notification) error
}

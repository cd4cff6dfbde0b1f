// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otp generates and checks the one-time codes that prove control of
// an email address. The Manager holds configuration only; callers pass the
// current instant in so expiry checks follow whatever clock they use.
package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-auth/internal/config"
)

const (
	minLength = 4
	maxLength = 10
)

var ErrInvalidLength = errors.New("invalid otp length")

// Manager generates numeric codes of a fixed length and computes their
// expiry from a single validity window.
type Manager struct {
	length int
	ttl    time.Duration
}

func NewManager(cfg config.Auth) (*Manager, error) {
	if cfg.OTPLength < minLength || cfg.OTPLength > maxLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, cfg.OTPLength)
	}
	if cfg.OTPTTL <= 0 {
		return nil, errors.New("otp ttl must be positive")
	}

	return &Manager{length: cfg.OTPLength, ttl: cfg.OTPTTL}, nil
}

// Generate returns a string of decimal digits read from crypto/rand.
func (m *Manager) Generate() (string, error) {
	var b strings.Builder
	b.Grow(m.length)

	ten := big.NewInt(10)
	for range m.length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("error generating otp: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}

// ExpiryFrom returns now + the configured window.
func (m *Manager) ExpiryFrom(now time.Time) time.Time {
	return now.Add(m.ttl)
}

// IsExpired reports expiry < now. A code is still valid at the exact instant
// of its expiry.
func (m *Manager) IsExpired(expiry, now time.Time) bool {
	return expiry.Before(now)
}

// Matches reports whether provided equals stored exactly. An empty stored
// code never matches.
func (m *Manager) Matches(stored, provided string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set embedded in access and refresh tokens.
//
// Access tokens carry both AccountID and Email; refresh tokens carry only
// AccountID. The standard "exp" and "iat" claims come from the embedded
// [jwt.RegisteredClaims].
type SessionClaims struct {
	// AccountID is serialized as "id" for client compatibility.
	AccountID string `json:"id"`

	// Email is empty in refresh tokens.
	Email string `json:"email,omitempty"`

	// Kind tells access tokens from refresh tokens.
	Kind TokenKind `json:"kind"`

	jwt.RegisteredClaims
}

// ExpiresAtUnix returns the "exp" claim as seconds since the Unix epoch, or
// zero if the claim is absent.
func (c *SessionClaims) ExpiresAtUnix() int64 {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Unix()
}

// TokenKind is the purpose of a session token.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// TokenPair holds the two tokens minted by a successful login together with
// their expiry instants, read back from the decoded tokens.
type TokenPair struct {
	AccessToken    string `json:"accessToken"`
	AccessExpires  int64  `json:"access_expires"`
	RefreshToken   string `json:"refreshToken"`
	RefreshExpires int64  `json:"refresh_expires"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User PublicAccount `json:"user"`
	TokenPair
}

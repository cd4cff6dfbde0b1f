package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySigningKey is returned by SignJWT when no HMAC key is configured.
var ErrEmptySigningKey = errors.New("jwt signing key is empty")

// SignJWT signs claims with HS256.
//
//	signed, err := utils.SignJWT(&jwt.RegisteredClaims{Subject: "42"}, "secret")
func SignJWT(claims jwt.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", ErrEmptySigningKey
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// ParseJWT verifies tokenString and decodes it into claims. Only HS256 is
// accepted, iss must equal tokenIssuer and exp must be present and in the
// future relative to now (the wall clock when now is nil).
func ParseJWT(tokenString string, claims jwt.Claims, signKey, tokenIssuer string, now func() time.Time) error {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}

	keyFunc := func(*jwt.Token) (any, error) { return []byte(signKey), nil }
	if _, err := jwt.ParseWithClaims(tokenString, claims, keyFunc, opts...); err != nil {
		return fmt.Errorf("parse jwt: %w", err)
	}
	return nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

package token

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnexpectedClaims = errors.New("unexpected token claims")
)

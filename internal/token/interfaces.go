package token

import (
	"time"

	"github.com/MKhiriev/go-account-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_issuer_mock.go -package=mock

// Issuer mints and decodes signed session tokens.
type Issuer interface {
	// Issue signs claims with "iat" = now and "exp" = now + ttl.
	Issue(claims models.SessionClaims, ttl time.Duration) (string, error)

	// Decode verifies the signature, issuer, and expiry of token and returns
	// its claims. Every failure wraps [ErrInvalidToken].
	Decode(token string) (*models.SessionClaims, error)

	// IssuePair mints an access token (id and email) and a refresh token
	// (id only) for account. Each expiry in the result is read back from the
	// decoded token.
	IssuePair(account models.Account) (models.TokenPair, error)
}

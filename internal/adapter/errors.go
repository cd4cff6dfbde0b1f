package adapter

import "errors"

var (
	// ErrDeliveryFailed is wrapped by every error a notifier returns after
	// it has started talking to its transport.
	ErrDeliveryFailed = errors.New("verification email delivery failed")

	ErrNoRecipients     = errors.New("notification has no recipients")
	ErrUnknownTransport = errors.New("unknown mail transport")
	ErrRenderingMessage = errors.New("error rendering verification email")
)

// Mail relay responses.
var (
	ErrBadRequest          = errors.New("relay rejected the message")
	ErrUnauthorized        = errors.New("relay unauthorized")
	ErrForbidden           = errors.New("relay forbidden")
	ErrTooManyRequests     = errors.New("relay rate limited")
	ErrBadGateway          = errors.New("relay bad gateway")
	ErrInternalServerError = errors.New("relay internal server error")
)

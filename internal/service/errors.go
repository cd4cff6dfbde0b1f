package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-auth/internal/validators"
	"github.com/MKhiriev/go-account-auth/models"
)

// Error kinds. Every error returned by a workflow wraps exactly one of them,
// so transports can classify failures with [errors.Is] without knowing the
// individual reasons.
var (
	ErrKindValidation   = errors.New("validation error")
	ErrKindNotFound     = errors.New("not found")
	ErrKindConflict     = errors.New("conflict")
	ErrKindUnauthorized = errors.New("unauthorized")
	ErrKindBusinessRule = errors.New("business rule violated")
	ErrKindUnexpected   = errors.New("unexpected error")
)

// Reasons. The messages are returned to API clients as they are.
var (
	ErrAccountNotFound     = kindError(ErrKindNotFound, "User with the email doesnot exists")
	ErrAccountIDNotFound   = kindError(ErrKindNotFound, "User with the id not found")
	ErrEmailTaken          = kindError(ErrKindConflict, "User with the email already exists.")
	ErrAlreadyVerified     = kindError(ErrKindBusinessRule, "User already verified")
	ErrOTPExpired          = kindError(ErrKindBusinessRule, "OTP Expired")
	ErrOTPMismatch         = kindError(ErrKindBusinessRule, "OTP doesnot match")
	ErrOldPasswordMismatch = kindError(ErrKindBusinessRule, "Old Password didn't match")
	ErrInvalidCredentials  = kindError(ErrKindUnauthorized, "Invalid Credentials")
	ErrUnauthorized        = kindError(ErrKindUnauthorized, "Please provide an authorization token")
	ErrInvalidToken        = kindError(ErrKindUnauthorized, "Invalid or expired token")
	ErrForbiddenUpdate     = kindError(ErrKindUnauthorized, "You can only update your own profile")
	ErrInconsistentState   = kindError(ErrKindUnexpected, "Something went wrong. Please try again later.")
	ErrNotificationFailed  = kindError(ErrKindUnexpected, "Could not send the verification email. Please try again later.")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// reasonError is a reason sentinel that also matches its kind and, when
// set, the error that caused it.
type reasonError struct {
	kind  error
	msg   string
	cause error
}

func kindError(kind error, msg string) error {
	return &reasonError{kind: kind, msg: msg}
}

func (e *reasonError) Error() string {
	return e.msg
}

func (e *reasonError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// Message returns the client-facing message of err: the reason when err
// wraps one, otherwise an empty string.
func Message(err error) string {
	var re *reasonError
	if errors.As(err, &re) {
		return re.msg
	}
	return ""
}

// validationError turns a request validation failure into an
// ErrKindValidation reason carrying the validator's message.
func validationError(err error) error {
	return &reasonError{
		kind:  ErrKindValidation,
		msg:   strings.TrimPrefix(err.Error(), models.ErrValidation.Error()+": "),
		cause: err,
	}
}

// checkRequest runs v over req. Rule violations become ErrKindValidation;
// anything else means the validator could not handle req at all.
func checkRequest(ctx context.Context, v validators.Validator, req any) error {
	err := v.Validate(ctx, req)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrValidation):
		return validationError(err)
	default:
		return unexpected("error validating request", err)
	}
}

// unexpected wraps an infrastructure failure of op into ErrKindUnexpected.
func unexpected(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrKindUnexpected, op, err)
}

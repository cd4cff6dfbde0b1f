package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-auth/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrKindValidation:   http.StatusBadRequest,
	service.ErrKindNotFound:     http.StatusNotFound,
	service.ErrKindConflict:     http.StatusConflict,
	service.ErrKindUnauthorized: http.StatusUnauthorized,
	service.ErrKindBusinessRule: http.StatusBadRequest,
	service.ErrKindUnexpected:   http.StatusInternalServerError,

	ErrInvalidJSON:                http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
}

// statusFromError returns the HTTP status for err. Unknown errors are 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the message sent to the client for err. Internal
// details of unclassified errors never leave the server.
func messageFromError(err error, status int) string {
	if msg := service.Message(err); msg != "" {
		return msg
	}
	switch {
	case errors.Is(err, ErrInvalidJSON):
		return "Invalid JSON was passed"
	case errors.Is(err, ErrEmptyAuthorizationHeader), errors.Is(err, ErrInvalidAuthorizationHeader):
		return service.Message(service.ErrUnauthorized)
	}
	return http.StatusText(status)
}

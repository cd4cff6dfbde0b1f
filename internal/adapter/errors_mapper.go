package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxRelayBody caps how much of a relay error body ends up in the error.
const maxRelayBody = 256

var relayStatusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for any 2xx relay response and a sentinel-wrapped
// error carrying the (truncated) body otherwise.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxRelayBody {
		body = body[:maxRelayBody] + "..."
	}

	if sentinel, ok := relayStatusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("relay answered http %d: %s", code, body)
}

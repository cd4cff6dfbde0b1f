package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// internalErrorBody is sent when data cannot be marshalled. It has the shape
// of the API error envelope.
const internalErrorBody = `{"message":"Internal Server Error","status":500}`

// WriteJSON marshals data and writes it with statusCode. It returns the number
// of body bytes written.
//
// A marshalling failure is answered with a 500 error envelope and returned
// wrapped, so the caller can log it.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

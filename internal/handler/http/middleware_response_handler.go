// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/models"
)

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and the number of body bytes written.
//
// It is used by withLogging and withMetrics to observe the response after the
// downstream handler has returned. WriteHeader is forwarded to the underlying
// writer at most once.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader (or an implicit WriteHeader via Write)
	// is called.
	status int

	wroteHeader bool

	// size is the running total of bytes written to the body.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends HTTP 200 when no status was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// statusOrOK returns the recorded status, or 200 if the handler wrote nothing.
func (w *responseWriter) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// decodeJSON reads the request body into v. Any failure wraps ErrInvalidJSON.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeData writes the success envelope.
func writeData(w http.ResponseWriter, r *http.Request, data any, message string, status int) {
	if _, err := utils.WriteJSON(w, models.Response{Data: data, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeData").Msg("error writing response")
	}
}

// writeError maps err to a status and writes the error envelope. Server
// errors are logged at error level, client errors at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "writeError").Int("status", status).Msg("request rejected")
	}

	writeErrorMessage(w, messageFromError(err, status), status)
}

func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: message, Status: status}, status)
}

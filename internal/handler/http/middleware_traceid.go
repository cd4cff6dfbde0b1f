package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	maxTraceIDBytes = 128
)

// withTraceID tags every log line of the request with "trace_id" and returns
// the same id to the caller in X-Trace-ID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := incomingTraceID(r.Header.Get(traceIDHeader))
		if id == "" {
			id = newTraceID()
		}

		child := h.logger.GetChildLogger()
		child.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", id)
		})

		w.Header().Set(traceIDHeader, id)
		next.ServeHTTP(w, r.WithContext(child.WithContext(r.Context())))
	})
}

// incomingTraceID returns v when it is safe to echo into headers and logs,
// otherwise "".
func incomingTraceID(v string) string {
	if v == "" || len(v) > maxTraceIDBytes {
		return ""
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 0x21 || v[i] > 0x7e {
			return ""
		}
	}
	return v
}

func newTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

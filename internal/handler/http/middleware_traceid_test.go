package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveTraced runs one request through withTraceID and returns the echoed id.
func serveTraced(t *testing.T, h *Handler, incoming string) string {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	require.True(t, called)
	return rec.Header().Get(traceIDHeader)
}

func TestWithTraceID_IncomingHeader(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "opaque id kept", incoming: "client-42", reused: true},
		{name: "uuid kept", incoming: "550e8400-e29b-41d4-a716-446655440000", reused: true},
		{name: "absent", incoming: ""},
		{name: "contains spaces", incoming: "a b"},
		{name: "control characters", incoming: "abc\x01"},
		{name: "too long", incoming: strings.Repeat("x", maxTraceIDBytes+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serveTraced(t, &Handler{logger: logger.Nop()}, tt.incoming)
			if tt.reused {
				assert.Equal(t, tt.incoming, got)
				return
			}

			id, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestWithTraceID_FreshIDsDiffer(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	ids := map[string]bool{}
	for range 50 {
		ids[serveTraced(t, h, "")] = true
	}
	assert.Len(t, ids, 50)
}

func TestWithTraceID_RequestLoggerTagged(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set(traceIDHeader, "login-7")
	h.withTraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handling")
	})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"login-7"`)
	assert.Contains(t, buf.String(), `"message":"handling"`)

	buf.Reset()
	h.logger.Info().Msg("outside")
	assert.NotContains(t, buf.String(), "trace_id")
}

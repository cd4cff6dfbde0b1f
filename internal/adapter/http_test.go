// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/models"
)

func testNotification() models.Notification {
	return models.Notification{
		FirstName:  "Alice",
		LastName:   "Smith",
		Recipients: []string{"alice@example.com"},
		Code:       "482913",
	}
}

// newTestHTTPNotifier creates an httpNotifier pointed at the test server.
func newTestHTTPNotifier(t *testing.T, serverURL string) Notifier {
	t.Helper()
	n, err := NewHTTPNotifier(config.Mail{
		RelayURL:   serverURL + "/v1/send",
		RelayToken: "relay-token",
		From:       "noreply@example.com",
		Timeout:    2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return n
}

func TestHTTPNotifier_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/send", r.URL.Path)
		assert.Equal(t, "Bearer relay-token", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var msg relayMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "noreply@example.com", msg.From)
		assert.Equal(t, []string{"alice@example.com"}, msg.To)
		assert.Equal(t, "Verify your email", msg.Subject)
		assert.Contains(t, msg.HTML, "482913")
		assert.Contains(t, msg.HTML, "Alice Smith")

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestHTTPNotifier(t, srv.URL).SendVerificationCode(context.Background(), testNotification())
	require.NoError(t, err)
}

func TestHTTPNotifier_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			err := newTestHTTPNotifier(t, srv.URL).SendVerificationCode(context.Background(), testNotification())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDeliveryFailed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPNotifier_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestHTTPNotifier(t, srv.URL).SendVerificationCode(context.Background(), testNotification())
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "http 503")
}

func TestHTTPNotifier_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := newTestHTTPNotifier(t, srv.URL).SendVerificationCode(ctx, testNotification())
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPNotifier_NoRecipients(t *testing.T) {
	n := newTestHTTPNotifier(t, "http://127.0.0.1:1")
	err := n.SendVerificationCode(context.Background(), models.Notification{Code: "1"})
	assert.ErrorIs(t, err, ErrNoRecipients)
}

func TestSplitRelayURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantBase string
		wantPath string
		wantErr  bool
	}{
		{name: "full url", raw: "https://relay.example.com/v1/send", wantBase: "https://relay.example.com", wantPath: "/v1/send"},
		{name: "no scheme", raw: "relay.example.com/send", wantBase: "https://relay.example.com", wantPath: "/send"},
		{name: "no path", raw: "http://localhost:8025", wantBase: "http://localhost:8025", wantPath: "/"},
		{name: "query kept", raw: "https://relay.example.com/send?key=abc", wantBase: "https://relay.example.com", wantPath: "/send?key=abc"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, path, err := splitRelayURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestNewHTTPNotifier_InvalidURL(t *testing.T) {
	_, err := NewHTTPNotifier(config.Mail{}, logger.Nop())
	require.Error(t, err)
}

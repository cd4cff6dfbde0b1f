// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/models"
)

// relayMessage is the JSON body accepted by the mail relay.
type relayMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type httpNotifier struct {
	client *utils.HTTPClient
	path   string
	token  string
	from   string

	logger *logger.Logger
}

// NewHTTPNotifier constructs a [Notifier] that POSTs every verification email
// as JSON to the relay at cfg.RelayURL. cfg.RelayToken, when set, is sent as
// a bearer token.
//
// Returns an error if cfg.RelayURL is empty or cannot be parsed as an
// absolute URL.
func NewHTTPNotifier(cfg config.Mail, logger *logger.Logger) (Notifier, error) {
	baseURL, path, err := splitRelayURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail relay url: %w", err)
	}

	return &httpNotifier{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		path:   path,
		token:  strings.TrimSpace(cfg.RelayToken),
		from:   cfg.Sender(),
		logger: logger,
	}, nil
}

// splitRelayURL separates scheme and host from the request path so the host
// can serve as the client base URL. A missing scheme defaults to https.
func splitRelayURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and scheme")
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	return u.Scheme + "://" + u.Host, path, nil
}

// SendVerificationCode implements [Notifier].
func (h *httpNotifier) SendVerificationCode(ctx context.Context, notification models.Notification) error {
	log := logger.FromContext(ctx)

	if len(notification.Recipients) == 0 {
		return ErrNoRecipients
	}

	html, err := renderVerificationHTML(notification)
	if err != nil {
		return err
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(relayMessage{
			From:    h.from,
			To:      notification.Recipients,
			Subject: verificationSubject,
			HTML:    html,
		})
	if h.token != "" {
		req.SetAuthToken(h.token)
	}

	resp, err := req.Post(h.path)
	if err != nil {
		log.Err(err).Str("func", "*httpNotifier.SendVerificationCode").Msg("mail relay request failed")
		return fmt.Errorf("%w: relay request: %w", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpNotifier.SendVerificationCode").Int("status", resp.StatusCode()).Msg("mail relay rejected message")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	log.Debug().Str("func", "*httpNotifier.SendVerificationCode").Int("recipients", len(notification.Recipients)).Msg("verification email handed to relay")
	return nil
}

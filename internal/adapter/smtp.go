// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/models"
)

const defaultSMTPTimeout = 10 * time.Second

type smtpNotifier struct {
	host     string
	port     int
	user     string
	password string
	from     string
	timeout  time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewSMTPNotifier constructs a [Notifier] that delivers through the SMTP
// server at cfg.Host:cfg.Port. STARTTLS is used whenever the server offers
// it; PLAIN authentication is used when cfg.User and cfg.Password are set.
func NewSMTPNotifier(cfg config.Mail, logger *logger.Logger) Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	return &smtpNotifier{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.Sender(),
		timeout:  timeout,
		now:      time.Now,
		logger:   logger,
	}
}

// SendVerificationCode implements [Notifier]. The whole SMTP exchange is
// bounded by the deadline of ctx.
func (s *smtpNotifier) SendVerificationCode(ctx context.Context, notification models.Notification) error {
	log := logger.FromContext(ctx)

	if len(notification.Recipients) == 0 {
		return ErrNoRecipients
	}

	msg, err := buildMessage(s.from, notification, s.now())
	if err != nil {
		return err
	}

	client, err := s.client(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*smtpNotifier.SendVerificationCode").Str("host", s.host).Int("port", s.port).Msg("smtp delivery failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	log.Debug().Str("func", "*smtpNotifier.SendVerificationCode").Int("recipients", len(notification.Recipients)).Msg("verification email sent")
	return nil
}

// client builds a go-mail client for one delivery. Its timeout is the time
// left on ctx, if that is shorter than the configured one.
func (s *smtpNotifier) client(ctx context.Context) (*mail.Client, error) {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = max(left, time.Millisecond)
		}
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTLSConfig(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}),
		mail.WithDialContextFunc(dialWithDeadline),
	}
	if s.user != "" && s.password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.user),
			mail.WithPassword(s.password),
		)
	}

	return mail.NewClient(s.host, opts...)
}

// dialWithDeadline carries the dial deadline over to the connection so a
// server that never sends its greeting cannot stall delivery.
func dialWithDeadline(ctx context.Context, network, address string) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	return conn, nil
}

package adapter

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/models"
)

type logNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logger.Logger
}

// NewLogNotifier constructs a development [Notifier] that prints each
// verification code to out instead of sending an email. The code goes to out
// only, never to the structured log.
func NewLogNotifier(out io.Writer, logger *logger.Logger) Notifier {
	return &logNotifier{out: out, logger: logger}
}

func (l *logNotifier) SendVerificationCode(ctx context.Context, notification models.Notification) error {
	if len(notification.Recipients) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	l.mu.Lock()
	_, err := fmt.Fprintf(l.out, "To: %s\nSubject: %s\nHi %s %s, your verification code is %s\n\n",
		strings.Join(notification.Recipients, ", "),
		verificationSubject,
		notification.FirstName,
		notification.LastName,
		notification.Code,
	)
	l.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*logNotifier.SendVerificationCode").
		Int("recipients", len(notification.Recipients)).
		Msg("verification email written to console")
	return nil
}

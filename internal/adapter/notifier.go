package adapter

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
)

// NewNotifier builds the notifier selected by cfg.Transport. When observer is
// non-nil the notifier is wrapped with [WithMetrics].
func NewNotifier(cfg config.Mail, log *logger.Logger, observer NotificationObserver) (Notifier, error) {
	var (
		notifier Notifier
		err      error
	)

	switch cfg.Transport {
	case config.MailTransportSMTP:
		notifier = NewSMTPNotifier(cfg, log)
	case config.MailTransportHTTP:
		notifier, err = NewHTTPNotifier(cfg, log)
		if err != nil {
			return nil, err
		}
	case config.MailTransportLog:
		notifier = NewLogNotifier(os.Stdout, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}

	log.Info().Str("func", "adapter.NewNotifier").Str("transport", cfg.Transport).Msg("notifier configured")

	if observer != nil {
		notifier = WithMetrics(notifier, cfg.Transport, observer)
	}
	return notifier, nil
}

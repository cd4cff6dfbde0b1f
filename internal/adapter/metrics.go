package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-auth/models"
)

// NotificationObserver records the outcome of a delivery attempt.
// *metrics.Metrics satisfies it.
type NotificationObserver interface {
	ObserveNotification(transport string, err error, duration time.Duration)
}

type observedNotifier struct {
	next      Notifier
	transport string
	observer  NotificationObserver
}

// WithMetrics decorates next so that every call is reported to observer
// under the transport label.
func WithMetrics(next Notifier, transport string, observer NotificationObserver) Notifier {
	return &observedNotifier{next: next, transport: transport, observer: observer}
}

func (o *observedNotifier) SendVerificationCode(ctx context.Context, notification models.Notification) error {
	start := time.Now()
	err := o.next.SendVerificationCode(ctx, notification)
	o.observer.ObserveNotification(o.transport, err, time.Since(start))
	return err
}

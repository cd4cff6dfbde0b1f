package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/service"
)

// MetricsCollector records request metrics and serves them.
type MetricsCollector interface {
	ObserveHTTPRequest(route, method string, code int, duration time.Duration)
	Handler() http.Handler
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services

	// metrics and health are optional; the matching routes and middleware are
	// skipped when nil.
	metrics MetricsCollector
	health  HealthChecker

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	cfg config.Server,
	metrics MetricsCollector,
	health HealthChecker,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		health:         health,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

package handler

import (
	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/handler/http"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. metrics and
// health may be nil.
func NewHandlers(
	services *service.Services,
	cfg config.Server,
	metrics http.MetricsCollector,
	health http.HealthChecker,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, metrics, health, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-auth/internal/adapter"
	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/handler"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/metrics"
	"github.com/MKhiriev/go-account-auth/internal/server"
	"github.com/MKhiriev/go-account-auth/internal/service"
	"github.com/MKhiriev/go-account-auth/internal/store"
	"github.com/MKhiriev/go-account-auth/internal/utils"
	"github.com/MKhiriev/go-account-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-account-auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	// a version injected at link time wins over the configured one
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("mail_transport", cfg.Mail.Transport).
		Str("hash_scheme", cfg.Auth.HashScheme).Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// run wires the application and blocks until the server stops. Everything
// opened here is released before it returns.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	m := metrics.New()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
			return
		}
		log.Info().Msg("storages closed")
	}()

	notifier, err := adapter.NewNotifier(cfg.Mail, log, m)
	if err != nil {
		return fmt.Errorf("error creating notifier: %w", err)
	}

	services, err := service.NewServices(storages, notifier, *cfg, utils.SystemClock{}, log,
		service.NewAuthServiceMetricsWrapper(m),
	)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, storages.DB, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

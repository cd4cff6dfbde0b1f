package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService fails when no version is configured, so that
// GET /api/version never answers with an empty body.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").Str("version", version).Msg("app info service created")
	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.appVersion
}

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/logger"
)

// appInfoService answers GET /api/version with the version resolved at
// startup (APP_VERSION, or the linker-injected build version).
type appInfoService struct {
	version string
}

// NewAppInfoService fails with [ErrVersionIsNotSpecified] when the version is
// empty or blank, so a gateway never starts without one.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("gateway version resolved")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}

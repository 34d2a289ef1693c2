package handler

import (
	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/frontend"
	"github.com/MKhiriev/research-gateway/internal/handler/http"
	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/observability"
	"github.com/MKhiriev/research-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. The frontend build directory is
// probed here, once. metrics may be nil, in which case no metrics are
// recorded or exposed.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, metrics *observability.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	h := http.NewHandler(services, logger).
		WithFrontend(cfg.Frontend.MountPath, frontend.New(cfg.Frontend.BuildDir, logger, frontend.WithRecorder(metrics)))

	if metrics != nil {
		h.WithMetrics(cfg.Metrics.Path, metrics)
	}

	return &Handlers{HTTP: h}, nil
}

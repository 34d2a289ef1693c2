package http

import (
	"net/http"

	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/observability"
	"github.com/MKhiriev/research-gateway/internal/service"
)

type Handler struct {
	services *service.Services

	frontend  http.Handler
	mountPath string

	metrics     *observability.Metrics
	metricsPath string

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// WithFrontend mounts frontend under mountPath (e.g. "/app"). The site root
// then redirects to it.
func (h *Handler) WithFrontend(mountPath string, frontend http.Handler) *Handler {
	h.mountPath = mountPath
	h.frontend = frontend
	return h
}

// WithMetrics records request metrics into m and exposes them on path.
func (h *Handler) WithMetrics(path string, m *observability.Metrics) *Handler {
	h.metricsPath = path
	h.metrics = m
	return h
}

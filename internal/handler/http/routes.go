package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/research-gateway/internal/config"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withMetrics)

	router.Route(config.APIPrefix, func(r chi.Router) {
		r.Get("/llm-config", h.getLLMConfig)
		r.Get("/version", h.getServerVersion)
	})

	if h.frontend != nil {
		router.Mount(h.mountPath, h.frontend)
		router.Get("/", h.redirectToFrontend)
	}

	if h.metrics != nil {
		router.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}

	return router
}

func (h *Handler) redirectToFrontend(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.mountPath+"/", http.StatusTemporaryRedirect)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/utils"
)

func (h *Handler) getLLMConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, err := h.services.LLMConfigService.GetLLMConfig(r.Context())
	if err != nil {
		log.Err(err).Msg("error building llm configuration")
		h.metrics.RecordConfigError()

		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err = utils.WriteJSON(w, cfg, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing llm configuration")
	}
}

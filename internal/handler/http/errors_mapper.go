package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrConfiguration:         http.StatusInternalServerError,
	config.ErrConfiguration:          http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/mock"
	"github.com/MKhiriev/research-gateway/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semver", version: "1.2.3"},
		{name: "pre-release with build metadata", version: "v2.0.0-beta+build.42"},
		{name: "not available", version: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			appInfo := mock.NewMockAppInfoService(ctrl)
			appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			router := NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop()).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

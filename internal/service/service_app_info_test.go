package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	_, err = NewAppInfoService(config.App{Version: "  \t"}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewAppInfoService_TrimsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: " 2.1.0\n"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", svc.GetAppVersion(context.Background()))
}

func TestNewServices(t *testing.T) {
	services, err := NewServices(nil, config.App{Version: "0.1.0"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.LLMConfigService)
	assert.NotNil(t, services.AppInfoService)

	_, err = NewServices(nil, config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

package service

import (
	"github.com/MKhiriev/research-gateway/internal/adapter"
	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/logger"
)

// Services aggregates the server-side services used by the handlers.
type Services struct {
	LLMConfigService LLMConfigService
	AppInfoService   AppInfoService
}

// NewServices wires the server-side services. loader is called on every
// configuration request.
func NewServices(loader config.LLMLoader, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		LLMConfigService: NewLLMConfigService(loader, logger),
		AppInfoService:   appInfo,
	}, nil
}

// ClientServices aggregates the services of the config inspector client.
type ClientServices struct {
	ModelChoicesService ClientModelChoicesService
	ServerInfoService   ClientServerInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ModelChoicesService: NewClientModelChoicesService(serverAdapter, logger),
		ServerInfoService:   NewClientServerInfoService(serverAdapter, logger),
	}
}

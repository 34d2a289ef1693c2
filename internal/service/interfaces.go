package service

import (
	"context"

	"github.com/MKhiriev/research-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LLMConfigService exposes the LLM configuration to the transport layer.
type LLMConfigService interface {
	// GetLLMConfig constructs the configuration anew and returns its public
	// projection. Errors wrap [ErrConfiguration].
	GetLLMConfig(ctx context.Context) (models.LLMConfig, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClientModelChoicesService is used by the config inspector client to build
// the model picker from a running gateway.
type ClientModelChoicesService interface {
	// FetchModelChoices requests the LLM configuration from the gateway and
	// derives the model options of its active provider.
	FetchModelChoices(ctx context.Context) (models.ModelChoices, error)
}

// ClientServerInfoService reports metadata of the gateway the client talks to.
type ClientServerInfoService interface {
	GetServerVersion(ctx context.Context) (string, error)
}

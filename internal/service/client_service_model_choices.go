package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/research-gateway/internal/adapter"
	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/models"
)

type clientModelChoicesService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientModelChoicesService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientModelChoicesService {
	return &clientModelChoicesService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientModelChoicesService) FetchModelChoices(ctx context.Context) (models.ModelChoices, error) {
	cfg, err := s.serverAdapter.GetLLMConfig(ctx)
	if err != nil {
		return models.ModelChoices{}, fmt.Errorf("%w: %w", ErrFetchingConfig, err)
	}

	s.logger.Debug().Any("llm_config", cfg).Msg("received llm configuration")

	return BuildModelChoices(cfg), nil
}

// BuildModelChoices derives the model picker for the active provider of cfg:
// query generation, reflection and answer models in that order. Unknown
// providers get no options. The first option is the default.
func BuildModelChoices(cfg models.LLMConfig) models.ModelChoices {
	choices := models.ModelChoices{
		Provider: cfg.LLMProvider,
		Options:  []models.ModelOption{},
	}

	switch cfg.LLMProvider {
	case models.ProviderGemini:
		choices.Options = []models.ModelOption{
			{Value: cfg.GeminiQueryGeneratorModel, Label: "Query Gen (Gemini)"},
			{Value: cfg.GeminiReflectionModel, Label: "Reflection (Gemini)"},
			{Value: cfg.GeminiAnswerModel, Label: "Answer Gen (Gemini)"},
		}
	case models.ProviderDeepSeek:
		choices.Options = []models.ModelOption{
			{Value: cfg.DeepSeekQueryGeneratorModel, Label: "Query Gen (DeepSeek)"},
			{Value: cfg.DeepSeekReflectionModel, Label: "Reflection (DeepSeek)"},
			{Value: cfg.DeepSeekAnswerModel, Label: "Answer Gen (DeepSeek)"},
		}
	}

	if len(choices.Options) > 0 {
		choices.Default = choices.Options[0].Value
	}

	return choices
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/models"
)

type llmConfigService struct {
	load config.LLMLoader

	logger *logger.Logger
}

// NewLLMConfigService returns an [LLMConfigService] that builds a fresh
// configuration with load on every call. A nil load defaults to
// [config.LoadLLM].
func NewLLMConfigService(load config.LLMLoader, logger *logger.Logger) LLMConfigService {
	if load == nil {
		load = config.LoadLLM
	}

	return &llmConfigService{
		load:   load,
		logger: logger,
	}
}

func (s *llmConfigService) GetLLMConfig(ctx context.Context) (models.LLMConfig, error) {
	cfg, err := s.load()
	if err != nil {
		return models.LLMConfig{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return ProjectLLMConfig(cfg), nil
}

// ProjectLLMConfig maps the configuration onto its public projection. The
// generic active-provider models become the gemini_* fields.
func ProjectLLMConfig(cfg *config.LLM) models.LLMConfig {
	return models.LLMConfig{
		LLMProvider:                 cfg.LLMProvider,
		GeminiQueryGeneratorModel:   cfg.QueryGeneratorModel,
		GeminiReflectionModel:       cfg.ReflectionModel,
		GeminiAnswerModel:           cfg.AnswerModel,
		DeepSeekQueryGeneratorModel: cfg.DeepSeekQueryGeneratorModel,
		DeepSeekReflectionModel:     cfg.DeepSeekReflectionModel,
		DeepSeekAnswerModel:         cfg.DeepSeekAnswerModel,
	}
}

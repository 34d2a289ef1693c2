package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/research-gateway/internal/config"
	"github.com/MKhiriev/research-gateway/internal/logger"
	"github.com/MKhiriev/research-gateway/internal/utils"
	"github.com/MKhiriev/research-gateway/models"
)

const (
	llmConfigPath = "/api/llm-config"
	versionPath   = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying resty client with it and the request timeout. Responses
// with 502, 503 and 504 are retried before they are mapped to errors.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GetLLMConfig(ctx context.Context) (models.LLMConfig, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(llmConfigPath)
	if err != nil {
		return models.LLMConfig{}, fmt.Errorf("llm config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LLMConfig{}, err
	}

	var cfg models.LLMConfig
	if err = json.Unmarshal(resp.Body(), &cfg); err != nil {
		return models.LLMConfig{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	h.logger.Debug().Str("trace_id", resp.Header().Get("X-Trace-ID")).Msg("llm config fetched")

	return cfg, nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

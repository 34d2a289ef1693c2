// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to a
// running research gateway.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. [NewHTTPServerAdapter] is the
// HTTP/REST implementation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/research-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the gateway.
type ServerAdapter interface {
	// GetLLMConfig fetches the LLM configuration projection served by
	// GET /api/llm-config.
	GetLLMConfig(ctx context.Context) (models.LLMConfig, error)

	// GetVersion fetches the gateway version served by GET /api/version.
	GetVersion(ctx context.Context) (string, error)
}

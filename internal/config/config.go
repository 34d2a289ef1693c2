// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// research gateway server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// log verbosity.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Frontend holds the location of the pre-built single-page application
	// and the URL prefix it is mounted under.
	Frontend Frontend `envPrefix:"FRONTEND_"`

	// Metrics holds settings of the Prometheus exposition endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint. When empty the
	// build version injected by the linker is used.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level that is written
	// ("trace", "debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout is how long in-flight requests are given to finish
	// after a stop signal was received.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Frontend holds file-system and routing settings of the SPA bundle.
type Frontend struct {
	// BuildDir is the absolute or relative path to the output directory of
	// the frontend build (the one containing index.html and assets/).
	// Env: FRONTEND_BUILD_DIR
	BuildDir string `env:"BUILD_DIR"`

	// MountPath is the URL prefix the frontend is served under (e.g. "/app").
	// Env: FRONTEND_MOUNT_PATH
	MountPath string `env:"MOUNT_PATH"`
}

// Metrics holds settings of the Prometheus exposition endpoint.
type Metrics struct {
	// Disabled turns the /metrics endpoint and request instrumentation off.
	// Env: METRICS_DISABLED
	Disabled bool `env:"DISABLED"`

	// Path is the URL path the metrics are exposed on.
	// Env: METRICS_PATH
	Path string `env:"PATH"`
}

// Default values applied to every field that is still empty after all
// configuration sources were merged.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultBuildDir        = "frontend/dist"
	DefaultMountPath       = "/app"
	DefaultMetricsPath     = "/metrics"
	DefaultLogLevel        = "debug"

	// APIPrefix is the route prefix of the JSON endpoints. Neither the
	// frontend nor the metrics endpoint may be mounted under it.
	APIPrefix = "/api"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Frontend: Frontend{
			BuildDir:  DefaultBuildDir,
			MountPath: DefaultMountPath,
		},
		Metrics: Metrics{
			Path: DefaultMetricsPath,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

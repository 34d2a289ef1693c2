package config

import "errors"

// ErrConfiguration is returned by [LoadLLM] when the LLM configuration
// cannot be constructed from the environment (for example, a non-integer
// MAX_RESEARCH_LOOPS).
var ErrConfiguration = errors.New("llm configuration error")

// Validation errors returned by validate when the merged configuration is
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidFrontendConfigs indicates invalid frontend settings
	// (for example, a mount path that is not rooted).
	ErrInvalidFrontendConfigs = errors.New("invalid frontend configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMetricsConfigs indicates invalid metrics settings.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
	// ErrInvalidClientConfigs indicates invalid config inspector client
	// settings (for example, a server URL without scheme).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)

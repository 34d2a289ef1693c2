package service

import "errors"

var (
	// ErrConfiguration is returned when the LLM configuration cannot be
	// constructed. It is surfaced as a server error and never retried.
	ErrConfiguration = errors.New("configuration error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrFetchingConfig is returned by client services when the gateway could
	// not be queried.
	ErrFetchingConfig = errors.New("error fetching llm configuration")

	ErrFetchingVersion = errors.New("error fetching server version")
)

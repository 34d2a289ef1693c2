// Package config provides configuration loading, merging, and validation
// facilities for the research gateway.
//
// Server configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Built-in defaults fill whatever is still empty after merging.
//
// The LLM configuration reflected by the API is deliberately kept apart from
// [StructuredConfig]: [LoadLLM] reads it from the process environment on
// every call, so a changed environment is visible to the next request.
//
// The main entry points are [GetStructuredConfig] for the server,
// [GetClientConfig] for the config inspector client and [LoadLLM] for the
// LLM configuration.
package config

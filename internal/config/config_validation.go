// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Frontend.BuildDir == "" {
		return fmt.Errorf("%w: empty build directory", ErrInvalidFrontendConfigs)
	}
	if !isMountPath(cfg.Frontend.MountPath) {
		return fmt.Errorf("%w: mount path %q must start with '/' and must not end with it",
			ErrInvalidFrontendConfigs, cfg.Frontend.MountPath)
	}
	if isUnder(cfg.Frontend.MountPath, APIPrefix) {
		return fmt.Errorf("%w: mount path %q overlaps %s", ErrInvalidFrontendConfigs, cfg.Frontend.MountPath, APIPrefix)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if !cfg.Metrics.Disabled {
		if !isMountPath(cfg.Metrics.Path) {
			return fmt.Errorf("%w: metrics path %q must start with '/'", ErrInvalidMetricsConfigs, cfg.Metrics.Path)
		}
		if isUnder(cfg.Metrics.Path, cfg.Frontend.MountPath) {
			return fmt.Errorf("%w: metrics path %q overlaps frontend mount", ErrInvalidMetricsConfigs, cfg.Metrics.Path)
		}
		if isUnder(cfg.Metrics.Path, APIPrefix) {
			return fmt.Errorf("%w: metrics path %q overlaps %s", ErrInvalidMetricsConfigs, cfg.Metrics.Path, APIPrefix)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server url %q", ErrInvalidClientConfigs, cfg.Adapter.ServerURL)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}

// isMountPath reports whether p is a rooted URL prefix without a trailing
// slash, e.g. "/app" or "/ui/app". The root "/" itself is rejected because the
// API routes live there.
func isMountPath(p string) bool {
	return len(p) > 1 && strings.HasPrefix(p, "/") && !strings.HasSuffix(p, "/")
}

// isUnder reports whether p equals prefix or lies below it.
func isUnder(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from its `env`/`envPrefix` tags. A nil environment means
// the process environment; otherwise only the given variables are visible.
func parseEnv(cfg any, environment map[string]string) error {
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error reading %T from environment: %w", cfg, err)
	}

	return nil
}

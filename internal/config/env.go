// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, or from the process environment when
// environ is nil. Empty variables are treated as unset, so an exported but
// blank BRANDING_TARGETS never replaces the default target list.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	set := make(map[string]string, len(environ))
	for k, v := range environ {
		if v != "" {
			set[k] = v
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: set}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

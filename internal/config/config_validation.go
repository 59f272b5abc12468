// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validateServer checks the settings the HTTP server needs, on top of the
// branding checks.
func (cfg *StructuredConfig) validateServer() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return cfg.validateBranding()
}

func (cfg *StructuredConfig) validateBranding() error {
	if strings.TrimSpace(cfg.Branding.RootDir) == "" {
		return fmt.Errorf("%w: empty root dir", ErrInvalidBrandingConfigs)
	}

	if len(cfg.Branding.Targets) == 0 {
		return fmt.Errorf("%w: no targets", ErrInvalidBrandingConfigs)
	}

	for _, t := range cfg.Branding.Targets {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("%w: empty target path", ErrInvalidBrandingConfigs)
		}
	}

	if cfg.Branding.PasskeyTimeout < 0 {
		return fmt.Errorf("%w: negative passkey timeout", ErrInvalidBrandingConfigs)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultRootDir        = "."
	defaultPasskeyTimeout = 60 * time.Second
)

// defaultTargets returns the web app manifests that carry branding tokens,
// relative to the project root. A new slice is returned on every call.
func defaultTargets() []string {
	return []string{
		"apps/remix/public/site.webmanifest",
		"packages/assets/site.webmanifest",
	}
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Branding: Branding{
			RootDir:        defaultRootDir,
			Targets:        defaultTargets(),
			PasskeyTimeout: defaultPasskeyTimeout,
		},
	}
}

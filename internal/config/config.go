// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Branding holds settings for baking branding into static assets and for
	// the passkey relying party.
	Branding Branding `envPrefix:"BRANDING_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Branding holds settings of the templating pass and the passkey relying
// party.
type Branding struct {
	// RootDir is the directory relative targets are resolved against.
	// Env: BRANDING_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// Targets lists the files to template, comma separated in the
	// environment.
	// Env: BRANDING_TARGETS
	Targets []string `env:"TARGETS" envSeparator:","`

	// PasskeyTimeout bounds one passkey ceremony.
	// Env: BRANDING_PASSKEY_TIMEOUT
	PasskeyTimeout time.Duration `env:"PASSKEY_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from defaults, the optional config file, environment variables, and
// command-line flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}

// GetTemplatingConfig loads the configuration of the templating command. It
// reads no flags: the command is invoked without arguments.
func GetTemplatingConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateBranding()
}

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBrandingConfigs indicates invalid templating or passkey
	// settings (for example, no targets or a negative timeout).
	ErrInvalidBrandingConfigs = errors.New("invalid branding configuration")
	// ErrUnsupportedConfigFile indicates a config file extension that is
	// neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)

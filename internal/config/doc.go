// Package config provides configuration loading, merging, and validation
// for the go-brand-kit binaries themselves (listen address, template
// targets, passkey timeout). Branding values are not part of it; they are
// resolved on demand by package branding.
//
// Configuration is assembled from multiple sources. Later sources override
// earlier non-zero fields:
//  1. Compiled defaults
//  2. Config file (JSON or YAML, path from CONFIG or -c/-config)
//  3. Environment variables
//  4. Command-line flags (server only)
//
// The main entry points are [GetStructuredConfig] for the HTTP server and
// [GetTemplatingConfig] for the flag-less templating command.
package config

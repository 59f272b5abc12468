// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authn derives the WebAuthn relying-party description of the
// application from its branding configuration.
package authn

import (
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-brand-kit/internal/branding"
)

// DefaultPasskeyTimeout bounds a passkey ceremony.
const DefaultPasskeyTimeout = 60 * time.Second

// RelyingPartyOptions identifies the application during a passkey ceremony.
type RelyingPartyOptions struct {
	// Name is the display name shown by authenticators.
	Name string
	// ID is the hostname of the webapp URL.
	ID string
	// Origin is the full webapp URL as configured.
	Origin string
	// Timeout bounds one ceremony.
	Timeout time.Duration
}

// TimeoutMillis returns Timeout in milliseconds.
func (o RelyingPartyOptions) TimeoutMillis() int64 {
	return o.Timeout.Milliseconds()
}

// Builder assembles [RelyingPartyOptions] from resolved branding values.
type Builder struct {
	resolver *branding.Resolver
	timeout  time.Duration
}

// NewBuilder returns a Builder. A non-positive timeout selects
// [DefaultPasskeyTimeout].
func NewBuilder(resolver *branding.Resolver, timeout time.Duration) *Builder {
	if timeout <= 0 {
		timeout = DefaultPasskeyTimeout
	}

	return &Builder{
		resolver: resolver,
		timeout:  timeout,
	}
}

// Build resolves the webapp URL and relying-party name again on every call.
// It fails when the URL is not absolute.
func (b *Builder) Build() (RelyingPartyOptions, error) {
	origin := b.resolver.WebAppURL()

	id, err := hostname(origin)
	if err != nil {
		return RelyingPartyOptions{}, err
	}

	return RelyingPartyOptions{
		Name:    b.resolver.AuthRPName(),
		ID:      id,
		Origin:  origin,
		Timeout: b.timeout,
	}, nil
}

func hostname(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidWebAppURL, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w %q: scheme and host are required", ErrInvalidWebAppURL, raw)
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w %q: empty hostname", ErrInvalidWebAppURL, raw)
	}

	return host, nil
}

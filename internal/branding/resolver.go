// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branding

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resolver resolves branding keys against a [Lookup]. It holds no cache and
// is safe for concurrent use as long as its Lookup is.
type Resolver struct {
	lookup Lookup
	rules  map[Key]rule
}

// NewResolver returns a Resolver reading from lookup. A nil lookup falls back
// to [OSLookup].
func NewResolver(lookup Lookup) *Resolver {
	if lookup == nil {
		lookup = OSLookup
	}

	return &Resolver{
		lookup: lookup,
		rules:  defaultRules,
	}
}

// FromContext returns a Resolver using the lookup carried by ctx.
func FromContext(ctx context.Context) *Resolver {
	return NewResolver(LookupFromContext(ctx))
}

// Resolve returns the value of key. The environment value wins when it is
// present and non-empty; otherwise the key's rule is evaluated, resolving
// dependencies first.
func (r *Resolver) Resolve(key Key) (Value, error) {
	rl, ok := r.rules[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	raw, present := r.env(rl.envVar)

	switch rl.kind {
	case KindNumber:
		return numberValue(parseNumber(raw, present, rl.number)), nil
	case KindBool:
		return boolValue(raw == truthy), nil
	}

	if present {
		return stringValue(raw), nil
	}
	if rl.derive == nil {
		return stringValue(rl.literal), nil
	}

	deps := make([]string, len(rl.deps))
	for i, dep := range rl.deps {
		v, err := r.Resolve(dep)
		if err != nil {
			return Value{}, fmt.Errorf("error resolving %s for %s: %w", dep, key, err)
		}
		deps[i] = v.String()
	}

	return stringValue(rl.derive(deps)), nil
}

// String resolves key and formats it as text.
func (r *Resolver) String(key Key) (string, error) {
	v, err := r.Resolve(key)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// env treats an empty value the same as an unset variable.
func (r *Resolver) env(name string) (string, bool) {
	v, ok := r.lookup(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// parseNumber never returns NaN or ±Inf. Zero also falls back, as the limit
// has no meaningful zero value.
func parseNumber(raw string, present bool, fallback float64) float64 {
	if !present {
		return fallback
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n == 0 {
		return fallback
	}

	return n
}

// must is used by the typed accessors below; their keys are covered by
// defaultRules, which init validates.
func (r *Resolver) must(key Key) Value {
	v, err := r.Resolve(key)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Resolver) AppName() string      { return r.must(AppName).String() }
func (r *Resolver) AppShortName() string { return r.must(AppShortName).String() }
func (r *Resolver) WebAppURL() string    { return r.must(WebAppURL).String() }

func (r *Resolver) InternalWebAppURL() string {
	return r.must(InternalWebAppURL).String()
}

// BillingEnabled is true only when the variable is exactly "true".
func (r *Resolver) BillingEnabled() bool {
	return r.must(BillingEnabled).Bool()
}

// DocumentUploadSizeLimit returns the upload limit in megabytes.
func (r *Resolver) DocumentUploadSizeLimit() float64 {
	return r.must(DocumentUploadSizeLimit).Number()
}

func (r *Resolver) EmailFromName() string    { return r.must(EmailFromName).String() }
func (r *Resolver) EmailFromAddress() string { return r.must(EmailFromAddress).String() }
func (r *Resolver) ServiceUserEmail() string { return r.must(ServiceUserEmail).String() }
func (r *Resolver) AuthIssuer() string       { return r.must(AuthIssuer).String() }
func (r *Resolver) AuthRPName() string       { return r.must(AuthRPName).String() }

func (r *Resolver) WebhookSecretHeader() string {
	return r.must(WebhookSecretHeader).String()
}

func (r *Resolver) SigningCertificateText() string {
	return r.must(SigningCertificateText).String()
}

func (r *Resolver) AnalyticsDomain() string    { return r.must(AnalyticsDomain).String() }
func (r *Resolver) CompanyName() string        { return r.must(CompanyName).String() }
func (r *Resolver) CompanyNameNoComma() string { return r.must(CompanyNameNoComma).String() }

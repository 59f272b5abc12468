// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branding

import (
	"context"
	"os"
)

// Lookup returns the raw value of an environment variable and whether it is
// set. It is the only way a [Resolver] reads its input.
type Lookup func(key string) (string, bool)

// OSLookup reads the process environment.
func OSLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapLookup serves variables from a fixed map. The map is read on every call,
// so later writes to it are visible.
func MapLookup(vars map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

type lookupCtxKey struct{}

// WithLookup returns a copy of ctx carrying lookup.
func WithLookup(ctx context.Context, lookup Lookup) context.Context {
	return context.WithValue(ctx, lookupCtxKey{}, lookup)
}

// LookupFromContext returns the lookup stored by [WithLookup], or [OSLookup]
// when ctx carries none.
func LookupFromContext(ctx context.Context) Lookup {
	if l, ok := ctx.Value(lookupCtxKey{}).(Lookup); ok && l != nil {
		return l
	}
	return OSLookup
}

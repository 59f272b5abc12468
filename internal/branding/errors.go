// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branding

import "errors"

var (
	// ErrUnknownKey is returned when a key has no resolution rule.
	ErrUnknownKey = errors.New("unknown branding key")
	// ErrRuleCycle is returned by the rule checker when defaults depend on
	// each other in a loop.
	ErrRuleCycle = errors.New("branding rule cycle")
	// ErrMissingDependency is returned by the rule checker when a derived
	// default refers to a key that has no rule of its own.
	ErrMissingDependency = errors.New("branding rule depends on undefined key")
)

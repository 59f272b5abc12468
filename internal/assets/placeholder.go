// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assets

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-brand-kit/internal/branding"
)

// Placeholder binds a token in a target file to a branding key.
type Placeholder struct {
	Token string
	Key   branding.Key
}

// Placeholders lists the recognized tokens. Any other brace-delimited text in
// a target file is left as is.
var Placeholders = []Placeholder{
	{Token: Token(branding.AppName), Key: branding.AppName},
	{Token: Token(branding.AppShortName), Key: branding.AppShortName},
}

// Token returns the placeholder text for key, e.g. {{APP_NAME}}.
func Token(key branding.Key) string {
	return "{{" + string(key) + "}}"
}

// Substituter replaces every placeholder token in a text.
type Substituter struct {
	replacer *strings.Replacer
	values   map[branding.Key]string
}

// NewSubstituter resolves the value of every placeholder once. It fails with
// [ErrTokenInValue] when a value contains a recognized token, so a processed
// file never changes on a later run.
func NewSubstituter(resolver *branding.Resolver) (*Substituter, error) {
	values := make(map[branding.Key]string, len(Placeholders))
	pairs := make([]string, 0, 2*len(Placeholders))

	for _, p := range Placeholders {
		v, err := resolver.String(p.Key)
		if err != nil {
			return nil, fmt.Errorf("error resolving placeholder %s: %w", p.Token, err)
		}
		if token, ok := containsToken(v); ok {
			return nil, fmt.Errorf("%w: %s=%q contains %s", ErrTokenInValue, p.Key.EnvVar(), v, token)
		}
		values[p.Key] = v
		pairs = append(pairs, p.Token, v)
	}

	return &Substituter{
		replacer: strings.NewReplacer(pairs...),
		values:   values,
	}, nil
}

func containsToken(v string) (string, bool) {
	for _, p := range Placeholders {
		if strings.Contains(v, p.Token) {
			return p.Token, true
		}
	}
	return "", false
}

// Replace substitutes all occurrences of every token in one pass; replaced
// text is never scanned again.
func (s *Substituter) Replace(content string) string {
	return s.replacer.Replace(content)
}

// Value returns the resolved value used for key.
func (s *Substituter) Value(key branding.Key) string {
	return s.values[key]
}

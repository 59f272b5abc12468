// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assets

import "errors"

var (
	// ErrTokenInValue is returned when a resolved placeholder value contains a
	// recognized token. Substituting it would leave a token behind that the
	// next run rewrites.
	ErrTokenInValue = errors.New("placeholder value contains a placeholder token")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authn

import "errors"

var (
	// ErrInvalidWebAppURL is returned when the webapp URL cannot identify a
	// relying party: it does not parse or lacks a scheme or host.
	ErrInvalidWebAppURL = errors.New("invalid webapp url")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrInvalidRelyingParty is returned when the passkey relying party
	// cannot be derived from the branding configuration.
	ErrInvalidRelyingParty = errors.New("invalid passkey relying party")
)

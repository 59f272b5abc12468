// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authn

import (
	"fmt"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
)

// WebAuthnConfig maps the options onto a go-webauthn config with enforced
// ceremony timeouts. An empty origin is left out.
func (o RelyingPartyOptions) WebAuthnConfig() *webauthn.Config {
	timeout := webauthn.TimeoutConfig{
		Enforce:    true,
		Timeout:    o.Timeout,
		TimeoutUVD: o.Timeout,
	}

	var origins []string
	if o.Origin != "" {
		origins = []string{o.Origin}
	}

	return &webauthn.Config{
		RPDisplayName: o.Name,
		RPID:          o.ID,
		RPOrigins:     origins,
		Timeouts: webauthn.TimeoutsConfig{
			Login:        timeout,
			Registration: timeout,
		},
	}
}

// NewWebAuthn creates a relying party from o. It fails when o has no origin.
func NewWebAuthn(o RelyingPartyOptions) (*webauthn.WebAuthn, error) {
	w, err := webauthn.New(o.WebAuthnConfig())
	if err != nil {
		return nil, fmt.Errorf("create webauthn: %w", err)
	}

	return w, nil
}

// LoginOptions starts a discoverable passkey login for the relying party
// described by o and returns the credential request options a browser passes
// to navigator.credentials.get. It fails when o has no origin or no id.
func LoginOptions(o RelyingPartyOptions) (protocol.PublicKeyCredentialRequestOptions, *webauthn.SessionData, error) {
	w, err := NewWebAuthn(o)
	if err != nil {
		return protocol.PublicKeyCredentialRequestOptions{}, nil, err
	}

	assertion, session, err := w.BeginDiscoverableLogin()
	if err != nil {
		return protocol.PublicKeyCredentialRequestOptions{}, nil, fmt.Errorf("begin passkey login: %w", err)
	}

	return assertion.Response, session, nil
}

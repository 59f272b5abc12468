// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-brand-kit/internal/authn"
	"github.com/MKhiriev/go-brand-kit/internal/branding"
	"github.com/MKhiriev/go-brand-kit/internal/config"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
	"github.com/MKhiriev/go-brand-kit/models"
)

type passkeyService struct {
	timeout time.Duration

	logger *logger.Logger
}

func NewPasskeyService(cfg config.Branding, logger *logger.Logger) PasskeyService {
	return &passkeyService{
		timeout: cfg.PasskeyTimeout,
		logger:  logger,
	}
}

// GetRelyingPartyOptions derives the relying party from the branding values
// visible through ctx and starts a discoverable login with it. The id and
// timeout reported are the ones go-webauthn put into the credential request.
func (s *passkeyService) GetRelyingPartyOptions(ctx context.Context) (models.PasskeyOptions, error) {
	log := logger.FromContext(ctx)

	opts, err := authn.NewBuilder(branding.FromContext(ctx), s.timeout).Build()
	if err != nil {
		log.Err(err).Str("func", "*passkeyService.GetRelyingPartyOptions").Msg("error building relying party options")
		return models.PasskeyOptions{}, fmt.Errorf("%w: %w", ErrInvalidRelyingParty, err)
	}

	request, _, err := authn.LoginOptions(opts)
	if err != nil {
		log.Err(err).Str("func", "*passkeyService.GetRelyingPartyOptions").Msg("relying party rejected by webauthn")
		return models.PasskeyOptions{}, fmt.Errorf("%w: %w", ErrInvalidRelyingParty, err)
	}

	return models.PasskeyOptions{
		RPName:  opts.Name,
		RPID:    request.RelyingPartyID,
		Origin:  opts.Origin,
		Timeout: int64(request.Timeout),
	}, nil
}

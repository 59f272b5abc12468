package service

import (
	"context"

	"github.com/MKhiriev/go-brand-kit/internal/branding"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
)

type brandingService struct {
	logger *logger.Logger
}

func NewBrandingService(logger *logger.Logger) BrandingService {
	return &brandingService{logger: logger}
}

// GetPublicBranding resolves against the lookup carried by ctx, falling back
// to the process environment.
func (s *brandingService) GetPublicBranding(ctx context.Context) branding.PublicValues {
	public := branding.FromContext(ctx).Snapshot().Public()

	s.logger.Debug().
		Str("func", "*brandingService.GetPublicBranding").
		Str("app_name", public.AppName).
		Str("webapp_url", public.WebAppURL).
		Bool("billing_enabled", public.BillingEnabled).
		Msg("resolved public branding")

	return public
}

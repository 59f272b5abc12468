package service

import (
	"context"

	"github.com/MKhiriev/go-brand-kit/internal/branding"
	"github.com/MKhiriev/go-brand-kit/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BrandingService exposes branding values to clients. Values are resolved on
// every call so environment overrides are always observed.
type BrandingService interface {
	GetPublicBranding(ctx context.Context) branding.PublicValues
}

type PasskeyService interface {
	GetRelyingPartyOptions(ctx context.Context) (models.PasskeyOptions, error)
}

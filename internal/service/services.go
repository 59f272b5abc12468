package service

import (
	"github.com/MKhiriev/go-brand-kit/internal/config"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
	"github.com/MKhiriev/go-brand-kit/models"
)

type Services struct {
	AppInfoService  AppInfoService
	BrandingService BrandingService
	PasskeyService  PasskeyService
}

func NewServices(cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:  appInfoService,
		BrandingService: NewBrandingService(logger),
		PasskeyService:  NewPasskeyService(cfg.Branding, logger),
	}, nil
}

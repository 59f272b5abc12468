package http

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-brand-kit/internal/branding"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
	"github.com/MKhiriev/go-brand-kit/internal/service"
	"github.com/MKhiriev/go-brand-kit/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockBrandingService struct {
	values branding.PublicValues
}

func (m *mockBrandingService) GetPublicBranding(_ context.Context) branding.PublicValues {
	return m.values
}

type mockPasskeyService struct {
	opts models.PasskeyOptions
	err  error
}

func (m *mockPasskeyService) GetRelyingPartyOptions(_ context.Context) (models.PasskeyOptions, error) {
	return m.opts, m.err
}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

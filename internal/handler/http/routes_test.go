package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-brand-kit/internal/config"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
	"github.com/MKhiriev/go-brand-kit/internal/service"
	"github.com/MKhiriev/go-brand-kit/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	services, err := service.NewServices(config.StructuredConfig{App: config.App{Version: "1.0.0"}}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if resp.Header.Get("Content-Type") != "application/json" {
		return resp, nil
	}
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestInit_Routes(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_APP_NAME", "Acme Sign")
	t.Setenv("NEXT_PUBLIC_WEBAPP_URL", "https://sign.acme.com")
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/api/branding")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme Sign", body["appName"])
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))

	resp, body = get(t, srv.URL+"/api/auth/passkey/options")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sign.acme.com", body["rpId"])
	assert.Equal(t, "Acme Sign", body["rpName"])
	assert.Equal(t, float64(60000), body["timeout"])

	resp, _ = get(t, srv.URL+"/api/version")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestInit_ObservesEnvironmentChanges verifies that values are resolved per
// request rather than at startup.
func TestInit_ObservesEnvironmentChanges(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_APP_NAME", "Before")
	srv := newTestServer(t)

	_, body := get(t, srv.URL+"/api/branding")
	assert.Equal(t, "Before", body["appName"])

	t.Setenv("NEXT_PUBLIC_APP_NAME", "After")
	_, body = get(t, srv.URL+"/api/branding")
	assert.Equal(t, "After", body["appName"])
}

func TestInit_InvalidWebAppURL(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_WEBAPP_URL", "not a url")
	srv := newTestServer(t)

	resp, _ := get(t, srv.URL+"/api/auth/passkey/options")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// other routes keep working
	resp, _ = get(t, srv.URL+"/api/branding")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInit_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := get(t, srv.URL+"/api/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/branding", nil)
	require.NoError(t, err)
	postResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer postResp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, postResp.StatusCode)
}

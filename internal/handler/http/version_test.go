package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-brand-kit/internal/logger"
	"github.com/MKhiriev/go-brand-kit/internal/service"
)

// failingWriter accepts headers but fails every body write.
type failingWriter struct {
	*httptest.ResponseRecorder
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func (w failingWriter) WriteString(string) (int, error) {
	return 0, errors.New("connection reset")
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "v1.2.3-beta+build.42"
	h := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: want}})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, want, rec.Body.String())
}

func TestGetServerVersion_LogsWriteError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerTo("test", &buf)
	h := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: "1.0.0"}})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req = req.WithContext(log.WithContext(req.Context()))

	h.getServerVersion(failingWriter{httptest.NewRecorder()}, req)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "error writing response", entry["message"])
	assert.Equal(t, "connection reset", entry["error"])
}

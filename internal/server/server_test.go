package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-brand-kit/internal/config"
	handler "github.com/MKhiriev/go-brand-kit/internal/handler/http"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
	"github.com/MKhiriev/go-brand-kit/internal/service"
	"github.com/MKhiriev/go-brand-kit/models"
)

func newTestHandler(t *testing.T) *handler.Handler {
	t.Helper()
	services, err := service.NewServices(config.StructuredConfig{App: config.App{Version: "1.0.0"}}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	return handler.NewHandler(services, logger.Nop())
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(newTestHandler(t), config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(newTestHandler(t), config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ReturnsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv, err := NewServer(newTestHandler(t), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.(*server).run(context.Background()))
}

package http

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValenGrassi/cinerack/internal/adapters/memory"
	"github.com/ValenGrassi/cinerack/internal/domain/service"
)

func TestServerStartStop(t *testing.T) {
	cinemaRepo := memory.NewInMemoryCinemaRepository()
	auditRepo := memory.NewInMemoryAuditRepository()
	svc := service.NewRackService(cinemaRepo, auditRepo)

	server := NewServer(ServerConfig{ListenAddr: "127.0.0.1:0"}, svc, nil)
	require.NoError(t, server.Start())
	require.True(t, server.IsRunning())

	// Give the accept loop a moment to come up
	time.Sleep(50 * time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/health", server.GetAddr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NoError(t, server.Stop())
}

func TestServerH2C(t *testing.T) {
	cinemaRepo := memory.NewInMemoryCinemaRepository()
	auditRepo := memory.NewInMemoryAuditRepository()
	svc := service.NewRackService(cinemaRepo, auditRepo)

	server := NewServer(ServerConfig{ListenAddr: "127.0.0.1:0", EnableH2C: true}, svc, nil)
	require.NoError(t, server.Start())
	defer server.Stop()

	time.Sleep(50 * time.Millisecond)

	// H2C servers still answer plain HTTP/1.1
	resp, err := http.Get(fmt.Sprintf("http://%s/health", server.GetAddr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

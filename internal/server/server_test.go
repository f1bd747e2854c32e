package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(okHandler(), config.ClientServer{}, logger.Nop())

	assert.ErrorIs(t, err, errNoMetricsAddress)
	assert.Nil(t, s)
}

func TestNewServer_NoHandler(t *testing.T) {
	_, err := NewServer(nil, config.ClientServer{MetricsAddress: "127.0.0.1:0"}, logger.Nop())

	assert.ErrorIs(t, err, errNilHandler)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	s, err := NewServer(okHandler(), config.ClientServer{MetricsAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	require.Eventually(t, func() bool { return s.Addr() != "" }, time.Second, 5*time.Millisecond)

	resp, err := http.Get("http://" + s.Addr() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_ListenFails(t *testing.T) {
	s, err := NewServer(okHandler(), config.ClientServer{MetricsAddress: "256.0.0.1:99999"}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.RunServer(context.Background()))
	assert.Empty(t, s.Addr())
}

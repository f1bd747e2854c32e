package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/grocy-sync/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger

	mu   sync.Mutex
	addr string
}

func newHTTPServer(handler http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer(ctx context.Context) error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", h.server.Addr, err)
	}

	h.mu.Lock()
	h.addr = listener.Addr().String()
	h.mu.Unlock()

	h.logger.Info().
		Str("func", "httpServer.RunServer").
		Str("address", h.Addr()).
		Msg("launching status endpoint")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(listener)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	return h.shutdown()
}

func (h *httpServer) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		// ошибки закрытия Listener
		h.logger.Err(err).Str("func", "httpServer.shutdown").Msg("status endpoint shutdown failed")
		return err
	}
	h.logger.Info().Str("func", "httpServer.shutdown").Msg("status endpoint shut down gracefully")
	return nil
}

func (h *httpServer) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addr
}

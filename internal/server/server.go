package server

import (
	"net/http"

	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/logger"
)

// NewServer creates the status endpoint server. It fails when no address is
// configured or handler is nil.
func NewServer(handler http.Handler, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	if cfg.MetricsAddress == "" {
		return nil, errNoMetricsAddress
	}
	if handler == nil {
		return nil, errNilHandler
	}

	logger.Info().Str("func", "NewServer").Msg("creating status server...")
	return newHTTPServer(handler, cfg.MetricsAddress, logger), nil
}

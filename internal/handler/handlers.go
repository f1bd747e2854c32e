package handler

import (
	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/handler/http"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers of the local status endpoint. The
// endpoint is optional; without an address no handler is created.
func NewHandlers(status http.StatusService, buildInfo models.AppBuildInfo, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	if cfg.MetricsAddress == "" {
		return nil, errStatusEndpointDisabled
	}

	logger.Info().Str("func", "NewHandlers").Msg("creating status handlers...")
	return &Handlers{HTTP: http.NewHandler(status, buildInfo, logger)}, nil
}

package http

import (
	"context"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/models"
)

// StatusService is the part of the shopping list service the endpoint reads
// from.
type StatusService interface {
	View() *models.ShoppingListView
	Sync(ctx context.Context) error
}

type Handler struct {
	status    StatusService
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(status StatusService, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		status:    status,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

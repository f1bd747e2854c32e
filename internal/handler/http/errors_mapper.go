package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/grocy-sync/internal/adapter"
	"github.com/MKhiriev/grocy-sync/internal/service"
	"github.com/MKhiriev/grocy-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrOffline:            http.StatusServiceUnavailable,
	service.ErrSuperseded:         http.StatusConflict,
	service.ErrPartialSyncFailure: http.StatusBadGateway,

	adapter.ErrUnauthorized: http.StatusBadGateway,
	adapter.ErrForbidden:    http.StatusBadGateway,

	store.ErrCacheLocked:            http.StatusInternalServerError,
	store.ErrPreferencesUnavailable: http.StatusInternalServerError,
	store.ErrExecutingQuery:         http.StatusInternalServerError,
	store.ErrExecutingStatement:     http.StatusInternalServerError,

	context.Canceled: statusClientClosedRequest,
}

// statusClientClosedRequest is the nginx convention for a request the
// client gave up on.
const statusClientClosedRequest = 499

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

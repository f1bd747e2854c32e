package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/grocy-sync/internal/logger"
)

// withLogging writes one access log entry per request. Scrapes and probes
// are logged at debug level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		level := zerolog.InfoLevel
		if r.URL.Path == "/metrics" || r.URL.Path == "/healthz" {
			level = zerolog.DebugLevel
		}

		log.WithLevel(level).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

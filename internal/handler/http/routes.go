package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging)

	router.Get("/healthz", h.healthz)
	router.Method("GET", "/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)
		r.Get("/view", h.getView)
		r.Post("/sync", h.sync)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/grocy-sync/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unregistered method answers 404 instead of
// chi's 405, so the endpoint does not reveal which paths exist. The
// allowed methods are logged for debugging.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path {
				allowed = append(allowed, method)
			}
			return nil
		})

		logger.FromRequest(r).Debug().
			Str("func", "CheckHTTPMethod").
			Str("method", r.Method).
			Strs("allowed", allowed).
			Msg("method not registered for route")
		w.WriteHeader(http.StatusNotFound)
	}
}

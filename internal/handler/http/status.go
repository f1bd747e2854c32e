// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/models"
)

type viewItemResponse struct {
	ID      int     `json:"id"`
	Group   string  `json:"group"`
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit,omitempty"`
	Done    bool    `json:"done"`
	Pending bool    `json:"pending"`
	Missing bool    `json:"missing"`
}

type viewResponse struct {
	ListID       int                `json:"list_id"`
	ListName     string             `json:"list_name,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Phase        string             `json:"phase"`
	Loaded       bool               `json:"loaded"`
	Offline      bool               `json:"offline"`
	MissingCount int                `json:"missing_count"`
	UndoneCount  int                `json:"undone_count"`
	PublishedAt  time.Time          `json:"published_at"`
	Items        []viewItemResponse `json:"items"`
}

func newViewResponse(v *models.ShoppingListView) viewResponse {
	resp := viewResponse{
		ListID:       v.ListID,
		Notes:        v.Notes,
		Phase:        v.Phase.String(),
		Loaded:       v.Loaded,
		Offline:      v.Offline,
		MissingCount: v.MissingCount,
		UndoneCount:  v.UndoneCount,
		PublishedAt:  v.PublishedAt,
		Items:        make([]viewItemResponse, 0, len(v.Items)),
	}
	if v.List != nil {
		resp.ListName = v.List.Name
	}
	for _, g := range v.Groups {
		for _, it := range g.Items {
			resp.Items = append(resp.Items, viewItemResponse{
				ID:      it.ID,
				Group:   g.Name,
				Name:    it.Name,
				Amount:  it.Amount,
				Unit:    it.Unit,
				Done:    it.IsDone(),
				Pending: it.IsPending(),
				Missing: it.Missing,
			})
		}
	}
	return resp
}

// getView returns the last published view of the selected list.
func (h *Handler) getView(w http.ResponseWriter, r *http.Request) {
	v := h.status.View()
	if v == nil {
		http.Error(w, "cache not loaded", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newViewResponse(v)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getView").Msg("failed to encode view")
	}
}

// sync runs one sync cycle and waits for it.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.status.Sync(r.Context()); err != nil {
		log.Err(err).Str("func", "Handler.sync").Msg("sync cycle failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

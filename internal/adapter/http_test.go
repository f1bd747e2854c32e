// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:        serverURL,
		APIKey:             testAPIKey,
		RequestTimeout:     2 * time.Second,
		BreakerTimeout:     time.Minute,
		BreakerMaxFailures: 2,
	}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "grocy.local", want: "http://grocy.local"},
		{in: "https://grocy.local/", want: "https://grocy.local"},
		{in: " http://10.0.0.2:9283 ", want: "http://10.0.0.2:9283"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetDBChangedTime ─────────────────────────────────────────────────────────

func TestGetDBChangedTime_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/system/db-changed-time", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testAPIKey, r.Header.Get(APIKeyHeader))
		writeJSON(w, http.StatusOK, `{"changed_time":"2026-10-16 08:00:01"}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetDBChangedTime(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2026-10-16 08:00:01", got)
}

func TestGetDBChangedTime_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error_message":"invalid API key"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetDBChangedTime(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "invalid API key")
}

func TestGetDBChangedTime_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.GetDBChangedTime(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestGetDBChangedTime_ServerErrorIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("database locked"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetDBChangedTime(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Entity snapshots ─────────────────────────────────────────────────────────

func TestGetShoppingListItems_SkipsMalformedAndClearsPending(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/objects/{entity}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shopping_list", chi.URLParam(r, "entity"))
		writeJSON(w, http.StatusOK, `[
			{"id":1,"shopping_list_id":1,"product_id":7,"note":"","amount":2,"qu_id":3,"done":0},
			{"id":2,"shopping_list_id":1,"product_id":null,"note":"bread","amount":1,"qu_id":null,"done":1},
			{"id":3,"shopping_list_id":1,"done":5},
			{"id":"broken"},
			{"id":4,"shopping_list_id":0,"done":0}
		]`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.GetShoppingListItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].ID)
	require.NotNil(t, items[0].ProductID)
	assert.Equal(t, 7, *items[0].ProductID)
	assert.Equal(t, models.NotPending, items[0].DoneSynced)

	assert.Equal(t, 2, items[1].ID)
	assert.Nil(t, items[1].ProductID)
	assert.Equal(t, "bread", items[1].Note)
	assert.True(t, items[1].IsDone())
	assert.False(t, items[1].IsPending())
}

func TestGetObjects_EntityRoutes(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	r := chi.NewRouter()
	r.Get("/api/objects/{entity}", func(w http.ResponseWriter, r *http.Request) {
		entity := chi.URLParam(r, "entity")
		mu.Lock()
		seen = append(seen, entity)
		mu.Unlock()
		switch entity {
		case "shopping_lists":
			writeJSON(w, http.StatusOK, `[{"id":1,"name":"Shopping list","description":"<p>bring bags</p>"}]`)
		case "product_groups":
			writeJSON(w, http.StatusOK, `[{"id":1,"name":"Dairy"},{"id":2,"name":""}]`)
		case "quantity_units":
			writeJSON(w, http.StatusOK, `[{"id":3,"name":"Pack","name_plural":"Packs"}]`)
		case "products":
			writeJSON(w, http.StatusOK, `[{"id":7,"name":"Milk","product_group_id":1,"qu_id_purchase":3}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	lists, err := a.GetShoppingLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "<p>bring bags</p>", lists[0].Description)

	groups, err := a.GetProductGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1, "group without a name is malformed")
	assert.Equal(t, "Dairy", groups[0].Name)

	units, err := a.GetQuantityUnits(ctx)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "Packs", units[0].NamePlural)

	products, err := a.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NotNil(t, products[0].ProductGroupID)
	assert.Equal(t, 1, *products[0].ProductGroupID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"shopping_lists", "product_groups", "quantity_units", "products"}, seen)
}

func TestGetMissingProducts_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/stock/volatile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{
			"due_products": [],
			"missing_products": [
				{"id":7,"name":"Milk","amount_missing":2,"is_partly_in_stock":0},
				{"id":0,"name":"ghost"}
			]
		}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	missing, err := a.GetMissingProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, 7, missing[0].ID)
	assert.InDelta(t, 2.0, missing[0].AmountMissing, 0.0001)
}

func TestGetShoppingListItems_EmptySnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.GetShoppingListItems(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestUpdateObject_SendsPartialBody(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/objects/{entity}/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shopping_list", chi.URLParam(r, "entity"))
		assert.Equal(t, "42", chi.URLParam(r, "id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"done": float64(1)}, body)
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateObject(context.Background(), models.EntityShoppingListItems, 42, map[string]any{"done": 1})
	require.NoError(t, err)
}

func TestUpdateObject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error_message":"object not found"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateObject(context.Background(), models.EntityShoppingListItems, 1, map[string]any{"done": 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateObject_UnknownEntity(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	err := a.UpdateObject(context.Background(), models.EntityVolatileMissing, 1, nil)
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestCreateObject_ReturnsCreatedID(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/objects/{entity}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shopping_list", chi.URLParam(r, "entity"))
		writeJSON(w, http.StatusOK, `{"created_object_id":17}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	id, err := a.CreateObject(context.Background(), models.EntityShoppingListItems, map[string]any{
		"shopping_list_id": 1,
		"note":             "eggs",
		"amount":           6,
	})

	require.NoError(t, err)
	assert.Equal(t, 17, id)
}

func TestDeleteObject_Success(t *testing.T) {
	var called atomic.Bool
	r := chi.NewRouter()
	r.Delete("/api/objects/{entity}/{id}", func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		assert.Equal(t, "shopping_lists", chi.URLParam(r, "entity"))
		assert.Equal(t, "3", chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteObject(context.Background(), models.EntityShoppingLists, 3))
	assert.True(t, called.Load())
}

func TestShoppingListActions(t *testing.T) {
	var (
		mu       sync.Mutex
		gotPaths []string
		gotIDs   []int
	)
	r := chi.NewRouter()
	handler := func(w http.ResponseWriter, r *http.Request) {
		var body models.ShoppingListRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		mu.Lock()
		gotPaths = append(gotPaths, r.URL.Path)
		gotIDs = append(gotIDs, body.ListID)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}
	r.Post("/api/stock/shoppinglist/add-missing-products", handler)
	r.Post("/api/stock/shoppinglist/clear", handler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.AddMissingProducts(context.Background(), 2))
	require.NoError(t, a.ClearShoppingList(context.Background(), 3))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"/api/stock/shoppinglist/add-missing-products",
		"/api/stock/shoppinglist/clear",
	}, gotPaths)
	assert.Equal(t, []int{2, 3}, gotIDs)
}

// ── Circuit breaker ──────────────────────────────────────────────────────────

func TestBreaker_OpensAfterConsecutiveNetworkFailures(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := a.GetDBChangedTime(ctx)
		require.ErrorIs(t, err, ErrBadGateway)
	}

	_, err := a.GetDBChangedTime(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrBadGateway, "open circuit must reject without a request")
	assert.Equal(t, int64(2), hits.Load())
}

func TestBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	for i := 0; i < 5; i++ {
		err := a.DeleteObject(context.Background(), models.EntityShoppingListItems, 1)
		require.ErrorIs(t, err, ErrBadRequest)
	}
	assert.Equal(t, int64(5), hits.Load())
}

func TestExecute_PassesThroughResult(t *testing.T) {
	cb := newBreaker(1, time.Minute, logger.Nop())

	got, err := execute(cb, func() ([]int, error) { return []int{1, 2}, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	boom := errors.New("boom")
	_, err = execute(cb, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

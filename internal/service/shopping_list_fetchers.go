package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/grocy-sync/internal/adapter"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/metrics"
	"github.com/MKhiriev/grocy-sync/internal/queue"
	"github.com/MKhiriev/grocy-sync/models"
)

// fetcher downloads the full snapshot of one entity type and returns a
// function storing it into a snapshot.
type fetcher func(ctx context.Context) (func(*models.Snapshot), error)

func fetchInto[T any](get func(context.Context) ([]T, error), set func(*models.Snapshot, []T)) fetcher {
	return func(ctx context.Context) (func(*models.Snapshot), error) {
		records, err := get(ctx)
		if err != nil {
			return nil, err
		}
		if records == nil {
			records = []T{}
		}
		return func(snap *models.Snapshot) { set(snap, records) }, nil
	}
}

// fetcherFor returns the fetcher of the given entity type.
func fetcherFor(a adapter.ServerAdapter, entity models.EntityType) fetcher {
	switch entity {
	case models.EntityShoppingListItems:
		return fetchInto(a.GetShoppingListItems, func(s *models.Snapshot, v []models.ShoppingListItem) { s.Items = v })
	case models.EntityShoppingLists:
		return fetchInto(a.GetShoppingLists, func(s *models.Snapshot, v []models.ShoppingList) { s.Lists = v })
	case models.EntityProductGroups:
		return fetchInto(a.GetProductGroups, func(s *models.Snapshot, v []models.ProductGroup) { s.Groups = v })
	case models.EntityQuantityUnits:
		return fetchInto(a.GetQuantityUnits, func(s *models.Snapshot, v []models.QuantityUnit) { s.Units = v })
	case models.EntityProducts:
		return fetchInto(a.GetProducts, func(s *models.Snapshot, v []models.Product) { s.Products = v })
	case models.EntityVolatileMissing:
		return fetchInto(a.GetMissingProducts, func(s *models.Snapshot, v []models.MissingItem) { s.Missing = v })
	default:
		return func(context.Context) (func(*models.Snapshot), error) {
			return nil, fmt.Errorf("%w: %s", adapter.ErrUnknownEntity, entity)
		}
	}
}

// download fetches every stale entity type through one queue. The result is
// only returned once all fetches succeeded.
func (s *shoppingListService) download(ctx context.Context, token uint64, stale models.EntitySet) (models.Snapshot, error) {
	var (
		mu      sync.Mutex
		fetched models.Snapshot
	)

	q := queue.New(
		queue.WithName("download"),
		queue.WithLogger(logger.FromContext(ctx)),
	)
	for _, entity := range stale.Types() {
		fetch := fetcherFor(s.adapter, entity)
		err := q.Append(func(ctx context.Context) error {
			apply, err := fetch(ctx)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", entity, err)
			}
			metrics.EntityFetches.WithLabelValues(entity.String()).Inc()

			mu.Lock()
			apply(&fetched)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return models.Snapshot{}, err
		}
	}

	if err := s.runQueue(ctx, token, q); err != nil {
		return models.Snapshot{}, err
	}

	mu.Lock()
	defer mu.Unlock()
	return fetched, nil
}

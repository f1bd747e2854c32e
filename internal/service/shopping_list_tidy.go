package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/metrics"
	"github.com/MKhiriev/grocy-sync/internal/queue"
	"github.com/MKhiriev/grocy-sync/models"
)

// validListIDsLocked returns the ids items may reference. The second result
// is false when tidy-up has to be skipped because no list is cached yet.
func (s *shoppingListService) validListIDsLocked(ctx context.Context) (map[int]struct{}, bool, error) {
	multi, err := s.prefs.FeatureEnabled(ctx, models.FeatureMultipleShoppingLists)
	if err != nil {
		return nil, false, err
	}
	if !multi {
		return map[int]struct{}{models.DefaultShoppingListID: {}}, true, nil
	}

	ids := s.snapshot.ListIDs()
	if len(ids) == 0 {
		return nil, false, nil
	}
	valid := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		valid[id] = struct{}{}
	}
	return valid, true, nil
}

// tidyUp deletes items whose shopping list no longer exists, each through
// its own queue operation. It reports whether anything may have changed on
// the server; a failed deletion counts as a change.
func (s *shoppingListService) tidyUp(ctx context.Context, token uint64) (bool, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if s.cycle != token {
		s.mu.Unlock()
		return false, ErrSuperseded
	}
	s.phase = models.PhaseTidyingUp
	valid, ok, err := s.validListIDsLocked(ctx)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	var orphans []int
	if ok {
		for _, it := range s.snapshot.Items {
			if _, found := valid[it.ShoppingListID]; !found {
				orphans = append(orphans, it.ID)
			}
		}
	}
	s.mu.Unlock()

	if len(orphans) == 0 {
		return false, nil
	}

	var (
		mu      sync.Mutex
		deleted []int
	)
	q := queue.New(
		queue.WithName("tidy"),
		queue.WithLogger(log),
	)
	for _, id := range orphans {
		log.Debug().
			Str("func", "shoppingListService.tidyUp").
			Int("item_id", id).
			Msg("deleting orphaned item")
		err = q.Append(func(ctx context.Context) error {
			if err := s.adapter.DeleteObject(ctx, models.EntityShoppingListItems, id); err != nil {
				return err
			}
			mu.Lock()
			deleted = append(deleted, id)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return false, err
		}
	}

	err = s.runQueue(ctx, token, q)
	switch {
	case errors.Is(err, ErrSuperseded):
		return false, err
	case err != nil:
		log.Warn().Err(err).
			Str("func", "shoppingListService.tidyUp").
			Msg("failed to delete orphaned items")
	}

	mu.Lock()
	gone := append([]int(nil), deleted...)
	mu.Unlock()
	metrics.OrphansDeleted.Add(float64(len(gone)))

	if len(gone) > 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.cycle != token {
			return false, ErrSuperseded
		}
		if err = s.repo.DeleteItems(ctx, gone...); err != nil {
			return true, err
		}
		if err = s.reloadLocked(ctx); err != nil {
			return true, err
		}
	}

	return true, nil
}

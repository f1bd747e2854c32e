package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/grocy-sync/internal/app"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/metrics"
	"github.com/MKhiriev/grocy-sync/internal/queue"
	"github.com/MKhiriev/grocy-sync/models"
)

// pushMutations sends one partial update per pending item. Only when every
// update succeeded the pushed state is merged into the server copies and the
// pending markers are cleared.
func (s *shoppingListService) pushMutations(ctx context.Context, token uint64, rec models.Reconciliation) error {
	log := logger.FromContext(ctx)

	if err := s.setPhase(token, models.PhasePushingMutations); err != nil {
		return err
	}

	q := queue.New(
		queue.WithName("push"),
		queue.WithLogger(log),
	)
	for _, item := range rec.Pending {
		err := q.Append(func(ctx context.Context) error {
			fields := map[string]any{"done": item.Done}
			if err := s.adapter.UpdateObject(ctx, models.EntityShoppingListItems, item.ID, fields); err != nil {
				return fmt.Errorf("push item %d: %w", item.ID, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if err := s.runQueue(ctx, token, q); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle != token {
		return ErrSuperseded
	}

	merged := make([]models.ShoppingListItem, 0, len(rec.Pending))
	for _, pushed := range rec.Pending {
		server, ok := rec.ServerItems[pushed.ID]
		if !ok {
			continue
		}
		server.Done = pushed.Done
		server = server.Confirmed()

		// toggled again while the push was in flight
		if current, found := s.snapshot.Item(pushed.ID); found && current.Done != pushed.Done {
			server.DoneSynced = pushed.Done
			server.Done = current.Done
		}
		merged = append(merged, server)
	}

	if err := s.repo.UpsertItems(ctx, merged...); err != nil {
		log.Err(err).Str("func", "shoppingListService.pushMutations").Msg("failed to store pushed items")
		s.notify(noticeForError(err))
		return err
	}
	if err := s.reloadLocked(ctx); err != nil {
		return err
	}

	metrics.MutationsPushed.Add(float64(len(merged)))
	log.Info().
		Str("func", "shoppingListService.pushMutations").
		Int("pushed", len(merged)).
		Msg("pending changes pushed")
	s.notify(models.Notice{Kind: models.NoticeInfo, Message: app.MsgSynced})

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/grocy-sync/internal/app"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/metrics"
	"github.com/MKhiriev/grocy-sync/internal/queue"
	"github.com/MKhiriev/grocy-sync/models"
)

// cycleOptions bound the follow-up cycles a cycle may start itself.
type cycleOptions struct {
	// retryPush allows one fresh cycle after a failed push.
	retryPush bool
	// extraTidy allows one more cycle after tidy-up deleted orphans.
	extraTidy bool
}

var firstCycle = cycleOptions{retryPush: true, extraTidy: true}

func (s *shoppingListService) Sync(ctx context.Context) error {
	return s.runCycle(s.withLogger(ctx), "", firstCycle)
}

func (s *shoppingListService) SyncWithTimestamp(ctx context.Context, changedTime string) error {
	return s.runCycle(s.withLogger(ctx), changedTime, firstCycle)
}

func (s *shoppingListService) runCycle(ctx context.Context, changedTime string, opts cycleOptions) (err error) {
	started := time.Now()
	token := s.beginCycle()

	log := logger.FromContext(ctx).With().Uint64("cycle", token).Logger()
	ctx = log.WithContext(ctx)

	defer func() {
		metrics.SyncCycles.WithLabelValues(cycleResult(err)).Inc()
		metrics.SyncCycleDuration.Observe(time.Since(started).Seconds())
	}()
	defer func() {
		if err != nil && !errors.Is(err, ErrSuperseded) && !errors.Is(err, ErrOffline) && !errors.Is(err, ErrPartialSyncFailure) {
			s.abort(ctx, token, err)
		}
	}()

	if changedTime == "" {
		changedTime, err = s.adapter.GetDBChangedTime(ctx)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			return s.enterOffline(ctx, token, err)
		}
	}

	stale, pending, err := s.staleTypes(ctx, token, changedTime)
	if err != nil {
		return err
	}
	if len(stale) == 0 && !pending {
		log.Debug().
			Str("func", "shoppingListService.runCycle").
			Str("changed_time", changedTime).
			Msg("cache is current, nothing to download")
		return s.settle(ctx, token)
	}

	fetched := models.Snapshot{}
	if len(stale) > 0 {
		if err = s.setPhase(token, models.PhaseDownloading); err != nil {
			return err
		}
		fetched, err = s.download(ctx, token, stale)
		switch {
		case errors.Is(err, ErrSuperseded):
			return err
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			return s.enterOffline(ctx, token, err)
		}
	}

	rec, err := s.reconcile(ctx, token, fetched, stale, changedTime)
	if err != nil {
		return err
	}

	if len(rec.Pending) > 0 {
		if err = s.pushMutations(ctx, token, rec); err != nil {
			if errors.Is(err, ErrSuperseded) {
				return err
			}
			s.notify(models.Notice{Kind: models.NoticeError, Message: app.MsgFailedToSync})
			log.Warn().Err(err).
				Str("func", "shoppingListService.runCycle").
				Bool("retry", opts.retryPush).
				Msg("failed to push pending changes")
			if opts.retryPush {
				return s.runCycle(ctx, "", cycleOptions{extraTidy: opts.extraTidy})
			}
			if settleErr := s.settle(ctx, token); settleErr != nil {
				return settleErr
			}
			return fmt.Errorf("%w: %w", ErrPartialSyncFailure, err)
		}
	}

	changed, err := s.tidyUp(ctx, token)
	if err != nil {
		return err
	}
	if changed && opts.extraTidy {
		log.Debug().
			Str("func", "shoppingListService.runCycle").
			Msg("orphans deleted, running one more cycle")
		return s.runCycle(ctx, "", cycleOptions{retryPush: opts.retryPush})
	}

	return s.settle(ctx, token)
}

// beginCycle supersedes any running cycle and returns the new cycle token.
func (s *shoppingListService) beginCycle() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cycle++
	if s.current != nil {
		s.current.Reset(true)
		s.current = nil
	}
	s.phase = models.PhaseCheckingTimestamp
	s.publishLocked()
	return s.cycle
}

func (s *shoppingListService) setPhase(token uint64, phase models.SyncPhase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle != token {
		return ErrSuperseded
	}
	s.phase = phase
	return nil
}

// staleTypes returns the entity types whose last-synced timestamp is missing
// or differs from changedTime, and whether local changes are pending.
func (s *shoppingListService) staleTypes(ctx context.Context, token uint64, changedTime string) (models.EntitySet, bool, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle != token {
		return nil, false, ErrSuperseded
	}

	stale := models.NewEntitySet()
	for _, entity := range models.AllEntityTypes {
		last, err := s.prefs.LastSynced(ctx, entity)
		if err != nil {
			s.notify(noticeForError(err))
			return nil, false, err
		}
		if last != "" && last == changedTime {
			metrics.EntityFetchesSkipped.WithLabelValues(entity.String()).Inc()
			log.Debug().
				Str("func", "shoppingListService.staleTypes").
				Str("entity", entity.String()).
				Msg("skipped download, entity is current")
			continue
		}
		stale[entity] = struct{}{}
	}

	pending := false
	for _, it := range s.snapshot.Items {
		if it.IsPending() {
			pending = true
			break
		}
	}

	return stale, pending, nil
}

// install registers q as the in-flight queue of the cycle.
func (s *shoppingListService) install(token uint64, q *queue.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle != token {
		return ErrSuperseded
	}
	s.current = q
	return nil
}

func (s *shoppingListService) uninstall(q *queue.Queue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == q {
		s.current = nil
	}
}

// runQueue starts q as the in-flight queue of the cycle and waits for it.
func (s *shoppingListService) runQueue(ctx context.Context, token uint64, q *queue.Queue) error {
	if err := s.install(token, q); err != nil {
		return err
	}
	defer s.uninstall(q)

	q.Start(ctx)
	err := q.Wait(ctx)
	if errors.Is(err, queue.ErrQueueReset) || s.isSuperseded(token) {
		return ErrSuperseded
	}
	return err
}

func (s *shoppingListService) isSuperseded(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycle != token
}

// reconcile persists the downloaded snapshot, records the change timestamp
// for the fetched types and reloads the cache.
func (s *shoppingListService) reconcile(
	ctx context.Context,
	token uint64,
	fetched models.Snapshot,
	types models.EntitySet,
	changedTime string,
) (models.Reconciliation, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle != token {
		return models.Reconciliation{}, ErrSuperseded
	}
	s.phase = models.PhaseReconciling
	s.setOfflineLocked(false)

	rec, err := s.repo.PersistSnapshot(ctx, fetched, types)
	if err != nil {
		log.Err(err).Str("func", "shoppingListService.reconcile").Msg("failed to persist snapshot")
		s.notify(noticeForError(err))
		return models.Reconciliation{}, err
	}

	if len(types) > 0 {
		if err = s.prefs.SetLastSynced(ctx, changedTime, types.Types()...); err != nil {
			s.notify(noticeForError(err))
			return models.Reconciliation{}, err
		}
	}

	if err = s.reloadLocked(ctx); err != nil {
		s.notify(noticeForError(err))
		return models.Reconciliation{}, err
	}
	if err = s.refreshLoadedLocked(ctx); err != nil {
		return models.Reconciliation{}, err
	}

	if len(rec.Dropped) > 0 {
		metrics.MutationsDropped.Add(float64(len(rec.Dropped)))
		if s.discardedLocked(rec.Dropped) {
			s.notify(models.Notice{Kind: models.NoticeInfo, Message: app.MsgChangesDiscarded})
		}
	}

	return rec, nil
}

// discardedLocked reports whether any dropped change is really lost, that is
// the server copy is gone or disagrees with the local intent.
func (s *shoppingListService) discardedLocked(dropped []models.ShoppingListItem) bool {
	for _, local := range dropped {
		current, ok := s.snapshot.Item(local.ID)
		if !ok || current.Done != local.Done {
			return true
		}
	}
	return false
}

// settle ends a cycle that reached the server and publishes the view.
func (s *shoppingListService) settle(ctx context.Context, token uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle != token {
		return ErrSuperseded
	}

	s.phase = models.PhaseIdle
	s.setOfflineLocked(false)
	s.publishLocked()

	logger.FromContext(ctx).Debug().
		Str("func", "shoppingListService.settle").
		Msg("sync cycle finished")
	return nil
}

// abort ends a cycle that failed on the local side. The cache is left as it
// was committed so far and the view leaves the loading state.
func (s *shoppingListService) abort(ctx context.Context, token uint64, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cycle != token {
		return
	}

	s.phase = models.PhaseIdle
	s.publishLocked()

	logger.FromContext(ctx).Warn().Err(cause).
		Str("func", "shoppingListService.abort").
		Msg("sync cycle aborted")
}

// enterOffline keeps the cache as is, publishes the offline view and emits a
// notice.
func (s *shoppingListService) enterOffline(ctx context.Context, token uint64, cause error) error {
	s.mu.Lock()
	if s.cycle != token {
		s.mu.Unlock()
		return ErrSuperseded
	}
	s.phase = models.PhaseOffline
	s.setOfflineLocked(true)
	s.publishLocked()
	s.mu.Unlock()

	logger.FromContext(ctx).Warn().Err(cause).
		Str("func", "shoppingListService.enterOffline").
		Msg("server unreachable, keeping cached data")
	s.notify(noticeForError(cause))

	return fmt.Errorf("%w: %w", ErrOffline, cause)
}

func cycleResult(err error) string {
	switch {
	case err == nil:
		return "idle"
	case errors.Is(err, ErrOffline):
		return "offline"
	case errors.Is(err, ErrSuperseded):
		return "superseded"
	case errors.Is(err, ErrPartialSyncFailure):
		return "push_failed"
	default:
		return "error"
	}
}

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/grocy-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

// syncer is the part of [ShoppingListService] the job drives.
type syncer interface {
	Sync(ctx context.Context) error
}

type clientSyncJob struct {
	syncService syncer
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncService syncer, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that syncs once right away and then every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.run(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) run(ctx context.Context) {
	err := j.syncService.Sync(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, ErrSuperseded):
	case errors.Is(err, ErrOffline):
		j.logger.Debug().Err(err).Str("func", "clientSyncJob.run").Msg("sync skipped, offline")
	default:
		j.logger.Err(err).Str("func", "clientSyncJob.run").Msg("periodic sync failed")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/grocy-sync/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add appends a worker. Workers added after Run has started are not run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts all workers and waits for them. The first error cancels the
// context of the others and is returned once all of them stopped.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	w.logger.Info().
		Str("func", "Workers.Run").
		Int("workers", len(w.workers)).
		Msg("background workers started")

	err := g.Wait()
	if err != nil {
		w.logger.Err(err).Str("func", "Workers.Run").Msg("background worker failed")
	}
	return err
}

// SyncJob is the part of the periodic sync job a worker drives.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// NewSyncJobWorker runs job until the group context is cancelled.
func NewSyncJobWorker(job SyncJob, interval time.Duration) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		job.Start(ctx, interval)
		<-ctx.Done()
		job.Stop()
		return nil
	})
}

// Server is the part of the metrics server a worker drives.
type Server interface {
	RunServer(ctx context.Context) error
}

// NewServerWorker serves until the group context is cancelled.
func NewServerWorker(server Server) Worker {
	return WorkerFunc(server.RunServer)
}

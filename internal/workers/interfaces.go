// Package workers runs the long-lived background parts of the client, the
// periodic sync job and the metrics endpoint, as one group that stops
// together.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is cancelled or the
// worker fails; a returned error stops every other worker of the group.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

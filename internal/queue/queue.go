// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package queue implements the download queue used by the sync service: a
// batch of independent network operations that run concurrently and settle
// exactly once, either when every operation succeeded or on the first
// failure.
//
// A Queue is single-use. Operations are registered with Append, launched
// together by Start and observed either through the completion callbacks or
// through the future-style Wait. Reset discards a queue that has been
// superseded; results arriving after a reset are ignored.
package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/metrics"
	"github.com/google/uuid"
)

// Operation is one unit of work. The context is cancelled when the queue is
// reset with cancelInFlight set, or when the parent context passed to Start
// is cancelled.
type Operation func(ctx context.Context) error

// Option configures a Queue.
type Option func(*Queue)

// WithOnComplete registers the callback fired once all operations succeeded.
func WithOnComplete(fn func()) Option {
	return func(q *Queue) { q.onComplete = fn }
}

// WithOnError registers the callback fired with the first operation error.
func WithOnError(fn func(error)) Option {
	return func(q *Queue) { q.onError = fn }
}

// WithName labels the queue in logs and metrics.
func WithName(name string) Option {
	return func(q *Queue) { q.name = name }
}

// WithLogger sets the logger used for queue lifecycle events.
func WithLogger(l *logger.Logger) Option {
	return func(q *Queue) { q.log = l }
}

// Queue is a batch of concurrently executed operations with
// all-or-first-error completion semantics.
type Queue struct {
	id   uuid.UUID
	name string
	log  *logger.Logger

	onComplete func()
	onError    func(error)

	mu          sync.Mutex
	ops         []Operation
	started     bool
	settled     bool
	reset       bool
	outstanding int
	err         error
	cancel      context.CancelFunc
	done        chan struct{}
}

// New creates an empty queue with a fresh identity token.
func New(opts ...Option) *Queue {
	q := &Queue{
		id:   uuid.New(),
		name: "default",
		log:  logger.Nop(),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// ID returns the identity token of the queue.
func (q *Queue) ID() uuid.UUID {
	return q.id
}

// Name returns the label of the queue.
func (q *Queue) Name() string {
	return q.name
}

// Append registers op. It fails with [ErrQueueStarted] once Start was called
// and with [ErrQueueReset] after Reset.
func (q *Queue) Append(op Operation) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.reset {
		return ErrQueueReset
	}
	if q.started {
		return ErrQueueStarted
	}
	q.ops = append(q.ops, op)
	return nil
}

// Size returns the number of registered operations.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ops)
}

// IsEmpty reports whether no operation has been registered.
func (q *Queue) IsEmpty() bool {
	return q.Size() == 0
}

// Start launches all registered operations concurrently and returns
// immediately. Starting an empty, already started or reset queue is a no-op
// and fires no callback.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	if q.started || q.reset || len(q.ops) == 0 {
		q.mu.Unlock()
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	q.started = true
	q.cancel = cancel
	q.outstanding = len(q.ops)
	ops := q.ops
	q.mu.Unlock()

	q.log.Debug().
		Str("func", "Queue.Start").
		Str("queue", q.name).
		Str("queue_id", q.id.String()).
		Int("operations", len(ops)).
		Msg("starting queue")

	for _, op := range ops {
		go q.run(runCtx, op)
	}
}

func (q *Queue) run(ctx context.Context, op Operation) {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrOperationPanicked, r)
			}
		}()
		err = op(ctx)
	}()
	q.finish(err)
}

// finish records the result of one operation. The run context is released
// once the last operation returned, including operations abandoned after the
// queue settled.
func (q *Queue) finish(err error) {
	q.mu.Lock()
	q.outstanding--
	last := q.outstanding == 0
	cancel := q.cancel

	if q.settled {
		q.mu.Unlock()
		metrics.QueueOperations.WithLabelValues(q.name, "ignored").Inc()
		if last {
			cancel()
		}
		return
	}

	if err != nil {
		q.settled = true
		q.err = err
		close(q.done)
		cb := q.onError
		q.mu.Unlock()

		metrics.QueueOperations.WithLabelValues(q.name, "failure").Inc()
		q.log.Debug().Err(err).
			Str("func", "Queue.finish").
			Str("queue", q.name).
			Str("queue_id", q.id.String()).
			Msg("queue failed, abandoning remaining operations")
		if last {
			cancel()
		}
		if cb != nil {
			cb(err)
		}
		return
	}

	metrics.QueueOperations.WithLabelValues(q.name, "success").Inc()
	if !last {
		q.mu.Unlock()
		return
	}

	q.settled = true
	close(q.done)
	cb := q.onComplete
	q.mu.Unlock()

	cancel()
	if cb != nil {
		cb()
	}
}

// Reset discards the queue. Pending results are ignored and no callback will
// fire afterwards. With cancelInFlight the context of running operations is
// cancelled as well; otherwise they are left to finish on their own.
func (q *Queue) Reset(cancelInFlight bool) {
	q.mu.Lock()
	q.reset = true
	q.ops = nil
	if q.started && !q.settled {
		q.settled = true
		q.err = ErrQueueReset
		close(q.done)
	}
	cancel := q.cancel
	q.mu.Unlock()

	q.log.Debug().
		Str("func", "Queue.Reset").
		Str("queue", q.name).
		Str("queue_id", q.id.String()).
		Bool("cancel_in_flight", cancelInFlight).
		Msg("queue reset")

	if cancelInFlight && cancel != nil {
		cancel()
	}
}

// Done returns a channel closed once the queue settled or was reset.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Wait blocks until the queue settles and returns nil when every operation
// succeeded, the first operation error otherwise, or [ErrQueueReset] when the
// queue was discarded. Waiting on a queue that was never started returns
// [ErrQueueNotStarted].
func (q *Queue) Wait(ctx context.Context) error {
	q.mu.Lock()
	switch {
	case !q.started && q.reset:
		q.mu.Unlock()
		return ErrQueueReset
	case !q.started:
		q.mu.Unlock()
		return ErrQueueNotStarted
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		q.mu.Lock()
		defer q.mu.Unlock()
		return q.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

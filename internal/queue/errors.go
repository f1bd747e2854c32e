package queue

import "errors"

var (
	// ErrQueueStarted is returned by Append once the queue has been started.
	ErrQueueStarted = errors.New("queue already started")

	// ErrQueueReset is returned when the queue was discarded by Reset.
	ErrQueueReset = errors.New("queue was reset")

	// ErrQueueNotStarted is returned by Wait on a queue that never started,
	// including an empty queue whose Start was a no-op.
	ErrQueueNotStarted = errors.New("queue not started")

	// ErrOperationPanicked wraps a panic recovered from an operation.
	ErrOperationPanicked = errors.New("queue operation panicked")
)

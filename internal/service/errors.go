package service

import "errors"

var (
	// ErrOffline is returned by a sync cycle that could not reach the server.
	// The cached data is left untouched.
	ErrOffline = errors.New("server unreachable, working offline")

	// ErrPartialSyncFailure is returned when at least one pending local
	// change could not be pushed. The whole batch counts as failed.
	ErrPartialSyncFailure = errors.New("failed to push pending changes")

	// ErrSuperseded is returned by a sync cycle that was replaced by a newer
	// one before it could commit.
	ErrSuperseded = errors.New("sync cycle superseded")

	// ErrUndefined signals a request the current state cannot serve, such as
	// an item position outside the published view.
	ErrUndefined = errors.New("undefined error")

	ErrNoListSelected     = errors.New("selected shopping list is not cached")
	ErrInvalidItemRequest = errors.New("invalid item request")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/grocy-sync/models"
)

// ViewQuery narrows the printed view. Positions are counted within the
// narrowed view, so toggle and delete need the query show printed with.
type ViewQuery struct {
	Filter models.FilterState
	Search string
}

// Client defines the commands of the command-line client. Every command
// prints the resulting view and the notices it produced.
type Client interface {
	// Sync runs one sync cycle.
	Sync(ctx context.Context) error
	// Show prints the cached view without contacting the server.
	Show(ctx context.Context, query ViewQuery) error
	// Toggle checks off or un-checks the item at the position printed by
	// show with the same query.
	Toggle(ctx context.Context, query ViewQuery, position int) error
	// Delete removes the item at the printed position.
	Delete(ctx context.Context, query ViewQuery, position int) error
	// Select switches to another shopping list.
	Select(ctx context.Context, listID int) error
	ClearDone(ctx context.Context) error
	AddMissing(ctx context.Context) error
	Notes(ctx context.Context, notes string) error
	Add(ctx context.Context, item models.NewShoppingListItem) error
	DeleteList(ctx context.Context) error
	// Watch keeps syncing periodically and prints every new view until ctx
	// is cancelled.
	Watch(ctx context.Context) error
	// Close releases the local cache.
	Close() error
}

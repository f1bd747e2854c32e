package service

import (
	"context"
	"time"

	"github.com/MKhiriev/grocy-sync/models"
)

// ShoppingListService is the offline-sync engine of the shopping list. It
// keeps the local cache consistent with the Grocy server, applies user
// intents optimistically and publishes an immutable view after every settle
// point.
//
// All methods are safe for concurrent use. Cache and preference mutation is
// serialised internally; network calls never hold the internal lock.
type ShoppingListService interface {
	// Load reads the cache and the persisted selection and publishes the
	// first view. It performs no network call.
	Load(ctx context.Context) error

	// Sync runs one sync cycle: it asks the server for its change
	// timestamp, downloads every stale entity type, reconciles pending local
	// changes, pushes them and tidies up orphaned items.
	//
	// A cycle started while another one is in flight supersedes it; the
	// older call returns [ErrSuperseded]. A cycle that cannot reach the
	// server returns [ErrOffline] and keeps the cache.
	Sync(ctx context.Context) error

	// SyncWithTimestamp runs a sync cycle against a change timestamp the
	// caller already holds, skipping the timestamp request.
	SyncWithTimestamp(ctx context.Context, changedTime string) error

	// View returns the last published view. It is nil before Load.
	View() *models.ShoppingListView

	// Subscribe returns a channel receiving every published view. The
	// channel holds only the latest view; slow readers skip intermediate
	// ones. The returned function ends the subscription.
	Subscribe() (<-chan *models.ShoppingListView, func())

	// Notices returns the channel of one-shot user-visible messages.
	Notices() <-chan models.Notice

	// Phase returns the current phase of the sync state machine.
	Phase() models.SyncPhase

	// SelectList switches the displayed shopping list. Selecting the current
	// list is a no-op.
	SelectList(ctx context.Context, listID int) error

	// ToggleItemAt flips the done state of the item at the given position
	// of the published view. Online the change is pushed at once; offline,
	// or when the push fails for connectivity reasons, it is kept as a
	// pending local change.
	ToggleItemAt(ctx context.Context, position int) error

	// SetFilter changes the filter of the view.
	SetFilter(filter models.FilterState)

	// SetSearch changes the case-insensitive search of the view.
	SetSearch(query string)

	// DeleteItemAt deletes the item at the given position of the view.
	DeleteItemAt(ctx context.Context, position int) error

	// ClearDoneItems deletes every done item of the selected list, then
	// syncs.
	ClearDoneItems(ctx context.Context) error

	// AddMissingProducts puts every product below its minimum stock amount
	// on the selected list, then syncs.
	AddMissingProducts(ctx context.Context) error

	// SaveNotes stores the notes of the selected list, then syncs.
	SaveNotes(ctx context.Context, notes string) error

	// DeleteSelectedList clears and deletes the selected list, selects the
	// default list, tidies up and syncs.
	DeleteSelectedList(ctx context.Context) error

	// AddItem adds an item to the selected list and returns its id.
	AddItem(ctx context.Context, item models.NewShoppingListItem) (int, error)

	// IsDataLoaded reports whether items, lists, product groups and
	// quantity units have all been downloaded at least once.
	IsDataLoaded() bool

	// QuantityUnit returns the cached quantity unit with the given id.
	QuantityUnit(id int) (models.QuantityUnit, bool)

	// SelectedList returns the selected shopping list, if it is cached.
	SelectedList() (models.ShoppingList, bool)

	// ShoppingLists returns all cached shopping lists.
	ShoppingLists() []models.ShoppingList
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically runs a sync cycle.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

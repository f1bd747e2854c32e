// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local persistence of the sync client: the
// SQLite cache of entity snapshots and the badger-backed preference store.
package store

import (
	"context"

	"github.com/MKhiriev/grocy-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ShoppingListRepository is the local cache of all mirrored entity types.
type ShoppingListRepository interface {
	// LoadSnapshot returns everything currently cached. Slices of types that
	// hold no rows are empty, never nil.
	LoadSnapshot(ctx context.Context) (models.Snapshot, error)

	// PersistSnapshot replaces every entity type in types with the matching
	// slice of fetched, in one transaction, and reconciles pending local
	// item mutations against the server truth.
	//
	// A pending item whose server copy still has the done value the local
	// change started from is kept pending and reported in Pending together
	// with its server copy. A pending item whose server copy changed in the
	// meantime, or no longer exists, is reported in Dropped; the server copy
	// wins.
	//
	// When items are not part of types, the server view of pending items is
	// reconstructed from their DoneSynced shadow.
	PersistSnapshot(ctx context.Context, fetched models.Snapshot, types models.EntitySet) (models.Reconciliation, error)

	// UpsertItems inserts or replaces the given items.
	UpsertItems(ctx context.Context, items ...models.ShoppingListItem) error

	// DeleteItems removes the items with the given ids.
	DeleteItems(ctx context.Context, ids ...int) error
}

// Preferences is the small persistent key-value state of the client.
type Preferences interface {
	// LastSynced returns the change timestamp the given entity type was last
	// downloaded at, or "" when it never was.
	LastSynced(ctx context.Context, entity models.EntityType) (string, error)

	// SetLastSynced records ts as the last-synced timestamp of every given
	// entity type.
	SetLastSynced(ctx context.Context, ts string, entities ...models.EntityType) error

	// SelectedListID returns the persisted shopping list selection, or
	// [models.DefaultShoppingListID] when nothing was stored.
	SelectedListID(ctx context.Context) (int, error)

	// SetSelectedListID persists the shopping list selection.
	SetSelectedListID(ctx context.Context, id int) error

	// FeatureEnabled reports whether the named feature flag is on. Unset
	// flags are on.
	FeatureEnabled(ctx context.Context, feature string) (bool, error)

	// SetFeature stores a feature flag.
	SetFeature(ctx context.Context, feature string, enabled bool) error
}

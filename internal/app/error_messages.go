// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// grocy-sync service and command-line client.
//
// All Msg* constants are human-readable message strings that are published
// as one-shot notices or written into log entries to describe the outcome of
// an operation. Keeping them in one place ensures consistent wording
// throughout the client.
package app

const (
	// MsgNoConnection is published when the server cannot be reached. The
	// cached data stays visible.
	MsgNoConnection = "no connection to the server"

	// MsgSynced is published after pending offline changes were pushed.
	MsgSynced = "offline changes synced"

	// MsgFailedToSync is published when at least one pending change could
	// not be pushed. A fresh sync is started once.
	MsgFailedToSync = "failed to sync offline changes"

	// MsgChangesDiscarded is published when pending local changes were
	// superseded by concurrent changes on the server.
	MsgChangesDiscarded = "some offline changes were discarded, the server copy changed"

	// MsgUndefinedError is published for failed user intents and for
	// programming defects such as an out of range item position.
	MsgUndefinedError = "undefined error"

	// MsgUnauthorized is published when the server rejects the API key.
	MsgUnauthorized = "the server rejected the API key"

	// MsgCacheError is published when the local cache cannot be read or
	// written.
	MsgCacheError = "local cache error"

	// MsgAddedMissingProducts is published after missing products were put
	// on a list. Formatted with the list name.
	MsgAddedMissingProducts = "added missing products to %s"

	// MsgShoppingListCleared is published after done items were removed.
	// Formatted with the list name.
	MsgShoppingListCleared = "cleared done items of %s"

	// MsgShoppingListDeleted is published after a list was deleted.
	// Formatted with the list name.
	MsgShoppingListDeleted = "deleted %s"

	// MsgItemAdded is published after an item was created.
	MsgItemAdded = "item added"
)
